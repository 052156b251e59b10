package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of configuration that can be overridden from a YAML
// file. Fields absent from the file keep their current values.
type Tuning struct {
	Player    PlayerConfig    `yaml:"player"`
	Collision CollisionConfig `yaml:"collision"`
	Camera    CameraConfig    `yaml:"camera"`
}

// CurrentTuning snapshots the live configuration.
func CurrentTuning() Tuning {
	return Tuning{
		Player:    Player,
		Collision: Collision,
		Camera:    Camera,
	}
}

// ParseTuning overlays data on base and validates the result.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}

// LoadTuning reads a tuning file and overlays it on the live configuration.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CurrentTuning(), fmt.Errorf("config: load %s: %w", path, err)
	}
	t, err := ParseTuning(data, CurrentTuning())
	if err != nil {
		return t, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

// Apply replaces the live configuration with t.
func (t Tuning) Apply() {
	Player = t.Player
	Collision = t.Collision
	Camera = t.Camera
}

// Validate rejects values the simulation cannot run with.
func (t Tuning) Validate() error {
	p := t.Player
	var errs []error
	if p.SpeedLimit <= 0 {
		errs = append(errs, fmt.Errorf("speed_limit must be positive, got %v", p.SpeedLimit))
	}
	if p.Acceleration <= 0 {
		errs = append(errs, fmt.Errorf("acceleration must be positive, got %v", p.Acceleration))
	}
	if p.Decay <= 0 || p.Decay >= 1 {
		errs = append(errs, fmt.Errorf("decay must be in (0, 1), got %v", p.Decay))
	}
	if p.StopThreshold <= 0 {
		errs = append(errs, fmt.Errorf("stop_threshold must be positive, got %v", p.StopThreshold))
	}
	if p.JumpDuration <= 0 {
		errs = append(errs, fmt.Errorf("jump_duration must be positive, got %v", p.JumpDuration))
	}
	if p.GlideDescent <= 0 {
		errs = append(errs, fmt.Errorf("glide_descent must be positive, got %v", p.GlideDescent))
	}
	if p.LeftSeam > 0 {
		errs = append(errs, fmt.Errorf("left_seam must not be positive, got %v", p.LeftSeam))
	}
	if p.JumpHeight < 0 || p.FallStep < 0 {
		errs = append(errs, errors.New("jump_height and fall_step must not be negative"))
	}
	c := t.Collision
	if c.InsetBack < 0 || c.InsetFront < 0 || c.InsetBack+c.InsetFront >= float64(p.FrameWidth) {
		errs = append(errs, fmt.Errorf("insets %v/%v do not fit a %dpx wide character",
			c.InsetBack, c.InsetFront, p.FrameWidth))
	}
	return errors.Join(errs...)
}
