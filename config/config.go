package config

import (
	"image/color"

	"github.com/automoto/pixelhop/shared/collision"
	"github.com/automoto/pixelhop/shared/kinematics"
	"github.com/automoto/pixelhop/shared/leveldata"
	"github.com/automoto/pixelhop/tags"
)

// Config holds the logical screen size. The window is this size times
// Window.Scale.
type Config struct {
	Width  int
	Height int
	TPS    int // Fixed simulation rate; per-frame tuning assumes 60
}

// PlayerConfig contains all character movement configuration values.
// Per-frame quantities assume the fixed 60 TPS tick.
type PlayerConfig struct {
	// Horizontal
	SpeedLimit    float64 `yaml:"speed_limit"`    // px/s
	Acceleration  float64 `yaml:"acceleration"`   // px/s per frame
	Decay         float64 `yaml:"decay"`          // velocity multiplier per idle frame
	StopThreshold float64 `yaml:"stop_threshold"` // px/s

	// Jump
	JumpHeight   float64 `yaml:"jump_height"`   // px
	JumpDuration float64 `yaml:"jump_duration"` // seconds per phase
	SettleDelay  float64 `yaml:"settle_delay"`  // seconds

	// Flight
	StartupRise  float64 `yaml:"startup_rise"`  // px per frame
	FlightRise   float64 `yaml:"flight_rise"`   // px per frame
	GlideDescent float64 `yaml:"glide_descent"` // px per frame

	FallStep float64 `yaml:"fall_step"` // px per frame
	LeftSeam float64 `yaml:"left_seam"`

	// Dimensions
	FrameWidth  int `yaml:"-"`
	FrameHeight int `yaml:"-"`
}

// Params builds the per-frame kinematics parameters for a level of the
// given pixel width.
func (p PlayerConfig) Params(levelWidth float64) kinematics.Params {
	return kinematics.Params{
		SpeedLimit:      p.SpeedLimit,
		Acceleration:    p.Acceleration,
		Decay:           p.Decay,
		StopThreshold:   p.StopThreshold,
		JumpHeight:      p.JumpHeight,
		JumpDuration:    p.JumpDuration,
		SettleDelay:     p.SettleDelay,
		StartupDuration: StartupDuration(),
		StartupRise:     p.StartupRise,
		FlightRise:      p.FlightRise,
		GlideDescent:    p.GlideDescent,
		FallStep:        p.FallStep,
		LevelWidth:      levelWidth,
		LeftSeam:        p.LeftSeam,
	}
}

// CollisionConfig contains resolver configuration values.
type CollisionConfig struct {
	Layer      string  `yaml:"-"`
	InsetBack  float64 `yaml:"inset_back"`
	InsetFront float64 `yaml:"inset_front"`
}

// Params builds resolver parameters for a level of the given pixel height.
func (c CollisionConfig) Params(worldHeight float64) collision.Params {
	return collision.Params{
		Layer:       c.Layer,
		InsetBack:   c.InsetBack,
		InsetFront:  c.InsetFront,
		WorldHeight: worldHeight,
	}
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	IntroPan float64 `yaml:"intro_pan"` // Seconds the camera takes to pan from the level end to the character
}

// WindowConfig contains window configuration
type WindowConfig struct {
	Title  string
	Scale  int
	Scales []int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
	Overlay  bool   // Draw collision boxes and state readout
	Level    string // Level to start when the menu is skipped
	Tuning   string // YAML tuning file to load and watch, empty for none
}

// LevelConfig names the embedded level directory.
type LevelConfig struct {
	Dir     string
	Default string
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Text         string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	ButtonIdle        color.RGBA
	ButtonHover       color.RGBA
	Title             string
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	BackgroundColor color.RGBA
	DebugBoxColors  map[string]color.RGBA
	DebugTextColor  color.RGBA
	DebugFontSize   float64
	MenuFontSize    float64
}

var C *Config
var Player PlayerConfig
var Collision CollisionConfig
var Camera CameraConfig
var Window WindowConfig
var Debug DebugConfig
var Level LevelConfig
var Pause PauseConfig
var Menu MenuConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	Sky          = color.RGBA{R: 0x1c, G: 0x2a, B: 0x44, A: 255}
)

func init() {
	C = &Config{
		Width:  160,
		Height: 120,
		TPS:    60,
	}

	Player = PlayerConfig{
		SpeedLimit:    90.0,
		Acceleration:  9.0,
		Decay:         0.8,
		StopThreshold: 0.5,

		JumpHeight:   24.0, // three tiles
		JumpDuration: 0.35,
		SettleDelay:  0.1,

		StartupRise:  0.25,
		FlightRise:   1.0,
		GlideDescent: 0.5,

		FallStep: 2.0,
		LeftSeam: -1.0,

		FrameWidth:  8,
		FrameHeight: 8,
	}

	Collision = CollisionConfig{
		Layer:      leveldata.LayerGround,
		InsetBack:  1.0,
		InsetFront: 2.0,
	}

	Camera = CameraConfig{
		IntroPan: 1.5,
	}

	Window = WindowConfig{
		Title:  "pixelhop",
		Scale:  4,
		Scales: []int{2, 3, 4, 5, 6},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		Overlay:  false,
	}

	Level = LevelConfig{
		Dir:     "levels",
		Default: "level1",
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Text:         "PAUSED",
	}

	Menu = MenuConfig{
		BackgroundColor:   Sky,
		TitleColor:        Yellow,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		ButtonIdle:        color.RGBA{R: 0x10, G: 0x18, B: 0x28, A: 255},
		ButtonHover:       color.RGBA{R: 0x24, G: 0x34, B: 0x54, A: 255},
		Title:             "PIXELHOP",
	}

	UI = UIConfig{
		BackgroundColor: Sky,
		DebugBoxColors: map[string]color.RGBA{
			tags.ResolvGround:    {R: 255, G: 0, B: 0, A: 160},
			tags.ResolvCharacter: BrightGreen,
		},
		DebugTextColor: White,
		DebugFontSize:  6,
		MenuFontSize:   8,
	}
}
