package systems

import (
	"encoding/json"
	"log"
	"slices"

	cfg "github.com/automoto/pixelhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Scale     int    `json:"scale"`
	Overlay   bool   `json:"overlay"`
	LastLevel string `json:"lastLevel"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "pixelhop",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings snapshots the persisted subset of the live configuration.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		Scale:     cfg.Window.Scale,
		Overlay:   cfg.Debug.Overlay,
		LastLevel: cfg.Level.Default,
	}
}

// SaveCurrentSettings saves the live window scale, overlay toggle and last
// played level.
func SaveCurrentSettings() {
	_ = SaveSettings(CurrentSettings())
}

// ApplySavedSettingsGlobal copies saved settings into the live
// configuration. Scales outside the offered set are ignored.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if slices.Contains(cfg.Window.Scales, saved.Scale) {
		cfg.Window.Scale = saved.Scale
	}
	cfg.Debug.Overlay = saved.Overlay
	if saved.LastLevel != "" {
		cfg.Level.Default = saved.LastLevel
	}
}

// ApplyWindowScale resizes the window to the logical screen times the
// configured scale.
func ApplyWindowScale() {
	ebiten.SetWindowSize(cfg.C.Width*cfg.Window.Scale, cfg.C.Height*cfg.Window.Scale)
}

// CycleWindowScale steps to the next offered scale, applies it and saves.
func CycleWindowScale() int {
	i := slices.Index(cfg.Window.Scales, cfg.Window.Scale)
	cfg.Window.Scale = cfg.Window.Scales[(i+1)%len(cfg.Window.Scales)]
	ApplyWindowScale()
	SaveCurrentSettings()
	return cfg.Window.Scale
}
