package systems

import (
	"github.com/automoto/pixelhop/archetypes"
	"github.com/automoto/pixelhop/components"
	cfg "github.com/automoto/pixelhop/config"
	"github.com/automoto/pixelhop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdatePause toggles the pause state.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	if getOrCreateInput(ecs).Action(cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	face := fonts.Regular.Get()
	textWidth := font.MeasureString(face, cfg.Pause.Text).Ceil()
	text.Draw(screen, cfg.Pause.Text, face, (width-textWidth)/2, height/2, cfg.Pause.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithSessionCheck wraps a system to skip execution once the run has failed.
func WithSessionCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if SessionErr(e) != nil {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or after
// a fatal simulation error.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithSessionCheck(system))
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		archetypes.Session.Spawn(ecs)
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
