package scenes

import (
	"log"
	"sync"

	"github.com/automoto/pixelhop/components"
	cfg "github.com/automoto/pixelhop/config"
	"github.com/automoto/pixelhop/shared/camera"
	"github.com/automoto/pixelhop/systems"
	"github.com/automoto/pixelhop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs one level until the session fails.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        string
	once         sync.Once
}

// NewPlatformerScene creates a platformer scene for the named level.
func NewPlatformerScene(sc SceneChanger, level string) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, level: level}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

// Err returns the simulation error that ended the run, if any.
func (ps *PlatformerScene) Err() error {
	if ps.ecs == nil {
		return nil
	}
	err := systems.SessionErr(ps.ecs)
	if err != nil {
		systems.StopTuningWatch(ps.ecs)
	}
	return err
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateTuning)

	// Game systems wrapped with pause and session checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCharacter))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAnimation))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawCharacter)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	ps.ecs = ecs

	// Create the level entity and load level data FIRST.
	level := factory.CreateLevel(ps.ecs, ps.level)
	levelData := components.Level.Get(level)
	m := factory.CreateSpace(level)

	spawn := levelData.Grid.Spawn
	factory.CreateCharacter(ps.ecs, m, spawn.X, spawn.Y)

	// Pan in from the far end of the level.
	viewport := float64(cfg.C.Width)
	factory.CreateCamera(ps.ecs, camera.Clamp(levelData.Grid.PixelWidth()-viewport, levelData.Grid.PixelWidth(), viewport))

	systems.StartTuningWatch(ps.ecs, cfg.Debug.Tuning)

	log.Printf("Level %s: %dx%d tiles", levelData.Grid.Name, levelData.Grid.Cols, levelData.Grid.Rows)
}
