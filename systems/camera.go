package systems

import (
	"github.com/automoto/pixelhop/components"
	cfg "github.com/automoto/pixelhop/config"
	"github.com/automoto/pixelhop/shared/camera"
	"github.com/automoto/pixelhop/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the character centred, clamped to the level. While the
// intro pan runs the offset eases from PanFrom toward that target instead.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry)

	characterEntry, ok := tags.Character.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	character := components.Character.Get(characterEntry)
	level := components.Level.Get(levelEntry)

	viewport := float64(cfg.C.Width)
	cam.Target = camera.Clamp(camera.Scroll(character.Character, viewport), level.Grid.PixelWidth(), viewport)

	if !cam.Panning {
		cam.OffsetX = cam.Target
		return
	}

	tween := components.Tween.Get(cameraEntry)
	progress, done := tween.Update(float32(1.0 / float64(cfg.C.TPS)))
	if done {
		cam.Panning = false
		cam.OffsetX = cam.Target
		return
	}
	cam.OffsetX = cam.PanFrom + (cam.Target-cam.PanFrom)*float64(progress)
}
