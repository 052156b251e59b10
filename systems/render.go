package systems

import (
	"math"

	"github.com/automoto/pixelhop/components"
	cfg "github.com/automoto/pixelhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// cameraOffset returns the current horizontal scroll, zero before the
// camera exists.
func cameraOffset(ecs *ecs.ECS) float64 {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Camera.Get(cameraEntry).OffsetX
}

// DrawLevel draws the pre-rendered level scrolled by the camera offset.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Background == nil {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(-math.Round(cameraOffset(ecs)), 0)
	screen.DrawImage(level.Background, opts)
}

// DrawCharacter draws the current animation frame at the character's
// pixel-snapped position.
func DrawCharacter(ecs *ecs.ECS, screen *ebiten.Image) {
	offset := math.Round(cameraOffset(ecs))
	for e := range components.Animation.Iter(ecs.World) {
		if !e.HasComponent(components.Character) {
			continue
		}
		img := components.Animation.Get(e).Image()
		if img == nil {
			continue
		}
		c := components.Character.Get(e)

		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(math.Round(c.Position.X)-offset, math.Round(c.Position.Y))
		screen.DrawImage(img, opts)
	}
}
