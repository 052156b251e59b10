package systems

import (
	"github.com/automoto/pixelhop/components"
	cfg "github.com/automoto/pixelhop/config"
	"github.com/automoto/pixelhop/shared/anim"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation picks the clip for the character's state and advances
// its frames. Flight plays slower while gliding.
func UpdateAnimation(ecs *ecs.ECS) {
	dt := 1.0 / float64(cfg.C.TPS)
	for e := range components.Animation.Iter(ecs.World) {
		if !e.HasComponent(components.Character) {
			continue
		}
		character := components.Character.Get(e)
		animData := components.Animation.Get(e)

		character.Clip = anim.Select(character.Character)
		animData.SetClip(character.Clip)
		if animData.CurrentAnimation == nil {
			continue
		}
		animData.CurrentAnimation.FPS = anim.FrameRate(character.Character, cfg.Clips[character.Clip])
		animData.CurrentAnimation.Update(dt)
	}
}
