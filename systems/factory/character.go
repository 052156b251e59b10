package factory

import (
	"github.com/automoto/pixelhop/archetypes"
	"github.com/automoto/pixelhop/components"
	cfg "github.com/automoto/pixelhop/config"
	"github.com/automoto/pixelhop/shared/anim"
	"github.com/automoto/pixelhop/shared/kinematics"
	"github.com/automoto/pixelhop/tags"
	"github.com/automoto/pixelhop/tiles"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCharacter(ecs *ecs.ECS, m *tiles.Map, x, y float64) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)

	w, h := float64(cfg.Player.FrameWidth), float64(cfg.Player.FrameHeight)
	components.Character.SetValue(character, components.CharacterData{
		Character: kinematics.NewCharacter(x, y, w, h),
		Clip:      anim.ClipIdleRight,
	})

	obj := resolv.NewObject(x, y, w, h, tags.ResolvCharacter)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = character
	m.Space.Add(obj)
	components.Object.SetValue(character, components.ObjectData{Object: obj})

	components.Animation.Set(character, GenerateAnimations(cfg.Player.FrameWidth, cfg.Player.FrameHeight))

	return character
}
