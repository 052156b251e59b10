package factory

import (
	"github.com/automoto/pixelhop/assets"
	"github.com/automoto/pixelhop/assets/animations"
	"github.com/automoto/pixelhop/components"
	cfg "github.com/automoto/pixelhop/config"
	"github.com/automoto/pixelhop/shared/anim"
)

// GenerateAnimations creates an AnimationData component from the clip
// definitions in config.
func GenerateAnimations(frameWidth, frameHeight int) *components.AnimationData {
	animData := &components.AnimationData{
		Animations:  make(map[anim.ClipID]*animations.Animation, len(cfg.Clips)),
		Frames:      assets.MustCharacterFrames(cfg.Clips),
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
		CurrentClip: anim.ClipIdleRight,
	}

	for clip, def := range cfg.Clips {
		animData.Animations[clip] = animations.NewAnimation(def.Frames, def.FPS, def.Loop)
	}
	animData.CurrentAnimation = animData.Animations[anim.ClipIdleRight]

	return animData
}
