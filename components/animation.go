package components

import (
	"github.com/automoto/pixelhop/assets/animations"
	"github.com/automoto/pixelhop/shared/anim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentClip      anim.ClipID
	Frames           map[anim.ClipID][]*ebiten.Image // Pre-cut frames, mirrored for left clips
	FrameWidth       int
	FrameHeight      int
	Animations       map[anim.ClipID]*animations.Animation
}

// SetClip switches playback to clip, restarting it only when it changes.
func (a *AnimationData) SetClip(clip anim.ClipID) {
	if a.CurrentClip == clip && a.CurrentAnimation != nil {
		return
	}

	a.CurrentClip = clip
	next, ok := a.Animations[clip]
	if !ok {
		// No animation for this clip, clear current
		a.CurrentAnimation = nil
		return
	}
	if a.CurrentAnimation != next {
		a.CurrentAnimation = next
		a.CurrentAnimation.Restart()
	}
}

// Image returns the frame to draw, or nil when no clip is playing.
func (a *AnimationData) Image() *ebiten.Image {
	if a.CurrentAnimation == nil {
		return nil
	}
	frames := a.Frames[a.CurrentClip]
	i := a.CurrentAnimation.Frame()
	if i < 0 || i >= len(frames) {
		return nil
	}
	return frames[i]
}

var Animation = donburi.NewComponentType[AnimationData]()
