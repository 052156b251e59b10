package config

import "github.com/automoto/pixelhop/shared/anim"

// Clips maps each animation clip to its row in the character sheet and its
// playback. Left and right variants share a row; left frames are mirrored
// when drawn.
var Clips = map[anim.ClipID]anim.Def{
	anim.ClipIdleRight:    {Row: 0, Frames: 2, FPS: 5, Loop: true},
	anim.ClipIdleLeft:     {Row: 0, Frames: 2, FPS: 5, Loop: true},
	anim.ClipWalkRight:    {Row: 1, Frames: 3, FPS: 5, Loop: true},
	anim.ClipWalkLeft:     {Row: 1, Frames: 3, FPS: 5, Loop: true},
	anim.ClipBendRight:    {Row: 2, Frames: 1, FPS: 1},
	anim.ClipBendLeft:     {Row: 2, Frames: 1, FPS: 1},
	anim.ClipJumpRight:    {Row: 3, Frames: 2, FPS: 8},
	anim.ClipJumpLeft:     {Row: 3, Frames: 2, FPS: 8},
	anim.ClipFlyRight:     {Row: 4, Frames: 4, FPS: 12, GlideFPS: 4, Loop: true},
	anim.ClipFlyLeft:      {Row: 4, Frames: 4, FPS: 12, GlideFPS: 4, Loop: true},
	anim.ClipStartupRight: {Row: 5, Frames: 6, FPS: 10},
	anim.ClipStartupLeft:  {Row: 5, Frames: 6, FPS: 10},
}

// StartupDuration is how long the flight startup lock lasts: one full pass
// of the startup clip.
func StartupDuration() float64 {
	return Clips[anim.ClipStartupRight].Duration()
}
