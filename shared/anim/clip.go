// Package anim maps character state to one of the twelve animation clips.
package anim

// ClipID names an animation clip.
type ClipID int

const (
	ClipIdleRight ClipID = iota
	ClipIdleLeft
	ClipWalkRight
	ClipWalkLeft
	ClipBendRight
	ClipBendLeft
	ClipJumpRight
	ClipJumpLeft
	ClipFlyRight
	ClipFlyLeft
	ClipStartupRight
	ClipStartupLeft

	ClipCount
)

var clipNames = [ClipCount]string{
	ClipIdleRight:    "idler",
	ClipIdleLeft:     "idlel",
	ClipWalkRight:    "walkr",
	ClipWalkLeft:     "walkl",
	ClipBendRight:    "bendr",
	ClipBendLeft:     "bendl",
	ClipJumpRight:    "jumpr",
	ClipJumpLeft:     "jumpl",
	ClipFlyRight:     "flyr",
	ClipFlyLeft:      "flyl",
	ClipStartupRight: "stfr",
	ClipStartupLeft:  "stfl",
}

func (id ClipID) String() string {
	if id < 0 || id >= ClipCount {
		return "unknown"
	}
	return clipNames[id]
}

// FacingLeft reports whether the clip is a left-facing variant.
func (id ClipID) FacingLeft() bool {
	return id%2 == 1
}

// Def describes how a clip plays back.
type Def struct {
	Row      int     // sprite sheet row
	Frames   int     // frames in the row
	FPS      float64 // playback rate
	GlideFPS float64 // playback rate while gliding; zero means FPS
	Loop     bool
}

// Duration is the nominal length of one pass through the clip in seconds.
func (d Def) Duration() float64 {
	if d.FPS <= 0 {
		return 0
	}
	return float64(d.Frames) / d.FPS
}
