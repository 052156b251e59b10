package anim

import "github.com/automoto/pixelhop/shared/kinematics"

type rule struct {
	name        string
	match       func(c *kinematics.Character) bool
	right, left ClipID
}

// rules is ordered by precedence; the first match wins.
var rules = []rule{
	{
		name:  "bend",
		match: func(c *kinematics.Character) bool { return c.Bending || c.Settling },
		right: ClipBendRight, left: ClipBendLeft,
	},
	{
		name:  "jump",
		match: func(c *kinematics.Character) bool { return c.Jump != kinematics.JumpGrounded },
		right: ClipJumpRight, left: ClipJumpLeft,
	},
	{
		name:  "startup",
		match: func(c *kinematics.Character) bool { return c.Flight == kinematics.FlightStartup },
		right: ClipStartupRight, left: ClipStartupLeft,
	},
	{
		name:  "fly",
		match: func(c *kinematics.Character) bool { return c.Flight == kinematics.FlightFlying },
		right: ClipFlyRight, left: ClipFlyLeft,
	},
	{
		name:  "walk",
		match: func(c *kinematics.Character) bool { return c.VelocityX != 0 },
		right: ClipWalkRight, left: ClipWalkLeft,
	},
}

// Select returns the clip for the character's current state. It has no
// side effects.
func Select(c *kinematics.Character) ClipID {
	for _, r := range rules {
		if r.match(c) {
			return facing(c, r.right, r.left)
		}
	}
	return facing(c, ClipIdleRight, ClipIdleLeft)
}

// Pose returns the name of the rule that picked the current clip.
func Pose(c *kinematics.Character) string {
	for _, r := range rules {
		if r.match(c) {
			return r.name
		}
	}
	return "idle"
}

// FrameRate returns the playback rate for the clip currently selected for c.
func FrameRate(c *kinematics.Character, def Def) float64 {
	if c.Gliding && c.Flight == kinematics.FlightFlying && def.GlideFPS > 0 {
		return def.GlideFPS
	}
	return def.FPS
}

func facing(c *kinematics.Character, right, left ClipID) ClipID {
	if c.Facing == kinematics.FacingLeft {
		return left
	}
	return right
}
