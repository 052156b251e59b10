package kinematics

import (
	"github.com/automoto/pixelhop/shared/collision"
	"github.com/automoto/pixelhop/shared/easing"
	"github.com/automoto/pixelhop/shared/gamemath"
)

// Character is the single playable entity. All fields are mutated only by
// Advance and Land.
type Character struct {
	Position  Vec
	Width     float64
	Height    float64
	VelocityX float64
	Facing    Facing

	Jump          JumpPhase
	Flight        FlightPhase
	GroundContact bool
	Anchor        JumpAnchor
	ElapsedJump   float64

	Bending  bool // bend held this frame
	Settling bool // post-landing bend before the jump is over
	Gliding  bool // flying with fly released

	Clock float64

	queue     Queue
	jumpLatch bool
	jumpSeq   uint64
	flightSeq uint64
}

// NewCharacter places a grounded, right-facing character with its top-left
// corner at (x, y).
func NewCharacter(x, y, w, h float64) *Character {
	return &Character{
		Position: Vec{X: x, Y: y},
		Width:    w,
		Height:   h,
	}
}

// Pending reports the number of deferred events not yet fired.
func (c *Character) Pending() int {
	return c.queue.Len()
}

// Advance steps the character by dt seconds and returns the tentative
// placement for collision resolution. Locomotion is evaluated first; the
// jump and flight systems run independently afterwards.
func (c *Character) Advance(dt float64, in Input, p Params) collision.Request {
	c.Clock += dt
	c.fireDue()

	prevX := c.Position.X

	c.locomote(in, p)
	c.startJump(in, p)
	c.progressJump(dt, p)
	c.fly(in, p)
	c.fall(p)

	c.Position.X += c.VelocityX * dt
	c.clampBounds(p)

	return collision.Request{
		X:          c.Position.X,
		Y:          c.Position.Y,
		PrevX:      prevX,
		W:          c.Width,
		H:          c.Height,
		FacingLeft: c.Facing == FacingLeft,
	}
}

// Land applies a collision result. Ground contact ends any jump or flight
// and re-arms the flight startup lock.
func (c *Character) Land(res collision.Result) {
	c.Position.X = res.X
	c.Position.Y = res.Y
	c.GroundContact = res.GroundContact
	if res.HitWall {
		c.VelocityX = 0
	}
	if !res.GroundContact {
		return
	}

	if c.Jump != JumpGrounded {
		c.Jump = JumpGrounded
		c.ElapsedJump = 0
	}
	if c.Flight != FlightGrounded {
		c.Flight = FlightGrounded
		c.Gliding = false
		c.flightSeq++
	}
}

func (c *Character) fireDue() {
	for _, ev := range c.queue.Due(c.Clock) {
		switch ev.Kind {
		case EventSettle:
			if ev.Seq != c.jumpSeq || !c.Settling {
				continue
			}
			c.Settling = false
			if c.Jump == JumpDescending {
				c.Jump = JumpGrounded
				c.ElapsedJump = 0
			}
		case EventFlightReady:
			if ev.Seq != c.flightSeq || c.Flight != FlightStartup {
				continue
			}
			c.Flight = FlightFlying
		}
	}
}

func (c *Character) locomote(in Input, p Params) {
	c.Bending = in.Bend

	switch {
	case in.Bend:
		// Velocity carries over untouched while bending.
	case in.MoveRight:
		c.accelerate(1, p)
		c.Facing = FacingRight
	case in.MoveLeft:
		c.accelerate(-1, p)
		c.Facing = FacingLeft
	default:
		c.VelocityX = gamemath.DecaySpeed(c.VelocityX, p.Decay, p.StopThreshold)
	}
}

func (c *Character) accelerate(dir float64, p Params) {
	if c.VelocityX*dir < 0 {
		c.VelocityX = 0
	}
	c.VelocityX += dir * p.Acceleration
	c.VelocityX = gamemath.ClampSpeed(c.VelocityX, p.SpeedLimit)
}

func (c *Character) startJump(in Input, p Params) {
	pressed := in.Jump && !c.jumpLatch
	c.jumpLatch = in.Jump

	if !pressed || c.Jump != JumpGrounded || c.Flight != FlightGrounded || !c.GroundContact {
		return
	}

	c.jumpSeq++
	c.Jump = JumpAscending
	c.ElapsedJump = 0
	c.Settling = false
	c.Anchor = JumpAnchor{
		StartY: c.Position.Y,
		PeakY:  c.Position.Y - p.JumpHeight,
	}
}

func (c *Character) progressJump(dt float64, p Params) {
	a := c.Anchor

	switch c.Jump {
	case JumpAscending:
		c.ElapsedJump += dt
		c.Position.Y = easing.EaseOut(c.ElapsedJump, a.StartY, a.PeakY-a.StartY, p.JumpDuration)
		if c.Position.Y <= a.PeakY {
			c.Position.Y = a.PeakY
			c.Jump = JumpDescending
			c.ElapsedJump = 0
		}
	case JumpDescending:
		if c.Settling {
			return
		}
		c.ElapsedJump += dt
		c.Position.Y = easing.EaseIn(c.ElapsedJump, a.PeakY, a.StartY-a.PeakY, p.JumpDuration)
		if c.Position.Y >= a.StartY {
			c.Position.Y = a.StartY
			c.Settling = true
			c.queue.Schedule(Event{At: c.Clock + p.SettleDelay, Kind: EventSettle, Seq: c.jumpSeq})
		}
	}
}

func (c *Character) fly(in Input, p Params) {
	switch c.Flight {
	case FlightGrounded:
		if !in.Fly || c.Jump != JumpGrounded || !c.GroundContact {
			return
		}
		c.flightSeq++
		c.Flight = FlightStartup
		c.Settling = false
		c.queue.Schedule(Event{At: c.Clock + p.StartupDuration, Kind: EventFlightReady, Seq: c.flightSeq})
		c.Position.Y -= p.StartupRise
	case FlightStartup:
		c.Position.Y -= p.StartupRise
	case FlightFlying:
		if in.Fly {
			c.Gliding = false
			c.Position.Y -= p.FlightRise
		} else {
			c.Gliding = true
			c.Position.Y += p.GlideDescent
		}
	}
}

func (c *Character) fall(p Params) {
	if c.GroundContact || c.Jump != JumpGrounded || c.Flight != FlightGrounded {
		return
	}
	c.Position.Y += p.FallStep
}

func (c *Character) clampBounds(p Params) {
	if maxX := p.LevelWidth - c.Width; p.LevelWidth > 0 && c.Position.X > maxX {
		c.Position.X = maxX
	}
	// Only a leftward move past the edge snaps to the seam; walking back out
	// from the seam passes through negative X.
	if c.Position.X < 0 && c.VelocityX < 0 {
		c.Position.X = p.LeftSeam
		c.VelocityX = 0
	}
	if c.Position.Y < 0 {
		c.Position.Y = 0
	}
}
