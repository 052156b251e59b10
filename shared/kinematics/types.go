// Package kinematics advances the playable character one frame at a time:
// horizontal locomotion, the eased jump arc, flight, and level bounds.
// It owns no engine state; callers pass the frame's input snapshot and feed
// the collision result back through Land.
package kinematics

// Facing is the horizontal direction the character looks toward.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// JumpPhase selects which easing curve drives vertical position.
type JumpPhase int

const (
	JumpGrounded JumpPhase = iota
	JumpAscending
	JumpDescending
)

func (p JumpPhase) String() string {
	switch p {
	case JumpAscending:
		return "ascending"
	case JumpDescending:
		return "descending"
	default:
		return "grounded"
	}
}

// FlightPhase tracks the committed startup lock and free flight.
type FlightPhase int

const (
	FlightGrounded FlightPhase = iota
	FlightStartup
	FlightFlying
)

func (p FlightPhase) String() string {
	switch p {
	case FlightStartup:
		return "startup"
	case FlightFlying:
		return "flying"
	default:
		return "grounded"
	}
}

// Vec is a point in world pixels.
type Vec struct {
	X, Y float64
}

// JumpAnchor holds the interpolation bounds captured when a jump starts.
type JumpAnchor struct {
	StartY float64
	PeakY  float64
}

// Input is the frame's held-state snapshot of the logical keys.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Bend      bool
	Jump      bool
	Fly       bool
}

// Params are the tuning constants for a frame step.
type Params struct {
	SpeedLimit    float64 // px/s
	Acceleration  float64 // px/s added per frame while a direction is held
	Decay         float64 // per-frame velocity multiplier with no direction held
	StopThreshold float64 // px/s below which decaying velocity snaps to zero

	JumpHeight   float64 // px
	JumpDuration float64 // seconds per phase
	SettleDelay  float64 // seconds of bend pose after landing

	StartupDuration float64 // seconds, nominal length of the flight startup clip
	StartupRise     float64 // px per frame during startup
	FlightRise      float64 // px per frame while flying with fly held
	GlideDescent    float64 // px per frame while flying with fly released
	FallStep        float64 // px per frame when unsupported

	LevelWidth float64
	LeftSeam   float64 // x used when the character passes the left edge
}
