package anim

import (
	"testing"

	"github.com/automoto/pixelhop/shared/kinematics"
)

func TestSelectPrecedence(t *testing.T) {
	tests := []struct {
		name string
		c    kinematics.Character
		want ClipID
	}{
		{"idle", kinematics.Character{}, ClipIdleRight},
		{"idle left", kinematics.Character{Facing: kinematics.FacingLeft}, ClipIdleLeft},
		{"walk", kinematics.Character{VelocityX: 3}, ClipWalkRight},
		{"walk left", kinematics.Character{VelocityX: -3, Facing: kinematics.FacingLeft}, ClipWalkLeft},
		{"fly beats walk", kinematics.Character{VelocityX: 3, Flight: kinematics.FlightFlying}, ClipFlyRight},
		{"glide", kinematics.Character{Flight: kinematics.FlightFlying, Gliding: true}, ClipFlyRight},
		{"startup beats fly", kinematics.Character{Flight: kinematics.FlightStartup}, ClipStartupRight},
		{"jump beats startup", kinematics.Character{Jump: kinematics.JumpAscending, Flight: kinematics.FlightStartup}, ClipJumpRight},
		{"descending", kinematics.Character{Jump: kinematics.JumpDescending, Facing: kinematics.FacingLeft}, ClipJumpLeft},
		{"bend beats jump", kinematics.Character{Bending: true, Jump: kinematics.JumpAscending}, ClipBendRight},
		{"settling", kinematics.Character{Settling: true, Facing: kinematics.FacingLeft}, ClipBendLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.c
			if got := Select(&c); got != tt.want {
				t.Fatalf("Select = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectFacingAgreesWithVelocity(t *testing.T) {
	p := kinematics.Params{
		SpeedLimit: 90, Acceleration: 9, Decay: 0.8, StopThreshold: 0.5,
		JumpHeight: 24, JumpDuration: 0.35, SettleDelay: 0.1,
		StartupDuration: 0.6, StartupRise: 0.25, FlightRise: 1, GlideDescent: 0.5,
		FallStep: 2, LevelWidth: 10000, LeftSeam: -1,
	}
	inputs := []kinematics.Input{
		{MoveRight: true}, {MoveRight: true}, {MoveLeft: true}, {},
		{MoveLeft: true, Jump: true}, {MoveRight: true}, {Bend: true}, {},
		{MoveRight: true, Fly: true}, {MoveLeft: true},
	}

	c := kinematics.NewCharacter(1000, 50, 8, 8)
	c.GroundContact = true
	for frame := 0; frame < 600; frame++ {
		in := inputs[(frame/7)%len(inputs)]
		req := c.Advance(1.0/60, in, p)
		// Keep the character supported so jumps and flight can start.
		c.GroundContact = req.Y >= 50
		c.Position.Y = min(req.Y, 50)

		clip := Select(c)
		switch {
		case c.VelocityX > 0 && clip.FacingLeft():
			t.Fatalf("frame %d: velocity %v but clip %v", frame, c.VelocityX, clip)
		case c.VelocityX < 0 && !clip.FacingLeft():
			t.Fatalf("frame %d: velocity %v but clip %v", frame, c.VelocityX, clip)
		}
	}
}

func TestFrameRate(t *testing.T) {
	def := Def{Frames: 4, FPS: 12, GlideFPS: 4, Loop: true}
	flying := kinematics.Character{Flight: kinematics.FlightFlying}
	if got := FrameRate(&flying, def); got != 12 {
		t.Fatalf("FrameRate flying = %v, want 12", got)
	}
	flying.Gliding = true
	if got := FrameRate(&flying, def); got != 4 {
		t.Fatalf("FrameRate gliding = %v, want 4", got)
	}
	if d := (Def{Frames: 6, FPS: 10}).Duration(); d != 0.6 {
		t.Fatalf("Duration = %v, want 0.6", d)
	}
}

func TestClipNames(t *testing.T) {
	seen := map[string]ClipID{}
	for id := ClipID(0); id < ClipCount; id++ {
		name := id.String()
		if name == "" || name == "unknown" {
			t.Fatalf("clip %d has no name", id)
		}
		if prev, ok := seen[name]; ok {
			t.Fatalf("clips %d and %d share name %q", prev, id, name)
		}
		seen[name] = id
	}
	if got := ClipCount.String(); got != "unknown" {
		t.Fatalf("ClipCount.String() = %q, want unknown", got)
	}
}
