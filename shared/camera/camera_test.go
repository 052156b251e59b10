package camera

import (
	"testing"

	"github.com/automoto/pixelhop/shared/kinematics"
)

func TestScroll(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		facing kinematics.Facing
		want   float64
	}{
		{"centred", 96, kinematics.FacingRight, 20},
		{"right rounds up", 96.4, kinematics.FacingRight, 21},
		{"left rounds down", 96.4, kinematics.FacingLeft, 20},
		{"left of origin", 10, kinematics.FacingLeft, -66},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := kinematics.NewCharacter(tt.x, 104, 8, 8)
			c.Facing = tt.facing
			if got := Scroll(c, 160); got != tt.want {
				t.Fatalf("Scroll = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		offset, level, want float64
	}{
		{-66, 512, 0},
		{100, 512, 100},
		{400, 512, 352},
		{30, 120, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.offset, tt.level, 160); got != tt.want {
			t.Errorf("Clamp(%v, %v, 160) = %v, want %v", tt.offset, tt.level, got, tt.want)
		}
	}
}
