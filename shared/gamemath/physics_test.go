package gamemath

import "testing"

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{95, 90},
		{-95, -90},
		{42, 42},
		{0, 0},
	}
	for _, tt := range tests {
		if got := ClampSpeed(tt.in, 90); got != tt.want {
			t.Errorf("ClampSpeed(%v, 90) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDecaySpeedReachesZero(t *testing.T) {
	for _, start := range []float64{90, -90, 0.6} {
		v := start
		n := 0
		for v != 0 {
			if n == 100 {
				t.Fatalf("start %v: still %v after 100 steps", start, v)
			}
			v = DecaySpeed(v, 0.8, 0.5)
			n++
		}
	}
}
