package animations

import "testing"

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(3, 5, true)

	// 0.2s per frame at 5 fps.
	a.Update(0.25)
	if a.Frame() != 1 {
		t.Fatalf("Frame = %d after 0.25s, want 1", a.Frame())
	}
	a.Update(0.4)
	if a.Frame() != 0 || !a.Looped {
		t.Fatalf("Frame = %d Looped = %v after 0.65s, want 0 true", a.Frame(), a.Looped)
	}
}

func TestAnimationHoldsLastFrame(t *testing.T) {
	a := NewAnimation(6, 10, false)
	for i := 0; i < 120; i++ {
		a.Update(1.0 / 60)
	}
	if a.Frame() != 5 || !a.Looped {
		t.Fatalf("Frame = %d Looped = %v, want 5 true", a.Frame(), a.Looped)
	}

	a.Restart()
	if a.Frame() != 0 || a.Looped {
		t.Fatalf("Restart left Frame = %d Looped = %v", a.Frame(), a.Looped)
	}
}

func TestAnimationRateChange(t *testing.T) {
	a := NewAnimation(4, 12, true)
	a.FPS = 4
	a.Update(0.2)
	if a.Frame() != 0 {
		t.Fatalf("Frame = %d after 0.2s at 4 fps, want 0", a.Frame())
	}
	a.Update(0.1)
	if a.Frame() != 1 {
		t.Fatalf("Frame = %d after 0.3s at 4 fps, want 1", a.Frame())
	}
}

func TestSingleFrameNeverAdvances(t *testing.T) {
	a := NewAnimation(1, 1, false)
	a.Update(10)
	if a.Frame() != 0 || a.Looped {
		t.Fatalf("Frame = %d Looped = %v", a.Frame(), a.Looped)
	}
}
