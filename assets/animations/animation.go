package animations

// Animation steps through a clip's frames at a frame rate in frames per
// second. Non-looping animations hold their last frame.
type Animation struct {
	Frames  int
	FPS     float64
	Loop    bool
	Looped  bool // Reached the end at least once
	elapsed float64
	frame   int
}

func (a *Animation) Update(dt float64) {
	if a.FPS <= 0 || a.Frames <= 1 {
		return
	}
	a.elapsed += dt
	step := 1 / a.FPS
	for a.elapsed >= step {
		a.elapsed -= step
		a.frame++
		if a.frame >= a.Frames {
			a.Looped = true
			if a.Loop {
				// loop back to the beginning
				a.frame = 0
			} else {
				// Stay on last frame
				a.frame = a.Frames - 1
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = 0
	a.elapsed = 0
	a.Looped = false
}

func NewAnimation(frames int, fps float64, loop bool) *Animation {
	return &Animation{
		Frames: frames,
		FPS:    fps,
		Loop:   loop,
	}
}
