package components

import (
	"github.com/automoto/pixelhop/config"
	"github.com/yohamta/donburi"
)

// SessionData is per-run state that outlives a single frame.
type SessionData struct {
	Err     error                 // Fatal simulation error; ends the run
	Frames  int                   // Simulated frames
	Tuning  *config.TuningWatcher // Nil when no tuning file is watched
	Reloads int                   // Tuning reloads applied
}

var Session = donburi.NewComponentType[SessionData]()
