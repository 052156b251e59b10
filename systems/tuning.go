package systems

import (
	"log"

	cfg "github.com/automoto/pixelhop/config"
	"github.com/yohamta/donburi/ecs"
)

// StartTuningWatch watches path for rewrites for the rest of the session.
func StartTuningWatch(ecs *ecs.ECS, path string) {
	if path == "" {
		return
	}
	w, err := cfg.WatchTuning(path)
	if err != nil {
		log.Printf("Warning: Could not watch tuning file %s: %v", path, err)
		return
	}
	GetOrCreateSession(ecs).Tuning = w
}

// StopTuningWatch releases the session's watcher, if any.
func StopTuningWatch(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	if session.Tuning == nil {
		return
	}
	if err := session.Tuning.Close(); err != nil {
		log.Printf("Warning: Could not close tuning watcher: %v", err)
	}
	session.Tuning = nil
}

// UpdateTuning applies tuning file rewrites between frames. A rewrite that
// fails to parse or validate leaves the live configuration untouched.
func UpdateTuning(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	if session.Tuning == nil {
		return
	}

	for {
		select {
		case data := <-session.Tuning.Reloads:
			t, err := cfg.ParseTuning(data, cfg.CurrentTuning())
			if err != nil {
				log.Printf("Warning: Ignoring tuning reload: %v", err)
				continue
			}
			t.Apply()
			session.Reloads++
			log.Printf("Tuning reloaded (%d)", session.Reloads)
		case err := <-session.Tuning.Errors:
			log.Printf("Warning: Tuning watcher: %v", err)
		default:
			return
		}
	}
}
