package systems

import (
	"github.com/automoto/pixelhop/archetypes"
	"github.com/automoto/pixelhop/components"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSession returns the singleton Session component, creating the
// session entity if needed.
func GetOrCreateSession(ecs *ecs.ECS) *components.SessionData {
	if _, ok := components.Session.First(ecs.World); !ok {
		archetypes.Session.Spawn(ecs)
	}
	ent, _ := components.Session.First(ecs.World)
	return components.Session.Get(ent)
}

// SessionErr returns the error that ended the run, if any.
func SessionErr(ecs *ecs.ECS) error {
	return GetOrCreateSession(ecs).Err
}
