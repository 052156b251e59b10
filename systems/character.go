package systems

import (
	"log"

	"github.com/automoto/pixelhop/components"
	cfg "github.com/automoto/pixelhop/config"
	"github.com/automoto/pixelhop/shared/collision"
	"github.com/automoto/pixelhop/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacter runs one simulation frame: kinematics, collision
// resolution against the level, then the collision feedback. A placement
// the resolver cannot settle ends the session.
func UpdateCharacter(ecs *ecs.ECS) {
	session := GetOrCreateSession(ecs)
	if session.Err != nil {
		return
	}

	characterEntry, ok := tags.Character.First(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Map == nil {
		return
	}

	character := components.Character.Get(characterEntry)
	input := getOrCreateInput(ecs)
	dt := 1.0 / float64(cfg.C.TPS)

	req := character.Advance(dt, characterInput(input), cfg.Player.Params(level.Grid.PixelWidth()))
	res, err := collision.Resolve(level.Map, req, cfg.Collision.Params(level.Grid.PixelHeight()))
	if err != nil {
		log.Printf("Error: frame %d: %v", session.Frames, err)
		session.Err = err
		return
	}
	character.Land(res)
	character.Resolved = res
	session.Frames++
}
