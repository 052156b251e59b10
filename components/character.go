package components

import (
	"github.com/automoto/pixelhop/shared/anim"
	"github.com/automoto/pixelhop/shared/collision"
	"github.com/automoto/pixelhop/shared/kinematics"
	"github.com/yohamta/donburi"
)

// CharacterData wraps the simulated character with what the frame loop
// derived from it this tick.
type CharacterData struct {
	*kinematics.Character
	Clip     anim.ClipID
	Resolved collision.Result
}

var Character = donburi.NewComponentType[CharacterData]()
