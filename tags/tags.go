package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Level     = donburi.NewTag().SetName("Level")
)

// Resolv tags for tile and character objects. Tile objects are tagged with
// their layer name.
const (
	ResolvGround    = "ground"
	ResolvCharacter = "character"
)
