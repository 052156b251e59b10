package components

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's body in the level's resolv space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Tween drives a 0..1 progress value, e.g. the camera's intro pan.
var Tween = donburi.NewComponentType[gween.Tween]()
