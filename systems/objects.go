package systems

import (
	"github.com/automoto/pixelhop/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each resolv body to its character's resolved position
// and re-registers it with the space's cells.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if e.HasComponent(components.Character) {
			c := components.Character.Get(e)
			obj.X = c.Position.X
			obj.Y = c.Position.Y
		}
		obj.Update()
	}
}
