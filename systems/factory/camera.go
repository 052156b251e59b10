package factory

import (
	"github.com/automoto/pixelhop/archetypes"
	"github.com/automoto/pixelhop/components"
	cfg "github.com/automoto/pixelhop/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera at panFrom. When an intro pan is
// configured it eases from there to the character over Camera.IntroPan
// seconds.
func CreateCamera(ecs *ecs.ECS, panFrom float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	panning := cfg.Camera.IntroPan > 0
	components.Camera.Set(camera, &components.CameraData{
		OffsetX: panFrom,
		PanFrom: panFrom,
		Panning: panning,
	})
	if panning {
		components.Tween.Set(camera, gween.New(0, 1, float32(cfg.Camera.IntroPan), ease.InOutQuad))
	}
	return camera
}
