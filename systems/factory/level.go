package factory

import (
	"fmt"

	"github.com/automoto/pixelhop/archetypes"
	"github.com/automoto/pixelhop/assets"
	"github.com/automoto/pixelhop/components"
	cfg "github.com/automoto/pixelhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the named embedded level, falling back to the first
// level when the name is unknown.
func CreateLevel(ecs *ecs.ECS, name string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	levels, names := assets.MustLoadLevels(cfg.Level.Dir)
	grid, ok := levels[name]
	if !ok {
		grid = levels[names[0]]
	}
	if grid.PixelWidth() < float64(cfg.Player.FrameWidth) {
		panic(fmt.Sprintf("level %s is narrower than the character", grid.Name))
	}

	components.Level.Set(level, &components.LevelData{
		Grid:       grid,
		Background: assets.RenderLevel(grid),
	})

	return level
}
