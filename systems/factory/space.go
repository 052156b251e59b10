package factory

import (
	"github.com/automoto/pixelhop/components"
	cfg "github.com/automoto/pixelhop/config"
	"github.com/automoto/pixelhop/tiles"
	"github.com/yohamta/donburi"
)

// CreateSpace builds the level's resolv space from its collidable layer and
// stores it on the level.
func CreateSpace(level *donburi.Entry) *tiles.Map {
	levelData := components.Level.Get(level)
	levelData.Map = tiles.New(levelData.Grid, cfg.Collision.Layer)
	return levelData.Map
}
