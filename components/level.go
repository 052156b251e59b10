package components

import (
	"github.com/automoto/pixelhop/shared/leveldata"
	"github.com/automoto/pixelhop/tiles"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Grid       *leveldata.Grid
	Map        *tiles.Map
	Background *ebiten.Image // Both layers pre-rendered at world size
}

var Level = donburi.NewComponentType[LevelData]()
