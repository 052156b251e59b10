package assets

import (
	"embed"
	"fmt"
	"image"

	"github.com/automoto/pixelhop/shared/anim"
	"github.com/automoto/pixelhop/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// MustLoadLevels loads every embedded level. A broken level file is a
// build defect, so failures panic.
func MustLoadLevels(dir string) (map[string]*leveldata.Grid, []string) {
	levels, names, err := leveldata.LoadAll(assetFS, dir)
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	return levels, names
}

// RenderLevel paints the background layer and then the ground layer into a
// single world-sized image.
func RenderLevel(g *leveldata.Grid) *ebiten.Image {
	img := ebiten.NewImage(int(g.PixelWidth()), int(g.PixelHeight()))
	for _, layer := range []string{leveldata.LayerBackground, leveldata.LayerGround} {
		for row := 0; row < g.Rows; row++ {
			for col := 0; col < g.Cols; col++ {
				id := g.TileAt(layer, col, row)
				if id == 0 {
					continue
				}
				x, y := col*g.TileWidth, row*g.TileHeight
				rect := image.Rect(x, y, x+g.TileWidth, y+g.TileHeight)
				img.SubImage(rect).(*ebiten.Image).Fill(g.Colors[id])
			}
		}
	}
	return img
}

// MustCharacterFrames builds the ebiten frames for every clip. Clips that
// share a sheet row share frames.
func MustCharacterFrames(defs map[anim.ClipID]anim.Def) map[anim.ClipID][]*ebiten.Image {
	type key struct {
		row      int
		mirrored bool
	}
	cache := make(map[key][]*ebiten.Image)
	frames := make(map[anim.ClipID][]*ebiten.Image, len(defs))

	for id, def := range defs {
		k := key{row: def.Row, mirrored: id.FacingLeft()}
		if imgs, ok := cache[k]; ok {
			frames[id] = imgs
			continue
		}

		raw, err := CharacterFrames(def.Row, k.mirrored)
		if err != nil {
			panic(err)
		}
		if len(raw) != def.Frames {
			panic(fmt.Sprintf("clip %s: sheet row %d has %d frames, want %d", id, def.Row, len(raw), def.Frames))
		}
		imgs := make([]*ebiten.Image, len(raw))
		for i, r := range raw {
			imgs[i] = ebiten.NewImageFromImage(r)
		}
		cache[k] = imgs
		frames[id] = imgs
	}
	return frames
}
