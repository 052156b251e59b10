// Package leveldata loads Tiled levels into plain tile grids. It has no
// dependencies on ebitengine, donburi, or resolv.
package leveldata

import "image/color"

// Layer names used by levels. Only Ground participates in collision.
const (
	LayerBackground = "background"
	LayerGround     = "ground"
)

// Grid is a level's tile layers. Tile ids are global Tiled ids; 0 is empty.
type Grid struct {
	Name       string
	Cols, Rows int
	TileWidth  int
	TileHeight int
	Layers     map[string][]uint32
	Colors     map[uint32]color.RGBA
	Spawn      SpawnPoint
}

// SpawnPoint is where the character's top-left corner starts.
type SpawnPoint struct {
	X, Y float64
}

// NewGrid returns an empty grid.
func NewGrid(cols, rows, tileWidth, tileHeight int) *Grid {
	return &Grid{
		Cols:       cols,
		Rows:       rows,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Layers:     make(map[string][]uint32),
		Colors:     make(map[uint32]color.RGBA),
	}
}

// Set stores a tile id, creating the layer if needed. Out-of-range cells
// are ignored.
func (g *Grid) Set(layer string, col, row int, id uint32) {
	if !g.inside(col, row) {
		return
	}
	tiles, ok := g.Layers[layer]
	if !ok {
		tiles = make([]uint32, g.Cols*g.Rows)
		g.Layers[layer] = tiles
	}
	tiles[row*g.Cols+col] = id
}

// TileAt returns the tile id at a cell, or 0 outside the grid or for an
// unknown layer.
func (g *Grid) TileAt(layer string, col, row int) uint32 {
	tiles, ok := g.Layers[layer]
	if !ok || !g.inside(col, row) {
		return 0
	}
	return tiles[row*g.Cols+col]
}

// PixelWidth is the level width in world pixels.
func (g *Grid) PixelWidth() float64 {
	return float64(g.Cols * g.TileWidth)
}

// PixelHeight is the level height in world pixels.
func (g *Grid) PixelHeight() float64 {
	return float64(g.Rows * g.TileHeight)
}

func (g *Grid) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.Cols && row < g.Rows
}

// FromRows builds a single-layer grid from text rows where '#' is tile 1
// and anything else is empty. Rows shorter than the widest are padded.
func FromRows(tileSize int, layer string, rows ...string) *Grid {
	cols := 0
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	g := NewGrid(cols, len(rows), tileSize, tileSize)
	for row, r := range rows {
		for col, ch := range r {
			if ch == '#' {
				g.Set(layer, col, row, 1)
			}
		}
	}
	return g
}
