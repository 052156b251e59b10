// Package tiles answers collision queries against a level's tile layers
// using a resolv space whose cells are exactly one tile.
package tiles

import (
	"github.com/automoto/pixelhop/shared/collision"
	"github.com/automoto/pixelhop/shared/leveldata"
	"github.com/solarlune/resolv"
)

// Map is the collidable view of a level.
type Map struct {
	Space *resolv.Space
	Grid  *leveldata.Grid
}

// New adds one resolv object per non-empty tile of each collidable layer,
// tagged with the layer name.
func New(g *leveldata.Grid, collidable ...string) *Map {
	space := resolv.NewSpace(int(g.PixelWidth()), int(g.PixelHeight()), g.TileWidth, g.TileHeight)
	tw, th := float64(g.TileWidth), float64(g.TileHeight)

	for _, layer := range collidable {
		for row := 0; row < g.Rows; row++ {
			for col := 0; col < g.Cols; col++ {
				if g.TileAt(layer, col, row) == 0 {
					continue
				}
				obj := resolv.NewObject(float64(col)*tw, float64(row)*th, tw, th, layer)
				obj.SetShape(resolv.NewRectangle(0, 0, tw, th))
				space.Add(obj)
			}
		}
	}

	return &Map{Space: space, Grid: g}
}

// Collides reports whether box touches or overlaps a tile of layer. Touching
// edges count; cells outside the level never collide.
func (m *Map) Collides(layer string, b collision.Box) bool {
	c0, r0 := m.Space.WorldToSpace(b.X, b.Y)
	c1, r1 := m.Space.WorldToSpace(b.X+b.W, b.Y+b.H)

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cell := m.Space.Cell(col, row)
			if cell == nil || !cell.ContainsTags(layer) {
				continue
			}
			if m.tileIn(cell, layer, col, row) {
				return true
			}
		}
	}
	return false
}

// tileIn reports whether the cell holds the tile whose home is (col, row),
// as opposed to a neighbour that only grazes the cell boundary.
func (m *Map) tileIn(cell *resolv.Cell, layer string, col, row int) bool {
	for _, o := range cell.Objects {
		if !o.HasTags(layer) {
			continue
		}
		oc, or := m.Space.WorldToSpace(o.X, o.Y)
		if oc == col && or == row {
			return true
		}
	}
	return false
}
