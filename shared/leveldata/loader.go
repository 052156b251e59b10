package leveldata

import (
	"fmt"
	"image/color"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file into a Grid. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Grid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	g := NewGrid(levelMap.Width, levelMap.Height, levelMap.TileWidth, levelMap.TileHeight)
	g.Name = strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")

	for _, layer := range levelMap.Layers {
		if layer.Name != LayerBackground && layer.Name != LayerGround {
			continue
		}
		for i, tile := range layer.Tiles {
			if tile == nil || tile.IsNil() {
				continue
			}
			gid := tile.Tileset.FirstGID + tile.ID
			g.Set(layer.Name, i%g.Cols, i/g.Cols, gid)

			if _, ok := g.Colors[gid]; ok {
				continue
			}
			c, err := tileColor(tile)
			if err != nil {
				return nil, fmt.Errorf("%s: tile %d: %w", tmxPath, gid, err)
			}
			g.Colors[gid] = c
		}
	}
	if _, ok := g.Layers[LayerGround]; !ok {
		return nil, fmt.Errorf("%s: no %q layer", tmxPath, LayerGround)
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "PlayerSpawn" || len(og.Objects) == 0 {
			continue
		}
		// Tiled stores the spawn marker's top-left corner.
		g.Spawn = SpawnPoint{X: og.Objects[0].X, Y: og.Objects[0].Y}
		break
	}

	return g, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Grid, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Grid, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		g, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[g.Name] = g
		names = append(names, g.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// tileColor reads the tileset tile's "color" property ("#rrggbb" or
// "#aarrggbb"). Tiles without one render opaque black.
func tileColor(tile *tiled.LayerTile) (color.RGBA, error) {
	black := color.RGBA{A: 0xff}
	tt, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return black, nil
	}
	s := tt.Properties.GetString("color")
	if s == "" {
		return black, nil
	}
	return ParseColor(s)
}

// ParseColor parses a Tiled color string: "#rrggbb" or "#aarrggbb".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	a := uint8(0xff)
	if len(hex) == 8 {
		a = uint8(v >> 24)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: a}, nil
}
