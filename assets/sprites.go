package assets

import (
	"fmt"
	"image"
	"image/color"
)

// Character frames are 8x8 pixel rows, one string per row. Rows of the
// sheet follow config.Clips: idle, walk, bend, jump, fly, flight startup.
var characterRows = [][][8]string{
	// idle
	{
		{"........", "..dddd..", ".dbbbbd.", ".dbbbed.", ".dbbbbd.", ".dbbbbd.", "..dddd..", "..f..f.."},
		{"........", "........", "..dddd..", ".dbbbed.", ".dbbbbd.", ".dbbbbd.", "..dddd..", "..f..f.."},
	},
	// walk
	{
		{"........", "..dddd..", ".dbbbbd.", ".dbbbed.", ".dbbbbd.", ".dbbbbd.", "..dddd..", ".f...f.."},
		{"........", "..dddd..", ".dbbbbd.", ".dbbbed.", ".dbbbbd.", ".dbbbbd.", "..dddd..", "...ff..."},
		{"........", "..dddd..", ".dbbbbd.", ".dbbbed.", ".dbbbbd.", ".dbbbbd.", "..dddd..", "..f...f."},
	},
	// bend
	{
		{"........", "........", "........", ".dddddd.", "dbbbbbed", "dbbbbbbd", ".dddddd.", ".f....f."},
	},
	// jump
	{
		{"..dddd..", ".dbbbbd.", ".dbbbed.", ".dbbbbd.", ".dbbbbd.", ".dbbbbd.", "..dddd..", "..f..f.."},
		{"........", "..dddd..", ".dbbbbd.", "wdbbbedw", ".dbbbbd.", "..dddd..", "..f..f..", "........"},
	},
	// fly
	{
		{"w......w", "ww.dd.ww", ".wdbbdw.", ".dbbbed.", ".dbbbbd.", "..dddd..", "..f..f..", "........"},
		{"........", "w..dd..w", "wwdbbdww", ".dbbbed.", ".dbbbbd.", "..dddd..", "..f..f..", "........"},
		{"........", "...dd...", ".ddbbdd.", "wdbbbedw", "wdbbbbdw", "..dddd..", "..f..f..", "........"},
		{"........", "...dd...", "..dbbd..", ".dbbbed.", "wdbbbbdw", "wwddddww", "..f..f..", "........"},
	},
	// flight startup
	{
		{"........", "........", "..dddd..", ".dbbbed.", ".dbbbbd.", ".dbbbbd.", "..dddd..", "..f..f.."},
		{"........", "........", "..dddd..", "wdbbbedw", ".dbbbbd.", ".dbbbbd.", "..dddd..", "..f..f.."},
		{"........", "........", "w.dddd.w", "wdbbbedw", ".dbbbbd.", ".dbbbbd.", "..dddd..", "..f..f.."},
		{"........", "w......w", "w.dddd.w", "wdbbbedw", ".dbbbbd.", ".dbbbbd.", "..dddd..", "..f..f.."},
		{"w......w", "ww....ww", ".wdddd.w", ".dbbbed.", ".dbbbbd.", ".dbbbbd.", "..dddd..", "..f..f.."},
		{"w......w", "ww.dd.ww", ".wdbbdw.", ".dbbbed.", ".dbbbbd.", "..dddd..", "..f..f..", "........"},
	},
}

// characterPalette maps pixel row characters to colours; '.' is transparent.
var characterPalette = map[byte]color.RGBA{
	'd': {R: 0x3a, G: 0x1f, B: 0x12, A: 0xff},
	'b': {R: 0xf0, G: 0x8a, B: 0x2c, A: 0xff},
	'e': {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	'f': {R: 0x9c, G: 0x3a, B: 0x1e, A: 0xff},
	'w': {R: 0x9c, G: 0xd8, B: 0xff, A: 0xff},
}

// SheetRowFrames returns the number of frames in a character sheet row.
func SheetRowFrames(row int) int {
	if row < 0 || row >= len(characterRows) {
		return 0
	}
	return len(characterRows[row])
}

// CharacterFrames rasterises one sheet row. Left-facing frames are the
// right-facing ones mirrored horizontally.
func CharacterFrames(row int, mirrored bool) ([]*image.RGBA, error) {
	if row < 0 || row >= len(characterRows) {
		return nil, fmt.Errorf("assets: no character sheet row %d", row)
	}

	frames := make([]*image.RGBA, 0, len(characterRows[row]))
	for i, rows := range characterRows[row] {
		img, err := drawPixels(rows, mirrored)
		if err != nil {
			return nil, fmt.Errorf("assets: row %d frame %d: %w", row, i, err)
		}
		frames = append(frames, img)
	}
	return frames, nil
}

func drawPixels(rows [8]string, mirrored bool) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y, r := range rows {
		if len(r) != 8 {
			return nil, fmt.Errorf("pixel row %d is %d wide", y, len(r))
		}
		for x := 0; x < 8; x++ {
			ch := r[x]
			if ch == '.' {
				continue
			}
			c, ok := characterPalette[ch]
			if !ok {
				return nil, fmt.Errorf("unknown pixel %q at %d,%d", ch, x, y)
			}
			dx := x
			if mirrored {
				dx = 7 - x
			}
			img.SetRGBA(dx, y, c)
		}
	}
	return img, nil
}
