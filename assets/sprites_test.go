package assets

import (
	"testing"

	"github.com/automoto/pixelhop/config"
)

func TestSheetRowsMatchClips(t *testing.T) {
	for id, def := range config.Clips {
		if got := SheetRowFrames(def.Row); got != def.Frames {
			t.Errorf("clip %s: row %d has %d frames, config says %d", id, def.Row, got, def.Frames)
		}
	}
}

func TestCharacterFramesMirror(t *testing.T) {
	right, err := CharacterFrames(0, false)
	if err != nil {
		t.Fatalf("CharacterFrames: %v", err)
	}
	left, err := CharacterFrames(0, true)
	if err != nil {
		t.Fatalf("CharacterFrames mirrored: %v", err)
	}

	for i := range right {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if right[i].RGBAAt(x, y) != left[i].RGBAAt(7-x, y) {
					t.Fatalf("frame %d pixel %d,%d not mirrored", i, x, y)
				}
			}
		}
	}
}

func TestCharacterFramesUnknownRow(t *testing.T) {
	if _, err := CharacterFrames(len(characterRows), false); err == nil {
		t.Fatalf("CharacterFrames accepted a missing row")
	}
}

func TestEmbeddedLevelsLoad(t *testing.T) {
	levels, names := MustLoadLevels(config.Level.Dir)
	if len(names) == 0 {
		t.Fatalf("no embedded levels")
	}
	g, ok := levels[config.Level.Default]
	if !ok {
		t.Fatalf("default level %q missing from %v", config.Level.Default, names)
	}
	if g.PixelHeight() != float64(config.C.Height) {
		t.Fatalf("level height %v, want screen height %d", g.PixelHeight(), config.C.Height)
	}
	if g.Spawn.X < 0 || g.Spawn.Y < 0 {
		t.Fatalf("spawn %+v outside level", g.Spawn)
	}
}
