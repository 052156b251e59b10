package leveldata

import (
	"image/color"
	"testing"
	"testing/fstest"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="8" tileheight="8" infinite="0" nextlayerid="4" nextobjectid="2">
 <tileset firstgid="1" name="palette" tilewidth="8" tileheight="8" tilecount="2" columns="0">
  <tile id="0">
   <properties>
    <property name="color" value="#3c8c3c"/>
   </properties>
  </tile>
  <tile id="1">
   <properties>
    <property name="color" value="#80203040"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="background" width="4" height="3">
  <data encoding="csv">
2,0,0,0,
0,0,0,0,
0,0,0,0
</data>
 </layer>
 <layer id="2" name="ground" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,1,
1,1,1,1
</data>
 </layer>
 <objectgroup id="3" name="PlayerSpawn">
  <object id="1" x="8" y="8" width="8" height="8"/>
 </objectgroup>
</map>
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/test.tmx": {Data: []byte(testTMX)},
	}

	g, err := Load(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if g.Name != "test" || g.Cols != 4 || g.Rows != 3 || g.TileWidth != 8 {
		t.Fatalf("grid = %s %dx%d tile %d", g.Name, g.Cols, g.Rows, g.TileWidth)
	}
	if g.PixelWidth() != 32 || g.PixelHeight() != 24 {
		t.Fatalf("pixel size = %vx%v, want 32x24", g.PixelWidth(), g.PixelHeight())
	}

	ground := []struct {
		col, row int
		want     uint32
	}{
		{0, 0, 0}, {3, 1, 1}, {0, 2, 1}, {2, 1, 0}, {-1, 2, 0}, {4, 2, 0},
	}
	for _, c := range ground {
		if got := g.TileAt(LayerGround, c.col, c.row); got != c.want {
			t.Errorf("TileAt(ground, %d, %d) = %d, want %d", c.col, c.row, got, c.want)
		}
	}
	if got := g.TileAt(LayerBackground, 0, 0); got != 2 {
		t.Errorf("TileAt(background, 0, 0) = %d, want 2", got)
	}

	if got, want := g.Colors[1], (color.RGBA{R: 0x3c, G: 0x8c, B: 0x3c, A: 0xff}); got != want {
		t.Errorf("Colors[1] = %v, want %v", got, want)
	}
	if got, want := g.Colors[2], (color.RGBA{R: 0x20, G: 0x30, B: 0x40, A: 0x80}); got != want {
		t.Errorf("Colors[2] = %v, want %v", got, want)
	}
	if g.Spawn != (SpawnPoint{X: 8, Y: 8}) {
		t.Errorf("Spawn = %+v, want {8 8}", g.Spawn)
	}
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(testTMX)},
		"levels/a.tmx": {Data: []byte(testTMX)},
	}

	levels, names, err := LoadAll(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("names = %v, want [a b]", names)
	}
	if levels["b"] == nil {
		t.Fatalf("level b missing")
	}

	if _, _, err := LoadAll(fstest.MapFS{}, "levels"); err == nil {
		t.Fatalf("LoadAll on empty dir succeeded")
	}
}

func TestFromRows(t *testing.T) {
	g := FromRows(8, LayerGround,
		"....",
		"#..",
	)
	if g.Cols != 4 || g.Rows != 2 {
		t.Fatalf("size = %dx%d, want 4x2", g.Cols, g.Rows)
	}
	if g.TileAt(LayerGround, 0, 1) != 1 || g.TileAt(LayerGround, 3, 1) != 0 {
		t.Fatalf("unexpected tiles %v", g.Layers[LayerGround])
	}
}

func TestParseColor(t *testing.T) {
	if _, err := ParseColor("#12345"); err == nil {
		t.Fatalf("ParseColor accepted a 5-digit color")
	}
	if _, err := ParseColor("#zzzzzz"); err == nil {
		t.Fatalf("ParseColor accepted non-hex digits")
	}
}
