package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/pixelhop/config"
	"github.com/automoto/pixelhop/fonts"
	"github.com/automoto/pixelhop/scenes"
	"github.com/automoto/pixelhop/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// failer is implemented by scenes whose run can end with an error.
type failer interface {
	Err() error
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(config.UI.DebugFontSize, config.UI.MenuFontSize, config.UI.MenuFontSize*1.5); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, config.Level.Default)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if f, ok := g.scene.(failer); ok {
		return f.Err()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	// Initialize persistence and load saved settings; flags below override them.
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", config.Debug.SkipMenu, "Start the level directly")
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "Draw collision boxes and state readout")
	flag.StringVar(&config.Level.Default, "level", config.Level.Default, "Level to start with -skipmenu")
	flag.StringVar(&config.Debug.Tuning, "tuning", "", "YAML tuning file to load and watch")
	flag.IntVar(&config.Window.Scale, "scale", config.Window.Scale, "Window scale")
	flag.Parse()

	if config.Debug.Tuning != "" {
		t, err := config.LoadTuning(config.Debug.Tuning)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()
	}

	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowTitle(config.Window.Title)
	systems.ApplyWindowScale()

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
