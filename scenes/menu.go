package scenes

import (
	"os"
	"sync"

	"github.com/automoto/pixelhop/assets"
	cfg "github.com/automoto/pixelhop/config"
	"github.com/automoto/pixelhop/systems"
	"github.com/automoto/pixelhop/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title menu using ebitenui
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
	next         string // Level chosen this frame
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()

	if ms.next != "" {
		cfg.Level.Default = ms.next
		systems.SaveCurrentSettings()
		ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.next))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	_, names := assets.MustLoadLevels(cfg.Level.Dir)

	ms.menuUI = ui.NewMenuUI(
		names,
		func(level string) { ms.next = level },
		func() bool {
			cfg.Debug.Overlay = !cfg.Debug.Overlay
			systems.SaveCurrentSettings()
			return cfg.Debug.Overlay
		},
		systems.CycleWindowScale,
		func() { os.Exit(0) },
	)
}
