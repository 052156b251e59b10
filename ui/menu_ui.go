package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/pixelhop/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the title menu
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlay        func(level string)
	OnToggleDebug func() bool
	OnCycleScale  func() int
	OnQuit        func()

	levels      []string
	debugButton *widget.Button
	scaleButton *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

// NewMenuUI builds the menu with one play button per level.
func NewMenuUI(levels []string, onPlay func(string), onToggleDebug func() bool, onCycleScale func() int, onQuit func()) *MenuUI {
	mui := &MenuUI{
		levels:        levels,
		OnPlay:        onPlay,
		OnToggleDebug: onToggleDebug,
		OnCycleScale:  onCycleScale,
		OnQuit:        onQuit,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.MenuFontSize * 1.5,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.MenuFontSize,
	}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(4)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	for _, name := range mui.levels {
		level := name // Capture for closure
		contentContainer.AddChild(mui.button("Play "+level, func() {
			mui.OnPlay(level)
		}))
	}

	mui.debugButton = mui.button(debugLabel(cfg.Debug.Overlay), func() {
		setLabel(mui.debugButton, debugLabel(mui.OnToggleDebug()))
	})
	contentContainer.AddChild(mui.debugButton)

	mui.scaleButton = mui.button(scaleLabel(cfg.Window.Scale), func() {
		setLabel(mui.scaleButton, scaleLabel(mui.OnCycleScale()))
	})
	contentContainer.AddChild(mui.scaleButton)

	contentContainer.AddChild(mui.button("Quit", mui.OnQuit))

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(72, 12),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Menu.TextColorSelected,
			Hover:   cfg.White,
			Pressed: cfg.Menu.TextColorNormal,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Menu.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Menu.ButtonIdle),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func setLabel(b *widget.Button, label string) {
	if textWidget := b.Text(); textWidget != nil {
		textWidget.Label = label
	}
}

func debugLabel(on bool) string {
	if on {
		return "Overlay: on"
	}
	return "Overlay: off"
}

func scaleLabel(scale int) string {
	return fmt.Sprintf("Scale: %dx", scale)
}

// Update processes ebitenui input.
func (mui *MenuUI) Update() {
	mui.UI.Update()
}
