package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/pixelhop/components"
	cfg "github.com/automoto/pixelhop/config"
	"github.com/automoto/pixelhop/fonts"
	"github.com/automoto/pixelhop/shared/anim"
	"github.com/automoto/pixelhop/shared/collision"
	"github.com/automoto/pixelhop/shared/kinematics"
	"github.com/automoto/pixelhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the overlay and remembers the choice.
func UpdateDebug(ecs *ecs.ECS) {
	if getOrCreateInput(ecs).Action(cfg.ActionDebug).JustPressed {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
		SaveCurrentSettings()
	}
}

// DrawDebug outlines every body in the level's space plus the collision
// probe, and prints the character's state in the corner.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Map == nil {
		return
	}

	offset := math.Round(cameraOffset(ecs))
	viewW := float64(screen.Bounds().Dx())

	for _, obj := range level.Map.Space.Objects() {
		// Cull objects outside viewport
		if obj.X+obj.W < offset || obj.X > offset+viewW {
			continue
		}

		c := cfg.Magenta
		for tag, tagColor := range cfg.UI.DebugBoxColors {
			if obj.HasTags(tag) {
				c = tagColor
				break
			}
		}
		outline(screen, obj.X-offset, obj.Y, obj.W, obj.H, c)
	}

	characterEntry, ok := tags.Character.First(ecs.World)
	if !ok {
		return
	}
	character := components.Character.Get(characterEntry)
	req := collision.Request{
		X:          character.Position.X,
		Y:          character.Position.Y,
		W:          character.Width,
		H:          character.Height,
		FacingLeft: character.Facing == kinematics.FacingLeft,
	}
	probe := collision.Probe(req.X, req.Y, req, cfg.Collision.Params(level.Grid.PixelHeight()))
	outline(screen, probe.X-offset, probe.Y, probe.W, probe.H, cfg.Yellow)

	face := fonts.Small.Get()
	lineHeight := face.Metrics().Height.Ceil()
	lines := []string{
		fmt.Sprintf("%s %s", anim.Pose(character.Character), character.Clip),
		fmt.Sprintf("x%.1f y%.1f v%.1f", character.Position.X, character.Position.Y, character.VelocityX),
		fmt.Sprintf("jump %s fly %s", character.Jump, character.Flight),
		fmt.Sprintf("t%.2f ev%d f%d", character.Clock, character.Pending(), GetOrCreateSession(ecs).Frames),
	}
	for i, line := range lines {
		text.Draw(screen, line, face, 2, lineHeight*(i+1), cfg.UI.DebugTextColor)
	}
}

func outline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
