// Package camera computes the horizontal scroll that keeps the character
// centred in the viewport.
package camera

import (
	"math"

	"github.com/automoto/pixelhop/shared/kinematics"
)

// Scroll returns the x offset that centres the character in a viewport of
// the given width. The result is rounded toward the facing direction so the
// view does not jitter by a pixel when the character turns.
func Scroll(c *kinematics.Character, viewportWidth float64) float64 {
	offset := c.Position.X + c.Width/2 - viewportWidth/2
	if c.Facing == kinematics.FacingLeft {
		return math.Floor(offset)
	}
	return math.Ceil(offset)
}

// Clamp keeps offset within the level so the view never shows past either
// edge. Levels narrower than the viewport pin the offset to zero.
func Clamp(offset, levelWidth, viewportWidth float64) float64 {
	maxOffset := levelWidth - viewportWidth
	if maxOffset <= 0 || offset < 0 {
		return 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	return offset
}
