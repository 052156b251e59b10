// Package easing provides the interpolation primitives used to drive the
// jump arc. Every function takes the elapsed time t, the start value b, the
// change in value c and the total duration d, and returns the value at t.
package easing

import "github.com/tanema/gween/ease"

// Func is an easing curve over (t, b, c, d).
type Func func(t, b, c, d float64) float64

var (
	Linear    = wrap(ease.Linear)
	EaseIn    = wrap(ease.InQuad)
	EaseOut   = wrap(ease.OutQuad)
	EaseInOut = wrap(ease.InOutQuad)
)

// wrap lifts a gween curve to float64 and pins both ends, so t <= 0 yields
// exactly b and t >= d yields exactly b+c regardless of float32 rounding.
func wrap(f ease.TweenFunc) Func {
	return func(t, b, c, d float64) float64 {
		if d <= 0 || t >= d {
			return b + c
		}
		if t <= 0 {
			return b
		}
		return float64(f(float32(t), float32(b), float32(c), float32(d)))
	}
}
