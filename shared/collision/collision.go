// Package collision pushes the character out of collidable tiles. It only
// reads the tile grid and reports corrections through its return value.
package collision

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnresolved reports that an overlap could not be cleared within the
// step bound. It means the level is malformed or the character moved too far
// in a single frame.
var ErrUnresolved = errors.New("collision: overlap not resolved")

// Box is an axis-aligned rectangle in world pixels.
type Box struct {
	X, Y, W, H float64
}

// Grid answers collision queries against a named tile layer. Queries that
// fall outside the grid report no collision.
type Grid interface {
	Collides(layer string, box Box) bool
}

// Params configures the probe box and world limits.
type Params struct {
	Layer       string
	InsetBack   float64 // horizontal inset on the side the character faces away from
	InsetFront  float64 // horizontal inset on the side the character faces
	WorldHeight float64
}

// Request is the tentative placement produced by the kinematics step.
type Request struct {
	X, Y       float64
	PrevX      float64
	W, H       float64
	FacingLeft bool
}

// Result is the corrected placement.
type Result struct {
	X, Y          float64
	GroundContact bool
	HitWall       bool
}

// UnresolvedError carries the placement that failed to resolve.
type UnresolvedError struct {
	Box   Box
	Steps int
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("collision: box %.2f,%.2f %.0fx%.0f still overlaps after %d steps",
		e.Box.X, e.Box.Y, e.Box.W, e.Box.H, e.Steps)
}

func (e *UnresolvedError) Unwrap() error {
	return ErrUnresolved
}

// MaxSteps is the number of one-unit upward steps allowed for a box of the
// given height.
func MaxSteps(height float64) int {
	return int(math.Ceil(height)) + 1
}

// Resolve corrects the tentative placement against the grid's collidable
// layer. If the box overlaps, Y is stepped up one unit at a time until clear
// and then settled one unit back down onto the surface. A placement at or
// below the world floor is clamped to the floor. Either case reports ground
// contact.
func Resolve(g Grid, req Request, p Params) (Result, error) {
	res := Result{X: req.X, Y: req.Y}

	y, contact, err := settle(g, req.X, req.Y, req, p)
	if err != nil {
		// Walked into something taller than a step; stay clear horizontally.
		for _, x := range fallbackX(req, p) {
			var ferr error
			y, contact, ferr = settle(g, x, req.Y, req, p)
			if ferr == nil {
				res.X = x
				res.HitWall = true
				err = nil
				break
			}
		}
		if err != nil {
			return res, err
		}
	}
	res.Y = y
	res.GroundContact = contact

	if floor := p.WorldHeight - req.H; p.WorldHeight > 0 && res.Y >= floor {
		res.Y = floor
		res.GroundContact = true
	}

	return res, nil
}

// fallbackX lists the horizontal positions tried when the tentative one
// cannot be cleared: the previous X, then the tentative X shifted toward the
// facing side by the inset difference, which undoes the probe growing
// toward a wall behind a character that just turned around.
func fallbackX(req Request, p Params) []float64 {
	var xs []float64
	if req.X != req.PrevX {
		xs = append(xs, req.PrevX)
	}
	if d := math.Abs(p.InsetFront - p.InsetBack); d > 0 {
		if req.FacingLeft {
			d = -d
		}
		xs = append(xs, req.X+d)
	}
	return xs
}

func settle(g Grid, x, y float64, req Request, p Params) (float64, bool, error) {
	if !g.Collides(p.Layer, Probe(x, y, req, p)) {
		return y, false, nil
	}

	limit := MaxSteps(req.H)
	steps := 0
	for g.Collides(p.Layer, Probe(x, y, req, p)) {
		if steps == limit {
			return y, false, &UnresolvedError{Box: Probe(x, req.Y, req, p), Steps: steps}
		}
		y--
		steps++
	}

	return math.Floor(y + 1), true, nil
}

// Probe returns the box tested against the grid: the character's bounds
// inset horizontally, more on the leading edge than the trailing one.
func Probe(x, y float64, req Request, p Params) Box {
	left, right := p.InsetBack, p.InsetFront
	if req.FacingLeft {
		left, right = p.InsetFront, p.InsetBack
	}
	return Box{
		X: x + left,
		Y: y,
		W: req.W - left - right,
		H: req.H,
	}
}
