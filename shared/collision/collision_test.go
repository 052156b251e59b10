package collision

import (
	"errors"
	"math"
	"testing"
)

// gridStub is an inclusive tile grid: a box touching a tile edge collides.
type gridStub struct {
	tile  float64
	cells map[[2]int]bool
}

func newGridStub(tile float64, rows ...string) *gridStub {
	g := &gridStub{tile: tile, cells: map[[2]int]bool{}}
	for r, row := range rows {
		for c, ch := range row {
			if ch == '#' {
				g.cells[[2]int{c, r}] = true
			}
		}
	}
	return g
}

func (g *gridStub) Collides(layer string, b Box) bool {
	if layer != "ground" {
		return false
	}
	c0, r0 := int(math.Floor(b.X/g.tile)), int(math.Floor(b.Y/g.tile))
	c1, r1 := int(math.Floor((b.X+b.W)/g.tile)), int(math.Floor((b.Y+b.H)/g.tile))
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if g.cells[[2]int{c, r}] {
				return true
			}
		}
	}
	return false
}

var params = Params{Layer: "ground", InsetBack: 1, InsetFront: 2, WorldHeight: 48}

func TestResolveSingleTileOverlap(t *testing.T) {
	g := newGridStub(8,
		"......",
		"......",
		"......",
		"..#...",
	)

	// Tile top is at y=24; an 8px box at y=17 overlaps by one pixel.
	req := Request{X: 16, Y: 17, PrevX: 16, W: 8, H: 8}
	res, err := Resolve(g, req, params)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Y != 16 {
		t.Fatalf("Y = %v, want 16", res.Y)
	}
	if !res.GroundContact {
		t.Fatalf("expected ground contact")
	}
	if res.X != 16 || res.HitWall {
		t.Fatalf("unexpected horizontal correction: %+v", res)
	}
}

func TestResolveIdempotent(t *testing.T) {
	g := newGridStub(8,
		"......",
		"......",
		"......",
		"######",
	)

	cases := []struct {
		name string
		y    float64
	}{
		{"flush", 16},
		{"one pixel", 17},
		{"deep", 22.5},
		{"fractional", 16.25},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := Request{X: 20, Y: c.y, PrevX: 20, W: 8, H: 8}
			first, err := Resolve(g, req, params)
			if err != nil {
				t.Fatalf("first Resolve: %v", err)
			}
			req.Y = first.Y
			second, err := Resolve(g, req, params)
			if err != nil {
				t.Fatalf("second Resolve: %v", err)
			}
			if first.Y != second.Y || first.Y != 16 {
				t.Fatalf("not idempotent: first %v second %v", first.Y, second.Y)
			}
			if !second.GroundContact {
				t.Fatalf("expected ground contact on the second pass")
			}
		})
	}
}

func TestResolveNoOverlap(t *testing.T) {
	g := newGridStub(8,
		"......",
		"......",
		"......",
		"######",
	)

	res, err := Resolve(g, Request{X: 8, Y: 10, PrevX: 8, W: 8, H: 8}, params)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.GroundContact || res.Y != 10 {
		t.Fatalf("airborne box should be untouched, got %+v", res)
	}
}

func TestResolveWorldFloor(t *testing.T) {
	g := newGridStub(8, "......")

	res, err := Resolve(g, Request{X: 8, Y: 45, PrevX: 8, W: 8, H: 8}, params)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Y != 40 || !res.GroundContact {
		t.Fatalf("expected clamp to floor 40 with contact, got %+v", res)
	}
}

func TestResolveOutsideGrid(t *testing.T) {
	g := newGridStub(8, "######")

	res, err := Resolve(g, Request{X: -40, Y: -40, PrevX: -40, W: 8, H: 8}, params)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.GroundContact {
		t.Fatalf("queries outside the grid must not collide")
	}
}

func TestResolveWallStop(t *testing.T) {
	g := newGridStub(8,
		"....#.",
		"....#.",
		"....#.",
		"######",
	)

	// Moving right from x=22 to x=26 pushes the leading edge into the wall column.
	req := Request{X: 26, Y: 16, PrevX: 22, W: 8, H: 8}
	res, err := Resolve(g, req, params)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !res.HitWall || res.X != 22 {
		t.Fatalf("expected wall stop at x=22, got %+v", res)
	}
	if res.Y != 16 || !res.GroundContact {
		t.Fatalf("expected to stay on the ground, got %+v", res)
	}
}

func TestResolveTurnAwayFromWall(t *testing.T) {
	g := newGridStub(8,
		"....#.",
		"....#.",
		"....#.",
		"######",
	)

	// Facing right, the probe ends half a pixel short of the wall. Turning
	// left shrinks the inset on the wall side, so the probe now overlaps it
	// at both the new and the previous X.
	req := Request{X: 25.35, Y: 16, PrevX: 25.5, W: 8, H: 8, FacingLeft: true}
	res, err := Resolve(g, req, params)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !res.HitWall || math.Abs(res.X-24.35) > 1e-9 {
		t.Fatalf("expected a shift away from the wall to x=24.35, got %+v", res)
	}
	if res.Y != 16 || !res.GroundContact {
		t.Fatalf("expected to stay on the ground, got %+v", res)
	}
}

func TestResolveUnresolvedIsFatal(t *testing.T) {
	g := newGridStub(8,
		"######",
		"######",
		"######",
		"######",
	)

	_, err := Resolve(g, Request{X: 16, Y: 16, PrevX: 16, W: 8, H: 8}, params)
	if err == nil {
		t.Fatalf("expected an error for a box buried in solid tiles")
	}
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("error should wrap ErrUnresolved, got %v", err)
	}
	var ue *UnresolvedError
	if !errors.As(err, &ue) || ue.Steps != MaxSteps(8) {
		t.Fatalf("expected UnresolvedError with %d steps, got %v", MaxSteps(8), err)
	}
}

func TestProbeInsetFollowsFacing(t *testing.T) {
	right := Probe(10, 0, Request{W: 8, H: 8}, params)
	left := Probe(10, 0, Request{W: 8, H: 8, FacingLeft: true}, params)

	if right.X != 11 || right.W != 5 {
		t.Fatalf("right-facing probe = %+v", right)
	}
	if left.X != 12 || left.W != 5 {
		t.Fatalf("left-facing probe = %+v", left)
	}
}
