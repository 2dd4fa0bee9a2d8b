package rtin

import "github.com/arl/assertgo"

// Point is an integer lattice coordinate: a vertex of the G×G grid
// (G = heightmap side + 1) that triangle corners and hypotenuse midpoints
// live on.
type Point struct {
	X, Y int32
}

func midOf(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Triangle holds the three grid-space corners of a triangle. C is always the
// right-angle vertex; A and B are the hypotenuse endpoints. A, B, C run
// counter-clockwise when the grid is drawn with y pointing down (clockwise
// with y pointing up).
type Triangle struct {
	A, B, C Point
}

// Mid returns the hypotenuse midpoint (A+B)/2. It is always a lattice point:
// every transform in the decode below keeps A and B on matching parity.
func (c Triangle) Mid() Point {
	return midOf(c.A, c.B)
}

// corners reconstructs the three grid-space corners of the triangle
// identified by b, against a heightmap of side w (the tile size the two
// root triangles span — NOT the G=w+1 vertex-lattice size used to index
// the ErrorMap; see the resolved Open Question in DESIGN.md: mixing the two
// here produces seed corners whose hypotenuse endpoints don't share parity,
// breaking the lattice-midpoint invariant, so corner reconstruction is
// pinned to w throughout this package).
//
// This fuses partitionSteps' decoding with the fold a reference
// implementation would otherwise do in two passes (decode then transform),
// by walking b's bits directly from the root selector upward — grounded on
// the bit-shifting reconstruction loop of the flywave/go-martini port of
// this same algorithm: check bit 0 for the root, then repeatedly shift right
// and check the new bit 0 for each subsequent Left/Right descent, which
// visits b's bits in exactly partitionSteps' chronological order without
// ever materializing the step slice.
func corners(b BinID, w int32) Triangle {
	assert.True(b >= 2, "rtin: corners called with bin_id < 2 (%d)", b)

	var c Triangle
	id := uint32(b)
	if id&1 != 0 {
		// TopRight seed.
		c = Triangle{A: Point{0, 0}, B: Point{w, w}, C: Point{w, 0}}
	} else {
		// BottomLeft seed.
		c = Triangle{A: Point{w, w}, B: Point{0, 0}, C: Point{0, w}}
	}
	id >>= 1

	for id > 1 {
		m := midOf(c.A, c.B)
		if id&1 != 0 {
			// Left child: (A, B, C) -> (C, A, mid).
			c = Triangle{A: c.C, B: c.A, C: m}
		} else {
			// Right child: (A, B, C) -> (B, C, mid).
			c = Triangle{A: c.B, B: c.C, C: m}
		}
		id >>= 1
	}
	return c
}

// midpoint returns the hypotenuse midpoint of the triangle identified by b.
// It reconstructs the whole triangle with corners and keeps only its
// midpoint.
func midpoint(b BinID, w int32) Point {
	return corners(b, w).Mid()
}

// Corners reconstructs the grid-space corners of the triangle identified by
// b in a heightmap of side w. It is the exported counterpart of corners,
// for callers outside the package (tests, debug tooling) that want the
// whole triangle rather than just its midpoint.
func Corners(b BinID, w int32) Triangle {
	return corners(b, w)
}

// Midpoint returns the hypotenuse midpoint of the triangle identified by b
// in a heightmap of side w.
func Midpoint(b BinID, w int32) Point {
	return midpoint(b, w)
}
