package rtin

import (
	"github.com/arl/assertgo"
	"github.com/arl/math32"
)

// ErrorMap is the bottom-up approximation-error accumulator: a dense,
// grid-indexed buffer of per-midpoint error values. It is independent of
// any error threshold, so a caller may build it once per heightmap and
// reuse it across Selector calls with different thresholds (see
// Driver/Builder in the terra package).
type ErrorMap struct {
	gridSize int32
	values   []float32
}

// slot returns the flat index of p in a G*G buffer.
func (em *ErrorMap) slot(p Point) int {
	return int(p.Y*em.gridSize + p.X)
}

// At returns the stored error for the triangle whose hypotenuse midpoint is
// p. Leaf triangles (last level) have no stored slot of their own and are
// always selectable; At is only meaningful for non-leaf midpoints.
func (em *ErrorMap) At(p Point) float32 {
	return em.values[em.slot(p)]
}

// BuildErrorMap computes the ErrorMap for hm, timing the pass on ctx if
// non-nil. ctx may be nil.
//
// Grounded on flywave/go-martini's Tile.Update, generalized from float64
// terrain samples to the uint16 Heightmap/HeightSampler of this package,
// and reframed in terms of BinID/Corners instead of martini's raw index
// arithmetic — same reverse (finest-to-coarsest) traversal, same folding of
// a triangle's local error with both children's already-finalized values.
func BuildErrorMap(hm Heightmap, ctx *Context) *ErrorMap {
	assert.True(hm.W >= 2, "rtin: BuildErrorMap called with heightmap side < 2")

	ctx.startTimer(TimerErrorMapBuild)
	defer ctx.stopTimer(TimerErrorMapBuild)

	g := hm.GridSize()
	em := &ErrorMap{gridSize: g, values: make([]float32, g*g)}

	levels := levelCount(hm.W)
	lastLevel := levels - 1
	n := totalNonLeafTriangles(hm.W)

	for i := int32(n) - 1; i >= 0; i-- {
		b := IndexToBinID(uint32(i))
		level := b.Level()

		c := Corners(b, hm.W)
		mid := c.Mid()

		localError := math32.Abs(hm.sample(mid) - (hm.sample(c.A)+hm.sample(c.B))/2)

		slot := em.slot(mid)
		best := localError
		if best < em.values[slot] {
			best = em.values[slot]
		}

		if int32(level) < lastLevel {
			right, left := b.Children()
			rightErr := em.At(Corners(right, hm.W).Mid())
			leftErr := em.At(Corners(left, hm.W).Mid())
			if rightErr > best {
				best = rightErr
			}
			if leftErr > best {
				best = leftErr
			}
		}
		em.values[slot] = best
	}

	ctx.Progressf("rtin: built error map for %dx%d heightmap (%d triangles)", hm.W, hm.W, n)
	return em
}

// levelCount returns L = 2*log2(w) for a heightmap of side w: levels 0..L-1
// hold the non-leaf triangles, whose midpoints have an ErrorMap slot, and
// level L holds the 2*w^2 leaf triangles, two per heightmap cell.
func levelCount(w int32) int32 {
	return 2 * int32(math32.Ilog2(uint32(w)))
}

// LevelCount is the exported counterpart of levelCount, for callers outside
// the package (CLI introspection) that want the tree depth without building
// an ErrorMap.
func LevelCount(w int32) int32 {
	return levelCount(w)
}

// totalNonLeafTriangles returns N = 2*w^2 - 2, the number of non-leaf
// triangles whose error gets a slot in the ErrorMap.
func totalNonLeafTriangles(w int32) int64 {
	return 2*int64(w)*int64(w) - 2
}
