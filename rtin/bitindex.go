package rtin

import "github.com/arl/assertgo"

// BinID identifies a triangle in the implicit RTIN tree by its binary path
// from one of the two root triangles. The top set bit is a sentinel marking
// the level; it carries no descent information itself. Bit 0 selects the
// root triangle (0 = bottom-left, 1 = top-right) and stays unchanged through
// every descent, since Children only ever sets bits at position level+1 and
// above. The bits in between, read ascending from position 1 to the bit
// just below the sentinel, are the Left/Right descents (1 = Left, 0 =
// Right), shallowest descent first.
type BinID uint32

// Level 0 contains the two root triangles.
const (
	rootBottomLeft BinID = 0b10
	rootTopRight   BinID = 0b11
)

// msbPosition returns the 1-based position of the topmost set bit of x, or
// 0 if x is 0.
func msbPosition(x uint32) uint32 {
	var pos uint32
	for x != 0 {
		pos++
		x >>= 1
	}
	return pos
}

// Level returns the depth of bin_id in the triangle tree. Level 0 holds the
// two root triangles.
func (b BinID) Level() uint32 {
	assert.True(b >= 2, "rtin: Level called with bin_id < 2 (%d)", b)
	return msbPosition(uint32(b)) - 2
}

// indexLevelStart returns the dense array index of the first triangle at
// the given level: 2^(level+1) - 2.
func indexLevelStart(level uint32) uint32 {
	return ((2 << level) - 1) &^ 1
}

// Index returns the dense, breadth-first array index of b.
func (b BinID) Index() uint32 {
	level := b.Level()
	return indexLevelStart(level) + (uint32(b) - (uint32(2) << level))
}

// IndexToBinID is the inverse of BinID.Index: it recovers the bin_id whose
// dense index is idx.
func IndexToBinID(idx uint32) BinID {
	var level uint32
	for indexLevelStart(level+1) <= idx {
		level++
	}
	return BinID((uint32(2) << level) + (idx - indexLevelStart(level)))
}

// Children returns the right and left children of b, in that order, per the
// RTIN child-encoding rule: right = b + 2^(level+2) - 2^(level+1), left = b
// + 2^(level+2).
func (b BinID) Children() (right, left BinID) {
	level := b.Level()
	step := uint32(1) << (level + 1)
	right = BinID(uint32(b) + step)
	left = BinID(uint32(b) + 2*step)
	return right, left
}
