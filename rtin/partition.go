package rtin

// PartitionStep is one step in the decoding of a BinID: the first step
// selects which of the two root triangles the path starts from, every
// subsequent step descends into a Left or Right child.
type PartitionStep int

// The four partition step variants. There is no fifth: a BinID decodes to
// exactly one TopRight/BottomLeft seed followed by zero or more Left/Right
// descents.
const (
	TopRight PartitionStep = iota
	BottomLeft
	Left
	Right
)

func (s PartitionStep) String() string {
	switch s {
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "PartitionStep(invalid)"
	}
}

// partitionSteps decodes bin_id into its ordered sequence of partition
// steps: the root selector first (bit 0), then one Left/Right entry per
// descended level, read from bit 1 up to the bit just below the sentinel —
// the same order corners() folds them in, shallowest descent first.
//
// A reference implementation builds this slice and folds it to get
// corners; corners (geometry.go) fuses decoding and transformation instead
// to avoid the intermediate allocation (see spec's Geometry §4.2
// performance note), so partitionSteps exists mainly for introspection and
// tests (scenario 4 in spec.md §8).
func partitionSteps(b BinID) []PartitionStep {
	level := b.Level()
	steps := make([]PartitionStep, 0, level+1)

	id := uint32(b)
	if id&1 != 0 {
		steps = append(steps, TopRight)
	} else {
		steps = append(steps, BottomLeft)
	}
	id >>= 1

	for i := uint32(0); i < level; i++ {
		if id&1 != 0 {
			steps = append(steps, Left)
		} else {
			steps = append(steps, Right)
		}
		id >>= 1
	}
	return steps
}
