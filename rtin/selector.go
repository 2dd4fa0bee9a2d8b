package rtin

// Select performs the top-down traversal that picks a crack-free set of
// leaf triangles out of the implicit RTIN tree, given the ErrorMap em
// (built once per heightmap by BuildErrorMap) and an error threshold.
//
// Grounded on flywave/go-martini's Tile.countElements recursive descent,
// adapted from martini's raw index-array recursion to this package's
// BinID/Corners vocabulary. Thresholds outside [0, 1] are clamped per
// spec.md §7's CallerInputOutOfRange policy rather than rejected.
func Select(hm Heightmap, em *ErrorMap, threshold float32, ctx *Context) []BinID {
	threshold = clampThreshold(threshold)

	ctx.startTimer(TimerSelection)
	defer ctx.stopTimer(TimerSelection)

	// Leaf triangles (two per heightmap cell) sit at level L, just below the
	// last level with an ErrorMap slot; they are always kept.
	leafLevel := levelCount(hm.W)

	var selected []BinID
	var visit func(b BinID)
	visit = func(b BinID) {
		level := int32(b.Level())
		if level >= leafLevel || em.At(Midpoint(b, hm.W)) <= threshold {
			selected = append(selected, b)
			return
		}
		right, left := b.Children()
		visit(left)
		visit(right)
	}

	visit(rootBottomLeft)
	visit(rootTopRight)

	ctx.Progressf("rtin: selected %d triangles at threshold %.3f", len(selected), threshold)
	return selected
}
