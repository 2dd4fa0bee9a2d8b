package rtin

import "github.com/arl/math32"

// approxEqual reports whether a and b are equal up to the usual
// scale-relative floating point slop.
//
// Grounded on go-detour's own f32math.go (Approxf32Equal), simply delegating
// to the math32 package it already vendors instead of reimplementing the
// comparison locally.
func approxEqual(a, b float32) bool {
	return math32.Approx(a, b)
}
