// Package dbg holds small debug helpers not meant for the public terra/rtin
// surface: ASCII dumps useful while developing the triangulation itself.
//
// Adapted from the teacher's internal/dbg/dbg.go, which loaded a binary
// navmesh and ran one test path query as a disconnected main package; this
// repurposes the same "dump something and eyeball it" role for the error
// map, reachable from tests and cmd/terra's infos command instead of living
// as dead code.
package dbg

import (
	"fmt"
	"io"

	"github.com/arl/go-terra/rtin"
)

// ramp is the 10-character gradient used to render a normalized error value
// as a single glyph, lowest to highest.
const ramp = " .:-=+*#%@"

// DumpErrorMap writes a coarse ASCII heat-map of em's error distribution
// over hm's grid to w: one character per lattice row/column, the densest
// glyph marking the highest error. Errors are normalized against the
// largest value found, so the picture is always legible regardless of the
// heightmap's absolute error magnitudes.
func DumpErrorMap(w io.Writer, em *rtin.ErrorMap, hm rtin.Heightmap) {
	g := hm.GridSize()

	var maxErr float32
	for y := int32(0); y < g; y++ {
		for x := int32(0); x < g; x++ {
			if e := em.At(rtin.Point{X: x, Y: y}); e > maxErr {
				maxErr = e
			}
		}
	}

	fmt.Fprintf(w, "error map %dx%d, max=%.4f\n", g, g, maxErr)
	for y := int32(0); y < g; y++ {
		for x := int32(0); x < g; x++ {
			e := em.At(rtin.Point{X: x, Y: y})
			idx := 0
			if maxErr > 0 {
				idx = int(e / maxErr * float32(len(ramp)-1))
			}
			fmt.Fprintf(w, "%c", ramp[idx])
		}
		fmt.Fprintln(w)
	}
}
