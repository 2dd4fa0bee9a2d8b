package rtin

import (
	"fmt"

	"github.com/arl/math32"
)

// Heightmap is a read-only, row-major buffer of W*W unsigned 16-bit
// samples. W must be a power of two and at least 2; NewHeightmap checks
// this once so every later consumer (ErrorMap, MeshBuilder) can treat a
// Heightmap as already valid.
type Heightmap struct {
	W       int32
	Samples []uint16
}

// maxSample16 is the normalization divisor: the largest representable
// uint16 sample value.
const maxSample16 = float32(65535)

// NewHeightmap validates and wraps samples, a row-major buffer of w*w
// values, as a Heightmap.
//
// A *PreconditionError is returned if w is not a power of two, is
// smaller than 2, or samples isn't exactly w*w long.
func NewHeightmap(w int32, samples []uint16) (Heightmap, error) {
	if w < 2 {
		return Heightmap{}, &PreconditionError{Msg: fmt.Sprintf("heightmap side %d is smaller than 2", w)}
	}
	if math32.NextPow2(uint32(w)) != uint32(w) {
		return Heightmap{}, &PreconditionError{Msg: fmt.Sprintf("heightmap side %d is not a power of two", w)}
	}
	if int32(len(samples)) != w*w {
		return Heightmap{}, &PreconditionError{
			Msg: fmt.Sprintf("heightmap expects %d samples for side %d, got %d", w*w, w, len(samples)),
		}
	}
	return Heightmap{W: w, Samples: samples}, nil
}

// GridSize returns G = W+1, the side of the vertex lattice that triangle
// corners and the ErrorMap are indexed on.
func (h Heightmap) GridSize() int32 {
	return h.W + 1
}

// sample reads the heightmap at grid coordinate p, clamping each axis into
// [0, W-1] (corners at lattice index W sit on the grid's outer edge and
// have no backing pixel), and returns the sample normalized to [0, 1].
func (h Heightmap) sample(p Point) float32 {
	x := clampCoord(p.X, h.W)
	y := clampCoord(p.Y, h.W)
	return float32(h.Samples[y*h.W+x]) / maxSample16
}

// Sample is the exported counterpart of sample, for callers outside the
// package that need a height value for an arbitrary grid coordinate.
func (h Heightmap) Sample(p Point) float32 {
	return h.sample(p)
}

func clampCoord(c, w int32) int32 {
	if c < 0 {
		return 0
	}
	if c > w-1 {
		return w - 1
	}
	return c
}
