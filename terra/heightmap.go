package terra

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/arl/go-terra/rtin"
)

// Heightmap is terra's public handle on a validated square, power-of-two
// elevation grid. It embeds rtin.Heightmap rather than redefining it: the
// core package owns validation and sampling (BuildMesh needs the exact same
// Heightmap the rest of rtin operates on), terra only adds the one piece of
// I/O the core has no business doing — decoding an image file.
type Heightmap struct {
	rtin.Heightmap
}

// NewHeightmap validates and wraps a row-major w*w sample buffer. A
// malformed buffer (wrong side, wrong sample count) surfaces as a
// PreconditionViolation Error, per spec.md §7's "surfaced to caller with a
// structured kind" policy.
func NewHeightmap(w int32, samples []uint16) (Heightmap, error) {
	hm, err := rtin.NewHeightmap(w, samples)
	if err != nil {
		return Heightmap{}, &Error{Kind: PreconditionViolation, Msg: err.Error()}
	}
	return Heightmap{hm}, nil
}

// Decode reads a single-channel 16-bit grayscale PNG from r and returns the
// Heightmap it encodes. The image must be square with a power-of-two side.
//
// Grounded on the teacher's InputGeom.load/meshloaderobj.go pattern of a
// geometry type owning a Load-style ingestion method — here adapted from
// OBJ meshes to heightmap images, since spec.md explicitly leaves image
// decoding to "the external collaborator" rather than the rtin core.
func Decode(r io.Reader) (Heightmap, error) {
	img, err := png.Decode(r)
	if err != nil {
		return Heightmap{}, &Error{Kind: PreconditionViolation, Msg: fmt.Sprintf("decoding heightmap PNG: %s", err)}
	}
	gray, ok := img.(*image.Gray16)
	if !ok {
		return Heightmap{}, &Error{Kind: PreconditionViolation, Msg: fmt.Sprintf("heightmap PNG must be single-channel 16-bit grayscale, got %T", img)}
	}

	b := gray.Bounds()
	w := int32(b.Dx())
	if int32(b.Dy()) != w {
		return Heightmap{}, &Error{Kind: PreconditionViolation, Msg: fmt.Sprintf("heightmap PNG must be square, got %dx%d", b.Dx(), b.Dy())}
	}

	samples := make([]uint16, w*w)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			off := gray.PixOffset(b.Min.X+x, b.Min.Y+y)
			samples[int32(y)*w+int32(x)] = uint16(gray.Pix[off])<<8 | uint16(gray.Pix[off+1])
		}
	}
	return NewHeightmap(w, samples)
}
