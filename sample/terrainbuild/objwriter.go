package terrainbuild

import (
	"fmt"
	"io"

	"github.com/arl/gobj"
	"github.com/arl/go-terra/rtin"
)

// WriteOBJ writes payload as a Wavefront OBJ: one "v" line per vertex, then
// "f" lines (TriangleList) or "l" lines (LineList) for the index array.
//
// Grounded on the teacher's meshloaderobj.go, which reads OBJ geometry in
// with gobj.Decoder — this is the symmetric writer the teacher never needed
// because navmeshes aren't re-exported as OBJ, using the same gobj.Vertex
// type for the coordinate triples instead of formatting floats by hand.
func WriteOBJ(w io.Writer, payload rtin.MeshPayload) error {
	for _, v := range payload.Vertices {
		vtx := gobj.NewVertex3D(float64(v[0]), float64(v[1]), float64(v[2]))
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", vtx.X(), vtx.Y(), vtx.Z()); err != nil {
			return err
		}
	}

	switch payload.Topology {
	case rtin.TriangleList:
		for i := 0; i+2 < len(payload.Indices); i += 3 {
			// OBJ vertex indices are 1-based.
			a, b, c := payload.Indices[i]+1, payload.Indices[i+1]+1, payload.Indices[i+2]+1
			if _, err := fmt.Fprintf(w, "f %d %d %d\n", a, b, c); err != nil {
				return err
			}
		}
	case rtin.LineList:
		for i := 0; i+1 < len(payload.Indices); i += 2 {
			a, b := payload.Indices[i]+1, payload.Indices[i+1]+1
			if _, err := fmt.Fprintf(w, "l %d %d\n", a, b); err != nil {
				return err
			}
		}
	}
	return nil
}
