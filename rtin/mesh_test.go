package rtin

import (
	"testing"

	"github.com/arl/gogeo/f32/d3"
)

func TestBuildMeshDedupesSharedVertices(t *testing.T) {
	hm := flatHeightmap(2, 20000)
	selected := []BinID{rootBottomLeft, rootTopRight}

	payload := BuildMesh(hm, selected, BuildMeshOptions{YScale: 1}, nil)

	// The two root triangles of a 2x2 heightmap share their hypotenuse
	// endpoints (the grid's two opposite corners), so the 6 corners
	// referenced across both triangles collapse to 4 distinct vertices.
	if len(payload.Vertices) != 4 {
		t.Fatalf("len(Vertices) = %d, want 4", len(payload.Vertices))
	}
	if len(payload.Indices) != 6 {
		t.Fatalf("len(Indices) = %d, want 6 (2 triangles x 3)", len(payload.Indices))
	}
	if payload.Topology != TriangleList {
		t.Fatalf("Topology = %v, want TriangleList", payload.Topology)
	}
	for _, idx := range payload.Indices {
		if int(idx) >= len(payload.Vertices) {
			t.Fatalf("index %d out of range for %d vertices", idx, len(payload.Vertices))
		}
	}
}

func TestBuildMeshWireframeTopology(t *testing.T) {
	hm := flatHeightmap(2, 20000)
	selected := []BinID{rootBottomLeft}

	payload := BuildMesh(hm, selected, BuildMeshOptions{YScale: 1, Wireframe: true}, nil)

	if payload.Topology != LineList {
		t.Fatalf("Topology = %v, want LineList", payload.Topology)
	}
	if len(payload.Indices) != 6 {
		t.Fatalf("len(Indices) = %d, want 6 (1 triangle x 3 edges x 2 endpoints)", len(payload.Indices))
	}
}

func TestBuildMeshColorRamp(t *testing.T) {
	hm := flatHeightmap(2, 0)
	selected := []BinID{rootBottomLeft, rootTopRight}

	ramp := ColorRamp{
		{Height: 0, Color: d3.Vec3{0, 0, 0}},
		{Height: 1, Color: d3.Vec3{1, 1, 1}},
	}
	payload := BuildMesh(hm, selected, BuildMeshOptions{YScale: 1, Ramp: ramp}, nil)

	if len(payload.Colors) != len(payload.Vertices) {
		t.Fatalf("len(Colors) = %d, want %d (one per vertex)", len(payload.Colors), len(payload.Vertices))
	}
	for _, c := range payload.Colors {
		if c[0] != 0 || c[1] != 0 || c[2] != 0 {
			t.Errorf("flat zero heightmap: color = %v, want black", c)
		}
	}
}

func TestColorRampInterpolates(t *testing.T) {
	ramp := ColorRamp{
		{Height: 0, Color: d3.Vec3{0, 0, 0}},
		{Height: 1, Color: d3.Vec3{2, 0, 0}},
	}
	got := ramp.At(0.5)
	if got[0] != 1 {
		t.Fatalf("ColorRamp.At(0.5) red channel = %v, want 1", got[0])
	}
}

func TestColorRampClampsOutOfRange(t *testing.T) {
	ramp := ColorRamp{
		{Height: 0.2, Color: d3.Vec3{1, 0, 0}},
		{Height: 0.8, Color: d3.Vec3{0, 1, 0}},
	}
	if got := ramp.At(-1); got[0] != 1 || got[1] != 0 || got[2] != 0 {
		t.Fatalf("ColorRamp.At(-1) = %v, want first stop's color", got)
	}
	if got := ramp.At(2); got[0] != 0 || got[1] != 1 || got[2] != 0 {
		t.Fatalf("ColorRamp.At(2) = %v, want last stop's color", got)
	}
}
