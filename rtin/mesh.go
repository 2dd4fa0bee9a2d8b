package rtin

import "github.com/arl/gogeo/f32/d3"

// Topology tags whether a MeshPayload's indices form a triangle list or a
// line list (wireframe output).
type Topology int

const (
	// TriangleList indices come in groups of 3, one triangle per group.
	TriangleList Topology = iota
	// LineList indices come in groups of 2, one edge per group; a selected
	// triangle contributes 3 edges (6 indices).
	LineList
)

// MeshPayload is the core's entire output: a deduplicated vertex array in
// world space, an index array interpreted according to Topology, and an
// optional parallel per-vertex color array.
type MeshPayload struct {
	Vertices  []d3.Vec3
	Indices   []uint32
	Colors    []d3.Vec3
	Topology  Topology
}

// ColorStop is one (height, color) anchor of a ColorRamp.
type ColorStop struct {
	Height float32
	Color  d3.Vec3
}

// ColorRamp maps a normalized height in [0, 1] to a vertex color by linear
// interpolation between sorted stops. A nil/empty ColorRamp means
// MeshBuilder emits no Colors array at all.
type ColorRamp []ColorStop

// At returns the interpolated color for height h. Stops must be sorted by
// Height ascending; heights outside the first/last stop clamp to the
// nearest endpoint color. A height within float slop of a stop snaps to
// that stop's color exactly, rather than an interpolated near-neighbor.
func (r ColorRamp) At(h float32) d3.Vec3 {
	if len(r) == 0 {
		return d3.Vec3{}
	}
	if h <= r[0].Height || approxEqual(h, r[0].Height) {
		return r[0].Color
	}
	last := r[len(r)-1]
	if h >= last.Height {
		return last.Color
	}
	for i := 1; i < len(r); i++ {
		if approxEqual(h, r[i].Height) {
			return r[i].Color
		}
		if h <= r[i].Height {
			lo, hi := r[i-1], r[i]
			t := (h - lo.Height) / (hi.Height - lo.Height)
			return d3.Vec3{
				lo.Color[0] + t*(hi.Color[0]-lo.Color[0]),
				lo.Color[1] + t*(hi.Color[1]-lo.Color[1]),
				lo.Color[2] + t*(hi.Color[2]-lo.Color[2]),
			}
		}
	}
	return last.Color
}

// BuildMeshOptions configures MeshBuilder.
type BuildMeshOptions struct {
	// YScale multiplies the normalized [0,1] sampled height before it's
	// placed in the world-space vertex.
	YScale float32
	// Wireframe, when true, emits LineList indices instead of TriangleList.
	Wireframe bool
	// Ramp, if non-empty, makes MeshPayload.Colors non-nil.
	Ramp ColorRamp
}

// BuildMesh deduplicates vertices across the selected triangles, samples
// heights, and assembles the final MeshPayload.
//
// Grounded on go-detour's buildMeshAdjacency (mesh.go) for the "dense
// integer key -> array index" deduplication idiom (there keyed by polygon
// edge endpoints, here by grid vertex id y*G+x), and on spec.md §4.6.
func BuildMesh(hm Heightmap, selected []BinID, opts BuildMeshOptions, ctx *Context) MeshPayload {
	ctx.startTimer(TimerMeshAssembly)
	defer ctx.stopTimer(TimerMeshAssembly)

	g := hm.GridSize()
	vertexIndex := make(map[int32]uint32, len(selected)*2)

	var vertices []d3.Vec3
	var colors []d3.Vec3
	var indices []uint32

	emit := func(p Point) uint32 {
		key := p.Y*g + p.X
		if idx, ok := vertexIndex[key]; ok {
			return idx
		}
		h := hm.sample(p)
		idx := uint32(len(vertices))
		vertices = append(vertices, d3.Vec3{float32(p.X), h * opts.YScale, float32(p.Y)})
		if len(opts.Ramp) > 0 {
			colors = append(colors, opts.Ramp.At(h))
		}
		vertexIndex[key] = idx
		return idx
	}

	for _, b := range selected {
		c := Corners(b, hm.W)
		ia := emit(c.A)
		ib := emit(c.B)
		ic := emit(c.C)

		if opts.Wireframe {
			indices = append(indices, ia, ib, ib, ic, ic, ia)
		} else {
			indices = append(indices, ia, ib, ic)
		}
	}

	topology := TriangleList
	if opts.Wireframe {
		topology = LineList
	}

	ctx.Progressf("rtin: assembled mesh: %d vertices, %d indices", len(vertices), len(indices))

	return MeshPayload{
		Vertices: vertices,
		Indices:  indices,
		Colors:   colors,
		Topology: topology,
	}
}
