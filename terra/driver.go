package terra

import "github.com/arl/go-terra/rtin"

// MeshPayload is terra's alias for rtin.MeshPayload — BuildMesh's result
// type, re-exported so callers never need to import rtin directly.
type MeshPayload = rtin.MeshPayload

// BuildRequest carries every knob of a single BuildMesh call. Threshold and
// YScale have no required range: Threshold is silently clamped to [0, 1]
// per spec.md §7's CallerInputOutOfRange policy; YScale is a pure multiplier
// and accepts any value, including negative (an inverted terrain) or zero
// (a flat projection of the mesh's footprint).
type BuildRequest struct {
	Threshold float32
	YScale    float32
	Wireframe bool
	Ramp      rtin.ColorRamp
}

// BuildMesh runs the full rtin pipeline — error map, selection, mesh
// assembly — over hm in one call. ctx may be nil.
//
// Grounded on sample/solomesh.SoloMesh.Build: a single entry point that
// strings together the lower-level algorithm steps the same way SoloMesh
// strings together recast's heightfield/contour/polymesh passes.
func BuildMesh(hm Heightmap, req BuildRequest, ctx *rtin.Context) MeshPayload {
	em := rtin.BuildErrorMap(hm.Heightmap, ctx)
	selected := rtin.Select(hm.Heightmap, em, req.Threshold, ctx)
	return rtin.BuildMesh(hm.Heightmap, selected, rtin.BuildMeshOptions{
		YScale:    req.YScale,
		Wireframe: req.Wireframe,
		Ramp:      req.Ramp,
	}, ctx)
}

// Builder is a stateful alternative to BuildMesh for callers that rebuild
// the same heightmap's mesh repeatedly with a changing threshold or
// wireframe/color settings (an interactive threshold slider): it caches the
// ErrorMap, which depends only on the heightmap and never on those
// settings, so only Select and BuildMesh rerun on each call.
//
// Grounded on sample/solomesh.SoloMesh, which holds build state (the loaded
// InputGeom, the built recast.PolyMesh) across separate Load/Build calls
// rather than recomputing it every time.
type Builder struct {
	hm  Heightmap
	em  *rtin.ErrorMap
	ctx *rtin.Context
}

// NewBuilder returns a Builder bound to hm, computing its ErrorMap once.
func NewBuilder(hm Heightmap, ctx *rtin.Context) *Builder {
	return &Builder{
		hm:  hm,
		em:  rtin.BuildErrorMap(hm.Heightmap, ctx),
		ctx: ctx,
	}
}

// Build selects triangles and assembles a mesh at req's threshold and mesh
// options, reusing the cached ErrorMap.
func (b *Builder) Build(req BuildRequest) MeshPayload {
	selected := rtin.Select(b.hm.Heightmap, b.em, req.Threshold, b.ctx)
	return rtin.BuildMesh(b.hm.Heightmap, selected, rtin.BuildMeshOptions{
		YScale:    req.YScale,
		Wireframe: req.Wireframe,
		Ramp:      req.Ramp,
	}, b.ctx)
}

// Heightmap returns the heightmap the Builder was constructed with.
func (b *Builder) Heightmap() Heightmap { return b.hm }
