package terrainbuild

import (
	"os"

	"github.com/arl/go-terra/rtin"
	"github.com/arl/go-terra/terra"
	"github.com/arl/gogeo/f32/d3"
)

// TerrainBuild is a reusable driver over terra.BuildMesh: it owns a loaded
// heightmap, a BuildContext for logging/timing, and the Settings a CLI
// command or any other caller can fill in before calling Build.
//
// Grounded on sample/solomesh.SoloMesh, which plays the same role for
// go-detour's cmd/recast build command: a small stateful type the CLI
// drives through Load/Build rather than wiring the whole pipeline itself.
type TerrainBuild struct {
	ctx       *rtin.BuildContext
	heightmap terra.Heightmap
	settings  Settings
}

// New returns a TerrainBuild with default settings and a fresh BuildContext.
func New() *TerrainBuild {
	return &TerrainBuild{
		ctx:      rtin.NewBuildContext(),
		settings: NewSettings(),
	}
}

// SetSettings replaces the build settings.
func (tb *TerrainBuild) SetSettings(s Settings) {
	tb.settings = s
}

// Settings returns the current build settings.
func (tb *TerrainBuild) Settings() Settings {
	return tb.settings
}

// Load reads a 16-bit grayscale PNG heightmap from path.
func (tb *TerrainBuild) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	hm, err := terra.Decode(f)
	if err != nil {
		return err
	}
	tb.heightmap = hm
	return nil
}

// Heightmap returns the currently loaded heightmap.
func (tb *TerrainBuild) Heightmap() terra.Heightmap {
	return tb.heightmap
}

// BuildContext returns the context accumulating this build's log lines and
// phase timings.
func (tb *TerrainBuild) BuildContext() *rtin.BuildContext {
	return tb.ctx
}

// Build runs the terra pipeline over the loaded heightmap with the current
// Settings and returns the resulting mesh. It fails if no heightmap has
// been loaded yet.
func (tb *TerrainBuild) Build() (*terra.MeshPayload, error) {
	if tb.heightmap.Samples == nil {
		return nil, &terra.Error{Kind: terra.PreconditionViolation, Msg: "Build called before Load"}
	}

	ctx := rtin.NewContext(true, tb.ctx)
	req := terra.BuildRequest{
		Threshold: tb.settings.Threshold,
		YScale:    tb.settings.YScale,
		Wireframe: tb.settings.Wireframe,
		Ramp:      toColorRamp(tb.settings.Ramp),
	}
	payload := terra.BuildMesh(tb.heightmap, req, ctx)
	return &payload, nil
}

func toColorRamp(stops []ColorStop) rtin.ColorRamp {
	if len(stops) == 0 {
		return nil
	}
	ramp := make(rtin.ColorRamp, len(stops))
	for i, s := range stops {
		ramp[i] = rtin.ColorStop{Height: s.Height, Color: d3.Vec3{s.R, s.G, s.B}}
	}
	return ramp
}
