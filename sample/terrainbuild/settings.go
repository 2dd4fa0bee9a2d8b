package terrainbuild

// Settings is the YAML-serializable set of knobs a terrain build runs with.
//
// Grounded on sample/solomesh.Settings' role (a plain value struct holding
// every Build-time knob, loaded from/saved to YAML by the CLI), with
// exported fields and yaml tags since go-terra's config.go round-trips this
// struct through gopkg.in/yaml.v2 rather than only constructing it in code.
type Settings struct {
	Threshold float32     `yaml:"threshold"`
	YScale    float32     `yaml:"y_scale"`
	Wireframe bool        `yaml:"wireframe"`
	Ramp      []ColorStop `yaml:"color_ramp,omitempty"`
}

// ColorStop is one (height, color) anchor of a color ramp, serialized as a
// flat RGB triple for a friendlier YAML shape than a nested struct.
type ColorStop struct {
	Height float32 `yaml:"height"`
	R      float32 `yaml:"r"`
	G      float32 `yaml:"g"`
	B      float32 `yaml:"b"`
}

// NewSettings returns Settings filled with default values: a low (0.05)
// threshold, unscaled heights, solid-fill rendering (no ramp, not
// wireframe).
func NewSettings() Settings {
	return Settings{
		Threshold: 0.05,
		YScale:    1,
		Wireframe: false,
	}
}
