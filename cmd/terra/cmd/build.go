package cmd

import (
	"fmt"
	"os"

	"github.com/arl/go-terra/sample/terrainbuild"
	"github.com/spf13/cobra"
)

var (
	buildCfgPath   string
	buildInputPath string
	buildWireframe bool
	buildFormat    string
)

var buildCmd = &cobra.Command{
	Use:   "build OUTFILE",
	Short: "build a terrain mesh from a heightmap",
	Long: `Build a right-triangulated irregular network mesh from a 16-bit
grayscale PNG heightmap. Build process is controlled by the provided
build settings file. The generated mesh is saved to OUTFILE as a
Wavefront OBJ.`,
	Args: cobra.ExactArgs(1),
	Run:  doBuild,
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&buildCfgPath, "config", "terra.yml", "build settings file")
	buildCmd.Flags().StringVar(&buildInputPath, "input", "", "input heightmap PNG file (required)")
	buildCmd.Flags().BoolVar(&buildWireframe, "wireframe", false, "emit a wireframe (line list) mesh instead of filled triangles")
	buildCmd.Flags().StringVar(&buildFormat, "format", "obj", "output mesh format (obj)")
}

func doBuild(cmd *cobra.Command, args []string) {
	outPath := args[0]

	if buildInputPath == "" {
		fmt.Println("error, --input is required")
		os.Exit(1)
	}

	if buildFormat != "obj" {
		check(fmt.Errorf("unsupported --format %q: only obj is implemented", buildFormat))
	}

	ok, err := confirmIfExists(outPath, fmt.Sprintf("file %q already exists, overwrite? [y/N]", outPath))
	if !ok {
		if err == nil {
			fmt.Println("aborted by user")
		} else {
			fmt.Println("aborted,", err)
		}
		return
	}

	tb := terrainbuild.New()

	settings := terrainbuild.NewSettings()
	if _, statErr := os.Stat(buildCfgPath); statErr == nil {
		if err := unmarshalYAMLFile(buildCfgPath, &settings); err != nil {
			check(fmt.Errorf("reading config %q: %w", buildCfgPath, err))
		}
	}
	settings.Wireframe = settings.Wireframe || buildWireframe
	tb.SetSettings(settings)

	check(tb.Load(buildInputPath))

	payload, err := tb.Build()
	check(err)

	out, err := os.Create(outPath)
	check(err)
	defer out.Close()

	check(terrainbuild.WriteOBJ(out, *payload))

	fmt.Printf("mesh written to %q: %d vertices, %d indices\n", outPath, len(payload.Vertices), len(payload.Indices))
}
