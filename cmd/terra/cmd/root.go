package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "terra",
	Short: "build terrain meshes from heightmaps",
	Long: `terra turns a heightmap into a right-triangulated irregular
network mesh:
	- build meshes from 16-bit grayscale PNG heightmaps,
	- save them to OBJ files,
	- tweak build settings (YAML files),
	- inspect heightmaps.`,
}

// Execute adds all child commands to RootCmd and runs it. Called once from
// main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
