package cmd

import (
	"fmt"
	"os"

	"github.com/arl/go-terra/sample/terrainbuild"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

var configCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "create a build settings file",
	Long: `Create a build settings file in YAML format, prefilled with
default values.

If FILE is not provided, 'terra.yml' is used.`,
	Run: doConfig,
}

func init() {
	RootCmd.AddCommand(configCmd)
}

func doConfig(cmd *cobra.Command, args []string) {
	path := "terra.yml"
	if len(args) >= 1 {
		path = args[0]
	}

	ok, err := confirmIfExists(path, fmt.Sprintf("file %q already exists, overwrite? [y/N]", path))
	if !ok {
		if err == nil {
			fmt.Println("aborted by user")
		} else {
			fmt.Println("aborted,", err)
		}
		return
	}

	buf, err := yaml.Marshal(terrainbuild.NewSettings())
	check(err)
	check(os.WriteFile(path, buf, 0o644))

	fmt.Printf("build settings written to %q\n", path)
}
