package cmd

import (
	"fmt"
	"os"

	"github.com/arl/go-terra/internal/dbg"
	"github.com/arl/go-terra/rtin"
	"github.com/arl/go-terra/terra"
	"github.com/spf13/cobra"
)

var infosDebug bool

var infosCmd = &cobra.Command{
	Use:   "infos HEIGHTMAP",
	Short: "show infos about a heightmap",
	Long: `Read a heightmap from a 16-bit grayscale PNG, validate it,
and print its dimensions and derived grid size. With --debug, also builds
the error map and prints an ASCII heat-map of it.`,
	Args: cobra.ExactArgs(1),
	Run:  doInfos,
}

func init() {
	RootCmd.AddCommand(infosCmd)

	infosCmd.Flags().BoolVar(&infosDebug, "debug", false, "dump an ASCII error map heat-map")
}

func doInfos(cmd *cobra.Command, args []string) {
	f, err := os.Open(args[0])
	check(err)
	defer f.Close()

	hm, err := terra.Decode(f)
	check(err)

	fmt.Printf("heightmap side:  %d\n", hm.W)
	fmt.Printf("grid size:       %d\n", hm.GridSize())
	fmt.Printf("tree depth:      %d\n", rtin.LevelCount(hm.W))

	if infosDebug {
		em := rtin.BuildErrorMap(hm.Heightmap, nil)
		dbg.DumpErrorMap(os.Stdout, em, hm.Heightmap)
	}
}
