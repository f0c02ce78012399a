package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "earclip",
	Short: "triangulate 2D polygons with holes",
	Long: `earclip is the command-line companion to the go-earclip library:
	- triangulate a polygon (with optional holes) described as JSON,
	- tweak build settings (YAML files),
	- write a default build settings file.`,
}

// Execute adds all child commands to RootCmd and runs it. Called once from
// main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
