package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/arl/go-earclip/earclip"
)

// polygonFile is the on-disk JSON shape 'earclip triangulate' reads: the
// outer ring first, any holes after, each a flat list of [x,y] pairs.
type polygonFile struct {
	Rings [][][2]float64 `json:"rings"`
}

var (
	cfgPathVal string
	outVal     string
	verboseVal bool
)

// triangulateCmd represents the triangulate command.
var triangulateCmd = &cobra.Command{
	Use:   "triangulate POLYGON.json",
	Short: "triangulate a polygon described as JSON",
	Long: `Triangulate a polygon given as a JSON file of nested rings
(outer ring first, holes after), each a flat array of [x,y] pairs.
Triangle vertex indices, three per triangle, are written to stdout or
--out as a JSON array; each index is a vertex's position across all
rings in input order.`,
	Args: cobra.ExactArgs(1),
	Run:  doTriangulate,
}

func init() {
	RootCmd.AddCommand(triangulateCmd)

	triangulateCmd.Flags().StringVar(&cfgPathVal, "config", "", "build settings (YAML), defaults used if absent")
	triangulateCmd.Flags().StringVar(&outVal, "out", "", "output file, stdout if absent")
	triangulateCmd.Flags().BoolVar(&verboseVal, "verbose", false, "print the build log trail")
}

func doTriangulate(cmd *cobra.Command, args []string) {
	if err := fileExists(args[0]); err != nil {
		check(err)
	}

	buf, err := ioutil.ReadFile(args[0])
	check(err)

	var pf polygonFile
	check(json.Unmarshal(buf, &pf))

	var cfg earclip.Config
	if cfgPathVal != "" {
		check(unmarshalYAMLFile(cfgPathVal, &cfg))
	}

	ctx := earclip.NewBuildContext(verboseVal)
	data, holeIndices := earclip.Flatten(pf.Rings)
	triangles, err := earclip.TriangulateCtx(ctx, cfg, data, holeIndices, 2)
	check(err)

	if verboseVal {
		for _, msg := range ctx.LogMessages() {
			fmt.Fprintln(os.Stderr, msg)
		}
	}

	out, err := json.Marshal(triangles)
	check(err)

	if outVal == "" {
		fmt.Println(string(out))
		return
	}
	check(ioutil.WriteFile(outVal, out, 0644))
	fmt.Printf("%d triangle(s) written to '%s'\n", len(triangles)/3, outVal)
}
