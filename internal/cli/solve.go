package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/beaconzone/pkg/coverage"
	"github.com/matzehuels/beaconzone/pkg/pipeline"
)

// solveCommand creates the solve command, which derives both queries from a
// single depth the way the puzzle states them.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		qo    queryOpts
		depth int64
		tune  bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Answer the puzzle for a given depth",
		Long: `Without --tune, count covered positions on line --depth.
With --tune, search the square [0, 2*depth]² for the distress beacon and print
its tuning frequency x*4000000 + y.`,
		Example: `  beaconzone solve --depth 2000000 -i input.txt
  beaconzone solve --depth 10 --tune < example.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("depth") {
				depth = c.cfg.Count.Line
			}

			if !tune {
				return c.runQuery(cmd, qo, pipeline.Options{Query: coverage.CountQuery{Line: depth}}, "")
			}
			opts := pipeline.Options{
				Query:   coverage.SearchQuery{BoundMax: 2 * depth, Multiplier: coverage.DefaultMultiplier},
				Workers: c.cfg.Search.Workers,
			}
			return c.runQuery(cmd, qo, opts, "Tuning...")
		},
	}

	qo.register(cmd)
	cmd.Flags().Int64VarP(&depth, "depth", "d", 0, "line to count; the search square is twice this (default from config)")
	cmd.Flags().BoolVar(&tune, "tune", false, "search for the distress beacon instead of counting")

	return cmd
}
