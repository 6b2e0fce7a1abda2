package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/beaconzone/pkg/coverage"
	"github.com/matzehuels/beaconzone/pkg/pipeline"
)

// countCommand creates the count command.
func (c *CLI) countCommand() *cobra.Command {
	var (
		qo   queryOpts
		line int64
	)

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count positions on a line where no unseen beacon can be",
		Long: `Count the positions on the horizontal line --line that lie inside at least
one sensor's coverage, excluding positions occupied by a known beacon.`,
		Example: `  beaconzone count --line 2000000 -i input.txt
  cat input.txt | beaconzone count --line 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("line") {
				line = c.cfg.Count.Line
			}
			opts := pipeline.Options{Query: coverage.CountQuery{Line: line}}
			return c.runQuery(cmd, qo, opts, "")
		},
	}

	qo.register(cmd)
	cmd.Flags().Int64VarP(&line, "line", "l", 0, "line to count (default from config, 2000000)")

	return cmd
}
