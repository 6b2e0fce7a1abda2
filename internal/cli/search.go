package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/beaconzone/pkg/config"
	"github.com/matzehuels/beaconzone/pkg/coverage"
	"github.com/matzehuels/beaconzone/pkg/pipeline"
)

// searchOpts holds the command-line flags for the search command.
type searchOpts struct {
	bound      int64 // inclusive upper bound of both coordinates
	multiplier int64 // key = x*multiplier + y
	workers    int   // parallel scan goroutines
}

// applyConfig fills every flag the user did not set from the loaded config.
func (o *searchOpts) applyConfig(cmd *cobra.Command, cfg config.SearchConfig) {
	if !cmd.Flags().Changed("bound") {
		o.bound = cfg.Bound
	}
	if !cmd.Flags().Changed("multiplier") {
		o.multiplier = cfg.Multiplier
	}
	if !cmd.Flags().Changed("workers") {
		o.workers = cfg.Workers
	}
}

// searchCommand creates the search command.
func (c *CLI) searchCommand() *cobra.Command {
	var (
		qo   queryOpts
		opts searchOpts
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find the one uncovered position inside [0, bound]²",
		Long: `Scan every line of the square [0, bound]² for a position no sensor covers
and print its key x*multiplier + y. Lines are scanned in parallel; the answer is
always the one on the lowest line.`,
		Example: `  beaconzone search --bound 4000000 -i input.txt
  beaconzone search --bound 20 --workers 1 < example.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.applyConfig(cmd, c.cfg.Search)
			po := pipeline.Options{
				Query:   coverage.SearchQuery{BoundMax: opts.bound, Multiplier: opts.multiplier},
				Workers: opts.workers,
			}
			return c.runQuery(cmd, qo, po, fmt.Sprintf("Searching %d lines...", opts.bound+1))
		},
	}

	qo.register(cmd)
	cmd.Flags().Int64VarP(&opts.bound, "bound", "b", 0, "inclusive coordinate bound (default from config, 4000000)")
	cmd.Flags().Int64VarP(&opts.multiplier, "multiplier", "k", 0, "key multiplier (default 4000000)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "parallel workers (default number of CPUs)")

	return cmd
}
