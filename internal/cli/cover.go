package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/beaconzone/pkg/coverage"
	"github.com/matzehuels/beaconzone/pkg/pipeline"
)

// coverCommand creates the cover command: a debug tool that prints the merged
// cover of one line, one interval per line on stdout.
func (c *CLI) coverCommand() *cobra.Command {
	var (
		input string
		line  int64
	)

	cmd := &cobra.Command{
		Use:   "cover",
		Short: "Print the merged coverage intervals of a line (debug)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("line") {
				line = c.cfg.Count.Line
			}

			data, err := readInput(cmd, input)
			if err != nil {
				return err
			}

			eng, stats, err := pipeline.NewRunner(nil, nil, c.Logger).Load(cmd.Context(), data)
			if err != nil {
				return err
			}
			cover, err := coverage.CoverAt(eng.Sources, line)
			if err != nil {
				return err
			}

			out, status := cmd.OutOrStdout(), cmd.ErrOrStderr()
			for _, iv := range cover {
				fmt.Fprintln(out, iv)
			}

			if len(cover) == 0 {
				printWarning(status, "no source reaches line %d", line)
			}
			printKeyValue(status, "line", fmt.Sprint(line))
			printKeyValue(status, "intervals", fmt.Sprint(len(cover)))
			printKeyValue(status, "covered", fmt.Sprint(cover.Len()))
			printKeyValue(status, "count", fmt.Sprint(coverage.Count(cover, line, eng.Witnesses)))
			printStats(status, stats, false)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "sensor report file (default stdin)")
	cmd.Flags().Int64VarP(&line, "line", "l", 0, "line to inspect (default from config)")

	return cmd
}
