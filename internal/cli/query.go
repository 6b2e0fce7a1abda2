package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	bzerrors "github.com/matzehuels/beaconzone/pkg/errors"
	"github.com/matzehuels/beaconzone/pkg/pipeline"
)

// queryOpts are the flags shared by every command that runs a query.
type queryOpts struct {
	input   string // report file, "-" or empty for stdin
	refresh bool   // recompute even when the answer is cached
}

func (o *queryOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.input, "input", "i", "", "sensor report file (default stdin)")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "recompute even if the answer is cached")
}

// runQuery executes opts against the input and prints the answer. A non-empty
// spin message shows a spinner while the query runs.
func (c *CLI) runQuery(cmd *cobra.Command, qo queryOpts, opts pipeline.Options, spin string) error {
	ctx := cmd.Context()

	input, err := readInput(cmd, qo.input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer runner.Close()

	opts.Refresh = qo.refresh
	prog := newProgress(c.Logger)

	var spinner *Spinner
	if spin != "" {
		spinner = newSpinner(ctx, cmd.ErrOrStderr(), spin)
		spinner.Start()
	}
	res, err := runner.Execute(ctx, input, opts)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError(bzerrors.UserMessage(err))
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Answered %s query", res.Answer.Mode))
	printAnswer(cmd.OutOrStdout(), cmd.ErrOrStderr(), res)
	return nil
}
