package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/beaconzone/pkg/buildinfo"
	"github.com/matzehuels/beaconzone/pkg/observability"
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	buildinfo.Version = v
	buildinfo.Commit = c
	buildinfo.Date = d
}

// RootCommand creates the root cobra command with all subcommands registered.
//
// The root's PersistentPreRunE loads the config file and installs logging
// hooks; callers that wrap it must call the original.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Beaconzone maps sensor coverage on a Manhattan grid",
		Long: `Beaconzone reads sensor reports, turns each sensor into a diamond-shaped
coverage region, and answers two questions: how many positions on a line are
provably empty, and where the single uncovered position inside a square is.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			hooks := newLogHooks(c.Logger)
			observability.SetEngineHooks(hooks)
			observability.SetCacheHooks(hooks)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/beaconzone/config.toml)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the result cache")

	root.AddCommand(c.countCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.coverCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
