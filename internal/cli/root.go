package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version. The main
// package calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "RoomFit lays out furniture in a room and prices the result",
		Long: `RoomFit places furniture from IKEA, Wayfair and Amazon into a room of
the given size. Each category has a preferred spot (beds against the top
wall, sofas against the bottom wall, lamps in the corners); items that do
not fit there are moved to the nearest free position, and items that do
not fit at all are reported as unplaced.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.SetOut(c.out)

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.rotateCommand())
	root.AddCommand(c.swapCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.summaryCommand())
	root.AddCommand(c.alternativesCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.templateCommand())
	root.AddCommand(c.backupCommand())

	return root
}
