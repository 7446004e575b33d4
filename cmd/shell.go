package cmd

import (
	"github.com/spf13/cobra"
)

// newShellCmd builds the 'shell' command. Running the root command without
// a subcommand does the same.
func newShellCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}
}
