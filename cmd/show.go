// =============================================================================
// Inventory Manager - Show Command
// =============================================================================
//
// COMMAND USAGE:
//   inventory --load-file <catalog.csv> show [n]
//
// Prints the first n records (output.show_rows when n is omitted).
//
// =============================================================================

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// newShowCmd builds the 'show' command.
func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show [n]",
		Short: "Preview the first records of the catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 0
			if len(args) == 1 {
				var err error
				if n, err = strconv.Atoi(args[0]); err != nil || n <= 0 {
					return fmt.Errorf("show expects a positive number, got %q", args[0])
				}
			}

			session, err := opts.newSession()
			if err != nil {
				return err
			}
			return session.Show(n)
		},
	}
}
