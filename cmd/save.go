// =============================================================================
// Inventory Manager - Save and Export Commands
// =============================================================================
//
// COMMAND USAGE:
//   inventory --load <dir> save <path>          # Consolidated four-column CSV
//   inventory --load <dir> export <path.xml>    # XML grouped by category
//
// A saved file can be restored later with --load-file.
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"
)

// newSaveCmd builds the 'save' command.
func newSaveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "save <path>",
		Short: "Write the catalog as a consolidated CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := opts.newSession()
			if err != nil {
				return err
			}
			return session.Save(args[0])
		},
	}
}

// newExportCmd builds the 'export' command.
func newExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path.xml>",
		Short: "Write the catalog as XML grouped by category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := opts.newSession()
			if err != nil {
				return err
			}
			return session.Export(args[0])
		},
	}
}
