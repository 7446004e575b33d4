// =============================================================================
// Inventory Manager - Summary and Report Commands
// =============================================================================
//
// COMMAND USAGE:
//   inventory --load <dir> summary [output]   # Category,Total Quantity,Average Price
//   inventory --load <dir> report [output]    # Category,Count
//
// Both print their table and write it to the output path. Without a path
// the configured file name is used (summary_report.csv / report.csv). A
// summary path ending in .xlsx produces a workbook.
//
// =============================================================================

package cmd

import (
	"github.com/spf13/cobra"
)

// newSummaryCmd builds the 'summary' command.
func newSummaryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary [output]",
		Short: "Total quantity and average unit price per category",
		Long: `Group the catalog by category, total the quantities and average the unit
prices. Non-numeric values are skipped unless --strict is given, in which
case the first one fails the command.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := opts.newSession()
			if err != nil {
				return err
			}
			return session.Summary(optionalArg(args))
		},
	}
}

// newReportCmd builds the 'report' command.
func newReportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report [output]",
		Short: "Record count per category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := opts.newSession()
			if err != nil {
				return err
			}
			return session.Report(optionalArg(args))
		},
	}
}

// optionalArg returns the first argument, or "" when there is none.
func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
