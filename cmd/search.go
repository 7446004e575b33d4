// =============================================================================
// Inventory Manager - Search Command
// =============================================================================
//
// COMMAND USAGE:
//   inventory --load <dir> search <term>
//   inventory --load <dir> search <column>=<value>
//
// A plain term matches product names and categories. A column=value term
// matches one column. Both comparisons ignore case.
//
// =============================================================================

package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// newSearchCmd builds the 'search' command.
func newSearchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term | column=value>",
		Short: "Search the catalog",
		Long: `Search product names and categories for a term, or a single column with
column=value. Matching ignores case; an unknown column is an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := opts.newSession()
			if err != nil {
				return err
			}
			return session.Search(strings.Join(args, " "))
		},
	}
}
