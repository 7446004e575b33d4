// =============================================================================
// Inventory Manager - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Every subcommand is
// attached to it, and it starts the interactive shell when run on its own.
//
// COBRA CLI STRUCTURE:
//   rootCmd (inventory)              -> interactive shell
//   ├── searchCmd  (inventory search)
//   ├── summaryCmd (inventory summary)
//   ├── reportCmd  (inventory report)
//   ├── saveCmd    (inventory save)
//   ├── showCmd    (inventory show)
//   ├── exportCmd  (inventory export)
//   ├── shellCmd   (inventory shell)
//   └── versionCmd (inventory version)
//
// CONFIGURATION:
//   Before any command runs, the root command:
//   1. Loads inventory.yaml (or the file named by --config)
//   2. Applies flag overrides (--mode, --strict, --no-color)
//   3. Builds the zap logger and the console presenter
//
// Data is loaded per invocation with --load-file and/or --load. When both
// are given the consolidated file is restored first and the directory is
// added on top.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ginjaninja78/inventory-manager/internal/config"
	"github.com/ginjaninja78/inventory-manager/internal/inventory"
	"github.com/ginjaninja78/inventory-manager/internal/logging"
	"github.com/ginjaninja78/inventory-manager/internal/present"
	"github.com/ginjaninja78/inventory-manager/internal/shell"
)

// =============================================================================
// GLOBAL OPTIONS
// =============================================================================

// rootOptions holds the persistent flag values and everything built from
// them before a command runs.
type rootOptions struct {
	// cfgFile is the path to the configuration file (--config).
	cfgFile string

	// verbose forces debug logging (--verbose).
	verbose bool

	// loadDir is a directory imported before the command runs (--load).
	loadDir string

	// loadFile is a consolidated file restored before the command runs
	// (--load-file).
	loadFile string

	// mode overrides import.mode (--mode).
	mode string

	// strict selects the strict numeric policy (--strict).
	strict bool

	// noColor disables colored output (--no-color).
	noColor bool

	// errorLogDir receives import error logs (--error-log).
	errorLogDir string

	cfg    *config.Config
	logger *zap.Logger
	out    *present.Presenter
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "inventory",
		Short: "Inventory Manager - Consolidate, search and summarize CSV inventory files",
		Long: `Inventory Manager merges inventory CSV files into a single catalog that can
be searched, summarized by category, saved and exported.

Each input file needs product_name, quantity and unit_price columns, plus a
category column unless --mode filename takes the category from the file name.

Example Usage:
  inventory                                   # Start the interactive shell
  inventory --load ./data search widget       # Search product names and categories
  inventory --load ./data search category=Tools
  inventory --load ./data summary totals.xlsx # Summary as a workbook
  inventory --load-file catalog.csv show 10   # Preview a saved catalog`,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},

		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},

		// Without a subcommand the root starts the interactive shell.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================
	// Persistent flags are available to this command and all subcommands.

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", config.DefaultPath,
		"Path to the configuration file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable verbose output for debugging")
	flags.StringVar(&opts.loadDir, "load", "",
		"Directory of CSV files to import before running the command")
	flags.StringVar(&opts.loadFile, "load-file", "",
		"Consolidated CSV file to restore before running the command")
	flags.StringVar(&opts.mode, "mode", "",
		"Category source for directory imports: explicit or filename")
	flags.BoolVar(&opts.strict, "strict", false,
		"Fail the summary on non-numeric quantity or unit_price values")
	flags.BoolVar(&opts.noColor, "no-color", false,
		"Disable colored output")
	flags.StringVar(&opts.errorLogDir, "error-log", "",
		"Directory to write an import error log into when files are skipped")

	rootCmd.AddCommand(
		newSearchCmd(opts),
		newSummaryCmd(opts),
		newReportCmd(opts),
		newSaveCmd(opts),
		newShowCmd(opts),
		newExportCmd(opts),
		newShellCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the CLI. This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		_, _ = errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// SETUP
// =============================================================================

// setup loads the configuration, applies flag overrides and builds the
// logger and presenter.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)

	// Only an explicitly named config file has to exist.
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(o.cfgFile)
	} else {
		cfg, err = config.LoadOrDefault(o.cfgFile)
	}
	if err != nil {
		return err
	}

	if o.mode != "" {
		mode, err := config.ParseImportMode(o.mode)
		if err != nil {
			return err
		}
		cfg.Import.Mode = mode
	}
	if o.strict {
		cfg.Summary.NumericPolicy = config.PolicyStrict
	}
	if o.noColor {
		disabled := false
		cfg.Output.Color = &disabled
	}

	logger, err := logging.New(cfg.Logging, o.verbose)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logger
	o.out = present.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Output.ColorEnabled())

	logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("mode", string(cfg.Import.Mode)),
		zap.String("numeric_policy", string(cfg.Summary.NumericPolicy)))

	return nil
}

// newSession creates a Session and loads the data named by --load-file and
// --load. Files skipped during the directory import have already been
// reported and do not stop the command.
func (o *rootOptions) newSession() (*inventory.Session, error) {
	session := inventory.New(o.cfg, o.out, o.logger)
	session.SetErrorLogDir(o.errorLogDir)

	if o.loadFile != "" {
		if err := session.LoadFile(o.loadFile); err != nil {
			return nil, err
		}
	}

	if o.loadDir != "" {
		err := session.LoadDirectory(o.loadDir)
		if errors.Is(err, inventory.ErrImportFailures) {
			o.out.Warn("%v", err)
		} else if err != nil {
			return nil, err
		}
	}

	return session, nil
}

// runShell starts the interactive shell over a freshly loaded Session.
func runShell(cmd *cobra.Command, opts *rootOptions) error {
	session, err := opts.newSession()
	if err != nil {
		return err
	}
	if err := shell.New(session, opts.out, opts.logger).Run(cmd.InOrStdin()); err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	return nil
}
