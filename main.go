// =============================================================================
// Inventory Manager - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Inventory Manager CLI application.
// It delegates command execution to the cmd package.
//
// USAGE:
//   inventory                        - Start the interactive shell
//   inventory --load <dir> search X  - Search the imported files
//   inventory --load <dir> summary   - Summarize by category
//   inventory version                - Display the application version
//
// ARCHITECTURE:
//   - cmd/                : CLI command definitions (Cobra)
//   - internal/config     : YAML configuration
//   - internal/csvparser  : CSV reading
//   - internal/validation : Column checks and number parsing
//   - internal/catalog    : The in-memory Catalog and its load/save paths
//   - internal/query      : Search and category aggregation
//   - internal/report     : CSV, XLSX and XML writers
//   - internal/inventory  : Operations shared by the CLI and the shell
//   - internal/shell      : Interactive command loop
//   - internal/present    : Console output
//   - internal/logging    : zap logger setup
//   - pkg/utils           : File discovery, output naming, error logs
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/inventory-manager/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
