// =============================================================================
// Inventory Manager - Report Writers
// =============================================================================
//
// This module writes the tool's output files:
//   - Count report:   Category,Count                            (CSV)
//   - Summary report: Category,Total Quantity,Average Price     (CSV or XLSX)
//   - Catalog export: <inventory><category><item>...            (XML)
//
// Rows always follow the order the query engine returned, which is the order
// categories first appeared in the Catalog.
//
// =============================================================================

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ginjaninja78/inventory-manager/internal/query"
)

// Column headers of the CSV reports.
var (
	CountHeader   = []string{"Category", "Count"}
	SummaryHeader = []string{"Category", "Total Quantity", "Average Price"}
)

// =============================================================================
// COUNT REPORT
// =============================================================================

// WriteCounts writes the Category,Count report.
func WriteCounts(w io.Writer, counts []query.CategoryCount) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CountHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, c := range counts {
		if err := writer.Write([]string{c.Category, strconv.Itoa(c.Count)}); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// SaveCounts writes the count report to path, overwriting it.
func SaveCounts(path string, counts []query.CategoryCount) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteCounts(w, counts)
	})
}

// =============================================================================
// SUMMARY REPORT
// =============================================================================

// WriteSummary writes the summary report as CSV.
func WriteSummary(w io.Writer, summaries []query.CategorySummary) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(SummaryHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, s := range summaries {
		if err := writer.Write(SummaryRow(s)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// SaveSummary writes the summary report to path. A ".xlsx" extension
// produces a workbook; anything else produces CSV.
func SaveSummary(path string, summaries []query.CategorySummary) error {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return SaveSummaryXLSX(path, summaries)
	}
	return writeFile(path, func(w io.Writer) error {
		return WriteSummary(w, summaries)
	})
}

// SummaryRow formats one summary line the way the reports print it.
func SummaryRow(s query.CategorySummary) []string {
	return []string{s.Category, FormatNumber(s.TotalQuantity), FormatNumber(s.AverageUnitPrice)}
}

// FormatNumber prints a number without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// writeFile creates path and hands it to write, reporting close errors.
func writeFile(path string, write func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := write(file); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
