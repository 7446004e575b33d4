// =============================================================================
// Inventory Manager - Console Presentation
// =============================================================================
//
// The Presenter turns results from the catalog and query packages into
// console output. The core packages never print; everything a user sees on
// the terminal goes through here.
//
// OUTPUT CHANNELS:
//   - out:    tables, confirmations and informational lines
//   - errOut: warnings and errors
//
// Colors come from fatih/color and tables are laid out with lipgloss. With
// color disabled the output is plain text with the same layout.
//
// =============================================================================

package present

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/ginjaninja78/inventory-manager/internal/catalog"
	"github.com/ginjaninja78/inventory-manager/internal/query"
	"github.com/ginjaninja78/inventory-manager/internal/report"
	"github.com/ginjaninja78/inventory-manager/internal/validation"
)

// Presenter writes user-facing output.
type Presenter struct {
	out    io.Writer
	errOut io.Writer

	success *color.Color
	info    *color.Color
	warn    *color.Color
	fail    *color.Color

	header lipgloss.Style
	cell   lipgloss.Style
	muted  lipgloss.Style
}

// New creates a Presenter. When enableColor is false no escape sequences
// are written, regardless of the terminal.
func New(out, errOut io.Writer, enableColor bool) *Presenter {
	p := &Presenter{
		out:     out,
		errOut:  errOut,
		success: color.New(color.FgGreen),
		info:    color.New(color.FgCyan),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed, color.Bold),
		header:  lipgloss.NewStyle().Padding(0, 1),
		cell:    lipgloss.NewStyle().Padding(0, 1),
		muted:   lipgloss.NewStyle(),
	}

	if enableColor {
		p.header = p.header.Bold(true)
		p.muted = p.muted.Foreground(lipgloss.Color("241"))
	} else {
		for _, c := range []*color.Color{p.success, p.info, p.warn, p.fail} {
			c.DisableColor()
		}
	}

	return p
}

// Out returns the writer used for regular output.
func (p *Presenter) Out() io.Writer {
	return p.out
}

// =============================================================================
// STATUS LINES
// =============================================================================

// Success prints a confirmation line.
func (p *Presenter) Success(format string, args ...interface{}) {
	_, _ = p.success.Fprintf(p.out, format+"\n", args...)
}

// Info prints an informational line.
func (p *Presenter) Info(format string, args ...interface{}) {
	_, _ = p.info.Fprintf(p.out, format+"\n", args...)
}

// Plain prints a line without color.
func (p *Presenter) Plain(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Warn prints a warning line to the error stream.
func (p *Presenter) Warn(format string, args ...interface{}) {
	_, _ = p.warn.Fprintf(p.errOut, format+"\n", args...)
}

// Error prints err to the error stream.
func (p *Presenter) Error(err error) {
	_, _ = p.fail.Fprintf(p.errOut, "Error: %v\n", err)
}

// FileErrors prints one line per file a directory import had to skip.
func (p *Presenter) FileErrors(errs []*catalog.FileError) {
	for _, e := range errs {
		_, _ = p.fail.Fprintln(p.errOut, e.Error())
	}
}

// =============================================================================
// TABLES
// =============================================================================

// Records prints records as a table with the four Catalog columns.
func (p *Presenter) Records(records []catalog.Record) {
	if len(records) == 0 {
		p.Info("No matching records found.")
		return
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = r.Values()
	}
	p.Table(validation.Columns, rows)
	p.Plain("%d record(s)", len(records))
}

// Summary prints the per-category totals and averages.
func (p *Presenter) Summary(summaries []query.CategorySummary) {
	if len(summaries) == 0 {
		p.Info("No categories to summarize.")
		return
	}

	rows := make([][]string, 0, len(summaries))
	skipped := 0
	for _, s := range summaries {
		rows = append(rows, report.SummaryRow(s))
		skipped += s.SkippedFields
	}
	p.Table(report.SummaryHeader, rows)

	if skipped > 0 {
		p.Warn("%d non-numeric quantity/price value(s) were left out of the totals", skipped)
	}
}

// Counts prints the number of records per category.
func (p *Presenter) Counts(counts []query.CategoryCount) {
	if len(counts) == 0 {
		p.Info("No categories to report.")
		return
	}

	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{c.Category, strconv.Itoa(c.Count)}
	}
	p.Table(report.CountHeader, rows)
}

// Table renders headers and rows as aligned columns separated by '|', with
// a divider under the header. Cells beyond the header count are dropped.
func (p *Presenter) Table(headers []string, rows [][]string) {
	fmt.Fprint(p.out, p.renderTable(headers, rows))
}

func (p *Presenter) renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	// Padding is counted in a lipgloss width.
	for i := range widths {
		widths[i] += 2
	}

	var sb strings.Builder
	sep := p.muted.Render("|")

	for i, h := range headers {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(p.header.Width(widths[i]).Render(h))
	}
	sb.WriteString("\n")

	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(p.muted.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	for _, row := range rows {
		for i := range headers {
			if i > 0 {
				sb.WriteString(sep)
			}
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			sb.WriteString(p.cell.Width(widths[i]).Render(cell))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
