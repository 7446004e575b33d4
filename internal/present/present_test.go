package present

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/inventory-manager/internal/catalog"
	"github.com/ginjaninja78/inventory-manager/internal/query"
)

func newPresenter() (*Presenter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return New(&out, &errOut, false), &out, &errOut
}

func TestStatusLines(t *testing.T) {
	p, out, errOut := newPresenter()

	p.Success("Saved %d records", 3)
	p.Info("hello")
	p.Warn("careful")
	p.Error(errors.New("boom"))

	assert.Equal(t, "Saved 3 records\nhello\n", out.String())
	assert.Equal(t, "careful\nError: boom\n", errOut.String())
}

func TestFileErrors(t *testing.T) {
	p, out, errOut := newPresenter()

	p.FileErrors([]*catalog.FileError{
		{File: "data/bad.csv", Err: errors.New("bare \" in non-quoted field")},
	})

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "error loading data/bad.csv")
}

func TestRecords(t *testing.T) {
	p, out, _ := newPresenter()

	p.Records([]catalog.Record{
		{ProductName: "Widget A", Quantity: "3", UnitPrice: "10", Category: "Tools"},
		{ProductName: "Hose", Quantity: "12", UnitPrice: "25.50", Category: "Garden"},
	})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "product_name")
	assert.Contains(t, lines[0], "category")
	assert.True(t, strings.HasPrefix(lines[1], "---"))
	assert.Contains(t, lines[2], "Widget A")
	assert.Contains(t, lines[3], "25.50")
	assert.Equal(t, "2 record(s)", lines[4])

	// Columns line up.
	assert.Equal(t, strings.Index(lines[0], "|"), strings.Index(lines[2], "|"))
	assert.Equal(t, strings.Index(lines[2], "|"), strings.Index(lines[3], "|"))
}

func TestRecords_Empty(t *testing.T) {
	p, out, _ := newPresenter()
	p.Records(nil)
	assert.Equal(t, "No matching records found.\n", out.String())
}

func TestSummary(t *testing.T) {
	p, out, errOut := newPresenter()

	p.Summary([]query.CategorySummary{
		{Category: "Tools", Count: 2, TotalQuantity: 5, AverageUnitPrice: 15, PricedCount: 2},
		{Category: "Garden", Count: 1, TotalQuantity: 1, SkippedFields: 1},
	})

	assert.Contains(t, out.String(), "Average Price")
	assert.Contains(t, out.String(), "Tools")
	assert.Contains(t, out.String(), "15")
	assert.Contains(t, errOut.String(), "1 non-numeric")
}

func TestCounts(t *testing.T) {
	p, out, _ := newPresenter()

	p.Counts([]query.CategoryCount{{Category: "Tools", Count: 2}})
	assert.Contains(t, out.String(), "Count")
	assert.Contains(t, out.String(), "Tools")

	out.Reset()
	p.Counts(nil)
	assert.Equal(t, "No categories to report.\n", out.String())
}

func TestTable_ShortRows(t *testing.T) {
	p, out, _ := newPresenter()

	p.Table([]string{"a", "b"}, [][]string{{"x"}, {"y", "z", "dropped"}})

	assert.NotContains(t, out.String(), "dropped")
	assert.Len(t, strings.Split(strings.TrimRight(out.String(), "\n"), "\n"), 4)
}
