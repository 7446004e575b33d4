package query

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/inventory-manager/internal/catalog"
	"github.com/ginjaninja78/inventory-manager/internal/config"
)

// records is a fixed Source for tests.
type records []catalog.Record

func (r records) Records() []catalog.Record { return r }

var widgets = records{
	{ProductName: "Widget A", Quantity: "3", UnitPrice: "10", Category: "Tools"},
	{ProductName: "Gadget", Quantity: "1", UnitPrice: "4", Category: "Widgets"},
	{ProductName: "Hose", Quantity: "2", UnitPrice: "25", Category: "Garden"},
}

func TestSearch_ProductOrCategory(t *testing.T) {
	engine := NewEngine(widgets, config.PolicyLenient)

	got := engine.Search("  WIDGET ")
	assert.Equal(t, []catalog.Record{widgets[0], widgets[1]}, got)
}

func TestSearch_EmptyTermMatchesAll(t *testing.T) {
	engine := NewEngine(widgets, config.PolicyLenient)
	assert.Equal(t, []catalog.Record(widgets), engine.Search(""))
	assert.Equal(t, []catalog.Record(widgets), engine.Search("   "))
}

func TestSearch_NoMatchOrEmptyCatalog(t *testing.T) {
	assert.Empty(t, NewEngine(widgets, "").Search("tractor"))
	assert.Empty(t, NewEngine(records{}, "").Search("anything"))
}

func TestSearch_StoreSource(t *testing.T) {
	store := catalog.NewStore(config.Default().Import, nil)
	require.NoError(t, store.Append(widgets...))

	engine := NewEngine(store, config.PolicyLenient)
	assert.Len(t, engine.Search("hose"), 1)
}

func TestSearchColumn(t *testing.T) {
	engine := NewEngine(widgets, config.PolicyLenient)

	got, err := engine.SearchColumn("unit_price", "2")
	require.NoError(t, err)
	assert.Equal(t, []catalog.Record{widgets[2]}, got)

	got, err = engine.SearchColumn(" category ", " GAR")
	require.NoError(t, err)
	assert.Equal(t, []catalog.Record{widgets[2]}, got)
}

func TestSearchColumn_UnknownColumn(t *testing.T) {
	engine := NewEngine(widgets, config.PolicyLenient)

	_, err := engine.SearchColumn("colour", "red")
	var notFound *ColumnNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "colour", notFound.Column)
	assert.EqualError(t, err, "column 'colour' not found in the data")
}

func TestParseQuery(t *testing.T) {
	assert.Equal(t, Query{Value: "widget"}, ParseQuery("widget"))
	assert.Equal(t, Query{Column: "category", Value: " tools", ByColumn: true}, ParseQuery("category = tools"))
	assert.Equal(t, Query{Column: "product_name", Value: "a=b", ByColumn: true}, ParseQuery("product_name=a=b"))
	assert.Equal(t, Query{Value: "x", ByColumn: true}, ParseQuery("=x"))
	assert.NotEqual(t, ParseQuery("x"), ParseQuery("=x"))
}

func TestRun(t *testing.T) {
	engine := NewEngine(widgets, config.PolicyLenient)

	got, err := engine.Run("garden")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = engine.Run("product_name=gad")
	require.NoError(t, err)
	assert.Equal(t, []catalog.Record{widgets[1]}, got)

	_, err = engine.Run("=x")
	var notFound *ColumnNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Empty(t, notFound.Column)
}

func TestSummarize(t *testing.T) {
	engine := NewEngine(records{
		{ProductName: "p1", Category: "A", Quantity: "3", UnitPrice: "10"},
		{ProductName: "p2", Category: "A", Quantity: "2", UnitPrice: "20"},
		{ProductName: "p3", Category: "B", Quantity: "5", UnitPrice: "5"},
	}, config.PolicyLenient)

	got, err := engine.Summarize()
	require.NoError(t, err)

	want := []CategorySummary{
		{Category: "A", Count: 2, TotalQuantity: 5, AverageUnitPrice: 15, PricedCount: 2},
		{Category: "B", Count: 1, TotalQuantity: 5, AverageUnitPrice: 5, PricedCount: 1},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_FirstAppearanceOrderAndCaseSensitive(t *testing.T) {
	engine := NewEngine(records{
		{ProductName: "p", Category: "zeta", Quantity: "1", UnitPrice: "1"},
		{ProductName: "p", Category: "Alpha", Quantity: "1", UnitPrice: "1"},
		{ProductName: "p", Category: "alpha", Quantity: "1", UnitPrice: "1"},
		{ProductName: "p", Category: "zeta", Quantity: "1", UnitPrice: "1"},
	}, config.PolicyLenient)

	got, err := engine.Summarize()
	require.NoError(t, err)

	var categories []string
	for _, s := range got {
		categories = append(categories, s.Category)
	}
	assert.Equal(t, []string{"zeta", "Alpha", "alpha"}, categories)
}

func TestSummarize_Idempotent(t *testing.T) {
	engine := NewEngine(widgets, config.PolicyLenient)

	first, err := engine.Summarize()
	require.NoError(t, err)
	second, err := engine.Summarize()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSummarize_LenientSkipsBadFields(t *testing.T) {
	engine := NewEngine(records{
		{ProductName: "ok", Category: "A", Quantity: "4", UnitPrice: "$10.00"},
		{ProductName: "bad qty", Category: "A", Quantity: "lots", UnitPrice: "20"},
		{ProductName: "bad price", Category: "A", Quantity: "1", UnitPrice: "n/a"},
		{ProductName: "no price", Category: "B", Quantity: "2", UnitPrice: ""},
	}, config.PolicyLenient)

	got, err := engine.Summarize()
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 3, got[0].Count)
	assert.InDelta(t, 5, got[0].TotalQuantity, 1e-9)
	assert.InDelta(t, 15, got[0].AverageUnitPrice, 1e-9)
	assert.Equal(t, 2, got[0].PricedCount)
	assert.Equal(t, 2, got[0].SkippedFields)

	assert.Equal(t, 1, got[1].Count)
	assert.Zero(t, got[1].AverageUnitPrice)
	assert.Zero(t, got[1].PricedCount)
	assert.Equal(t, 1, got[1].SkippedFields)
}

func TestSummarize_StrictFails(t *testing.T) {
	engine := NewEngine(records{
		{ProductName: "ok", Category: "A", Quantity: "4", UnitPrice: "10"},
		{ProductName: "Drill", Category: "Tools", Quantity: "3", UnitPrice: "cheap"},
	}, config.PolicyStrict)

	got, err := engine.Summarize()
	assert.Nil(t, got)

	var aggErr *AggregationError
	require.True(t, errors.As(err, &aggErr))
	assert.Equal(t, "Tools", aggErr.Category)
	assert.Equal(t, "unit_price", aggErr.Field)
	assert.Equal(t, "Drill", aggErr.ProductName)
	assert.Equal(t, "cheap", aggErr.Value)
	assert.Contains(t, err.Error(), "unit_price")
}

func TestSummarize_Empty(t *testing.T) {
	got, err := NewEngine(records{}, config.PolicyStrict).Summarize()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSummarizeCounts(t *testing.T) {
	engine := NewEngine(records{
		{ProductName: "a", Category: "Tools"},
		{ProductName: "b", Category: "Garden"},
		{ProductName: "c", Category: "Tools"},
	}, config.PolicyLenient)

	assert.Equal(t, []CategoryCount{
		{Category: "Tools", Count: 2},
		{Category: "Garden", Count: 1},
	}, engine.SummarizeCounts())

	assert.Empty(t, NewEngine(records{}, "").SummarizeCounts())
}
