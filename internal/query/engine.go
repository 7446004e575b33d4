// Package query answers searches and category aggregations over the Catalog.
//
// Search results and summaries always follow Catalog order: matches are not
// re-sorted and categories appear in the order they were first seen.
package query

import (
	"strings"

	"github.com/ginjaninja78/inventory-manager/internal/catalog"
	"github.com/ginjaninja78/inventory-manager/internal/config"
	"github.com/ginjaninja78/inventory-manager/internal/validation"
)

// Source supplies the Records to query. *catalog.Store satisfies it.
type Source interface {
	Records() []catalog.Record
}

// Engine runs queries against a Source.
type Engine struct {
	source Source
	policy config.NumericPolicy
}

// NewEngine returns an Engine over source. An empty policy means lenient.
func NewEngine(source Source, policy config.NumericPolicy) *Engine {
	if policy == "" {
		policy = config.PolicyLenient
	}
	return &Engine{source: source, policy: policy}
}

// =============================================================================
// SEARCH
// =============================================================================

// Search returns the Records whose product name or category contains term,
// ignoring case and surrounding whitespace. An empty term matches everything.
func (e *Engine) Search(term string) []catalog.Record {
	term = strings.ToLower(strings.TrimSpace(term))

	var matches []catalog.Record
	for _, r := range e.source.Records() {
		if strings.Contains(strings.ToLower(r.ProductName), term) ||
			strings.Contains(strings.ToLower(r.Category), term) {
			matches = append(matches, r)
		}
	}
	return matches
}

// SearchColumn returns the Records whose named column contains value,
// ignoring case. An unknown column is a *ColumnNotFoundError.
func (e *Engine) SearchColumn(column, value string) ([]catalog.Record, error) {
	column = strings.TrimSpace(column)
	if !validation.IsColumn(column) {
		return nil, &ColumnNotFoundError{Column: column}
	}

	value = strings.ToLower(strings.TrimSpace(value))

	var matches []catalog.Record
	for _, r := range e.source.Records() {
		field, _ := r.Field(column)
		if strings.Contains(strings.ToLower(field), value) {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

// Query is a parsed search expression.
type Query struct {
	// Column is set for "column=value" expressions.
	Column string
	// Value is the search term.
	Value string
	// ByColumn is true when the expression contained an '=', even with an
	// empty column name.
	ByColumn bool
}

// ParseQuery splits "column=value" on the first '='. Anything without an
// '=' is a plain search term.
func ParseQuery(q string) Query {
	column, value, found := strings.Cut(q, "=")
	if !found {
		return Query{Value: q}
	}
	return Query{Column: strings.TrimSpace(column), Value: value, ByColumn: true}
}

// Run executes a search expression: a column search when q names a column,
// a product/category search otherwise.
func (e *Engine) Run(q string) ([]catalog.Record, error) {
	parsed := ParseQuery(q)
	if !parsed.ByColumn {
		return e.Search(parsed.Value), nil
	}
	return e.SearchColumn(parsed.Column, parsed.Value)
}

// =============================================================================
// AGGREGATION
// =============================================================================

// CategorySummary is the aggregate for one category.
type CategorySummary struct {
	Category string

	// Count is the number of Records in the category, including any whose
	// numbers could not be read.
	Count int

	// TotalQuantity is the sum of the numeric quantities.
	TotalQuantity float64

	// AverageUnitPrice is the mean of the numeric unit prices, or 0 when
	// the category has none.
	AverageUnitPrice float64

	// PricedCount is the number of unit prices that went into the average.
	PricedCount int

	// SkippedFields counts quantities and prices left out under the lenient
	// policy.
	SkippedFields int
}

// CategoryCount is the number of Records in one category.
type CategoryCount struct {
	Category string
	Count    int
}

// Summarize groups Records by exact category and totals quantities and
// averages unit prices. Under the strict policy the first non-numeric field
// returns an *AggregationError and no summary.
func (e *Engine) Summarize() ([]CategorySummary, error) {
	var (
		order  []string
		groups = make(map[string]*CategorySummary)
		prices = make(map[string]float64)
	)

	for _, r := range e.source.Records() {
		g, ok := groups[r.Category]
		if !ok {
			g = &CategorySummary{Category: r.Category}
			groups[r.Category] = g
			order = append(order, r.Category)
		}
		g.Count++

		qty, err := validation.ParseNumber(r.Quantity)
		if err != nil {
			if e.policy == config.PolicyStrict {
				return nil, aggregationError(r, validation.ColumnQuantity, r.Quantity, err)
			}
			g.SkippedFields++
		} else {
			g.TotalQuantity += qty
		}

		price, err := validation.ParseNumber(r.UnitPrice)
		if err != nil {
			if e.policy == config.PolicyStrict {
				return nil, aggregationError(r, validation.ColumnUnitPrice, r.UnitPrice, err)
			}
			g.SkippedFields++
		} else {
			prices[r.Category] += price
			g.PricedCount++
		}
	}

	summaries := make([]CategorySummary, 0, len(order))
	for _, category := range order {
		g := groups[category]
		if g.PricedCount > 0 {
			g.AverageUnitPrice = prices[category] / float64(g.PricedCount)
		}
		summaries = append(summaries, *g)
	}
	return summaries, nil
}

// SummarizeCounts returns the number of Records per category.
func (e *Engine) SummarizeCounts() []CategoryCount {
	var counts []CategoryCount
	index := make(map[string]int)

	for _, r := range e.source.Records() {
		i, ok := index[r.Category]
		if !ok {
			i = len(counts)
			index[r.Category] = i
			counts = append(counts, CategoryCount{Category: r.Category})
		}
		counts[i].Count++
	}
	return counts
}

func aggregationError(r catalog.Record, field, value string, err error) *AggregationError {
	return &AggregationError{
		Category:    r.Category,
		Field:       field,
		ProductName: r.ProductName,
		Value:       value,
		Err:         err,
	}
}
