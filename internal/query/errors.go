package query

import "fmt"

// ColumnNotFoundError is returned when a column search names a column the
// Catalog does not have.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column '%s' not found in the data", e.Column)
}

// AggregationError is returned by Summarize under the strict numeric policy
// when a quantity or unit price cannot be read as a number.
type AggregationError struct {
	Category    string
	Field       string
	ProductName string
	Value       string
	Err         error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("category '%s': %s of '%s' is not numeric (value: '%s')",
		e.Category, e.Field, e.ProductName, e.Value)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}
