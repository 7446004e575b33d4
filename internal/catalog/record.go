package catalog

import "github.com/ginjaninja78/inventory-manager/internal/validation"

// Record is one inventory line item. Quantity and UnitPrice are kept exactly
// as read; numeric coercion happens only when a summary needs it.
type Record struct {
	ProductName string
	Quantity    string
	UnitPrice   string
	Category    string
}

// Field returns the value of a consolidated column by name.
func (r Record) Field(column string) (string, bool) {
	switch column {
	case validation.ColumnProductName:
		return r.ProductName, true
	case validation.ColumnQuantity:
		return r.Quantity, true
	case validation.ColumnUnitPrice:
		return r.UnitPrice, true
	case validation.ColumnCategory:
		return r.Category, true
	}
	return "", false
}

// Values returns the fields in consolidated file order.
func (r Record) Values() []string {
	return []string{r.ProductName, r.Quantity, r.UnitPrice, r.Category}
}
