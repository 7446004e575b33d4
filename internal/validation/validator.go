// =============================================================================
// Inventory Manager - Validation Module
// =============================================================================
//
// This module holds the only schema checks the tool performs:
//   - Column presence: does a file's header carry the columns an import
//     mode needs?
//   - Numeric coercion: can a quantity or unit price be read as a number?
//
// Values are never rejected for their content at load time. Numeric checks
// run only when the summary needs a number.
//
// =============================================================================

package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ginjaninja78/inventory-manager/internal/config"
)

// =============================================================================
// COLUMN NAMES
// =============================================================================

// Canonical column names of the consolidated schema.
const (
	ColumnProductName = "product_name"
	ColumnQuantity    = "quantity"
	ColumnUnitPrice   = "unit_price"
	ColumnCategory    = "category"
)

// Columns is the consolidated schema in file order.
var Columns = []string{ColumnProductName, ColumnQuantity, ColumnUnitPrice, ColumnCategory}

// RequiredColumns returns the columns a row must carry in the given import
// mode. Filename mode takes the category from the file instead.
func RequiredColumns(mode config.ImportMode) []string {
	if mode == config.ModeFilename {
		return []string{ColumnProductName, ColumnQuantity, ColumnUnitPrice}
	}
	return Columns
}

// IsColumn reports whether name is one of the consolidated columns.
func IsColumn(name string) bool {
	for _, c := range Columns {
		if c == name {
			return true
		}
	}
	return false
}

// =============================================================================
// COLUMN PRESENCE
// =============================================================================

// MissingColumnsError reports required columns absent from a header.
type MissingColumnsError struct {
	// Missing lists the absent columns in schema order.
	Missing []string
}

// Error implements the error interface.
func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required column(s): %s", strings.Join(e.Missing, ", "))
}

// CheckColumns returns a *MissingColumnsError when any required column is
// absent from headers, or nil.
func CheckColumns(headers []string, required []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var missing []string
	for _, c := range required {
		if !present[c] {
			missing = append(missing, c)
		}
	}

	if len(missing) > 0 {
		return &MissingColumnsError{Missing: missing}
	}
	return nil
}

// =============================================================================
// NUMERIC COERCION
// =============================================================================

// numericRegex matches integers, decimals and scientific notation after
// cleanup.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumber reads a quantity or price.
//
// Accepted forms:
//   - plain numbers: "3", "-2", "10.50", ".5", "1e3"
//   - a currency symbol: "$10", "€10", "£10"
//   - thousands separators: "1,234.56"
//   - accounting negatives: "(12.00)"
//
// RETURNS:
//   - The parsed value.
//   - An error naming the value when it is empty or not numeric.
func ParseNumber(value string) (float64, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, fmt.Errorf("empty value is not a number")
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, "£", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if !numericRegex.MatchString(s) {
		return 0, fmt.Errorf("value '%s' is not a valid number", value)
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("value '%s' is not a valid number: %w", value, err)
	}

	if negative {
		n = -n
	}
	return n, nil
}
