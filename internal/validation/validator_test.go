package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/inventory-manager/internal/config"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"integer", "3", 3},
		{"negative", "-2", -2},
		{"decimal", "10.50", 10.5},
		{"leading point", ".5", 0.5},
		{"scientific", "1e3", 1000},
		{"padded", "  7 ", 7},
		{"dollar", "$10", 10},
		{"euro", "€4.25", 4.25},
		{"pound", "£1", 1},
		{"thousands", "1,234.56", 1234.56},
		{"accounting negative", "(12.00)", -12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseNumber_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "ten", "1.2.3", "12abc", "--1"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseNumber(input)
			assert.Error(t, err)
		})
	}
}

func TestRequiredColumns(t *testing.T) {
	assert.Equal(t, Columns, RequiredColumns(config.ModeExplicit))
	assert.Equal(t,
		[]string{ColumnProductName, ColumnQuantity, ColumnUnitPrice},
		RequiredColumns(config.ModeFilename))
}

func TestCheckColumns(t *testing.T) {
	assert.NoError(t, CheckColumns([]string{"category", "unit_price", "quantity", "product_name", "sku"}, Columns))

	err := CheckColumns([]string{"product_name", "quantity"}, Columns)
	var missing *MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"unit_price", "category"}, missing.Missing)
	assert.EqualError(t, err, "missing required column(s): unit_price, category")
}

func TestIsColumn(t *testing.T) {
	assert.True(t, IsColumn("unit_price"))
	assert.False(t, IsColumn("Unit_Price"))
}
