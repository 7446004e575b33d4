package csvparser

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/inventory-manager/internal/config"
)

func defaultSettings() config.CSVSettings {
	return config.Default().Import.CSV
}

func TestParse_RowsKeyedByHeader(t *testing.T) {
	input := "category, product_name ,quantity,unit_price,notes\n" +
		"Tools,Widget A,3,10,\n" +
		"\n" +
		"Garden, Hose ,1,25.5,spare\n"

	data, err := Parse(strings.NewReader(input), defaultSettings())
	require.NoError(t, err)

	assert.Equal(t, []string{"category", "product_name", "quantity", "unit_price", "notes"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "Widget A", data.Rows[0]["product_name"])
	assert.Equal(t, " Hose ", data.Rows[1]["product_name"])
	assert.Equal(t, []int{2, 4}, data.Lines)
}

func TestParse_KeepsCellWhitespace(t *testing.T) {
	input := "product_name,quantity,unit_price,category\n" +
		"\"  Widget  \", 3 ,10 ,Tools\n" +
		"   ,  ,,\n"

	data, err := Parse(strings.NewReader(input), defaultSettings())
	require.NoError(t, err)
	require.Len(t, data.Rows, 1)

	assert.Equal(t, Row{
		"product_name": "  Widget  ",
		"quantity":     " 3 ",
		"unit_price":   "10 ",
		"category":     "Tools",
	}, data.Rows[0])
}

func TestParse_ShortRowOmitsMissingCells(t *testing.T) {
	input := "product_name,quantity,unit_price,category\nWidget,3\n"

	data, err := Parse(strings.NewReader(input), defaultSettings())
	require.NoError(t, err)
	require.Len(t, data.Rows, 1)

	_, ok := data.Rows[0].Get("quantity")
	assert.True(t, ok)
	_, ok = data.Rows[0].Get("category")
	assert.False(t, ok)
}

func TestParse_BOMAndBlankHeaders(t *testing.T) {
	input := "\ufeffproduct_name,,quantity\nWidget,x,1\n"

	data, err := Parse(strings.NewReader(input), defaultSettings())
	require.NoError(t, err)
	assert.Equal(t, []string{"product_name", "Column_2", "quantity"}, data.Headers)
	assert.True(t, data.HasHeader("product_name"))
	assert.False(t, data.HasHeader("category"))
}

func TestParse_Delimiters(t *testing.T) {
	tests := []struct {
		delimiter string
		input     string
	}{
		{"|", "a|b\n1|2\n"},
		{"tab", "a\tb\n1\t2\n"},
		{"semicolon", "a;b\n1;2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.delimiter, func(t *testing.T) {
			data, err := Parse(strings.NewReader(tt.input), config.CSVSettings{Delimiter: tt.delimiter})
			require.NoError(t, err)
			require.Len(t, data.Rows, 1)
			assert.Equal(t, "2", data.Rows[0]["b"])
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	input := "product_name,quantity\n\"Widget,1\n"

	_, err := Parse(strings.NewReader(input), defaultSettings())
	assert.Error(t, err)

	lazy := defaultSettings()
	lazy.LazyQuotes = true
	_, err = Parse(strings.NewReader(input), lazy)
	assert.NoError(t, err)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(strings.NewReader(""), defaultSettings())
	assert.EqualError(t, err, "CSV file is empty")
}

func TestParse_HeaderOnly(t *testing.T) {
	data, err := Parse(strings.NewReader("product_name,quantity\n"), defaultSettings())
	require.NoError(t, err)
	assert.Empty(t, data.Rows)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.csv")
	require.NoError(t, os.WriteFile(path, []byte("product_name\nWidget\n"), 0644))

	data, err := ParseFile(path, defaultSettings())
	require.NoError(t, err)
	assert.Equal(t, path, data.SourceFile)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.csv"), defaultSettings())
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
