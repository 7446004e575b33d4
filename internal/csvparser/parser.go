// =============================================================================
// Inventory Manager - CSV Parser Module
// =============================================================================
//
// This module reads header-first delimited files into rows keyed by header
// name. Rows are looked up by name rather than position, so inputs may order
// their columns freely and carry extra columns.
//
// FEATURES:
//   - Configurable delimiter (comma, pipe, tab, semicolon)
//   - Strict or lazy quote handling
//   - UTF-8 byte order mark stripped from the first header
//   - Short rows keep track of which cells were actually present
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/inventory-manager/internal/config"
)

// utf8BOM is stripped from the first header cell. Spreadsheet exports often
// start with it.
const utf8BOM = "\ufeff"

// =============================================================================
// CSV DATA STRUCTURE
// =============================================================================

// Row is a single data row keyed by header name. A header is absent from the
// map when the row ended before reaching that column.
type Row map[string]string

// Get returns the value for a header and whether the cell existed.
func (r Row) Get(header string) (string, bool) {
	v, ok := r[header]
	return v, ok
}

// CSVData represents the parsed CSV file.
type CSVData struct {
	// Headers contains the column headers from the CSV file.
	Headers []string

	// Rows contains the non-empty data rows.
	Rows []Row

	// Lines holds the 1-indexed source line of each entry in Rows.
	// Useful for error reporting.
	Lines []int

	// SourceFile is the path to the source CSV file, if any.
	SourceFile string
}

// HasHeader reports whether the file declared the given column.
func (d *CSVData) HasHeader(name string) bool {
	for _, h := range d.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// ParseFile opens a CSV file and parses it.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The CSV parsing settings.
//
// RETURNS:
//   - The parsed data.
//   - An error if the file cannot be opened or parsed. Open errors are
//     wrapped so that errors.Is(err, fs.ErrNotExist) still works.
func ParseFile(filePath string, settings config.CSVSettings) (*CSVData, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := Parse(file, settings)
	if err != nil {
		return nil, err
	}
	data.SourceFile = filePath
	return data, nil
}

// Parse reads CSV data from r.
//
// PARSING PROCESS:
//   1. Configure the CSV reader with the delimiter and quote settings
//   2. Read the header row
//   3. Read every data row, skipping blank ones
//   4. Convert each row to a map of header -> value, kept exactly as read
func Parse(r io.Reader, settings config.CSVSettings) (*CSVData, error) {
	csvReader := csv.NewReader(bufio.NewReader(r))
	configureReader(csvReader, settings)

	header, err := csvReader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	data := &CSVData{Headers: cleanHeaders(header)}

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		if isRowEmpty(record) {
			continue
		}

		line, _ := csvReader.FieldPos(0)
		data.Rows = append(data.Rows, toRow(data.Headers, record))
		data.Lines = append(data.Lines, line)
	}

	return data, nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	switch settings.Delimiter {
	case "\\t", "\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(settings.Delimiter) > 0 {
			reader.Comma = rune(settings.Delimiter[0])
		} else {
			reader.Comma = ','
		}
	}

	// Rows may be shorter or longer than the header; missing cells are
	// reported through Row.Get and extra cells are ignored.
	reader.FieldsPerRecord = -1

	// TrimLeadingSpace stays off so cells keep their spaces.
	reader.LazyQuotes = settings.LazyQuotes
}

// cleanHeaders trims header names and names blank ones by position.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))

	for i, header := range headers {
		if i == 0 {
			header = strings.TrimPrefix(header, utf8BOM)
		}
		header = strings.TrimSpace(header)

		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}

		cleaned[i] = header
	}

	return cleaned
}

// toRow maps the cells of a record onto the headers. Cells beyond the last
// header are dropped; headers beyond the last cell are left out.
func toRow(headers []string, record []string) Row {
	row := make(Row, len(headers))
	for i, header := range headers {
		if i >= len(record) {
			break
		}
		row[header] = record[i]
	}
	return row
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
