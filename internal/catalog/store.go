// =============================================================================
// Inventory Manager - Catalog Store
// =============================================================================
//
// The Store holds the Catalog: the ordered list of Records loaded so far.
//
// LOAD PATHS:
//   - LoadDirectory: imports every *.csv file in a directory and APPENDS the
//     accepted rows. A file that cannot be read is reported and skipped.
//   - LoadFile: restores a consolidated file and REPLACES the Catalog. It
//     either fully succeeds or leaves the Catalog untouched.
//
// Both paths build the new rows off to the side and publish them in one
// step, so a caller never observes a half-loaded Catalog.
//
// =============================================================================

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ginjaninja78/inventory-manager/internal/config"
	"github.com/ginjaninja78/inventory-manager/internal/csvparser"
	"github.com/ginjaninja78/inventory-manager/internal/validation"
	"github.com/ginjaninja78/inventory-manager/pkg/utils"
)

// =============================================================================
// STORE STRUCTURE
// =============================================================================

// Store owns the in-memory Catalog. It is not safe for concurrent use.
type Store struct {
	// settings controls the import mode and CSV dialect.
	settings config.ImportSettings

	// logger receives per-file progress and per-row skip notices.
	logger *zap.Logger

	// records is the Catalog in load order.
	records []Record
}

// NewStore creates an empty Store. A nil logger disables logging.
func NewStore(settings config.ImportSettings, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		settings: settings,
		logger:   logger,
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Records returns a copy of the Catalog in load order.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of Records in the Catalog.
func (s *Store) Len() int {
	return len(s.records)
}

// Head returns up to the first n Records.
func (s *Store) Head(n int) []Record {
	if n < 0 {
		n = 0
	}
	if n > len(s.records) {
		n = len(s.records)
	}
	out := make([]Record, n)
	copy(out, s.records[:n])
	return out
}

// Clear empties the Catalog.
func (s *Store) Clear() {
	s.records = nil
}

// Append adds records to the end of the Catalog. Every record must carry a
// product name and a category; on error nothing is added.
func (s *Store) Append(records ...Record) error {
	for i, r := range records {
		if reason := incompleteReason(r); reason != "" {
			return fmt.Errorf("record %d: %s", i+1, reason)
		}
	}
	s.records = append(s.records, records...)
	return nil
}

// =============================================================================
// DIRECTORY IMPORT
// =============================================================================

// LoadDirectory imports every file in dir whose name ends in ".csv".
//
// PARAMETERS:
//   - dir: The directory to scan.
//
// RETURNS:
//   - The number of records added to the Catalog.
//   - One *FileError per file that could not be imported.
//   - An *InvalidPathError if dir is not an existing directory; in that case
//     nothing is loaded.
//
// Files are visited in the order os.ReadDir lists them (sorted by name).
// Accepted rows are appended to whatever the Catalog already holds.
func (s *Store) LoadDirectory(dir string) (int, []*FileError, error) {
	if !utils.IsDir(dir) {
		return 0, nil, &InvalidPathError{Path: dir}
	}

	files, err := utils.DiscoverCSVFiles(dir)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	s.logger.Debug("importing directory",
		zap.String("dir", dir),
		zap.Int("files", len(files)),
		zap.String("mode", string(s.settings.Mode)))

	var (
		imported []Record
		fileErrs []*FileError
	)

	for _, path := range files {
		records, err := s.importFile(path)
		if err != nil {
			s.logger.Debug("file import failed", zap.String("file", path), zap.Error(err))
			fileErrs = append(fileErrs, &FileError{File: path, Err: err})
			continue
		}
		imported = append(imported, records...)
	}

	if err := s.Append(imported...); err != nil {
		return 0, fileErrs, err
	}

	s.logger.Debug("directory import complete",
		zap.String("dir", dir),
		zap.Int("loaded", len(imported)),
		zap.Int("failed_files", len(fileErrs)),
		zap.Int("total", len(s.records)))

	return len(imported), fileErrs, nil
}

// importFile parses one directory entry according to the import mode.
func (s *Store) importFile(path string) ([]Record, error) {
	category := ""
	if s.settings.Mode == config.ModeFilename {
		category = CategoryFromFilename(path)
		if category == "" {
			return nil, fmt.Errorf("cannot derive a category from file name %q", filepath.Base(path))
		}
	}

	data, err := csvparser.ParseFile(path, s.settings.CSV)
	if err != nil {
		return nil, err
	}

	if err := validation.CheckColumns(data.Headers, validation.RequiredColumns(s.settings.Mode)); err != nil {
		return nil, err
	}

	if category != "" && data.HasHeader(validation.ColumnCategory) {
		s.logger.Debug("category column ignored in filename mode", zap.String("file", path))
	}

	s.logger.Debug("importing file", zap.String("file", path), zap.Int("rows", len(data.Rows)))
	return s.collect(data, category), nil
}

// CategoryFromFilename returns the file name text before the first '.',
// e.g. "electronics.csv" -> "electronics".
func CategoryFromFilename(path string) string {
	stem, _, _ := strings.Cut(filepath.Base(path), ".")
	return stem
}

// =============================================================================
// CONSOLIDATED FILE
// =============================================================================

// LoadFile restores a consolidated four-column file, replacing the Catalog.
//
// RETURNS:
//   - The number of records now in the Catalog.
//   - A *FileNotFoundError if path does not exist, or a wrapped read/parse
//     error. On any error the Catalog keeps its previous contents.
func (s *Store) LoadFile(path string) (int, error) {
	data, err := csvparser.ParseFile(path, s.consolidatedSettings())
	if errors.Is(err, fs.ErrNotExist) {
		return 0, &FileNotFoundError{Path: path}
	}
	if err != nil {
		return 0, fmt.Errorf("error reading %s: %w", path, err)
	}

	if err := validation.CheckColumns(data.Headers, validation.Columns); err != nil {
		return 0, fmt.Errorf("error reading %s: %w", path, err)
	}

	records := s.collect(data, "")
	s.records = records

	s.logger.Debug("catalog restored", zap.String("file", path), zap.Int("loaded", len(records)))
	return len(records), nil
}

// Save writes the Catalog to path as a consolidated file, overwriting it.
// An empty Catalog still produces the header row.
func (s *Store) Save(path string) (err error) {
	if len(s.records) == 0 {
		s.logger.Warn("saving an empty catalog", zap.String("file", path))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(validation.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range s.records {
		if err := writer.Write(r.Values()); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	s.logger.Debug("catalog saved", zap.String("file", path), zap.Int("records", len(s.records)))
	return nil
}

// consolidatedSettings keeps the configured quote handling but always reads
// the comma-separated format Save writes.
func (s *Store) consolidatedSettings() config.CSVSettings {
	settings := s.settings.CSV
	settings.Delimiter = ","
	return settings
}

// =============================================================================
// ROW ADMISSION
// =============================================================================

// collect turns parsed rows into Records, dropping incomplete ones. When
// category is non-empty it is used instead of the category column.
func (s *Store) collect(data *csvparser.CSVData, category string) []Record {
	records := make([]Record, 0, len(data.Rows))

	for i, row := range data.Rows {
		record, reason := toRecord(row, category)
		if reason != "" {
			s.logger.Warn("skipping row due to missing data",
				zap.String("file", data.SourceFile),
				zap.Int("line", data.Lines[i]),
				zap.String("reason", reason))
			continue
		}
		records = append(records, record)
	}

	return records
}

// toRecord builds a Record from a row. The returned reason is non-empty when
// the row must be dropped.
func toRecord(row csvparser.Row, category string) (Record, string) {
	var r Record
	var ok bool

	if r.ProductName, ok = row.Get(validation.ColumnProductName); !ok {
		return r, "no product_name value"
	}
	if r.Quantity, ok = row.Get(validation.ColumnQuantity); !ok {
		return r, "no quantity value"
	}
	if r.UnitPrice, ok = row.Get(validation.ColumnUnitPrice); !ok {
		return r, "no unit_price value"
	}

	if category != "" {
		r.Category = category
	} else if r.Category, ok = row.Get(validation.ColumnCategory); !ok {
		return r, "no category value"
	}

	return r, incompleteReason(r)
}

// incompleteReason reports why a record may not enter the Catalog.
func incompleteReason(r Record) string {
	if strings.TrimSpace(r.ProductName) == "" {
		return "empty product_name"
	}
	if strings.TrimSpace(r.Category) == "" {
		return "empty category"
	}
	return ""
}
