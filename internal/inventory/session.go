// =============================================================================
// Inventory Manager - Session
// =============================================================================
//
// A Session ties the core packages together for the front-ends. Both the
// batch CLI and the interactive shell call the same Session operations, so a
// command behaves identically whichever way it is invoked.
//
// OPERATION FLOW:
//   1. Run the core operation (catalog.Store or query.Engine)
//   2. Present the result or the failure through present.Presenter
//   3. Return the error so the caller can decide whether to exit
//
// =============================================================================

package inventory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ginjaninja78/inventory-manager/internal/catalog"
	"github.com/ginjaninja78/inventory-manager/internal/config"
	"github.com/ginjaninja78/inventory-manager/internal/present"
	"github.com/ginjaninja78/inventory-manager/internal/query"
	"github.com/ginjaninja78/inventory-manager/internal/report"
	"github.com/ginjaninja78/inventory-manager/pkg/utils"
)

// ErrEmptyCatalog is returned by queries run before anything was loaded.
var ErrEmptyCatalog = errors.New("the database is empty. Load data first")

// ErrImportFailures is returned by LoadDirectory when at least one file was
// skipped. The records from the other files are still loaded.
var ErrImportFailures = errors.New("some files could not be imported")

// =============================================================================
// SESSION STRUCTURE
// =============================================================================

// Session holds the Catalog and the collaborators every command needs.
type Session struct {
	cfg    *config.Config
	store  *catalog.Store
	engine *query.Engine
	out    *present.Presenter
	logger *zap.Logger

	// errorLogDir, when set, receives an import error log after any
	// directory import that skipped files.
	errorLogDir string
}

// New creates a Session with an empty Catalog.
func New(cfg *config.Config, out *present.Presenter, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	store := catalog.NewStore(cfg.Import, logger.Named("catalog"))
	return &Session{
		cfg:    cfg,
		store:  store,
		engine: query.NewEngine(store, cfg.Summary.NumericPolicy),
		out:    out,
		logger: logger,
	}
}

// SetErrorLogDir enables import error logs written into dir.
func (s *Session) SetErrorLogDir(dir string) {
	s.errorLogDir = dir
}

// Store exposes the underlying Catalog.
func (s *Session) Store() *catalog.Store {
	return s.store
}

// =============================================================================
// LOADING
// =============================================================================

// LoadDirectory imports every CSV file in dir into the Catalog.
//
// RETURNS:
//   - nil when every file was imported (including a folder with none).
//   - ErrImportFailures, wrapped, when some files were skipped. Their
//     reasons have already been printed.
//   - The Store's error when dir itself is unusable.
func (s *Session) LoadDirectory(dir string) error {
	loaded, fileErrs, err := s.store.LoadDirectory(dir)
	if err != nil {
		return err
	}

	s.out.FileErrors(fileErrs)

	switch {
	case loaded > 0:
		s.out.Success("Loaded %d record(s) from %s. Catalog now holds %d.", loaded, dir, s.store.Len())
	case len(fileErrs) == 0 && !hasCSVFiles(dir):
		s.out.Info("No CSV files found in the folder.")
	default:
		s.out.Info("No records loaded from %s.", dir)
	}

	if len(fileErrs) == 0 {
		return nil
	}

	if s.errorLogDir != "" {
		s.writeErrorLog(fileErrs)
	}
	return fmt.Errorf("%w: %d of the files in %s", ErrImportFailures, len(fileErrs), dir)
}

// LoadFile replaces the Catalog with the contents of a consolidated file.
func (s *Session) LoadFile(path string) error {
	loaded, err := s.store.LoadFile(path)
	if err != nil {
		return err
	}
	s.out.Success("Loaded %d record(s) from %s.", loaded, path)
	return nil
}

func (s *Session) writeErrorLog(fileErrs []*catalog.FileError) {
	now := time.Now()
	entries := make([]utils.ErrorLogEntry, len(fileErrs))
	for i, fe := range fileErrs {
		entries[i] = utils.ErrorLogEntry{
			Timestamp:    now,
			FileName:     fe.File,
			ErrorMessage: fe.Err.Error(),
		}
	}

	path, err := utils.WriteErrorLog(entries, s.errorLogDir)
	if err != nil {
		s.logger.Error("failed to write import error log", zap.String("dir", s.errorLogDir), zap.Error(err))
		s.out.Warn("Could not write the error log: %v", err)
		return
	}
	s.out.Info("Error log written to %s", path)
}

func hasCSVFiles(dir string) bool {
	files, err := utils.DiscoverCSVFiles(dir)
	return err == nil && len(files) > 0
}

// =============================================================================
// QUERIES
// =============================================================================

// Search prints the Records matching q, a plain term or "column=value".
func (s *Session) Search(q string) error {
	if err := s.requireData(); err != nil {
		return err
	}

	results, err := s.engine.Run(q)
	if err != nil {
		return err
	}
	s.out.Records(results)
	return nil
}

// Summary prints the per-category summary and writes it to path. An empty
// path falls back to the configured summary file.
func (s *Session) Summary(path string) error {
	if err := s.requireData(); err != nil {
		return err
	}

	summaries, err := s.engine.Summarize()
	if err != nil {
		return err
	}
	s.out.Summary(summaries)

	path = s.outputPath(path, s.cfg.Output.SummaryFile, "summary")
	if err := report.SaveSummary(path, summaries); err != nil {
		return err
	}
	s.out.Success("Summary saved to %s", path)
	return nil
}

// Report prints the record count per category and writes it to path. An
// empty path falls back to the configured report file.
func (s *Session) Report(path string) error {
	if err := s.requireData(); err != nil {
		return err
	}

	counts := s.engine.SummarizeCounts()
	s.out.Counts(counts)

	path = s.outputPath(path, s.cfg.Output.ReportFile, "report")
	if err := report.SaveCounts(path, counts); err != nil {
		return err
	}
	s.out.Success("Report saved to %s", path)
	return nil
}

// Show prints the first n Records. A non-positive n uses the configured
// default.
func (s *Session) Show(n int) error {
	if err := s.requireData(); err != nil {
		return err
	}
	if n <= 0 {
		n = s.cfg.Output.ShowRows
	}
	s.out.Records(s.store.Head(n))
	return nil
}

// =============================================================================
// OUTPUT
// =============================================================================

// Save writes the Catalog as a consolidated file.
func (s *Session) Save(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("save needs an output path")
	}
	if err := s.store.Save(path); err != nil {
		return err
	}
	s.out.Success("Saved %d record(s) to %s", s.store.Len(), path)
	return nil
}

// Export writes the Catalog as XML grouped by category.
func (s *Session) Export(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("export needs an output path")
	}
	if err := s.requireData(); err != nil {
		return err
	}
	if err := report.SaveCatalogXML(path, s.store.Records()); err != nil {
		return err
	}
	s.out.Success("Exported %d record(s) to %s", s.store.Len(), path)
	return nil
}

// Clear empties the Catalog.
func (s *Session) Clear() {
	s.store.Clear()
	s.out.Success("Catalog cleared.")
}

func (s *Session) requireData() error {
	if s.store.Len() == 0 {
		return ErrEmptyCatalog
	}
	return nil
}

// outputPath picks the explicit path, then the name template, then the
// configured fallback.
func (s *Session) outputPath(path, fallback, kind string) string {
	if path != "" {
		return path
	}
	if s.cfg.Output.NameFormat != "" {
		return utils.GenerateOutputFileName(s.cfg.Output.NameFormat, map[string]string{"kind": kind})
	}
	return fallback
}
