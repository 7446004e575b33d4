// =============================================================================
// Inventory Manager - File Manager Utility
// =============================================================================
//
// This module provides file utilities shared by the store and the commands:
//   - CSV file discovery
//   - Output file naming
//   - Import error log generation
//
// =============================================================================

package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverCSVFiles lists the regular entries of dir whose name ends in
// ".csv". The suffix match is case-sensitive.
//
// RETURNS:
//   - Paths (dir joined with the entry name) in os.ReadDir order, which is
//     sorted by file name.
//   - An error if the directory cannot be read.
func DiscoverCSVFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	return files, nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// GenerateOutputFileName expands a file name template.
//
// PARAMETERS:
//   - format: The format string for the file name.
//             Placeholders:
//               {uuid}      - A random UUID
//               {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//               {date}      - Current date (YYYYMMDD)
//               {time}      - Current time (HHMMSS)
//               any {key} present in params
//   - params: Extra placeholder values, e.g. {"kind": "summary"}.
//
// EXAMPLE:
//   format: "{kind}_{date}.csv"
//   params: {"kind": "summary"}
//   output: "summary_20240115.csv"
func GenerateOutputFileName(format string, params map[string]string) string {
	return generateOutputFileName(format, params, time.Now())
}

func generateOutputFileName(format string, params map[string]string, now time.Time) string {
	result := format

	if strings.Contains(result, "{uuid}") {
		result = strings.ReplaceAll(result, "{uuid}", uuid.New().String())
	}
	result = strings.ReplaceAll(result, "{timestamp}", now.Format("20060102_150405"))
	result = strings.ReplaceAll(result, "{date}", now.Format("20060102"))
	result = strings.ReplaceAll(result, "{time}", now.Format("150405"))

	for key, value := range params {
		result = strings.ReplaceAll(result, "{"+key+"}", value)
	}

	return result
}

// =============================================================================
// ERROR LOG GENERATION
// =============================================================================

// ErrorLogEntry represents a single error log entry.
type ErrorLogEntry struct {
	Timestamp    time.Time
	FileName     string
	ErrorMessage string
}

// WriteErrorLog writes import errors to a timestamped log file in outputDir.
//
// RETURNS:
//   - The path to the error log file, or "" when there was nothing to write.
//   - An error if writing fails.
func WriteErrorLog(entries []ErrorLogEntry, outputDir string) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", outputDir, err)
	}

	file, logPath, err := createErrorLog(outputDir, time.Now())
	if err != nil {
		return "", fmt.Errorf("failed to create error log: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	fmt.Fprintf(writer, "Inventory Manager - Import Error Log\n"+
		"Generated: %s\n"+
		"Total Errors: %d\n"+
		"================================================================================\n\n",
		time.Now().Format("2006-01-02 15:04:05"),
		len(entries))

	for i, entry := range entries {
		fmt.Fprintf(writer, "Error #%d\n"+
			"  Timestamp:      %s\n"+
			"  File:           %s\n"+
			"  Message:        %s\n\n",
			i+1,
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.FileName,
			entry.ErrorMessage)
	}

	writer.WriteString("================================================================================\n" +
		"End of Error Log\n")

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush error log: %w", err)
	}

	return logPath, nil
}

// maxLogAttempts bounds the numbered suffixes tried for one timestamp.
const maxLogAttempts = 1000

// createErrorLog creates a new log file named after now. A log already
// written in the same second is never overwritten; the next free numbered
// name is used instead (import_errors_<ts>_2.txt, ...).
func createErrorLog(outputDir string, now time.Time) (*os.File, string, error) {
	stamp := now.Format("20060102_150405")

	for n := 1; n <= maxLogAttempts; n++ {
		name := fmt.Sprintf("import_errors_%s.txt", stamp)
		if n > 1 {
			name = fmt.Sprintf("import_errors_%s_%d.txt", stamp, n)
		}
		path := filepath.Join(outputDir, name)

		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		return file, path, nil
	}

	return nil, "", fmt.Errorf("no free error log name for %s in %s", stamp, outputDir)
}
