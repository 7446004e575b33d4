package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverCSVFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.csv", "notes.txt", "UPPER.CSV", "c.csv.bak"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.csv"), 0755))

	files, err := DiscoverCSVFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.csv")}, files)
}

func TestDiscoverCSVFiles_MissingDir(t *testing.T) {
	_, err := DiscoverCSVFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.csv")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(file))
	assert.False(t, IsDir(filepath.Join(dir, "missing")))
}

func TestGenerateOutputFileName(t *testing.T) {
	now := time.Date(2024, 1, 15, 14, 30, 22, 0, time.UTC)

	got := generateOutputFileName("{kind}_{timestamp}.csv", map[string]string{"kind": "summary"}, now)
	assert.Equal(t, "summary_20240115_143022.csv", got)

	got = generateOutputFileName("{date}-{time}.csv", nil, now)
	assert.Equal(t, "20240115-143022.csv", got)

	got = generateOutputFileName("report_{uuid}.csv", nil, now)
	assert.Regexp(t, regexp.MustCompile(`^report_[0-9a-f-]{36}\.csv$`), got)
}

func TestWriteErrorLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	path, err := WriteErrorLog(nil, dir)
	require.NoError(t, err)
	assert.Empty(t, path)

	path, err = WriteErrorLog([]ErrorLogEntry{{
		Timestamp:    time.Now(),
		FileName:     "broken.csv",
		ErrorMessage: "failed to read CSV",
	}}, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Total Errors: 1")
	assert.Contains(t, string(data), "broken.csv")
	assert.Contains(t, string(data), "failed to read CSV")
}

func TestWriteErrorLog_SameSecondKeepsBoth(t *testing.T) {
	dir := t.TempDir()
	entry := func(name string) []ErrorLogEntry {
		return []ErrorLogEntry{{Timestamp: time.Now(), FileName: name, ErrorMessage: "bad"}}
	}

	first, err := WriteErrorLog(entry("first.csv"), dir)
	require.NoError(t, err)
	second, err := WriteErrorLog(entry("second.csv"), dir)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first.csv")
	data, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.Contains(t, string(data), "second.csv")
}

func TestCreateErrorLog_NumbersCollisions(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	var names []string
	for i := 0; i < 3; i++ {
		file, path, err := createErrorLog(dir, now)
		require.NoError(t, err)
		require.NoError(t, file.Close())
		names = append(names, filepath.Base(path))
	}

	assert.Equal(t, []string{
		"import_errors_20240115_103000.txt",
		"import_errors_20240115_103000_2.txt",
		"import_errors_20240115_103000_3.txt",
	}, names)
}
