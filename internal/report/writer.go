package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Writer saves rendered reports under a configured directory.
type Writer struct {
	dir string
}

// NewWriter constructs a Writer that saves reports under dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Save writes the report text to a dated file under the writer's directory,
// creating the directory if needed, and returns the full path. The filename
// embeds the start year and today's date:
// commute_analysis_<startYear>_to_present_<YYYY-MM-DD>.txt.
// A write failure is surfaced to the caller, never retried or swallowed.
func (w *Writer) Save(text string, startYear int) (string, error) {
	name := fmt.Sprintf("commute_analysis_%d_to_present_%s.txt",
		startYear, time.Now().Format("2006-01-02"))
	path := filepath.Join(w.dir, name)

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("report.Writer.Save: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("report.Writer.Save: %w", err)
	}
	return path, nil
}
