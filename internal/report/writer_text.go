package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"FlowTagger/internal/model"
)

// TextWriter writes the rendered report to a plain text file. It implements
// the model.Writer interface.
type TextWriter struct {
	path string
}

// NewTextWriter creates a writer targeting the given report file path.
func NewTextWriter(path string) model.Writer {
	return &TextWriter{path: path}
}

// Write renders the report and writes it to the configured path. The path
// is a fixed contract, so the run timestamp is not part of the file name.
func (w *TextWriter) Write(rep *model.TagReport, timestamp string) error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory '%s': %w", dir, err)
		}
	}

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create report file '%s': %w", w.path, err)
	}
	defer file.Close()

	if _, err := file.WriteString(Render(rep)); err != nil {
		return fmt.Errorf("failed to write report to '%s': %w", w.path, err)
	}

	log.Printf("Wrote %d tag counts and %d port/protocol counts to %s",
		rep.TagCounts.Len(), rep.PortProtoCounts.Len(), w.path)
	return nil
}
