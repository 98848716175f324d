package model

// Writer defines a generic interface for persisting a finished tag report.
type Writer interface {
	// Write persists the report. The timestamp identifies the run that
	// produced it.
	Write(report *TagReport, timestamp string) error
}
