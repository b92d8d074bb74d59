package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/syllabus-exams/internal/exam"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult is the JSON output document.
type OutputResult struct {
	CheckedAt time.Time     `json:"checked_at"`
	Exams     []exam.Record `json:"exams"`
	ExamCount int           `json:"exam_count"`
}

// WriteOutput writes the records in the specified format
func WriteOutput(w io.Writer, records []exam.Record, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, records)
	case FormatText:
		return writeText(w, records)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs records as JSON
func writeJSON(w io.Writer, records []exam.Record) error {
	result := OutputResult{
		CheckedAt: time.Now().UTC(),
		Exams:     records,
		ExamCount: len(records),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs records as human-readable text, one tab-indented line
// per exam under an "Exams:" header.
func writeText(w io.Writer, records []exam.Record) error {
	fmt.Fprintln(w, "Exams:")
	for _, r := range records {
		fmt.Fprintf(w, "\t%s\n", r)
	}
	return nil
}
