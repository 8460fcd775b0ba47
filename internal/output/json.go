package output

import (
	"context"
	"encoding/json"
	"io"
)

// jsonFormatter implements the Formatter interface for JSON output.
type jsonFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() Formatter {
	return &jsonFormatter{}
}

// Format writes the records to the writer as an indented JSON array.
func (f *jsonFormatter) Format(ctx context.Context, records []Record, w io.Writer) error {
	if records == nil {
		records = []Record{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

// Name returns the name of the formatter.
func (f *jsonFormatter) Name() string {
	return "json"
}

// Description returns a description of the output format.
func (f *jsonFormatter) Description() string {
	return "JSON format for programmatic consumption"
}
