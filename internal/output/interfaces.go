// Package output provides the non-interactive output formats for catalog listings.
package output

import (
	"context"
	"io"
)

// Formatter renders catalog records in one output format.
type Formatter interface {
	// Format formats the given records and writes them to the writer.
	Format(ctx context.Context, records []Record, w io.Writer) error

	// Name returns the name of the formatter.
	Name() string

	// Description returns a description of the output format.
	Description() string
}

// Manager manages multiple output formatters.
type Manager interface {
	// RegisterFormatter registers a new formatter.
	RegisterFormatter(formatter Formatter)

	// GetFormatter returns a formatter by name.
	GetFormatter(name string) (Formatter, error)

	// ListFormatters returns all available formatter names.
	ListFormatters() []string

	// Format formats the records using the specified formatter.
	Format(ctx context.Context, formatName string, records []Record, w io.Writer) error
}
