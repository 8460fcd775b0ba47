package output

import (
	"context"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

type tableFormatter struct{}

// NewTableFormatter creates a formatter that renders a plain-text table.
func NewTableFormatter() Formatter {
	return &tableFormatter{}
}

func (f *tableFormatter) Format(ctx context.Context, records []Record, w io.Writer) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Name", "Birth Year", "Gender", "Height", "Mass", "Species"})
	for _, r := range records {
		t.AppendRow(table.Row{
			strconv.Itoa(r.Position),
			r.Name,
			r.BirthYear,
			r.Gender,
			WithUnit(r.Height, "cm"),
			WithUnit(r.Mass, "kg"),
			SpeciesLabel(r.Entity),
		})
	}

	style := table.StyleLight
	style.Options.DrawBorder = false
	style.Options.SeparateRows = false
	t.SetStyle(style)
	t.Render()
	return nil
}

func (f *tableFormatter) Name() string {
	return "table"
}

func (f *tableFormatter) Description() string {
	return "Human-readable table"
}
