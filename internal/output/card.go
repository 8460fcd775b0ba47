package output

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteCard renders a single record as a two-column label/value table.
func WriteCard(w io.Writer, r Record) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(r.Name)
	t.AppendRows([]table.Row{
		{"Position", strconv.Itoa(r.Position)},
		{"Birth year", r.BirthYear},
		{"Gender", r.Gender},
		{"Height", WithUnit(r.Height, "cm")},
		{"Mass", WithUnit(r.Mass, "kg")},
		{"Hair color", r.HairColor},
		{"Eye color", r.EyeColor},
		{"Species", SpeciesLabel(r.Entity)},
		{"Avatar", AvatarURL(r.Name)},
		{"Source", r.URL},
		{"ID", r.ID.String()},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}
