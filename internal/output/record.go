package output

import (
	"net/url"
	"strings"

	"github.com/ikari-pl/go-swapi-browser/internal/catalog"
)

// NotAvailable is shown in place of an empty species list.
const NotAvailable = "N/A"

// Record is one entity together with its position in the loaded collection.
type Record struct {
	Position       int `json:"position" yaml:"position"`
	catalog.Entity `yaml:",inline"`
}

// Records numbers entities by their index.
func Records(entities []catalog.Entity) []Record {
	out := make([]Record, len(entities))
	for i, e := range entities {
		out[i] = Record{Position: i, Entity: e}
	}
	return out
}

// SpeciesLabel joins resolved species names for display, or returns
// NotAvailable when there are none.
func SpeciesLabel(e catalog.Entity) string {
	if len(e.SpeciesNames) == 0 {
		return NotAvailable
	}
	return strings.Join(e.SpeciesNames, ", ")
}

// WithUnit appends unit to a numeric measurement. Values the API reports as
// "unknown" or "n/a" are returned unchanged.
func WithUnit(value, unit string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "unknown", "n/a", "none":
		return value
	}
	return value + " " + unit
}

// AvatarURL returns the generated avatar image for a character name.
func AvatarURL(name string) string {
	return "https://robohash.org/" + url.PathEscape(name) + "?set=set3"
}
