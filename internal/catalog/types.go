// Package catalog provides the entity model for the SWAPI people catalog and the
// aggregation layer that enriches fetched entities with related-resource names.
package catalog

import (
	"slices"
	"strconv"

	"github.com/google/uuid"
)

// UnresolvedName is substituted for a related-resource name whose lookup failed.
const UnresolvedName = "unknown"

// Entity is one catalog record as returned by the remote collection.
// Values are snapshots: enrichment returns a new Entity and never mutates the receiver.
type Entity struct {
	Name      string `json:"name" yaml:"name"`
	Height    string `json:"height" yaml:"height"`
	Mass      string `json:"mass" yaml:"mass"`
	HairColor string `json:"hair_color" yaml:"hair_color"`
	EyeColor  string `json:"eye_color" yaml:"eye_color"`
	BirthYear string `json:"birth_year" yaml:"birth_year"`
	Gender    string `json:"gender" yaml:"gender"`
	URL       string `json:"url,omitempty" yaml:"url,omitempty"`

	// Species holds related-resource locators, zero or more.
	Species []string `json:"species" yaml:"species"`

	// Derived at enrichment time.
	SpeciesNames []string  `json:"species_names,omitempty" yaml:"species_names,omitempty"`
	ID           uuid.UUID `json:"id,omitempty" yaml:"id,omitempty"`
}

// Enrich returns a copy of e carrying the resolved species names and durable ID.
// names must have the same length as e.Species.
func (e Entity) Enrich(names []string) Entity {
	out := e
	out.Species = slices.Clone(e.Species)
	if out.Species == nil {
		out.Species = []string{}
	}
	out.SpeciesNames = slices.Clone(names)
	if out.SpeciesNames == nil {
		out.SpeciesNames = []string{}
	}
	out.ID = DeriveID(e)
	return out
}

// IsEnriched reports whether related-resource names have been attached.
func (e Entity) IsEnriched() bool {
	return e.SpeciesNames != nil && len(e.SpeciesNames) == len(e.Species)
}

// Page is the JSON envelope of a collection response.
type Page struct {
	Count    int      `json:"count"`
	Next     *string  `json:"next"`
	Previous *string  `json:"previous"`
	Results  []Entity `json:"results"`
}

// Resource is the subset of a related resource that the catalog consumes.
type Resource struct {
	Name string `json:"name"`
}

// Key addresses one entity for the list → detail transition.
// In position mode only Position is meaningful; in locator mode ID is set and
// takes precedence.
type Key struct {
	Position int       `json:"position"`
	ID       uuid.UUID `json:"id,omitempty"`
}

// HasID reports whether the key carries a durable identifier.
func (k Key) HasID() bool {
	return k.ID != uuid.Nil
}

// String returns a short human-readable form of the key.
func (k Key) String() string {
	if k.HasID() {
		return k.ID.String()
	}
	return "#" + strconv.Itoa(k.Position)
}

// IdentityMode selects how navigation keys are issued.
type IdentityMode string

const (
	// IdentityLocator routes on IDs derived from each entity's canonical URL.
	IdentityLocator IdentityMode = "locator"
	// IdentityPosition routes on the index in the loaded collection.
	IdentityPosition IdentityMode = "position"
)

// KeyFor builds the navigation key for the entity at position under mode.
func KeyFor(mode IdentityMode, position int, e Entity) Key {
	if mode == IdentityPosition {
		return Key{Position: position}
	}
	id := e.ID
	if id == uuid.Nil {
		id = DeriveID(e)
	}
	return Key{Position: position, ID: id}
}
