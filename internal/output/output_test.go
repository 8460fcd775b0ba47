package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ikari-pl/go-swapi-browser/internal/catalog"
)

func sampleRecords() []Record {
	return Records([]catalog.Entity{
		catalog.Entity{
			Name:      "Luke Skywalker",
			Height:    "172",
			Mass:      "77",
			BirthYear: "19BBY",
			Gender:    "male",
			URL:       "https://swapi.dev/api/people/1/",
		}.Enrich(nil),
		catalog.Entity{
			Name:      "C-3PO",
			Height:    "167",
			Mass:      "unknown",
			BirthYear: "112BBY",
			Gender:    "n/a",
			URL:       "https://swapi.dev/api/people/2/",
			Species:   []string{"https://swapi.dev/api/species/2/"},
		}.Enrich([]string{"Droid"}),
	})
}

func TestRecords(t *testing.T) {
	records := sampleRecords()
	require.Len(t, records, 2)
	assert.Equal(t, 0, records[0].Position)
	assert.Equal(t, 1, records[1].Position)
	assert.Equal(t, "C-3PO", records[1].Name)
}

func TestSpeciesLabel(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"none", nil, "N/A"},
		{"empty", []string{}, "N/A"},
		{"one", []string{"Droid"}, "Droid"},
		{"many", []string{"Human", "unknown"}, "Human, unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SpeciesLabel(catalog.Entity{SpeciesNames: tt.names}))
		})
	}
}

func TestWithUnit(t *testing.T) {
	assert.Equal(t, "172 cm", WithUnit("172", "cm"))
	assert.Equal(t, "unknown", WithUnit("unknown", "kg"))
	assert.Equal(t, "n/a", WithUnit("n/a", "kg"))
	assert.Equal(t, "", WithUnit("", "kg"))
}

func TestManager(t *testing.T) {
	m := NewManager()
	assert.Equal(t, []string{"json", "markdown", "table", "yaml"}, m.ListFormatters())

	for _, name := range m.ListFormatters() {
		f, err := m.GetFormatter(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.Name())
		assert.NotEmpty(t, f.Description())
	}

	_, err := m.GetFormatter("csv")
	assert.EqualError(t, err, "unknown output format: csv")

	var buf bytes.Buffer
	assert.Error(t, m.Format(context.Background(), "csv", sampleRecords(), &buf))
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(context.Background(), sampleRecords(), &buf))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Luke Skywalker", decoded[0]["name"])
	assert.Equal(t, float64(1), decoded[1]["position"])
	assert.Equal(t, []any{"Droid"}, decoded[1]["species_names"])
	assert.NotEmpty(t, decoded[0]["id"])
}

func TestJSONFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(context.Background(), nil, &buf))
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter().Format(context.Background(), sampleRecords(), &buf))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "C-3PO", decoded[1]["name"])
	assert.Equal(t, 1, decoded[1]["position"])
	assert.Equal(t, "https://swapi.dev/api/people/2/", decoded[1]["url"])
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter().Format(context.Background(), sampleRecords(), &buf))
	out := buf.String()

	for _, want := range []string{"NAME", "SPECIES", "Luke Skywalker", "172 cm", "77 kg", "N/A", "Droid", "unknown"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "unknown kg")
}

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(context.Background(), sampleRecords(), &buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# People\n"))
	assert.Contains(t, out, "| Droid | 1 |")
	assert.Contains(t, out, "| N/A | 1 |")
	assert.Contains(t, out, "| **Total** | 2 |")
	assert.Contains(t, out, "### C-3PO")
	assert.Contains(t, out, "- **Height:** 167 cm")
	assert.Contains(t, out, "<https://swapi.dev/api/people/1/>")
}

func TestMarkdownEscapesPipes(t *testing.T) {
	assert.Equal(t, `a\|b`, escapeCell("a|b"))
}

func TestWriteCard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCard(&buf, sampleRecords()[1]))
	out := buf.String()

	for _, want := range []string{"C-3PO", "Position", "112BBY", "167 cm", "Droid", "robohash.org/C-3PO", sampleRecords()[1].ID.String()} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "unknown kg")
}
