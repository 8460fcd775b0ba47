package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ikari-pl/go-swapi-browser/internal/catalog"
)

// newSWAPIServer serves a three-character people collection and one species.
func newSWAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	person := func(n int, name, birthYear string, species ...string) string {
		refs := "[]"
		if len(species) > 0 {
			refs = fmt.Sprintf(`["%s%s"]`, srv.URL, species[0])
		}
		return fmt.Sprintf(`{"name":%q,"height":"172","mass":"77","hair_color":"blond","eye_color":"blue","birth_year":%q,"gender":"n/a","species":%s,"url":"%s/api/people/%d/"}`,
			name, birthYear, refs, srv.URL, n)
	}
	people := func() []string {
		return []string{
			person(1, "Luke Skywalker", "19BBY"),
			person(2, "C-3PO", "112BBY", "/api/species/2/"),
			person(3, "R2-D2", "33BBY", "/api/species/2/"),
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/people/", func(w http.ResponseWriter, r *http.Request) {
		p := people()
		switch r.URL.Path {
		case "/api/people/":
			fmt.Fprintf(w, `{"count":3,"next":null,"previous":null,"results":[%s,%s,%s]}`, p[0], p[1], p[2])
		case "/api/people/1/":
			fmt.Fprint(w, p[0])
		case "/api/people/2/":
			fmt.Fprint(w, p[1])
		case "/api/people/3/":
			fmt.Fprint(w, p[2])
		default:
			http.NotFound(w, r)
		}
	})
	mux.HandleFunc("/api/species/2/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"name":"Droid"}`)
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// runCLI runs the CLI against srv and returns stdout and stderr.
func runCLI(t *testing.T, srv *httptest.Server, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	args = append(args, "--base-url", srv.URL+"/api/people/")
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestListTable(t *testing.T) {
	srv := newSWAPIServer(t)

	out, _, err := runCLI(t, srv, "list")
	require.NoError(t, err)

	for _, want := range []string{"Luke Skywalker", "C-3PO", "R2-D2", "Droid", "N/A", "172 cm", "Page 1 of 1, 3 of 3 characters"} {
		assert.Contains(t, out, want)
	}
}

func TestListSearchJSON(t *testing.T) {
	srv := newSWAPIServer(t)

	out, _, err := runCLI(t, srv, "list", "--search", "d2", "--format", "json")
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "R2-D2", records[0]["name"])
	assert.Equal(t, float64(2), records[0]["position"], "positions refer to the full collection")
	assert.Equal(t, []any{"Droid"}, records[0]["species_names"])
}

func TestListPaging(t *testing.T) {
	srv := newSWAPIServer(t)

	out, _, err := runCLI(t, srv, "list", "--page-size", "2", "--page", "2", "--format", "yaml")
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "R2-D2", records[0]["name"])
}

func TestListInvalidPage(t *testing.T) {
	srv := newSWAPIServer(t)

	_, _, err := runCLI(t, srv, "list", "--page", "5")
	require.ErrorIs(t, err, errInvalidPage)
}

func TestListRemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	_, _, err := runCLI(t, srv, "list")
	require.Error(t, err)
	assert.True(t, catalog.IsNetworkError(err))
	assert.Contains(t, err.Error(), "failed to fetch characters")
	assert.Contains(t, err.Error(), "returned 500")
}

func TestListInvalidConfig(t *testing.T) {
	srv := newSWAPIServer(t)

	_, _, err := runCLI(t, srv, "list", "--identity", "name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid identity")
}

func TestListConfigFile(t *testing.T) {
	srv := newSWAPIServer(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("page_size: 1\nformat: json\n"), 0o600))

	out, _, err := runCLI(t, srv, "list", "--config", path)
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Luke Skywalker", records[0]["name"])
}

func TestShowPosition(t *testing.T) {
	srv := newSWAPIServer(t)

	out, _, err := runCLI(t, srv, "show", "1")
	require.NoError(t, err)

	for _, want := range []string{"C-3PO", "112BBY", "Droid", "robohash.org"} {
		assert.Contains(t, out, want)
	}
}

func TestShowNotFound(t *testing.T) {
	srv := newSWAPIServer(t)

	_, _, err := runCLI(t, srv, "show", "7")
	require.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Contains(t, err.Error(), "#7")
}

func TestShowByID(t *testing.T) {
	srv := newSWAPIServer(t)
	id := catalog.DeriveID(catalog.Entity{URL: srv.URL + "/api/people/3/"})

	out, _, err := runCLI(t, srv, "show", "--id", id.String(), "--format", "json")
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "R2-D2", records[0]["name"])
	assert.Equal(t, float64(2), records[0]["position"])
	assert.Equal(t, id.String(), records[0]["id"])
}

func TestShowByUnknownID(t *testing.T) {
	srv := newSWAPIServer(t)
	id := catalog.DeriveID(catalog.Entity{URL: srv.URL + "/api/people/99/"})

	_, _, err := runCLI(t, srv, "show", "--id", id.String())
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestParseShowKey(t *testing.T) {
	id := catalog.DeriveID(catalog.Entity{URL: "https://swapi.dev/api/people/1/"})

	tests := []struct {
		name    string
		args    []string
		id      string
		want    catalog.Key
		wantErr error
	}{
		{name: "position", args: []string{"4"}, want: catalog.Key{Position: 4}},
		{name: "id", id: id.String(), want: catalog.Key{ID: id}},
		{name: "negative position", args: []string{"-1"}, wantErr: errInvalidPosition},
		{name: "word position", args: []string{"luke"}, wantErr: errInvalidPosition},
		{name: "bad id", id: "not-a-uuid", wantErr: errInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseShowKey(tt.args, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseShowKey(nil, "")
	require.Error(t, err)
	_, err = parseShowKey([]string{"1"}, id.String())
	require.Error(t, err)
}

func TestExportToFile(t *testing.T) {
	srv := newSWAPIServer(t)
	path := filepath.Join(t.TempDir(), "people.yaml")

	out, errOut, err := runCLI(t, srv, "export", "--format", "yaml", "--output", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Exported 3 characters")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, yaml.Unmarshal(data, &records))
	require.Len(t, records, 3)
	assert.Equal(t, "C-3PO", records[1]["name"])
	assert.Equal(t, []any{"Droid"}, records[1]["species_names"])
}

// closeRecorder is an io.WriteCloser whose Close result is configurable.
type closeRecorder struct {
	bytes.Buffer
	closeErr error
	closed   int
}

func (c *closeRecorder) Close() error {
	c.closed++
	return c.closeErr
}

func TestWriteAndClose(t *testing.T) {
	diskFull := errors.New("no space left on device")
	badFormat := errors.New("unsupported format")

	t.Run("close failure surfaces", func(t *testing.T) {
		wc := &closeRecorder{closeErr: diskFull}
		err := writeAndClose(wc, func(w io.Writer) error {
			_, err := io.WriteString(w, "[]")
			return err
		})
		require.ErrorIs(t, err, diskFull)
		assert.Contains(t, err.Error(), "closing output file")
		assert.Equal(t, 1, wc.closed)
		assert.Equal(t, "[]", wc.String())
	})

	t.Run("write failure wins and file is closed", func(t *testing.T) {
		wc := &closeRecorder{closeErr: diskFull}
		err := writeAndClose(wc, func(io.Writer) error { return badFormat })
		require.ErrorIs(t, err, badFormat)
		assert.NotErrorIs(t, err, diskFull)
		assert.Equal(t, 1, wc.closed)
	})

	t.Run("clean close", func(t *testing.T) {
		wc := &closeRecorder{}
		require.NoError(t, writeAndClose(wc, func(io.Writer) error { return nil }))
		assert.Equal(t, 1, wc.closed)
	})
}

func TestExportToMissingDirectory(t *testing.T) {
	srv := newSWAPIServer(t)
	path := filepath.Join(t.TempDir(), "missing", "people.json")

	_, errOut, err := runCLI(t, srv, "export", "--output", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output file")
	assert.NotContains(t, errOut, "Exported")
}

func TestExportMarkdownToStdout(t *testing.T) {
	srv := newSWAPIServer(t)

	out, _, err := runCLI(t, srv, "export", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "# People")
	assert.Contains(t, out, "| Droid | 2 |")
}

func TestExportInvalidFormat(t *testing.T) {
	srv := newSWAPIServer(t)

	_, _, err := runCLI(t, srv, "export", "--format", "table")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--version"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), version)
}
