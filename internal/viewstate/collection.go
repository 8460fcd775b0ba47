// Package viewstate holds the presentation-independent state machines behind the
// list and detail views: load lifecycle, search, paging and identity lookups.
package viewstate

import (
	"strings"

	"github.com/ikari-pl/go-swapi-browser/internal/catalog"
)

// DefaultPageSize is the number of rows shown per page.
const DefaultPageSize = 9

// Status is the lifecycle state of a view-state.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
	StatusFound
	StatusNotFound
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Session identifies one collection load. Results carrying an older session
// than the current one are discarded.
type Session uint64

// Row is one entry of the filtered collection.
type Row struct {
	// Position is the index in the full collection, not in the filtered view.
	Position int
	Key      catalog.Key
	Entity   catalog.Entity
}

// Collection tracks the loaded collection plus the user's search and page.
// It is not safe for concurrent use; the TUI owns it from its update loop.
type Collection struct {
	status   Status
	items    []catalog.Entity
	err      error
	search   string
	page     int
	pageSize int
	identity catalog.IdentityMode
	session  Session
}

// NewCollection creates an idle collection view-state. A pageSize below 1 falls
// back to DefaultPageSize.
func NewCollection(pageSize int, identity catalog.IdentityMode) *Collection {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if identity == "" {
		identity = catalog.IdentityLocator
	}
	return &Collection{
		status:   StatusIdle,
		page:     1,
		pageSize: pageSize,
		identity: identity,
	}
}

// BeginLoad enters Loading and returns the token for the new load.
// Items of the previous session are dropped until the new result is applied.
func (c *Collection) BeginLoad() Session {
	c.session++
	c.status = StatusLoading
	c.err = nil
	c.items = nil
	c.page = 1
	return c.session
}

// Apply installs the result of the load identified by s. It returns false and
// changes nothing when s is not the current session.
func (c *Collection) Apply(s Session, items []catalog.Entity) bool {
	if s != c.session || c.status != StatusLoading {
		return false
	}
	c.items = items
	c.err = nil
	c.status = StatusReady
	c.page = 1
	return true
}

// Fail records the failure of the load identified by s. Stale sessions are ignored.
func (c *Collection) Fail(s Session, err error) bool {
	if s != c.session || c.status != StatusLoading {
		return false
	}
	c.err = err
	c.items = nil
	c.status = StatusFailed
	return true
}

// Status returns the current lifecycle state.
func (c *Collection) Status() Status { return c.status }

// Err returns the failure of the last load, if any.
func (c *Collection) Err() error { return c.err }

// Session returns the current load token.
func (c *Collection) Session() Session { return c.session }

// Items returns the full loaded collection.
func (c *Collection) Items() []catalog.Entity { return c.items }

// Len returns the size of the full loaded collection.
func (c *Collection) Len() int { return len(c.items) }

// Search returns the current search term.
func (c *Collection) Search() string { return c.search }

// Page returns the current 1-based page.
func (c *Collection) Page() int { return c.page }

// PageSize returns the number of rows per page.
func (c *Collection) PageSize() int { return c.pageSize }

// Identity returns the identity mode used for row keys.
func (c *Collection) Identity() catalog.IdentityMode { return c.identity }

// SetSearch replaces the search term and returns to the first page.
func (c *Collection) SetSearch(term string) {
	c.search = term
	c.page = 1
}

// SetPage moves to page p, clamped to [1, PageCount].
func (c *Collection) SetPage(p int) {
	c.page = max(1, min(p, c.PageCount()))
}

// NextPage advances one page, staying on the last page.
func (c *Collection) NextPage() { c.SetPage(c.page + 1) }

// PrevPage goes back one page, staying on the first page.
func (c *Collection) PrevPage() { c.SetPage(c.page - 1) }

// Filtered returns the rows whose name contains the search term,
// case-insensitively, in collection order.
func (c *Collection) Filtered() []Row {
	term := strings.ToLower(c.search)
	rows := make([]Row, 0, len(c.items))
	for i, e := range c.items {
		if term != "" && !strings.Contains(strings.ToLower(e.Name), term) {
			continue
		}
		rows = append(rows, Row{
			Position: i,
			Key:      catalog.KeyFor(c.identity, i, e),
			Entity:   e,
		})
	}
	return rows
}

// PageCount returns the number of pages of the filtered rows, at least 1.
func (c *Collection) PageCount() int {
	n := len(c.Filtered())
	if n == 0 {
		return 1
	}
	return (n + c.pageSize - 1) / c.pageSize
}

// Paged returns the slice of filtered rows for the current page.
func (c *Collection) Paged() []Row {
	rows := c.Filtered()
	start := (c.page - 1) * c.pageSize
	if start >= len(rows) {
		return []Row{}
	}
	end := min(start+c.pageSize, len(rows))
	return rows[start:end]
}

// Lookup resolves key against the loaded collection. Keys carrying an ID are
// matched by ID; otherwise the position indexes the collection.
func (c *Collection) Lookup(key catalog.Key) (catalog.Entity, bool) {
	if key.HasID() {
		for i, e := range c.items {
			if catalog.KeyFor(catalog.IdentityLocator, i, e).ID == key.ID {
				return e, true
			}
		}
		return catalog.Entity{}, false
	}
	if key.Position < 0 || key.Position >= len(c.items) {
		return catalog.Entity{}, false
	}
	return c.items[key.Position], true
}
