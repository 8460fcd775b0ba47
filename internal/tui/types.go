package tui

import (
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"

	"github.com/ikari-pl/go-swapi-browser/internal/catalog"
	"github.com/ikari-pl/go-swapi-browser/internal/viewstate"
)

// State represents the complete application state.
type State struct {
	// Core data
	Collection *viewstate.Collection
	Detail     *viewstate.Detail
	Identity   catalog.IdentityMode

	// Current view state
	CurrentView  string
	PreviousView string

	// Cursor is the selected row within the current page.
	Cursor int

	// UI components
	Spinner   spinner.Model
	Paginator paginator.Model
	Keys      KeyMap

	// Window dimensions
	WindowWidth  int
	WindowHeight int

	// Navigation
	Navigator Navigator

	// Filters
	FilterActive bool

	// Status
	StatusMessage string
	StatusType    string // "info", "success", "warning", "error"
}

// SelectedRow returns the row under the cursor on the current page.
func (s *State) SelectedRow() (viewstate.Row, bool) {
	rows := s.Collection.Paged()
	if s.Cursor < 0 || s.Cursor >= len(rows) {
		return viewstate.Row{}, false
	}
	return rows[s.Cursor], true
}

// ClampCursor keeps the cursor inside the current page.
func (s *State) ClampCursor() {
	n := len(s.Collection.Paged())
	if s.Cursor >= n {
		s.Cursor = n - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// SyncPaginator mirrors the collection's page into the paginator component.
func (s *State) SyncPaginator() {
	s.Paginator.PerPage = s.Collection.PageSize()
	s.Paginator.TotalPages = s.Collection.PageCount()
	s.Paginator.Page = s.Collection.Page() - 1
}

// SetStatus sets the footer status line.
func (s *State) SetStatus(kind, message string) {
	s.StatusType = kind
	s.StatusMessage = message
}

// Loading reports whether any load is in flight.
func (s *State) Loading() bool {
	return s.Collection.Status() == viewstate.StatusLoading ||
		s.Detail.Status() == viewstate.StatusLoading
}

// ViewState represents a saved navigation state.
type ViewState struct {
	View    string      // "list", "details", "help"
	Key     catalog.Key // Entity being viewed (for details)
	Page    int         // Page in list view
	Cursor  int         // Selected row in list view
	NavPath []PathItem  // Navigation path at this state
}

// PathItem represents a single step in the navigation path.
type PathItem struct {
	Key         catalog.Key
	Direction   string
	DisplayName string
}

// Constants for view names.
const (
	ViewList    = "list"
	ViewDetails = "details"
	ViewHelp    = "help"
)

// Constants for navigation directions.
const (
	DirectionStart = "●"
	DirectionOpen  = "→"
)

// Constants for display limits.
const (
	MaxDisplayNameLength = 40
	TruncateLength       = 37
	EllipsisString       = "..."
	MaxNavPathLength     = 10
)

// StatusType constants
const (
	StatusInfo    = "info"
	StatusSuccess = "success"
	StatusWarning = "warning"
	StatusError   = "error"
)

// truncate shortens s for display.
func truncate(s string) string {
	r := []rune(s)
	if len(r) > MaxDisplayNameLength {
		return string(r[:TruncateLength]) + EllipsisString
	}
	return s
}
