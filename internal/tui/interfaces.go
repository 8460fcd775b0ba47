// Package tui provides a terminal user interface for browsing the SWAPI people
// catalog: a paged, searchable list and a details view per character.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ikari-pl/go-swapi-browser/internal/catalog"
	"github.com/ikari-pl/go-swapi-browser/internal/tui/theme"
)

// TUI provides the main terminal user interface.
type TUI interface {
	// Run starts the TUI and blocks until the user exits or ctx is cancelled.
	Run(ctx context.Context) error
}

// Model represents the application state for the TUI.
type Model interface {
	// Init initializes the model.
	Init() tea.Cmd

	// Update handles messages and updates the model.
	Update(tea.Msg) (tea.Model, tea.Cmd)

	// View renders the current view.
	View() string
}

// ViewManager routes rendering and input to the screen named by the state.
type ViewManager interface {
	// GetCurrentView returns the screen for state.CurrentView, or the list.
	GetCurrentView(state *State) View

	// SwitchView makes viewName the default screen.
	SwitchView(viewName string) error

	// GetView returns a screen by name, or nil.
	GetView(viewName string) View
}

// View represents a single view in the TUI.
type View interface {
	// Name returns the view's name.
	Name() string

	// Render renders the view with the given model state.
	Render(state *State) string

	// Update handles view-specific updates.
	Update(msg tea.Msg, state *State) (*State, tea.Cmd)

	// CanHandle returns true if this view can handle the given message.
	CanHandle(msg tea.Msg, state *State) bool
}

// Loader starts asynchronous loads. Starting a load supersedes the previous
// load of the same kind: its context is cancelled and its result discarded.
type Loader interface {
	// LoadCollection starts loading the enriched collection.
	LoadCollection(state *State) tea.Cmd

	// LoadDetail starts resolving the entity addressed by key.
	LoadDetail(state *State, key catalog.Key) tea.Cmd

	// CancelDetail abandons any detail lookup in flight.
	CancelDetail(state *State)
}

// Navigator manages navigation state and history.
type Navigator interface {
	// PushState saves the current state to the navigation stack.
	PushState(state ViewState)

	// PopState returns to the previous state from the navigation stack.
	PopState() (ViewState, bool)

	// AddToPath adds a new navigation step to the breadcrumb path.
	AddToPath(key catalog.Key, name string, direction string)

	// GetPath returns the current navigation path.
	GetPath() []PathItem

	// ClearPath clears the navigation path.
	ClearPath()

	// RenderPath renders the navigation path as a string.
	RenderPath() string

	// GetDepth returns the current navigation depth.
	GetDepth() int
}

// StyleManager provides consistent styling across the TUI.
type StyleManager interface {
	// Header renders a full-width header with the given text.
	Header(text string, width int) string

	// Footer renders a footer with the given content.
	Footer(content string, width int) string

	// SelectedItem renders a selected item with highlighting.
	SelectedItem(text string) string

	// Path renders a navigation path.
	Path(text string) string

	// Error renders error text.
	Error(text string) string

	// Success renders success text.
	Success(text string) string

	// Status renders a status message of the given kind.
	Status(kind, text string) string

	// DimText renders text with dimmed/grayed out styling.
	DimText(text string) string

	// Box renders text in a box.
	Box(text string) string

	// Title renders a title.
	Title(text string) string

	// Highlight renders matched search text.
	Highlight(text string) string

	// Separator renders a visual separator.
	Separator(width int) string

	// GetStyles returns the underlying theme styles.
	GetStyles() *theme.Styles

	// GetTheme returns the underlying theme.
	GetTheme() *theme.Theme

	// ToggleTheme switches between light and dark and rebuilds the styles.
	ToggleTheme() theme.Mode
}

// FilterManager handles the search input of the list view.
type FilterManager interface {
	// IsActive returns true if the search input has focus.
	IsActive() bool

	// GetFilter returns the current filter input.
	GetFilter() textinput.Model

	// SetActive sets the filter active state.
	SetActive(active bool)

	// UpdateInput updates the filter input model and returns a command.
	UpdateInput(msg tea.Msg) tea.Cmd

	// ClearFilter clears the current filter.
	ClearFilter()

	// GetFilterText returns the current filter text.
	GetFilterText() string

	// SetFilterText sets the filter text.
	SetFilterText(text string)
}
