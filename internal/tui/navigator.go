package tui

import (
	"strings"

	"github.com/ikari-pl/go-swapi-browser/internal/catalog"
)

// navigator implements the Navigator interface.
type navigator struct {
	stack []ViewState
	path  []PathItem
}

// NewNavigator creates a new Navigator instance.
func NewNavigator() Navigator {
	return &navigator{
		stack: make([]ViewState, 0),
		path:  make([]PathItem, 0),
	}
}

// PushState saves the current state to the navigation stack.
func (n *navigator) PushState(state ViewState) {
	n.stack = append(n.stack, state)
}

// PopState returns to the previous state from the navigation stack.
func (n *navigator) PopState() (ViewState, bool) {
	if len(n.stack) == 0 {
		return ViewState{}, false
	}

	last := n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]

	if len(n.path) > 0 {
		n.path = n.path[:len(n.path)-1]
	}

	return last, true
}

// AddToPath adds a new navigation step to the breadcrumb path.
func (n *navigator) AddToPath(key catalog.Key, name string, direction string) {
	displayName := name
	if r := []rune(displayName); len(r) > 20 {
		displayName = string(r[:17]) + "..."
	}

	if len(n.path) >= MaxNavPathLength {
		n.path = n.path[1:]
	}

	n.path = append(n.path, PathItem{
		Key:         key,
		Direction:   direction,
		DisplayName: displayName,
	})
}

// GetPath returns a copy of the current navigation path.
func (n *navigator) GetPath() []PathItem {
	out := make([]PathItem, len(n.path))
	copy(out, n.path)
	return out
}

// ClearPath clears the navigation path.
func (n *navigator) ClearPath() {
	n.path = make([]PathItem, 0)
}

// RenderPath renders the navigation path as a formatted string.
func (n *navigator) RenderPath() string {
	if len(n.path) == 0 {
		return ""
	}

	parts := make([]string, 0, len(n.path))
	for i, item := range n.path {
		part := item.DisplayName
		if i > 0 {
			part = item.Direction + " " + part
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, " ")
}

// GetDepth returns the current navigation depth.
func (n *navigator) GetDepth() int {
	return len(n.stack)
}
