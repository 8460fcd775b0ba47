package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// filterManager implements the FilterManager interface.
type filterManager struct {
	input  textinput.Model
	active bool
}

// NewFilterManager creates a new FilterManager instance.
func NewFilterManager() FilterManager {
	input := textinput.New()
	input.Placeholder = "Search characters by name..."
	input.CharLimit = 100
	input.Width = 50
	input.Prompt = ""

	return &filterManager{
		input:  input,
		active: false,
	}
}

// IsActive returns true if filtering is currently active.
func (fm *filterManager) IsActive() bool {
	return fm.active
}

// GetFilter returns the current filter input.
func (fm *filterManager) GetFilter() textinput.Model {
	return fm.input
}

// SetActive sets the filter active state.
func (fm *filterManager) SetActive(active bool) {
	fm.active = active
	if active {
		fm.input.Focus()
	} else {
		fm.input.Blur()
	}
}

// UpdateInput updates the filter input model and returns a command.
func (fm *filterManager) UpdateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	fm.input, cmd = fm.input.Update(msg)
	return cmd
}

// ClearFilter clears the current filter.
func (fm *filterManager) ClearFilter() {
	fm.input.SetValue("")
	fm.active = false
	fm.input.Blur()
}

// GetFilterText returns the current filter text.
func (fm *filterManager) GetFilterText() string {
	return fm.input.Value()
}

// SetFilterText sets the filter text.
func (fm *filterManager) SetFilterText(text string) {
	fm.input.SetValue(text)
}

// HighlightMatches wraps the first case-insensitive match of pattern in text
// with highlightFn.
func HighlightMatches(text, pattern string, highlightFn func(string) string) string {
	if pattern == "" {
		return text
	}

	runes := []rune(text)
	n := utf8.RuneCountInString(pattern)
	for i := 0; i+n <= len(runes); i++ {
		if strings.EqualFold(string(runes[i:i+n]), pattern) {
			return string(runes[:i]) + highlightFn(string(runes[i:i+n])) + string(runes[i+n:])
		}
	}
	return text
}
