package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ikari-pl/go-swapi-browser/internal/tui/theme"
)

// styleManager implements the StyleManager interface on top of a theme provider.
type styleManager struct {
	provider *theme.Provider
	theme    *theme.Theme
	styles   *theme.Styles

	highlightStyle lipgloss.Style
	searchStyle    lipgloss.Style
	errorStyle     lipgloss.Style
	successStyle   lipgloss.Style
}

// NewStyleManager creates a StyleManager that follows provider.
func NewStyleManager(provider *theme.Provider) StyleManager {
	if provider == nil {
		provider = theme.NewProvider(theme.ModeLight)
	}
	s := &styleManager{provider: provider}
	s.rebuild()
	return s
}

// rebuild recomputes every style from the provider's active theme.
func (s *styleManager) rebuild() {
	t := s.provider.Theme()
	s.theme = t
	s.styles = theme.NewStyles(t)

	s.highlightStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Selection).
		Bold(true)

	s.searchStyle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Underline(true)

	s.errorStyle = lipgloss.NewStyle().
		Foreground(t.Base).
		Background(t.Error).
		Bold(true).
		Padding(0, 1)

	s.successStyle = lipgloss.NewStyle().
		Foreground(t.Base).
		Background(t.Success).
		Bold(true).
		Padding(0, 1)
}

// ToggleTheme switches between light and dark and rebuilds the styles.
func (s *styleManager) ToggleTheme() theme.Mode {
	mode := s.provider.Toggle()
	s.rebuild()
	return mode
}

// Header renders a header bar with an accent line below it.
func (s *styleManager) Header(text string, width int) string {
	if width <= 0 {
		width = 80
	}

	header := s.styles.Header.
		BorderBottom(false).
		Width(width).
		Render(theme.Icons.Person + " " + text)

	return header + "\n" + s.renderAccentLine(width)
}

// renderAccentLine draws a two-tone line under the header.
func (s *styleManager) renderAccentLine(width int) string {
	half := width / 2
	left := lipgloss.NewStyle().Foreground(s.theme.Primary).Render(strings.Repeat("▀", half))
	right := lipgloss.NewStyle().Foreground(s.theme.Secondary).Render(strings.Repeat("▀", width-half))
	return left + right
}

// Footer renders the footer bar.
func (s *styleManager) Footer(content string, width int) string {
	if width <= 0 {
		width = 80
	}
	return lipgloss.NewStyle().
		Background(s.theme.Surface).
		Padding(0, 1).
		Width(width).
		Render(content)
}

// SelectedItem renders a selected item with highlighting.
func (s *styleManager) SelectedItem(text string) string {
	return s.highlightStyle.Render(text)
}

// Path renders a navigation path.
func (s *styleManager) Path(text string) string {
	return s.styles.Breadcrumb.Render(text)
}

// Error renders error text.
func (s *styleManager) Error(text string) string {
	return s.errorStyle.Render(text)
}

// Success renders success text.
func (s *styleManager) Success(text string) string {
	return s.successStyle.Render(text)
}

// Status renders a status message of the given kind.
func (s *styleManager) Status(kind, text string) string {
	style := s.styles.Muted
	switch kind {
	case StatusSuccess:
		style = s.styles.Success
	case StatusWarning:
		style = s.styles.Warning
	case StatusError:
		style = s.styles.Error
	case StatusInfo:
		style = s.styles.Info
	}
	return style.Italic(true).Render(text)
}

// DimText renders text with dimmed/grayed out styling.
func (s *styleManager) DimText(text string) string {
	return s.styles.Muted.Render(text)
}

// Box renders text in a rounded box.
func (s *styleManager) Box(text string) string {
	return s.styles.Box.Render(text)
}

// Title renders a title.
func (s *styleManager) Title(text string) string {
	return s.styles.Title.Render(text)
}

// Highlight renders matched search text.
func (s *styleManager) Highlight(text string) string {
	return s.searchStyle.Render(text)
}

// Separator renders a visual separator line.
func (s *styleManager) Separator(width int) string {
	if width <= 0 {
		width = 60
	}
	return s.styles.Divider.Render(strings.Repeat("─", width))
}

// GetStyles returns the underlying theme styles.
func (s *styleManager) GetStyles() *theme.Styles {
	return s.styles
}

// GetTheme returns the underlying theme.
func (s *styleManager) GetTheme() *theme.Theme {
	return s.theme
}
