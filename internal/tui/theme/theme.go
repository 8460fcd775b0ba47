// Package theme provides the light and dark visual themes for the TUI and the
// provider that switches between them.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Mode names a theme.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Theme represents the complete visual theme for the application.
type Theme struct {
	Mode Mode

	// Base colors
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color
	Muted   lipgloss.Color
	Subtle  lipgloss.Color
	Text    lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Catalog colors
	Species  lipgloss.Color
	Position lipgloss.Color

	// UI element colors
	Border    lipgloss.Color
	Selection lipgloss.Color
	Highlight lipgloss.Color
}

// LightTheme returns the default light theme.
func LightTheme() *Theme {
	return &Theme{
		Mode: ModeLight,

		Base:    lipgloss.Color("#ffffff"),
		Surface: lipgloss.Color("#f6f8fa"),
		Overlay: lipgloss.Color("#eaeef2"),
		Muted:   lipgloss.Color("#8c959f"),
		Subtle:  lipgloss.Color("#57606a"),
		Text:    lipgloss.Color("#1f2328"),

		Primary:   lipgloss.Color("#0969da"),
		Secondary: lipgloss.Color("#8250df"),

		Success: lipgloss.Color("#1a7f37"),
		Warning: lipgloss.Color("#9a6700"),
		Error:   lipgloss.Color("#cf222e"),
		Info:    lipgloss.Color("#0969da"),

		Species:  lipgloss.Color("#8250df"),
		Position: lipgloss.Color("#bc4c00"),

		Border:    lipgloss.Color("#d0d7de"),
		Selection: lipgloss.Color("#ddf4ff"),
		Highlight: lipgloss.Color("#54aeff"),
	}
}

// DarkTheme returns the dark theme.
func DarkTheme() *Theme {
	return &Theme{
		Mode: ModeDark,

		// Deep space base palette
		Base:    lipgloss.Color("#0d1117"),
		Surface: lipgloss.Color("#161b22"),
		Overlay: lipgloss.Color("#21262d"),
		Muted:   lipgloss.Color("#484f58"),
		Subtle:  lipgloss.Color("#6e7681"),
		Text:    lipgloss.Color("#e6edf3"),

		Primary:   lipgloss.Color("#58a6ff"),
		Secondary: lipgloss.Color("#bc8cff"),

		Success: lipgloss.Color("#3fb950"),
		Warning: lipgloss.Color("#d29922"),
		Error:   lipgloss.Color("#f85149"),
		Info:    lipgloss.Color("#58a6ff"),

		Species:  lipgloss.Color("#a371f7"),
		Position: lipgloss.Color("#ffa657"),

		Border:    lipgloss.Color("#30363d"),
		Selection: lipgloss.Color("#388bfd"),
		Highlight: lipgloss.Color("#1f6feb"),
	}
}

// ForMode returns the theme for mode.
func ForMode(mode Mode) (*Theme, error) {
	switch mode {
	case ModeLight:
		return LightTheme(), nil
	case ModeDark:
		return DarkTheme(), nil
	default:
		return nil, fmt.Errorf("unknown theme: %s", mode)
	}
}

// Styles holds all pre-configured styles for the UI.
type Styles struct {
	theme *Theme

	// Layout styles
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style

	// Component styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style

	// List styles
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	PositionBadge    lipgloss.Style
	SpeciesBadge     lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style

	// Special styles
	Breadcrumb lipgloss.Style
	KeyBinding lipgloss.Style
	KeyLabel   lipgloss.Style
	Divider    lipgloss.Style
	Box        lipgloss.Style
	SearchBox  lipgloss.Style

	// Details styles
	DetailSection lipgloss.Style
	DetailLabel   lipgloss.Style
	DetailValue   lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = LightTheme()
	}

	s := &Styles{theme: theme}

	s.Header = lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.Surface).
		Bold(true).
		Padding(0, 2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(theme.Border)

	s.Footer = lipgloss.NewStyle().
		Foreground(theme.Subtle).
		Background(theme.Surface).
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(theme.Border)

	s.Content = lipgloss.NewStyle().
		Padding(1, 2)

	s.Title = lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		MarginBottom(1)

	s.Subtitle = lipgloss.NewStyle().
		Foreground(theme.Subtle).
		Italic(true)

	s.Label = lipgloss.NewStyle().
		Foreground(theme.Muted)

	s.Value = lipgloss.NewStyle().
		Foreground(theme.Text)

	s.ListItem = lipgloss.NewStyle().
		Foreground(theme.Text).
		Padding(0, 1)

	s.ListItemSelected = lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.Selection).
		Bold(true).
		Padding(0, 1)

	s.PositionBadge = lipgloss.NewStyle().
		Foreground(theme.Position).
		Width(5).
		Align(lipgloss.Right)

	s.SpeciesBadge = lipgloss.NewStyle().
		Foreground(theme.Base).
		Background(theme.Species).
		Padding(0, 1)

	s.Success = lipgloss.NewStyle().Foreground(theme.Success)
	s.Warning = lipgloss.NewStyle().Foreground(theme.Warning)
	s.Error = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	s.Info = lipgloss.NewStyle().Foreground(theme.Info)
	s.Muted = lipgloss.NewStyle().Foreground(theme.Muted)

	s.Breadcrumb = lipgloss.NewStyle().
		Foreground(theme.Subtle).
		Background(theme.Overlay).
		Padding(0, 1)

	s.KeyBinding = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Background(theme.Overlay).
		Padding(0, 1).
		Bold(true)

	s.KeyLabel = lipgloss.NewStyle().
		Foreground(theme.Subtle)

	s.Divider = lipgloss.NewStyle().
		Foreground(theme.Border)

	s.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2)

	s.SearchBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	s.DetailSection = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		MarginBottom(1)

	s.DetailLabel = lipgloss.NewStyle().
		Foreground(theme.Subtle).
		Width(14)

	s.DetailValue = lipgloss.NewStyle().
		Foreground(theme.Text)

	return s
}

// GetTheme returns the underlying theme.
func (s *Styles) GetTheme() *Theme {
	return s.theme
}

// Icons provides the glyphs used across views.
var Icons = struct {
	Person     string
	Species    string
	ArrowRight string
	ArrowLeft  string
	Check      string
	Cross      string
	Warning    string
	Search     string
	Refresh    string
	Back       string
	Dot        string
}{
	Person:     "●",
	Species:    "◆",
	ArrowRight: "▶",
	ArrowLeft:  "◀",
	Check:      "✓",
	Cross:      "✗",
	Warning:    "⚠",
	Search:     "/",
	Refresh:    "↻",
	Back:       "←",
	Dot:        "•",
}
