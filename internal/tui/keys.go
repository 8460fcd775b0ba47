package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every key binding of the browser.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Open     key.Binding
	Search   key.Binding
	Refresh  key.Binding
	Copy     key.Binding
	Theme    key.Binding
	Help     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevPage: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		NextPage: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy name")),
		Theme:    key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "theme")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:     key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ListShortHelp returns the bindings shown in the list footer.
func (k KeyMap) ListShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Search, k.PrevPage, k.NextPage, k.Refresh, k.Theme, k.Help, k.Back}
}

// DetailsShortHelp returns the bindings shown in the details footer.
func (k KeyMap) DetailsShortHelp() []key.Binding {
	retry := k.Refresh
	retry.SetHelp("r", "retry")
	return []key.Binding{retry, k.Copy, k.Theme, k.Help, k.Back}
}

// HelpSection groups bindings under a title in the help view.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// Sections returns the full help, grouped.
func (k KeyMap) Sections() []HelpSection {
	return []HelpSection{
		{Title: "Navigation", Bindings: []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.PrevPage, k.NextPage, k.Open, k.Back}},
		{Title: "Search", Bindings: []key.Binding{
			k.Search,
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "keep search")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		}},
		{Title: "Details", Bindings: []key.Binding{k.Copy, k.Refresh}},
		{Title: "General", Bindings: []key.Binding{k.Refresh, k.Theme, k.Help, k.Quit}},
	}
}
