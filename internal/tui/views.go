package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ikari-pl/go-swapi-browser/internal/catalog"
	"github.com/ikari-pl/go-swapi-browser/internal/output"
	"github.com/ikari-pl/go-swapi-browser/internal/tui/theme"
	"github.com/ikari-pl/go-swapi-browser/internal/viewstate"
)

// Copier writes text to the system clipboard.
type Copier func(text string) error

// clipboardMsg reports the outcome of a copy.
type clipboardMsg struct {
	text string
	err  error
}

// renderShortHelp renders bindings as "key label" pairs in the footer style.
func renderShortHelp(styles StyleManager, bindings []key.Binding) string {
	h := help.New()
	s := styles.GetStyles()
	h.Styles.ShortKey = s.KeyBinding
	h.Styles.ShortDesc = s.KeyLabel
	h.Styles.ShortSeparator = s.Muted
	h.ShortSeparator = " "
	return h.ShortHelpView(bindings)
}

// footer joins the key help with the current status message.
func footer(styles StyleManager, state *State, bindings []key.Binding, width int) string {
	content := renderShortHelp(styles, bindings)
	if state.StatusMessage != "" {
		content += "  " + styles.Status(state.StatusType, state.StatusMessage)
	}
	return styles.Footer(content, width)
}

func viewWidth(state *State) int {
	if state.WindowWidth < 40 {
		return 80
	}
	return state.WindowWidth
}

// ═══════════════════════════════════════════════════════════════════════════════
// LIST VIEW
// ═══════════════════════════════════════════════════════════════════════════════

// listView implements the View interface for the paged character list.
type listView struct {
	styles StyleManager
	filter FilterManager
	loader Loader
}

// NewListView creates a new list view.
func NewListView(styles StyleManager, filter FilterManager, loader Loader) View {
	return &listView{
		styles: styles,
		filter: filter,
		loader: loader,
	}
}

// Name returns the view's name.
func (lv *listView) Name() string {
	return ViewList
}

// Render renders the view with the given model state.
func (lv *listView) Render(state *State) string {
	width := viewWidth(state)

	parts := []string{
		lv.styles.Header("STAR WARS CHARACTERS", width),
		lv.renderStatsBar(state),
		lv.renderFilterBar(state, width),
		lv.renderBody(state, width),
		footer(lv.styles, state, state.Keys.ListShortHelp(), width),
	}
	return strings.Join(parts, "\n")
}

// renderStatsBar summarises the collection and the current page.
func (lv *listView) renderStatsBar(state *State) string {
	c := state.Collection
	items := []string{fmt.Sprintf("%d characters", c.Len())}
	if c.Search() != "" {
		items = append(items, fmt.Sprintf("%d matching", len(c.Filtered())))
	}
	items = append(items,
		fmt.Sprintf("page %d/%d", c.Page(), c.PageCount()),
		string(lv.styles.GetTheme().Mode),
	)
	if c.Status() == viewstate.StatusLoading {
		items = append(items, state.Spinner.View()+" loading")
	}
	return lv.styles.DimText(" " + strings.Join(items, "  │  "))
}

// renderFilterBar renders the search input; it is always present for a stable layout.
func (lv *listView) renderFilterBar(state *State, width int) string {
	t := lv.styles.GetTheme()
	style := lipgloss.NewStyle().Padding(0, 1).Width(width)

	if lv.filter.IsActive() {
		return style.
			Background(t.Highlight).
			Foreground(t.Base).
			Bold(true).
			Render(theme.Icons.Search + " " + lv.filter.GetFilter().View() + "  │  enter=keep  esc=clear")
	}

	if term := state.Collection.Search(); term != "" {
		return style.
			Background(t.Success).
			Foreground(t.Base).
			Render(theme.Icons.Check + " Search: \"" + term + "\"  │  / to edit  esc to clear")
	}

	return style.
		Background(t.Surface).
		Foreground(t.Muted).
		Render("   / to search...")
}

// renderBody renders the rows, or the loading and failure states.
func (lv *listView) renderBody(state *State, width int) string {
	c := state.Collection
	switch {
	case c.Status() == viewstate.StatusFailed:
		return lv.styles.Box(lv.styles.Error(c.Err().Error()) + "\n\n" +
			lv.styles.DimText("press r to retry"))
	case c.Status() == viewstate.StatusLoading || c.Status() == viewstate.StatusIdle:
		return lv.styles.Box(state.Spinner.View() + " Loading characters...")
	}

	rows := c.Paged()
	if len(rows) == 0 {
		return lv.styles.Box(lv.styles.DimText("No characters match \"" + c.Search() + "\""))
	}

	s := lv.styles.GetStyles()
	lines := make([]string, 0, len(rows)+2)
	for i, row := range rows {
		selected := i == state.Cursor
		name := fmt.Sprintf("%-*s", MaxDisplayNameLength, truncate(row.Entity.Name))
		if term := c.Search(); term != "" && !selected {
			name = HighlightMatches(name, term, lv.styles.Highlight)
		}
		line := fmt.Sprintf("%s  %s  %-10s  %s",
			s.PositionBadge.Render(fmt.Sprintf("#%d", row.Position)),
			name,
			row.Entity.BirthYear,
			output.SpeciesLabel(row.Entity),
		)
		if selected {
			lines = append(lines, lv.styles.SelectedItem(theme.Icons.ArrowRight+" "+line))
			continue
		}
		lines = append(lines, s.ListItem.Render("  "+line))
	}

	state.SyncPaginator()
	lines = append(lines, "", "  "+state.Paginator.View())
	return lipgloss.NewStyle().Padding(1, 1).Width(width).Render(strings.Join(lines, "\n"))
}

// Update handles view-specific updates.
func (lv *listView) Update(msg tea.Msg, state *State) (*State, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return state, nil
	}

	keys := state.Keys
	switch {
	case key.Matches(keyMsg, keys.Up):
		if state.Cursor > 0 {
			state.Cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if state.Cursor < len(state.Collection.Paged())-1 {
			state.Cursor++
		}
	case key.Matches(keyMsg, keys.Top):
		state.Cursor = 0
	case key.Matches(keyMsg, keys.Bottom):
		state.Cursor = len(state.Collection.Paged()) - 1
		state.ClampCursor()
	case key.Matches(keyMsg, keys.PrevPage):
		state.Collection.PrevPage()
		state.Cursor = 0
		state.SyncPaginator()
	case key.Matches(keyMsg, keys.NextPage):
		state.Collection.NextPage()
		state.Cursor = 0
		state.SyncPaginator()
	case key.Matches(keyMsg, keys.Refresh):
		state.SetStatus(StatusInfo, "Refreshing...")
		return state, lv.loader.LoadCollection(state)
	case key.Matches(keyMsg, keys.Open):
		return lv.openSelected(state)
	}
	return state, nil
}

// openSelected moves to the details view for the row under the cursor.
func (lv *listView) openSelected(state *State) (*State, tea.Cmd) {
	row, ok := state.SelectedRow()
	if !ok {
		return state, nil
	}

	state.Navigator.PushState(ViewState{
		View:    ViewList,
		Page:    state.Collection.Page(),
		Cursor:  state.Cursor,
		NavPath: state.Navigator.GetPath(),
	})
	state.Navigator.ClearPath()
	state.Navigator.AddToPath(catalog.Key{}, "Characters", DirectionStart)
	state.Navigator.AddToPath(row.Key, row.Entity.Name, DirectionOpen)

	state.PreviousView = ViewList
	state.CurrentView = ViewDetails
	state.SetStatus("", "")
	return state, lv.loader.LoadDetail(state, row.Key)
}

// CanHandle returns true if this view can handle the given message.
func (lv *listView) CanHandle(msg tea.Msg, state *State) bool {
	return state.CurrentView == ViewList
}

// ═══════════════════════════════════════════════════════════════════════════════
// DETAILS VIEW
// ═══════════════════════════════════════════════════════════════════════════════

// detailsView implements the View interface for a single character.
type detailsView struct {
	styles StyleManager
	loader Loader
	copy   Copier
}

// NewDetailsView creates a new details view.
func NewDetailsView(styles StyleManager, loader Loader, copier Copier) View {
	return &detailsView{
		styles: styles,
		loader: loader,
		copy:   copier,
	}
}

// Name returns the view's name.
func (dv *detailsView) Name() string {
	return ViewDetails
}

// Render renders the view with the given model state.
func (dv *detailsView) Render(state *State) string {
	width := viewWidth(state)
	d := state.Detail

	title := "CHARACTER " + d.Key().String()
	if e := d.Entity(); e != nil {
		title = strings.ToUpper(e.Name)
	}

	parts := []string{dv.styles.Header(title, width)}
	if path := state.Navigator.RenderPath(); path != "" {
		parts = append(parts, dv.styles.Path(path))
	}
	parts = append(parts,
		dv.renderBody(state, width),
		footer(dv.styles, state, state.Keys.DetailsShortHelp(), width),
	)
	return strings.Join(parts, "\n")
}

func (dv *detailsView) renderBody(state *State, width int) string {
	d := state.Detail
	switch d.Status() {
	case viewstate.StatusLoading, viewstate.StatusIdle:
		return dv.styles.Box(state.Spinner.View() + " Loading character...")
	case viewstate.StatusNotFound:
		return dv.styles.Box(dv.styles.Error("Character not found") + "\n\n" +
			dv.styles.DimText("No character matches "+d.Key().String()+". Press q to go back."))
	case viewstate.StatusFailed:
		return dv.styles.Box(dv.styles.Error(d.Err().Error()) + "\n\n" +
			dv.styles.DimText("press r to retry"))
	}

	e := d.Entity()
	s := dv.styles.GetStyles()
	row := func(label, value string) string {
		return s.DetailLabel.Render(label) + s.DetailValue.Render(value)
	}

	var species string
	if len(e.SpeciesNames) == 0 {
		species = s.DetailValue.Render(output.NotAvailable)
	} else {
		badges := make([]string, len(e.SpeciesNames))
		for i, name := range e.SpeciesNames {
			badges[i] = s.SpeciesBadge.Render(name)
		}
		species = strings.Join(badges, " ")
	}

	info := strings.Join([]string{
		dv.styles.Title(e.Name),
		row("Birth year", e.BirthYear),
		row("Gender", e.Gender),
		row("Height", output.WithUnit(e.Height, "cm")),
		row("Mass", output.WithUnit(e.Mass, "kg")),
		row("Hair color", e.HairColor),
		row("Eye color", e.EyeColor),
		s.DetailLabel.Render("Species") + species,
	}, "\n")

	refs := strings.Join([]string{
		row("Avatar", output.AvatarURL(e.Name)),
		row("Source", e.URL),
		row("ID", e.ID.String()),
	}, "\n")

	section := s.DetailSection.Width(width - 4)
	return section.Render(info) + "\n" + section.Render(refs)
}

// Update handles view-specific updates.
func (dv *detailsView) Update(msg tea.Msg, state *State) (*State, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return state, nil
	}

	switch {
	case key.Matches(keyMsg, state.Keys.Refresh):
		state.SetStatus(StatusInfo, "Retrying...")
		return state, dv.loader.LoadDetail(state, state.Detail.Key())

	case key.Matches(keyMsg, state.Keys.Copy):
		e := state.Detail.Entity()
		if e == nil || dv.copy == nil {
			return state, nil
		}
		name, copyFn := e.Name, dv.copy
		return state, func() tea.Msg {
			return clipboardMsg{text: name, err: copyFn(name)}
		}
	}
	return state, nil
}

// CanHandle returns true if this view can handle the given message.
func (dv *detailsView) CanHandle(msg tea.Msg, state *State) bool {
	return state.CurrentView == ViewDetails
}

// ═══════════════════════════════════════════════════════════════════════════════
// HELP VIEW
// ═══════════════════════════════════════════════════════════════════════════════

// helpView implements the View interface for the help overlay.
type helpView struct {
	styles StyleManager
}

// NewHelpView creates a new help view.
func NewHelpView(styles StyleManager) View {
	return &helpView{
		styles: styles,
	}
}

// Name returns the view's name.
func (hv *helpView) Name() string {
	return ViewHelp
}

// Render renders the help overlay.
func (hv *helpView) Render(state *State) string {
	width := min(viewWidth(state), 100)
	s := hv.styles.GetStyles()
	t := hv.styles.GetTheme()

	sectionStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginTop(1)
	keyStyle := lipgloss.NewStyle().Foreground(t.Success).Width(16)

	var content strings.Builder
	for _, section := range state.Keys.Sections() {
		content.WriteString(sectionStyle.Render(section.Title) + "\n")
		for _, b := range section.Bindings {
			h := b.Help()
			content.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), s.Value.Render(h.Desc)))
		}
	}

	box := s.Box.Width(width - 4).Render(content.String())
	return hv.styles.Header("KEYBOARD SHORTCUTS", width) + "\n" + box + "\n" +
		hv.styles.Footer(hv.styles.DimText("Press ? or Esc to close help"), width)
}

// Update handles view-specific updates.
func (hv *helpView) Update(msg tea.Msg, state *State) (*State, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, state.Keys.Help, state.Keys.Back) {
			state.CurrentView = state.PreviousView
			if state.CurrentView == "" || state.CurrentView == ViewHelp {
				state.CurrentView = ViewList
			}
		}
	}
	return state, nil
}

// CanHandle returns true if this view can handle the given message.
func (hv *helpView) CanHandle(msg tea.Msg, state *State) bool {
	return state.CurrentView == ViewHelp
}
