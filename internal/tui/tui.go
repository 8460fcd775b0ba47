package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ikari-pl/go-swapi-browser/internal/catalog"
	"github.com/ikari-pl/go-swapi-browser/internal/tui/theme"
	"github.com/ikari-pl/go-swapi-browser/internal/viewstate"
)

// Options configures the TUI.
type Options struct {
	PageSize int
	Identity catalog.IdentityMode
	Theme    theme.Mode

	// Copier overrides the system clipboard.
	Copier Copier

	// Input and Output override the terminal; used by tests.
	Input  io.Reader
	Output io.Writer
}

// tui implements the TUI interface.
type tui struct {
	logger     *slog.Logger
	aggregator catalog.Aggregator
	opts       Options
}

// NewTUI creates a new TUI instance.
func NewTUI(logger *slog.Logger, aggregator catalog.Aggregator, opts Options) TUI {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &tui{
		logger:     logger,
		aggregator: aggregator,
		opts:       opts,
	}
}

// Run starts the TUI and blocks until the user exits.
func (t *tui) Run(ctx context.Context) error {
	if t.aggregator == nil {
		return fmt.Errorf("aggregator cannot be nil")
	}

	m := NewModel(ctx, t.logger, t.aggregator, t.opts)

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.opts.Input != nil || t.opts.Output != nil {
		progOpts = append(progOpts, tea.WithInput(t.opts.Input), tea.WithOutput(t.opts.Output))
	} else {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	t.logger.Info("Starting TUI", "identity", t.opts.Identity, "theme", t.opts.Theme)
	_, err := tea.NewProgram(m, progOpts...).Run()
	m.(*model).loader.cancelAll()
	if err != nil && ctx.Err() == nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// model implements the Model interface and serves as the main application model.
type model struct {
	state       *State
	viewManager ViewManager
	navigator   Navigator
	styles      StyleManager
	filter      FilterManager
	loader      *loader
	logger      *slog.Logger
}

// NewModel creates a new model instance.
func NewModel(ctx context.Context, logger *slog.Logger, aggregator catalog.Aggregator, opts Options) Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Identity == "" {
		opts.Identity = catalog.IdentityLocator
	}
	if opts.Copier == nil {
		opts.Copier = clipboard.WriteAll
	}

	nav := NewNavigator()
	styles := NewStyleManager(theme.NewProvider(opts.Theme))
	filter := NewFilterManager()
	ld := newLoader(ctx, logger, aggregator, opts.Identity)
	vm := NewViewManager(styles, filter, ld, opts.Copier)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(styles.GetTheme().Primary)

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.ActiveDot = theme.Icons.Dot
	pager.InactiveDot = "·"

	state := &State{
		Collection:   viewstate.NewCollection(opts.PageSize, opts.Identity),
		Detail:       viewstate.NewDetail(),
		Identity:     opts.Identity,
		CurrentView:  ViewList,
		Spinner:      spin,
		Paginator:    pager,
		Keys:         DefaultKeyMap(),
		WindowWidth:  80,
		WindowHeight: 30,
		Navigator:    nav,
	}
	state.SyncPaginator()

	return &model{
		state:       state,
		viewManager: vm,
		navigator:   nav,
		styles:      styles,
		filter:      filter,
		loader:      ld,
		logger:      logger,
	}
}

// Init starts the initial collection load.
func (m *model) Init() tea.Cmd {
	return m.loader.LoadCollection(m.state)
}

// Update handles messages and updates the model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.WindowWidth = msg.Width
		m.state.WindowHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case collectionLoadedMsg:
		m.handleCollectionLoaded(msg)
		return m, nil

	case detailLoadedMsg:
		m.handleDetailLoaded(msg)
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.state.SetStatus(StatusError, "Copy failed: "+msg.err.Error())
		} else {
			m.state.SetStatus(StatusSuccess, "Copied \""+msg.text+"\"")
		}
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		return m, cmd

	default:
		if m.filter.IsActive() {
			return m, m.filter.UpdateInput(msg)
		}
		return m, nil
	}
}

// View renders the current view.
func (m *model) View() string {
	currentView := m.viewManager.GetCurrentView(m.state)
	if currentView == nil {
		return "Error: No view available"
	}
	return currentView.Render(m.state)
}

// handleCollectionLoaded applies a finished collection load unless it was superseded.
func (m *model) handleCollectionLoaded(msg collectionLoadedMsg) {
	c := m.state.Collection
	if msg.err != nil {
		if !c.Fail(msg.session, msg.err) {
			m.logger.Debug("Discarded stale collection failure", "session", msg.session)
			return
		}
		m.logger.Warn("Collection load failed", "session", msg.session, "error", msg.err)
		m.state.SetStatus(StatusError, "Load failed")
		return
	}

	if !c.Apply(msg.session, msg.entities) {
		m.logger.Debug("Discarded stale collection", "session", msg.session)
		return
	}
	m.state.Cursor = 0
	m.state.SyncPaginator()
	m.state.SetStatus(StatusSuccess, fmt.Sprintf("Loaded %d characters", c.Len()))
}

// handleDetailLoaded applies a finished detail lookup unless it was superseded.
func (m *model) handleDetailLoaded(msg detailLoadedMsg) {
	if !m.state.Detail.Resolve(msg.req, msg.entity, msg.err) {
		m.logger.Debug("Discarded stale detail", "key", msg.req.Key.String())
		return
	}
	switch m.state.Detail.Status() {
	case viewstate.StatusFailed:
		m.state.SetStatus(StatusError, "Lookup failed")
	case viewstate.StatusNotFound:
		m.state.SetStatus(StatusWarning, "Not found")
	default:
		m.state.SetStatus("", "")
	}
}

// handleKeyPress handles key press messages.
func (m *model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.state.Keys

	if key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}

	// Search input only lives in the list view.
	if m.filter.IsActive() && m.state.CurrentView == ViewList {
		return m.handleSearchKey(msg)
	} else if m.filter.IsActive() {
		m.filter.SetActive(false)
		m.state.FilterActive = false
	}

	switch {
	case key.Matches(msg, keys.Back) && m.state.CurrentView != ViewHelp:
		if msg.String() == "esc" && m.state.CurrentView == ViewList && m.state.Collection.Search() != "" {
			m.applySearch("")
			return m, nil
		}
		return m.handleBackNavigation()

	case key.Matches(msg, keys.Search) && m.state.CurrentView == ViewList:
		m.filter.SetFilterText(m.state.Collection.Search())
		m.filter.SetActive(true)
		m.state.FilterActive = true
		return m, nil

	case key.Matches(msg, keys.Help) && m.state.CurrentView != ViewHelp:
		m.state.PreviousView = m.state.CurrentView
		m.state.CurrentView = ViewHelp
		return m, nil

	case key.Matches(msg, keys.Theme):
		mode := m.styles.ToggleTheme()
		m.state.Spinner.Style = lipgloss.NewStyle().Foreground(m.styles.GetTheme().Primary)
		m.state.SetStatus(StatusInfo, "Theme: "+string(mode))
		return m, nil
	}

	currentView := m.viewManager.GetCurrentView(m.state)
	if currentView != nil && currentView.CanHandle(msg, m.state) {
		newState, cmd := currentView.Update(msg, m.state)
		m.state = newState
		return m, cmd
	}
	return m, nil
}

// handleSearchKey routes keys to the search input while it has focus.
func (m *model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filter.ClearFilter()
		m.state.FilterActive = false
		m.applySearch("")
		return m, nil
	case "enter", "tab":
		m.filter.SetActive(false)
		m.state.FilterActive = false
		return m, nil
	case "up", "down":
		m.filter.SetActive(false)
		m.state.FilterActive = false
		return m.handleKeyPress(msg)
	}

	cmd := m.filter.UpdateInput(msg)
	if text := m.filter.GetFilterText(); text != m.state.Collection.Search() {
		m.applySearch(text)
	}
	return m, cmd
}

// applySearch sets the search term, which also returns to the first page.
func (m *model) applySearch(term string) {
	m.state.Collection.SetSearch(term)
	m.state.Cursor = 0
	m.state.SyncPaginator()
}

// handleBackNavigation handles the back navigation (q/esc).
func (m *model) handleBackNavigation() (tea.Model, tea.Cmd) {
	if m.state.CurrentView == ViewDetails {
		m.loader.CancelDetail(m.state)
	}

	if prev, ok := m.navigator.PopState(); ok {
		m.restoreState(prev)
		return m, nil
	}

	if m.state.CurrentView == ViewList {
		return m, tea.Quit
	}

	m.state.CurrentView = ViewList
	_ = m.viewManager.SwitchView(ViewList)
	return m, nil
}

// restoreState restores a previous view state.
func (m *model) restoreState(vs ViewState) {
	m.state.CurrentView = vs.View
	m.navigator.ClearPath()
	for _, item := range vs.NavPath {
		m.navigator.AddToPath(item.Key, item.DisplayName, item.Direction)
	}
	_ = m.viewManager.SwitchView(vs.View)

	if vs.View == ViewList {
		m.state.Collection.SetPage(vs.Page)
		m.state.Cursor = vs.Cursor
		m.state.ClampCursor()
		m.state.SyncPaginator()
	}
	m.state.SetStatus("", "")
}
