package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	slogcontext "github.com/veqryn/slog-context"

	"github.com/ikari-pl/go-swapi-browser/internal/catalog"
	"github.com/ikari-pl/go-swapi-browser/internal/viewstate"
)

// collectionLoadedMsg carries the result of one collection load.
type collectionLoadedMsg struct {
	session  viewstate.Session
	entities []catalog.Entity
	err      error
}

// detailLoadedMsg carries the result of one remote detail lookup.
type detailLoadedMsg struct {
	req    viewstate.Request
	entity *catalog.Entity
	err    error
}

// loader implements Loader on top of an Aggregator. It is only used from the
// update loop, so the cancel funcs need no locking.
type loader struct {
	ctx        context.Context
	logger     *slog.Logger
	aggregator catalog.Aggregator
	identity   catalog.IdentityMode

	cancelCollection context.CancelFunc
	cancelDetail     context.CancelFunc
}

func newLoader(ctx context.Context, logger *slog.Logger, aggregator catalog.Aggregator, identity catalog.IdentityMode) *loader {
	if ctx == nil {
		ctx = context.Background()
	}
	return &loader{
		ctx:        ctx,
		logger:     logger,
		aggregator: aggregator,
		identity:   identity,
	}
}

// LoadCollection supersedes any collection load in flight and starts a new one.
func (l *loader) LoadCollection(state *State) tea.Cmd {
	if l.cancelCollection != nil {
		l.cancelCollection()
	}
	session := state.Collection.BeginLoad()
	state.Cursor = 0
	state.SyncPaginator()

	ctx, cancel := context.WithCancel(l.ctx)
	ctx = slogcontext.NewCtx(ctx, l.logger.With("session", uint64(session)))
	l.cancelCollection = cancel

	agg := l.aggregator
	fetch := func() tea.Msg {
		defer cancel()
		entities, err := agg.LoadEnrichedCollection(ctx)
		slogcontext.FromCtx(ctx).Debug("Collection load finished", "entities", len(entities), "error", err)
		return collectionLoadedMsg{session: session, entities: entities, err: err}
	}
	return tea.Batch(state.Spinner.Tick, fetch)
}

// LoadDetail resolves key. In locator mode the key is resolved against the
// loaded collection immediately; in position mode the remote is asked.
func (l *loader) LoadDetail(state *State, key catalog.Key) tea.Cmd {
	l.CancelDetail(state)
	req := state.Detail.Begin(key)

	if l.identity == catalog.IdentityLocator && key.HasID() {
		state.Detail.ResolveFrom(req, state.Collection)
		return nil
	}

	ctx, cancel := context.WithCancel(l.ctx)
	ctx = slogcontext.NewCtx(ctx, l.logger.With("position", key.Position))
	l.cancelDetail = cancel

	agg := l.aggregator
	fetch := func() tea.Msg {
		defer cancel()
		entity, err := agg.LoadEnrichedEntity(ctx, key.Position)
		slogcontext.FromCtx(ctx).Debug("Detail lookup finished", "found", entity != nil, "error", err)
		return detailLoadedMsg{req: req, entity: entity, err: err}
	}
	return tea.Batch(state.Spinner.Tick, fetch)
}

// CancelDetail abandons any detail lookup in flight.
func (l *loader) CancelDetail(state *State) {
	if l.cancelDetail != nil {
		l.cancelDetail()
		l.cancelDetail = nil
	}
	if state.Detail.Status() == viewstate.StatusLoading {
		state.Detail.Reset()
	}
}

func (l *loader) cancelAll() {
	if l.cancelCollection != nil {
		l.cancelCollection()
	}
	if l.cancelDetail != nil {
		l.cancelDetail()
	}
}
