package catalog

import (
	"context"
	"log/slog"

	slogcontext "github.com/veqryn/slog-context"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DefaultConcurrency bounds the number of related-resource requests in flight.
const DefaultConcurrency = 8

// aggregator implements the Aggregator interface.
type aggregator struct {
	logger      *slog.Logger
	client      Client
	cache       *NameCache
	inflight    singleflight.Group
	concurrency int
}

// AggregatorOption configures an Aggregator.
type AggregatorOption func(*aggregator)

// WithConcurrency limits concurrent related-resource requests. Values below 1 are ignored.
func WithConcurrency(n int) AggregatorOption {
	return func(a *aggregator) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithNameCache shares a name cache between aggregators.
func WithNameCache(cache *NameCache) AggregatorOption {
	return func(a *aggregator) {
		if cache != nil {
			a.cache = cache
		}
	}
}

// NewAggregator creates a new Aggregator backed by client.
func NewAggregator(logger *slog.Logger, client Client, opts ...AggregatorOption) Aggregator {
	a := &aggregator{
		logger:      logger,
		client:      client,
		cache:       NewNameCache(),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// LoadEnrichedCollection fetches the collection and enriches every entity.
func (a *aggregator) LoadEnrichedCollection(ctx context.Context) ([]Entity, error) {
	ctx = slogcontext.NewCtx(ctx, a.logger.With("op", "load_collection"))

	raw, err := a.client.FetchCollection(ctx)
	if err != nil {
		return nil, err
	}

	refs := make([][]string, len(raw))
	for i, e := range raw {
		refs[i] = e.Species
	}
	names, err := a.resolveAll(ctx, refs)
	if err != nil {
		return nil, err
	}

	enriched := make([]Entity, len(raw))
	for i, e := range raw {
		enriched[i] = e.Enrich(names[i])
	}

	a.logger.Info("Loaded collection", "entities", len(enriched), "cached_names", a.cache.Len())
	return enriched, nil
}

// LoadEnrichedEntity fetches one entity by position and enriches it.
func (a *aggregator) LoadEnrichedEntity(ctx context.Context, position int) (*Entity, error) {
	ctx = slogcontext.NewCtx(ctx, a.logger.With("op", "load_entity", "position", position))

	raw, err := a.client.FetchEntityByPosition(ctx, position)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		a.logger.Debug("Entity not found", "position", position)
		return nil, nil
	}

	names, err := a.resolveAll(ctx, [][]string{raw.Species})
	if err != nil {
		return nil, err
	}

	enriched := raw.Enrich(names[0])
	return &enriched, nil
}

// resolveAll resolves every ref of every group concurrently and waits for all of
// them. Each goroutine owns one slot, so result order matches ref order. Failed
// lookups get UnresolvedName; only cancellation of ctx fails the call.
func (a *aggregator) resolveAll(ctx context.Context, refs [][]string) ([][]string, error) {
	names := make([][]string, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, group := range refs {
		names[i] = make([]string, len(group))
		for j, ref := range group {
			g.Go(func() error {
				name, err := a.resolveName(gctx, ref)
				if err != nil {
					slogcontext.FromCtx(gctx).Warn("Related resource unresolved", "ref", ref, "error", err)
					name = UnresolvedName
				}
				names[i][j] = name
				return nil
			})
		}
	}

	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// resolveName returns the cached name for ref or fetches it once, sharing the
// request with concurrent callers for the same ref. The shared fetch outlives
// any single caller's cancellation; a cancelled caller stops waiting for it.
func (a *aggregator) resolveName(ctx context.Context, ref string) (string, error) {
	if name, ok := a.cache.Get(ref); ok {
		return name, nil
	}

	fetchCtx := context.WithoutCancel(ctx)
	ch := a.inflight.DoChan(ref, func() (any, error) {
		name, err := a.client.FetchRelatedName(fetchCtx, ref)
		if err != nil {
			return "", err
		}
		a.cache.Set(ref, name)
		return name, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}
