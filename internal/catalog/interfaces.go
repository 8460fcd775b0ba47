package catalog

import "context"

// Client issues requests against the remote collection API.
// Every call performs exactly one network round trip and is never retried.
type Client interface {
	// FetchCollection returns the raw entities of the collection endpoint.
	FetchCollection(ctx context.Context) ([]Entity, error)

	// FetchRelatedName resolves the display name of the resource at ref.
	FetchRelatedName(ctx context.Context, ref string) (string, error)

	// FetchEntityByPosition returns the raw entity at the zero-based position,
	// or nil without error when the remote reports it absent.
	FetchEntityByPosition(ctx context.Context, position int) (*Entity, error)
}

// Aggregator loads entities and enriches them with related-resource names.
type Aggregator interface {
	// LoadEnrichedCollection fetches the collection and resolves every related
	// resource concurrently. Resolution failures are absorbed per reference.
	LoadEnrichedCollection(ctx context.Context) ([]Entity, error)

	// LoadEnrichedEntity fetches one entity by position and enriches it.
	// It returns nil without error when the entity does not exist.
	LoadEnrichedEntity(ctx context.Context, position int) (*Entity, error)
}
