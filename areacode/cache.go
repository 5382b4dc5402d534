package areacode

import (
	"context"
	"log/slog"

	"contacts/contact"
)

// Cache stores resolved NPA→state pairs. Implementations return ok=false on
// a miss and may fail independently of the lookup itself.
type Cache interface {
	GetState(ctx context.Context, npa string) (state string, ok bool, err error)
	PutState(ctx context.Context, npa, state string) error
}

// CachedClient decorates a StateResolver with a Cache. NPA assignments are
// stable, so entries never expire. Cache failures degrade to a plain lookup
// instead of failing the enrichment.
type CachedClient struct {
	resolver contact.StateResolver
	cache    Cache
}

func NewCachedClient(resolver contact.StateResolver, cache Cache) *CachedClient {
	return &CachedClient{resolver: resolver, cache: cache}
}

func (c *CachedClient) StateForAreaCode(ctx context.Context, npa string) (string, error) {
	state, ok, err := c.cache.GetState(ctx, npa)
	if err != nil {
		slog.WarnContext(ctx, "area code cache read failed", "npa", npa, "error", err)
	} else if ok {
		return state, nil
	}

	state, err = c.resolver.StateForAreaCode(ctx, npa)
	if err != nil {
		return "", err
	}

	if err := c.cache.PutState(ctx, npa, state); err != nil {
		slog.WarnContext(ctx, "area code cache write failed", "npa", npa, "error", err)
	}

	return state, nil
}
