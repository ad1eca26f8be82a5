package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/Pesokrava/creator_catalogue/internal/domain"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/logger"
)

// CeilingCache is the cache surface the refresher writes to
type CeilingCache interface {
	InvalidateTag(ctx context.Context, tag string) error
	SetMaxPrice(ctx context.Context, cents int64) error
}

// CeilingRefresher drops product-derived cache entries and re-warms the max price
type CeilingRefresher struct {
	store  domain.CatalogueStore
	cache  CeilingCache
	logger *logger.Logger
}

// NewCeilingRefresher creates a new ceiling refresher
func NewCeilingRefresher(store domain.CatalogueStore, cache CeilingCache, log *logger.Logger) *CeilingRefresher {
	return &CeilingRefresher{
		store:  store,
		cache:  cache,
		logger: log,
	}
}

// Refresh recomputes the max published price from the database.
// With nothing published the cache is left empty so readers use their fallback.
func (r *CeilingRefresher) Refresh(ctx context.Context) error {
	if err := r.cache.InvalidateTag(ctx, domain.ProductsCacheTag); err != nil {
		return fmt.Errorf("failed to invalidate %s tag: %w", domain.ProductsCacheTag, err)
	}

	maxPrice, err := r.store.MaxPublishedPrice(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		r.logger.Info("No published products, max price left uncached")
		return nil
	}
	if err != nil {
		return err
	}

	if err := r.cache.SetMaxPrice(ctx, maxPrice); err != nil {
		return fmt.Errorf("failed to cache max price: %w", err)
	}

	r.logger.With("max_price", maxPrice).Info("Max price re-warmed")
	return nil
}
