package catalogue

import (
	"context"
	"errors"

	"golang.org/x/sync/singleflight"

	"github.com/Pesokrava/creator_catalogue/internal/domain"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/logger"
)

// PriceCache stores the catalogue maximum price. GetMaxPrice returns
// domain.ErrCacheMiss when nothing is cached.
type PriceCache interface {
	GetMaxPrice(ctx context.Context) (int64, error)
	SetMaxPrice(ctx context.Context, cents int64) error
}

// PriceCeiling serves the maximum published product price from cache,
// regenerating it at most once concurrently and never failing.
type PriceCeiling struct {
	store    domain.CatalogueStore
	cache    PriceCache
	fallback int64
	group    singleflight.Group
	logger   *logger.Logger
}

// NewPriceCeiling creates a ceiling that returns fallback whenever the price cannot be resolved
func NewPriceCeiling(store domain.CatalogueStore, cache PriceCache, fallback int64, log *logger.Logger) *PriceCeiling {
	return &PriceCeiling{
		store:    store,
		cache:    cache,
		fallback: fallback,
		logger:   log,
	}
}

// MaxPrice returns the maximum published price in minor units.
func (p *PriceCeiling) MaxPrice(ctx context.Context) int64 {
	cents, err := p.cache.GetMaxPrice(ctx)
	if err == nil {
		return cents
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		p.logger.Warnf("Failed to read max price from cache: %v", err)
	}

	// Shared by every waiting caller, so detached from the first caller's cancellation.
	v, err, _ := p.group.Do("max_price", func() (any, error) {
		return p.regenerate(context.WithoutCancel(ctx))
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			p.logger.Debug("No published products, using default max price")
		} else {
			p.logger.WithFields(map[string]any{
				"fallback": p.fallback,
				"error":    err.Error(),
			}).Warn("Failed to resolve max price, using default")
		}
		return p.fallback
	}

	return v.(int64)
}

func (p *PriceCeiling) regenerate(ctx context.Context) (int64, error) {
	cents, err := p.store.MaxPublishedPrice(ctx)
	if err != nil {
		return 0, err
	}

	if err := p.cache.SetMaxPrice(ctx, cents); err != nil {
		p.logger.Warnf("Failed to cache max price: %v", err)
	}

	return cents, nil
}
