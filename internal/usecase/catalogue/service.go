package catalogue

import (
	"context"

	"github.com/google/uuid"

	"github.com/Pesokrava/creator_catalogue/internal/domain"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/logger"
)

// CeilingProvider supplies the catalogue maximum price in minor units.
type CeilingProvider interface {
	MaxPrice(ctx context.Context) int64
}

// PriceRange is the default price filter window, in major units.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Service runs the listing pipeline: resolve filters, fetch once, order, paginate.
type Service struct {
	store      domain.CatalogueStore
	ceiling    CeilingProvider
	pageSize   int
	fetchLimit int
	logger     *logger.Logger
}

// NewService creates a new catalogue service
func NewService(
	store domain.CatalogueStore,
	ceiling CeilingProvider,
	pageSize, fetchLimit int,
	log *logger.Logger,
) *Service {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		store:      store,
		ceiling:    ceiling,
		pageSize:   pageSize,
		fetchLimit: fetchLimit,
		logger:     log,
	}
}

// Browse returns one page of the catalogue for c.
// An empty seed is replaced by a fresh one, returned in the page so clients can pin it.
// Fetch failures are returned unchanged.
func (s *Service) Browse(ctx context.Context, c Criteria) (*domain.CataloguePage, error) {
	seed := c.Seed
	if seed == "" {
		seed = uuid.NewString()
	}

	var catalogueMax int64
	if NeedsCeiling(c) {
		catalogueMax = s.ceiling.MaxPrice(ctx)
	}

	q := ResolveQuery(c, catalogueMax, s.fetchLimit)

	variants, err := s.store.FetchVariants(ctx, q)
	if err != nil {
		s.logger.Error("Failed to fetch catalogue variants", err)
		return nil, err
	}

	if len(variants) >= s.fetchLimit {
		s.logger.Debugf("Catalogue fetch hit the %d row cap, totals are approximate", s.fetchLimit)
	}

	ordered := Order(variants, c.Sort, seed)
	page := Paginate(ordered, c.Page, s.pageSize)
	page.Seed = seed

	s.logger.WithFields(map[string]any{
		"seed":        seed,
		"sort":        c.Sort,
		"page":        c.Page,
		"total_count": page.TotalCount,
	}).Debug("Catalogue page served")

	return page, nil
}

// PriceRange returns the default price window shown before the user filters by price.
func (s *Service) PriceRange(ctx context.Context) PriceRange {
	return PriceRange{
		Min: 0,
		Max: CeilingCents(s.ceiling.MaxPrice(ctx)) / 100,
	}
}
