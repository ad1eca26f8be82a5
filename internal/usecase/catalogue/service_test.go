package catalogue

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/creator_catalogue/internal/domain"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/logger"
)

func newTestService(store *MockCatalogueStore, ceiling *MockCeiling) *Service {
	return NewService(store, ceiling, 12, 200, logger.New("test"))
}

func TestService_Browse_GenderPriceAscScenario(t *testing.T) {
	store := new(MockCatalogueStore)
	ceiling := new(MockCeiling)
	service := newTestService(store, ceiling)

	// 15 published variants, 3 of them with a price override
	prices := []int64{4200, 1500, 9900, 3100, 2700, 8800, 1200, 6400, 5300, 7600, 2100, 3900, 4700, 5900, 1800}
	var fetched []*domain.ListedVariant
	for i, price := range prices {
		v := pricedVariant(uuid.NewString(), price, nil)
		if i%5 == 0 {
			v.PriceOverride = int64Ptr(price / 3)
		}
		v.Product.Gender = domain.GenderMale
		fetched = append(fetched, v)
	}

	ceiling.On("MaxPrice", mock.Anything).Return(int64(9900))
	store.On("FetchVariants", mock.Anything, mock.MatchedBy(func(q domain.CatalogueQuery) bool {
		return assert.ObjectsAreEqual([]string{"Homme", "Unisexe"}, q.Genders) &&
			q.MinPrice == 0 && q.MaxPrice == 9900 && q.Limit == 200
	})).Return(fetched, nil)

	page, err := service.Browse(context.Background(), Criteria{
		Genders: []string{"Homme"},
		Sort:    domain.SortPriceAsc,
		Page:    0,
		Seed:    "fixed",
	})

	require.NoError(t, err)
	assert.Len(t, page.Variants, 12)
	assert.Equal(t, 15, page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.HasMore)
	assert.Equal(t, "fixed", page.Seed)
	for i := 1; i < len(page.Variants); i++ {
		assert.LessOrEqual(t, page.Variants[i-1].EffectivePrice(), page.Variants[i].EffectivePrice())
	}
	// overrides are 1400, 2933 and 700; 700 undercuts every regular price
	assert.Equal(t, int64(700), page.Variants[0].EffectivePrice())

	store.AssertExpectations(t)
	ceiling.AssertExpectations(t)
}

func TestService_Browse_GeneratesSeed(t *testing.T) {
	store := new(MockCatalogueStore)
	ceiling := new(MockCeiling)
	service := newTestService(store, ceiling)

	ceiling.On("MaxPrice", mock.Anything).Return(int64(50000))
	store.On("FetchVariants", mock.Anything, mock.Anything).Return(makeVariants(2, 2, 2), nil)

	page, err := service.Browse(context.Background(), Criteria{})

	require.NoError(t, err)
	assert.NotEmpty(t, page.Seed)
	_, parseErr := uuid.Parse(page.Seed)
	assert.NoError(t, parseErr)
}

func TestService_Browse_SameSeedReproducesPages(t *testing.T) {
	store := new(MockCatalogueStore)
	ceiling := new(MockCeiling)
	service := newTestService(store, ceiling)

	variants := makeVariants(3, 3, 3)
	ceiling.On("MaxPrice", mock.Anything).Return(int64(50000))
	store.On("FetchVariants", mock.Anything, mock.Anything).Return(variants, nil)

	criteria := Criteria{Sort: domain.SortNewest, Seed: "scroll", Page: 1}
	first, err := service.Browse(context.Background(), criteria)
	require.NoError(t, err)
	second, err := service.Browse(context.Background(), criteria)
	require.NoError(t, err)

	assert.Equal(t, ids(first.Variants), ids(second.Variants))

	// pages 0..2 of one seed cover the whole listing exactly once
	var all []*domain.ListedVariant
	for p := 0; p < first.TotalPages; p++ {
		page, err := service.Browse(context.Background(), Criteria{Seed: "scroll", Page: p})
		require.NoError(t, err)
		all = append(all, page.Variants...)
	}
	assert.ElementsMatch(t, ids(variants), ids(all))
}

func TestService_Browse_GivenMaxSkipsCeiling(t *testing.T) {
	store := new(MockCatalogueStore)
	ceiling := new(MockCeiling)
	service := newTestService(store, ceiling)

	store.On("FetchVariants", mock.Anything, mock.MatchedBy(func(q domain.CatalogueQuery) bool {
		return q.MinPrice == 2000 && q.MaxPrice == 6000
	})).Return([]*domain.ListedVariant{}, nil)

	page, err := service.Browse(context.Background(), Criteria{
		MinPrice: int64Ptr(20),
		MaxPrice: int64Ptr(60),
		Seed:     "s",
	})

	require.NoError(t, err)
	assert.Empty(t, page.Variants)
	assert.Equal(t, 0, page.TotalPages)
	ceiling.AssertNotCalled(t, "MaxPrice", mock.Anything)
}

func TestService_Browse_FetchErrorPropagates(t *testing.T) {
	store := new(MockCatalogueStore)
	ceiling := new(MockCeiling)
	service := newTestService(store, ceiling)

	ceiling.On("MaxPrice", mock.Anything).Return(int64(50000))
	store.On("FetchVariants", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	page, err := service.Browse(context.Background(), Criteria{Seed: "s"})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, page)
}

func TestService_PriceRange(t *testing.T) {
	store := new(MockCatalogueStore)
	ceiling := new(MockCeiling)
	service := newTestService(store, ceiling)

	ceiling.On("MaxPrice", mock.Anything).Return(int64(12345))

	assert.Equal(t, PriceRange{Min: 0, Max: 124}, service.PriceRange(context.Background()))
}
