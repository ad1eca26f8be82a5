package catalogue

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Pesokrava/creator_catalogue/internal/domain"
)

// MockCatalogueStore is a mock implementation of domain.CatalogueStore
type MockCatalogueStore struct {
	mock.Mock
}

func (m *MockCatalogueStore) FetchVariants(ctx context.Context, q domain.CatalogueQuery) ([]*domain.ListedVariant, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ListedVariant), args.Error(1)
}

func (m *MockCatalogueStore) MaxPublishedPrice(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockPriceCache is a mock implementation of PriceCache
type MockPriceCache struct {
	mock.Mock
}

func (m *MockPriceCache) GetMaxPrice(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPriceCache) SetMaxPrice(ctx context.Context, cents int64) error {
	args := m.Called(ctx, cents)
	return args.Error(0)
}

// MockCeiling is a mock implementation of CeilingProvider
type MockCeiling struct {
	mock.Mock
}

func (m *MockCeiling) MaxPrice(ctx context.Context) int64 {
	args := m.Called(ctx)
	return args.Get(0).(int64)
}
