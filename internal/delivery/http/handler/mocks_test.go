package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Pesokrava/creator_catalogue/internal/domain"
)

// MockProductRepository is a mock implementation of domain.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, prod *domain.Product) error {
	args := m.Called(ctx, prod)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, creatorID *uuid.UUID, limit, offset int) ([]*domain.Product, error) {
	args := m.Called(ctx, creatorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, prod *domain.Product) error {
	args := m.Called(ctx, prod)
	return args.Error(0)
}

func (m *MockProductRepository) SetStatus(ctx context.Context, id uuid.UUID, status domain.ProductStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, creatorID *uuid.UUID) (int, error) {
	args := m.Called(ctx, creatorID)
	return args.Int(0), args.Error(1)
}

// MockVariantRepository is a mock implementation of domain.VariantRepository
type MockVariantRepository struct {
	mock.Mock
}

func (m *MockVariantRepository) Create(ctx context.Context, v *domain.ProductVariant) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVariantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProductVariant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductVariant), args.Error(1)
}

func (m *MockVariantRepository) GetByProductID(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*domain.ProductVariant, error) {
	args := m.Called(ctx, productID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ProductVariant), args.Error(1)
}

func (m *MockVariantRepository) Update(ctx context.Context, v *domain.ProductVariant) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVariantRepository) UpsertSKU(ctx context.Context, sku *domain.SKU) error {
	args := m.Called(ctx, sku)
	return args.Error(0)
}

func (m *MockVariantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVariantRepository) CountByProductID(ctx context.Context, productID uuid.UUID) (int, error) {
	args := m.Called(ctx, productID)
	return args.Int(0), args.Error(1)
}

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

// MockCeiling is a mock implementation of catalogue.CeilingProvider
type MockCeiling struct {
	mock.Mock
}

func (m *MockCeiling) MaxPrice(ctx context.Context) int64 {
	args := m.Called(ctx)
	return args.Get(0).(int64)
}

// stubCache accepts every invalidation
type stubCache struct{}

func (stubCache) InvalidateTag(context.Context, string) error { return nil }

// stubPublisher drops every event
type stubPublisher struct{}

func (stubPublisher) Publish(context.Context, string, []byte) error { return nil }

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
