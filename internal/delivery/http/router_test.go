package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/creator_catalogue/internal/config"
	"github.com/Pesokrava/creator_catalogue/internal/delivery/http/handler"
	"github.com/Pesokrava/creator_catalogue/internal/domain"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/logger"
	"github.com/Pesokrava/creator_catalogue/internal/usecase/catalogue"
)

type emptyStore struct{}

func (emptyStore) FetchVariants(context.Context, domain.CatalogueQuery) ([]*domain.ListedVariant, error) {
	return []*domain.ListedVariant{}, nil
}

func (emptyStore) MaxPublishedPrice(context.Context) (int64, error) {
	return 0, domain.ErrNotFound
}

type fixedCeiling int64

func (c fixedCeiling) MaxPrice(context.Context) int64 { return int64(c) }

func newTestRouter() http.Handler {
	log := logger.Nop()
	cfg := &config.Config{Server: config.ServerConfig{AllowedOrigins: []string{"http://localhost:3000"}}}
	catalogueService := catalogue.NewService(emptyStore{}, fixedCeiling(50000), 12, 200, log)

	return NewRouter(
		handler.NewCatalogueHandler(catalogueService, log),
		handler.NewProductHandler(nil, log),
		handler.NewVariantHandler(nil, log),
		cfg,
		log,
	).Setup()
}

func TestRouter_Health(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestRouter_Catalogue(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalogue?seed=fixed", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"variants":[],"totalCount":0,"totalPages":0,"hasMore":false,"seed":"fixed"}`, w.Body.String())
}

func TestRouter_PriceRange(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/catalogue/price-range", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"min":0,"max":500}`, w.Body.String())
}

func TestRouter_InvalidProductIDNeverReachesService(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
