package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/creator_catalogue/internal/domain"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/logger"
	"github.com/Pesokrava/creator_catalogue/internal/usecase/variant"
)

func newVariantHandler() (*VariantHandler, *MockVariantRepository, *MockProductRepository) {
	variants := new(MockVariantRepository)
	products := new(MockProductRepository)
	log := logger.Nop()
	service := variant.NewService(variants, products, stubPublisher{}, log)
	return NewVariantHandler(service, log), variants, products
}

func TestVariantHandler_Create_Success(t *testing.T) {
	handler, variants, products := newVariantHandler()
	productID := uuid.New()
	override := int64(4500)

	body := jsonBody(t, CreateVariantRequest{
		PriceOverride: &override,
		Images:        []string{"front.jpg"},
		SKUs:          []SKURequest{{Size: "S", Stock: 1}, {Size: "M", Stock: 4}},
	})
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/v1/products/"+productID.String()+"/variants", body), "id", productID.String())
	w := httptest.NewRecorder()

	products.On("GetByID", mock.Anything, productID).Return(&domain.Product{ID: productID}, nil)
	variants.On("Create", mock.Anything, mock.MatchedBy(func(v *domain.ProductVariant) bool {
		return v.ProductID == productID && *v.PriceOverride == 4500 && len(v.SKUs) == 2
	})).Return(nil)

	handler.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	variants.AssertExpectations(t)
}

func TestVariantHandler_Create_NegativeStock(t *testing.T) {
	handler, variants, _ := newVariantHandler()
	productID := uuid.New()

	body := jsonBody(t, CreateVariantRequest{SKUs: []SKURequest{{Size: "S", Stock: -1}}})
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/v1/products/"+productID.String()+"/variants", body), "id", productID.String())
	w := httptest.NewRecorder()

	handler.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	variants.AssertNotCalled(t, "Create")
}

func TestVariantHandler_Create_ProductNotFound(t *testing.T) {
	handler, _, products := newVariantHandler()
	productID := uuid.New()

	req := withURLParam(
		httptest.NewRequest(http.MethodPost, "/api/v1/products/"+productID.String()+"/variants", jsonBody(t, CreateVariantRequest{})),
		"id", productID.String(),
	)
	w := httptest.NewRecorder()

	products.On("GetByID", mock.Anything, productID).Return(nil, domain.ErrNotFound)

	handler.Create(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVariantHandler_GetByID(t *testing.T) {
	handler, variants, _ := newVariantHandler()
	id := uuid.New()

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/variants/"+id.String(), nil), "id", id.String())
	w := httptest.NewRecorder()

	variants.On("GetByID", mock.Anything, id).Return(&domain.ProductVariant{
		ID:     id,
		Images: []string{},
		SKUs:   []domain.SKU{{Size: "L", Stock: 2}},
	}, nil)

	handler.GetByID(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data domain.ProductVariant `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.Data.ID)
	assert.Len(t, resp.Data.SKUs, 1)
}

func TestVariantHandler_UpdateStock(t *testing.T) {
	handler, variants, products := newVariantHandler()
	v := &domain.ProductVariant{ID: uuid.New(), ProductID: uuid.New()}

	req := withURLParam(
		httptest.NewRequest(http.MethodPut, "/api/v1/variants/"+v.ID.String()+"/skus", jsonBody(t, SKURequest{Size: "M", Stock: 0})),
		"id", v.ID.String(),
	)
	w := httptest.NewRecorder()

	variants.On("GetByID", mock.Anything, v.ID).Return(v, nil)
	variants.On("UpsertSKU", mock.Anything, mock.MatchedBy(func(sku *domain.SKU) bool {
		return sku.VariantID == v.ID && sku.Size == "M" && sku.Stock == 0
	})).Return(nil)
	products.On("GetByID", mock.Anything, v.ProductID).Return(&domain.Product{ID: v.ProductID}, nil)

	handler.UpdateStock(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	variants.AssertExpectations(t)
}

func TestVariantHandler_Delete_InvalidUUID(t *testing.T) {
	handler, _, _ := newVariantHandler()

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/variants/x", nil), "id", "x")
	w := httptest.NewRecorder()

	handler.Delete(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVariantHandler_ListByProduct(t *testing.T) {
	handler, variants, _ := newVariantHandler()
	productID := uuid.New()

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/products/"+productID.String()+"/variants", nil), "id", productID.String())
	w := httptest.NewRecorder()

	variants.On("GetByProductID", mock.Anything, productID, 20, 0).Return([]*domain.ProductVariant{}, nil)
	variants.On("CountByProductID", mock.Anything, productID).Return(0, nil)

	handler.ListByProduct(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
