package handler

import (
	"errors"
	"net/http"

	"github.com/Pesokrava/creator_catalogue/internal/delivery/http/request"
	"github.com/Pesokrava/creator_catalogue/internal/delivery/http/response"
	"github.com/Pesokrava/creator_catalogue/internal/domain"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/logger"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/validator"
	"github.com/Pesokrava/creator_catalogue/internal/usecase/variant"
)

// VariantHandler handles HTTP requests for variants and their stock
type VariantHandler struct {
	service *variant.Service
	logger  *logger.Logger
}

// NewVariantHandler creates a new variant handler
func NewVariantHandler(service *variant.Service, log *logger.Logger) *VariantHandler {
	return &VariantHandler{
		service: service,
		logger:  log,
	}
}

// SKURequest is one size and its stock
type SKURequest struct {
	Size  string `json:"size" validate:"required,max=20"`
	Stock int    `json:"stock" validate:"gte=0"`
}

// CreateVariantRequest represents the request body for creating a variant
type CreateVariantRequest struct {
	PriceOverride *int64       `json:"price_override,omitempty" validate:"omitempty,gte=0"`
	Images        []string     `json:"images" validate:"dive,required,max=2048"`
	SKUs          []SKURequest `json:"skus" validate:"dive"`
}

// UpdateVariantRequest represents the request body for updating a variant
type UpdateVariantRequest struct {
	PriceOverride *int64   `json:"price_override" validate:"omitempty,gte=0"`
	Images        []string `json:"images" validate:"dive,required,max=2048"`
}

// Create handles POST /api/v1/products/:id/variants
// @Summary Create a variant
// @Description Create a variant of a product with its initial sizes and stock
// @Tags Variants
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param variant body CreateVariantRequest true "Variant details"
// @Success 201 {object} map[string]interface{} "Variant created successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id}/variants [post]
func (h *VariantHandler) Create(w http.ResponseWriter, r *http.Request) {
	productID, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req CreateVariantRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validator.Get().Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	v := &domain.ProductVariant{
		ProductID:     productID,
		PriceOverride: req.PriceOverride,
		Images:        req.Images,
		SKUs:          make([]domain.SKU, len(req.SKUs)),
	}
	for i, sku := range req.SKUs {
		v.SKUs[i] = domain.SKU{Size: sku.Size, Stock: sku.Stock}
	}

	if err := h.service.Create(r.Context(), v); err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, v)
}

// ListByProduct handles GET /api/v1/products/:id/variants
// @Summary List variants of a product
// @Tags Variants
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param limit query int false "Number of items per page (max 100)" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Paginated list of variants"
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id}/variants [get]
func (h *VariantHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	limit, offset := request.GetPaginationParams(r)

	variants, total, err := h.service.ListByProduct(r.Context(), productID, limit, offset)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Paginated(w, variants, total, limit, offset)
}

// GetByID handles GET /api/v1/variants/:id
// @Summary Get a variant with its SKUs
// @Tags Variants
// @Produce json
// @Param id path string true "Variant ID (UUID)"
// @Success 200 {object} map[string]interface{} "Variant details"
// @Failure 400 {object} map[string]string "Invalid variant ID"
// @Failure 404 {object} map[string]string "Variant not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /variants/{id} [get]
func (h *VariantHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid variant ID")
		return
	}

	v, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, v)
}

// Update handles PUT /api/v1/variants/:id
// @Summary Update a variant
// @Description Replace the price override and images of a variant. A null override falls back to the product price.
// @Tags Variants
// @Accept json
// @Produce json
// @Param id path string true "Variant ID (UUID)"
// @Param variant body UpdateVariantRequest true "Variant details"
// @Success 200 {object} map[string]interface{} "Variant updated successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Variant not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /variants/{id} [put]
func (h *VariantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid variant ID")
		return
	}

	var req UpdateVariantRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validator.Get().Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	v := &domain.ProductVariant{
		ID:            id,
		PriceOverride: req.PriceOverride,
		Images:        req.Images,
	}

	if err := h.service.Update(r.Context(), v); err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, v)
}

// UpdateStock handles PUT /api/v1/variants/:id/skus
// @Summary Set stock for a size
// @Description Create or update the SKU of one size. Zero stock hides the size from the catalogue.
// @Tags Variants
// @Accept json
// @Produce json
// @Param id path string true "Variant ID (UUID)"
// @Param sku body SKURequest true "Size and stock"
// @Success 200 {object} map[string]interface{} "SKU stored"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Variant not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /variants/{id}/skus [put]
func (h *VariantHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid variant ID")
		return
	}

	var req SKURequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sku := &domain.SKU{VariantID: id, Size: req.Size, Stock: req.Stock}
	if err := h.service.UpdateStock(r.Context(), sku); err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, sku)
}

// Delete handles DELETE /api/v1/variants/:id
// @Summary Delete a variant
// @Tags Variants
// @Param id path string true "Variant ID (UUID)"
// @Success 204 "Variant deleted successfully"
// @Failure 400 {object} map[string]string "Invalid variant ID"
// @Failure 404 {object} map[string]string "Variant not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /variants/{id} [delete]
func (h *VariantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid variant ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *VariantHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	default:
		h.logger.Error("Internal error in variant handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
