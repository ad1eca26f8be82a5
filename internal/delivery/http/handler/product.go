package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Pesokrava/creator_catalogue/internal/delivery/http/request"
	"github.com/Pesokrava/creator_catalogue/internal/delivery/http/response"
	"github.com/Pesokrava/creator_catalogue/internal/domain"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/logger"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/validator"
	"github.com/Pesokrava/creator_catalogue/internal/usecase/product"
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	service *product.Service
	logger  *logger.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *product.Service, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  log,
	}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	CreatorID   string  `json:"creator_id" validate:"required,uuid"`
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	Price       int64   `json:"price" validate:"gte=0"`
	Style       *string `json:"style,omitempty" validate:"omitempty,max=100"`
	Gender      string  `json:"gender" validate:"required,oneof=Homme Femme Unisexe"`
	Category    string  `json:"category" validate:"required,max=100"`
}

// UpdateProductRequest represents the request body for updating a product
type UpdateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	Price       int64   `json:"price" validate:"gte=0"`
	Style       *string `json:"style,omitempty" validate:"omitempty,max=100"`
	Gender      string  `json:"gender" validate:"required,oneof=Homme Femme Unisexe"`
	Category    string  `json:"category" validate:"required,max=100"`
	Version     int     `json:"version" validate:"required,min=1"`
}

// SetStatusRequest represents the request body for changing a product status
type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DRAFT PUBLISHED ARCHIVED"`
}

// Create handles POST /api/v1/products
// @Summary Create a new product
// @Description Create a draft product owned by a creator. Price is in cents.
// @Tags Products
// @Accept json
// @Produce json
// @Param product body CreateProductRequest true "Product details"
// @Success 201 {object} map[string]interface{} "Product created successfully"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validator.Get().Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	p := &domain.Product{
		CreatorID:   uuid.MustParse(req.CreatorID),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Style:       req.Style,
		Gender:      domain.Gender(req.Gender),
		Category:    req.Category,
	}

	if err := h.service.Create(r.Context(), p); err != nil {
		h.handleError(w, err)
		return
	}

	response.Created(w, p)
}

// GetByID handles GET /api/v1/products/:id
// @Summary Get a product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} map[string]interface{} "Product details"
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, p)
}

// List handles GET /api/v1/products
// @Summary List products
// @Description Paginated list of products, newest first, optionally for one creator
// @Tags Products
// @Produce json
// @Param creator_id query string false "Creator ID (UUID)"
// @Param limit query int false "Number of items per page (max 100)" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} map[string]interface{} "Paginated list of products"
// @Failure 400 {object} map[string]string "Invalid creator ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	creatorID, err := request.GetUUIDQuery(r, "creator_id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid creator ID")
		return
	}

	limit, offset := request.GetPaginationParams(r)

	products, total, err := h.service.List(r.Context(), creatorID, limit, offset)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Paginated(w, products, total, limit, offset)
}

// Update handles PUT /api/v1/products/:id
// @Summary Update a product
// @Description Update product details. The version from the last read is required.
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body UpdateProductRequest true "Updated product details"
// @Success 200 {object} map[string]interface{} "Product updated successfully"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 409 {object} map[string]string "Conflict - product was modified"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req UpdateProductRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validator.Get().Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	p := &domain.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Style:       req.Style,
		Gender:      domain.Gender(req.Gender),
		Category:    req.Category,
		Version:     req.Version,
	}

	if err := h.service.Update(r.Context(), p); err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, p)
}

// SetStatus handles PUT /api/v1/products/:id/status
// @Summary Change product status
// @Description Publish, archive or revert a product to draft. Only published products are listed.
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param status body SetStatusRequest true "Target status"
// @Success 204 "Status changed"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id}/status [put]
func (h *ProductHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req SetStatusRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validator.Get().Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := h.service.SetStatus(r.Context(), id, domain.ProductStatus(req.Status)); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

// Delete handles DELETE /api/v1/products/:id
// @Summary Delete a product
// @Description Soft delete a product. Its variants drop out of the catalogue.
// @Tags Products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 204 "Product deleted successfully"
// @Failure 400 {object} map[string]string "Invalid product ID"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.GetUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *ProductHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, domain.ErrConflict):
		response.Error(w, http.StatusConflict, "Conflict - product was modified by another request")
	default:
		h.logger.Error("Internal error in product handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
