package handler

import (
	"net/http"

	"github.com/Pesokrava/creator_catalogue/internal/delivery/http/request"
	"github.com/Pesokrava/creator_catalogue/internal/delivery/http/response"
	"github.com/Pesokrava/creator_catalogue/internal/domain"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/logger"
	"github.com/Pesokrava/creator_catalogue/internal/usecase/catalogue"
)

// CatalogueHandler serves the public storefront listing
type CatalogueHandler struct {
	service *catalogue.Service
	logger  *logger.Logger
}

// NewCatalogueHandler creates a new catalogue handler
func NewCatalogueHandler(service *catalogue.Service, log *logger.Logger) *CatalogueHandler {
	return &CatalogueHandler{
		service: service,
		logger:  log,
	}
}

// Browse handles GET /api/v1/catalogue
// @Summary Browse the catalogue
// @Description One page of published, in-stock variants. Without a sort the order is a seeded
// @Description shuffle interleaving creators and products; pass back the returned seed to keep the
// @Description same order across pages. Malformed parameters fall back to their defaults.
// @Tags Catalogue
// @Produce json
// @Param style query string false "Comma-separated style names"
// @Param size query string false "Comma-separated size labels"
// @Param gender query string false "Comma-separated gender labels (Homme, Femme, Unisexe)"
// @Param sort query string false "newest, price_asc or price_desc" default(newest)
// @Param page query int false "Zero-indexed page" default(0)
// @Param seed query string false "Shuffle seed returned by a previous call"
// @Param minPrice query int false "Lower price bound in major units"
// @Param maxPrice query int false "Upper price bound in major units"
// @Success 200 {object} domain.CataloguePage
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /catalogue [get]
func (h *CatalogueHandler) Browse(w http.ResponseWriter, r *http.Request) {
	criteria := parseCriteria(r)

	page, err := h.service.Browse(r.Context(), criteria)
	if err != nil {
		h.logger.Error("Internal error in catalogue handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, page)
}

// PriceRange handles GET /api/v1/catalogue/price-range
// @Summary Default price window
// @Description Lower and upper bound, in major units, of the unfiltered catalogue price slider
// @Tags Catalogue
// @Produce json
// @Success 200 {object} catalogue.PriceRange
// @Router /catalogue/price-range [get]
func (h *CatalogueHandler) PriceRange(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.PriceRange(r.Context()))
}

func parseCriteria(r *http.Request) catalogue.Criteria {
	page := request.GetIntQuery(r, "page", 0)
	if page < 0 {
		page = 0
	}

	return catalogue.Criteria{
		Styles:   request.GetCSVQuery(r, "style"),
		Sizes:    request.GetCSVQuery(r, "size"),
		Genders:  request.GetCSVQuery(r, "gender"),
		Sort:     domain.ParseSortMode(r.URL.Query().Get("sort")),
		MinPrice: request.GetOptionalInt64Query(r, "minPrice"),
		MaxPrice: request.GetOptionalInt64Query(r, "maxPrice"),
		Page:     page,
		Seed:     r.URL.Query().Get("seed"),
	}
}
