package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Pesokrava/creator_catalogue/internal/config"
	"github.com/Pesokrava/creator_catalogue/internal/delivery/http/handler"
	"github.com/Pesokrava/creator_catalogue/internal/delivery/http/middleware"
	"github.com/Pesokrava/creator_catalogue/internal/delivery/http/response"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/logger"
)

const requestTimeout = 30 * time.Second

// Router holds HTTP handlers and router configuration
type Router struct {
	catalogueHandler *handler.CatalogueHandler
	productHandler   *handler.ProductHandler
	variantHandler   *handler.VariantHandler
	logger           *logger.Logger
	cfg              *config.Config
}

// NewRouter creates a new HTTP router
func NewRouter(
	catalogueHandler *handler.CatalogueHandler,
	productHandler *handler.ProductHandler,
	variantHandler *handler.VariantHandler,
	cfg *config.Config,
	log *logger.Logger,
) *Router {
	return &Router{
		catalogueHandler: catalogueHandler,
		productHandler:   productHandler,
		variantHandler:   variantHandler,
		logger:           log,
		cfg:              cfg,
	}
}

// Setup configures and returns the HTTP router
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", rt.healthCheck)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalogue", func(r chi.Router) {
			r.Get("/", rt.catalogueHandler.Browse)
			r.Get("/price-range", rt.catalogueHandler.PriceRange)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", rt.productHandler.Create)
			r.Get("/", rt.productHandler.List)
			r.Get("/{id}", rt.productHandler.GetByID)
			r.Put("/{id}", rt.productHandler.Update)
			r.Put("/{id}/status", rt.productHandler.SetStatus)
			r.Delete("/{id}", rt.productHandler.Delete)
			r.Get("/{id}/variants", rt.variantHandler.ListByProduct)
			r.Post("/{id}/variants", rt.variantHandler.Create)
		})

		r.Route("/variants", func(r chi.Router) {
			r.Get("/{id}", rt.variantHandler.GetByID)
			r.Put("/{id}", rt.variantHandler.Update)
			r.Put("/{id}/skus", rt.variantHandler.UpdateStock)
			r.Delete("/{id}", rt.variantHandler.Delete)
		})
	})

	return r
}

func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
