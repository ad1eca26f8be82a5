package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Pesokrava/creator_catalogue/internal/config"
	"github.com/Pesokrava/creator_catalogue/internal/delivery/events"
	httpDelivery "github.com/Pesokrava/creator_catalogue/internal/delivery/http"
	"github.com/Pesokrava/creator_catalogue/internal/delivery/http/handler"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/cache"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/database"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/logger"
	cacheRepo "github.com/Pesokrava/creator_catalogue/internal/repository/cache"
	"github.com/Pesokrava/creator_catalogue/internal/repository/postgres"
	"github.com/Pesokrava/creator_catalogue/internal/usecase/catalogue"
	"github.com/Pesokrava/creator_catalogue/internal/usecase/product"
	"github.com/Pesokrava/creator_catalogue/internal/usecase/variant"

	_ "github.com/Pesokrava/creator_catalogue/docs"
)

// @title Creator Catalogue API
// @version 1.0
// @description Storefront catalogue of creator products with filtered, seeded-shuffle listings.

// @contact.name API Support
// @contact.url http://github.com/Pesokrava/creator_catalogue

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @tag.name Catalogue
// @tag.description Public storefront listing

// @tag.name Products
// @tag.description Product management endpoints

// @tag.name Variants
// @tag.description Variant and stock management endpoints

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.NewWithLevel(cfg.Env, cfg.LogLevel).With("service", "api")
	appLogger.Info("Starting Creator Catalogue API...")

	appLogger.Info("Connecting to PostgreSQL...")
	db, err := database.WaitForDB(cfg, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL successfully")

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(db, cfg.Database.MigrationsDir); err != nil {
			appLogger.Fatal("Failed to run migrations", err)
		}
		appLogger.Info("Migrations applied")
	}

	appLogger.Info("Connecting to Redis...")
	redisClient, err := cache.WaitForRedis(cfg, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis successfully")

	appLogger.Info("Connecting to NATS...")
	publisher, err := events.NewPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create NATS publisher", err)
	}
	defer publisher.Close()

	productRepo := postgres.NewProductRepository(db)
	variantRepo := postgres.NewVariantRepository(db)
	catalogueRepo := postgres.NewCatalogueRepository(db)
	redisCache := cacheRepo.NewRedisCache(redisClient, cfg.Cache.MaxPriceTTL)

	ceiling := catalogue.NewPriceCeiling(catalogueRepo, redisCache, cfg.Catalogue.DefaultMaxPrice, appLogger)
	catalogueService := catalogue.NewService(
		catalogueRepo,
		ceiling,
		cfg.Catalogue.PageSize,
		cfg.Catalogue.FetchLimit,
		appLogger,
	)
	productService := product.NewService(productRepo, redisCache, publisher, appLogger)
	variantService := variant.NewService(variantRepo, productRepo, publisher, appLogger)

	router := httpDelivery.NewRouter(
		handler.NewCatalogueHandler(catalogueService, appLogger),
		handler.NewProductHandler(productService, appLogger),
		handler.NewVariantHandler(variantService, appLogger),
		cfg,
		appLogger,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Infof("HTTP server listening on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("HTTP server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server stopped gracefully")
}
