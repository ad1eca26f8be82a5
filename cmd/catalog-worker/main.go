package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/Pesokrava/creator_catalogue/internal/config"
	"github.com/Pesokrava/creator_catalogue/internal/delivery/events"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/cache"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/database"
	"github.com/Pesokrava/creator_catalogue/internal/pkg/logger"
	cacheRepo "github.com/Pesokrava/creator_catalogue/internal/repository/cache"
	"github.com/Pesokrava/creator_catalogue/internal/repository/postgres"
	"github.com/Pesokrava/creator_catalogue/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.NewWithLevel(cfg.Env, cfg.LogLevel).With("service", "catalog-worker")
	appLogger.Info("Starting catalogue worker...")

	db, err := database.WaitForDB(cfg, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	redisClient, err := cache.WaitForRedis(cfg, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	refresher := worker.NewCeilingRefresher(
		postgres.NewCatalogueRepository(db),
		cacheRepo.NewRedisCache(redisClient, cfg.Cache.MaxPriceTTL),
		appLogger,
	)
	ceilingWorker := worker.NewCeilingWorker(refresher, appLogger)

	// Warm the ceiling once so the first listings after a deploy hit the cache.
	warmCtx, warmCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := refresher.Refresh(warmCtx); err != nil {
		appLogger.Warnf("Initial max price warm-up failed: %v", err)
	}
	warmCancel()

	nc, err := nats.Connect(cfg.NATS.URL, nats.Name("catalog-worker"))
	if err != nil {
		appLogger.Fatal("Failed to connect to NATS", err)
	}
	defer nc.Close()

	js, err := nc.JetStream()
	if err != nil {
		appLogger.Fatal("Failed to create JetStream context", err)
	}

	streamConfig := worker.NewStreamConfig(js, appLogger)
	if err := streamConfig.EnsureStream(); err != nil {
		appLogger.Fatal("Failed to ensure stream", err)
	}
	if err := streamConfig.EnsureConsumer(); err != nil {
		appLogger.Fatal("Failed to ensure consumer", err)
	}

	sub, err := worker.Subscribe(js)
	if err != nil {
		appLogger.Fatal("Failed to subscribe to JetStream consumer", err)
	}
	defer func() {
		if err := sub.Unsubscribe(); err != nil {
			appLogger.Error("Failed to unsubscribe from JetStream", err)
		}
	}()

	appLogger.WithFields(map[string]any{
		"stream":   events.StreamName,
		"consumer": events.ConsumerName,
	}).Info("Subscribed to JetStream consumer")

	loopCtx, stopLoop := context.WithCancel(context.Background())
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		worker.PullLoop(loopCtx, sub, ceilingWorker.HandleEvent, appLogger)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	appLogger.Info("Received shutdown signal")

	stopLoop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := ceilingWorker.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Error during shutdown", err)
	}

	select {
	case <-loopDone:
	case <-shutdownCtx.Done():
	}

	appLogger.Info("Catalogue worker stopped")
}
