package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/coffee-compass/internal/config"
	"github.com/coffee-compass/internal/infrastructure/geoapify"
	"github.com/coffee-compass/internal/pkg/logger"
	redisRepo "github.com/coffee-compass/internal/repository/redis"
	"github.com/coffee-compass/internal/usecase"
	"github.com/coffee-compass/internal/worker"
	"github.com/coffee-compass/internal/worker/position"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Position Discovery Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.String("position_stream", cfg.Worker.PositionStream),
		zap.Float64("min_move_distance_km", cfg.Worker.MinMoveDistance))

	// 3. Connect to Redis
	redisClient, err := redisRepo.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Initialize repositories and provider clients
	prefsRepo := redisRepo.NewPreferencesRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	searchClient := geoapify.NewPlaceSearchClient(&cfg.Search, log)

	// 5. Initialize use cases
	shopUC, err := usecase.NewShopUseCase(context.Background(), prefsRepo, log)
	if err != nil {
		log.Fatal("Failed to load user state", zap.Error(err))
	}

	discoveryUC := usecase.NewDiscoveryUseCase(searchClient, shopUC, &cfg.Discovery, log)

	// 6. Initialize workers
	positionWorker := position.NewWorker(streamRepo, discoveryUC, &cfg.Worker, log)

	// 7. Create worker manager and register workers
	manager := worker.NewManager(log)
	manager.Register(positionWorker)

	// 8. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := manager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}
