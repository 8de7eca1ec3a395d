package main

// @title Coffee Compass API
// @version 1.0.0
// @description Сервис поиска кофеен: поисковый цикл с throttle-гейтом и дедупликацией, избранное, чек-ины с серией посещений и достижениями, рекомендации (кофейня дня, случайная рядом, пеший маршрут) и платный контент (туры и гиды).

// @contact.name API Support
// @contact.email support@coffee-compass.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/coffee-compass/docs"
	"github.com/coffee-compass/internal/config"
	httpDelivery "github.com/coffee-compass/internal/delivery/http"
	"github.com/coffee-compass/internal/delivery/http/handler"
	"github.com/coffee-compass/internal/infrastructure/geoapify"
	"github.com/coffee-compass/internal/infrastructure/stripepay"
	"github.com/coffee-compass/internal/pkg/logger"
	"github.com/coffee-compass/internal/repository/postgres"
	redisRepo "github.com/coffee-compass/internal/repository/redis"
	"github.com/coffee-compass/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Coffee Compass")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL (catalog of paid tours and guides)
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis (preferences store)
	redisClient, err := redisRepo.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories and provider clients
	prefsRepo := redisRepo.NewPreferencesRepository(redisClient)
	contentRepo := postgres.NewContentRepository(db, log)
	searchClient := geoapify.NewPlaceSearchClient(&cfg.Search, log)
	billingClient := stripepay.NewBillingClient(&cfg.Billing, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	shopUC, err := usecase.NewShopUseCase(context.Background(), prefsRepo, log)
	if err != nil {
		log.Fatal("Failed to load user state", zap.Error(err))
	}

	discoveryUC := usecase.NewDiscoveryUseCase(searchClient, shopUC, &cfg.Discovery, log)
	recommendationUC := usecase.NewRecommendationUseCase(discoveryUC, shopUC, &cfg.Recommendation, log)
	streakUC := usecase.NewStreakUseCase(shopUC, log)
	billingUC := usecase.NewBillingUseCase(billingClient, contentRepo, shopUC, &cfg.Billing, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	discoveryHandler := handler.NewDiscoveryHandler(discoveryUC, log)
	shopHandler := handler.NewShopHandler(shopUC, discoveryUC, streakUC, log)
	recommendationHandler := handler.NewRecommendationHandler(recommendationUC, log)
	billingHandler := handler.NewBillingHandler(billingUC, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		discoveryHandler,
		shopHandler,
		recommendationHandler,
		billingHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
