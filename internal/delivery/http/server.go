package http

import (
	"context"
	"time"

	"github.com/coffee-compass/internal/config"
	"github.com/coffee-compass/internal/delivery/http/handler"
	"github.com/coffee-compass/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	discoveryHandler      *handler.DiscoveryHandler
	shopHandler           *handler.ShopHandler
	recommendationHandler *handler.RecommendationHandler
	billingHandler        *handler.BillingHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	discoveryHandler *handler.DiscoveryHandler,
	shopHandler *handler.ShopHandler,
	recommendationHandler *handler.RecommendationHandler,
	billingHandler *handler.BillingHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Coffee Compass",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                   app,
		config:                cfg,
		logger:                logger,
		discoveryHandler:      discoveryHandler,
		shopHandler:           shopHandler,
		recommendationHandler: recommendationHandler,
		billingHandler:        billingHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Discovery routes
	api.Post("/search", s.discoveryHandler.Search)
	api.Get("/shops", s.discoveryHandler.ListShops)
	api.Get("/shops/:id", s.discoveryHandler.GetShop)

	// Favorites routes
	api.Get("/favorites", s.shopHandler.ListFavorites)
	api.Post("/favorites/:id", s.shopHandler.AddFavorite)
	api.Delete("/favorites/:id", s.shopHandler.RemoveFavorite)

	// Checkin routes
	api.Get("/checkins", s.shopHandler.ListCheckins)
	api.Post("/checkins", s.shopHandler.CheckinByName)
	api.Post("/checkins/:id", s.shopHandler.Checkin)
	api.Delete("/checkins", s.shopHandler.ClearCheckins)
	api.Get("/streak", s.shopHandler.GetStreak)

	// Recommendation routes
	api.Get("/recommendations/daily", s.recommendationHandler.Daily)
	api.Get("/recommendations/random", s.recommendationHandler.RandomNearby)
	api.Get("/recommendations/route", s.recommendationHandler.Route)

	// Achievements
	api.Get("/achievements", s.shopHandler.ListAchievements)

	// Billing routes
	api.Get("/tours", s.billingHandler.ListTours)
	api.Get("/guides", s.billingHandler.ListGuides)
	api.Post("/purchases", s.billingHandler.Purchase)
	api.Post("/purchases/restore", s.billingHandler.Restore)
	api.Put("/premium", s.shopHandler.SetPremium)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
