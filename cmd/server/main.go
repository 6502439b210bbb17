package main

import (
	"fmt"
	"log"
	"os"

	"github.com/brandyemurray/compare-and-save/config"
	httpDelivery "github.com/brandyemurray/compare-and-save/internal/delivery/http"
	"github.com/brandyemurray/compare-and-save/internal/infrastructure/cache"
	"github.com/brandyemurray/compare-and-save/internal/infrastructure/logging"
	"github.com/brandyemurray/compare-and-save/internal/infrastructure/render"
	"github.com/brandyemurray/compare-and-save/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting Compare and Save v1.0.0",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("store_label", cfg.Cards.StoreLabel),
		zap.Strings("competitors", cfg.Cards.Competitors),
		zap.Int("page_size", cfg.Cards.PageSize),
	)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	defer memoryCache.Close()
	logger.Info("Print sheet cache ready", zap.Duration("ttl", cfg.Cache.TTL))

	renderer, err := render.New()
	if err != nil {
		logger.Fatal("Failed to load page templates", zap.Error(err))
	}

	// Initialize usecase layer
	cardService := usecase.NewCardService(
		memoryCache,
		logger.Named("cards"),
		usecase.CardServiceConfig{
			PageSize:    cfg.Cards.PageSize,
			StoreLabel:  cfg.Cards.StoreLabel,
			Competitors: cfg.Cards.Competitors,
			SheetTTL:    cfg.Cache.TTL,
		},
	)

	if cfg.RateLimit.PerIP > 0 {
		logger.Info("Rate limiting enabled", zap.Int("per_ip_per_minute", cfg.RateLimit.PerIP))
	} else {
		logger.Warn("Rate limiting disabled")
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(cardService, renderer, cfg.Cards, logger.Named("http"))

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, logger.Named("http"))

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("Server listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		logger.Error("Failed to start server", zap.Error(err))
		os.Exit(1)
	}
}
