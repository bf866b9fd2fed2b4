package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BerylCAtieno/career-feedback-api/internal/config"
	"github.com/BerylCAtieno/career-feedback-api/internal/extractor"
	"github.com/BerylCAtieno/career-feedback-api/internal/inference"
	"github.com/BerylCAtieno/career-feedback-api/internal/router"
	"github.com/BerylCAtieno/career-feedback-api/internal/services"
	"github.com/BerylCAtieno/career-feedback-api/internal/storage"
	"github.com/BerylCAtieno/career-feedback-api/internal/utils"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := utils.NewLogger(cfg.LogLevel)

	// Initialize temporary document store
	var store storage.Storage
	switch cfg.TempStore {
	case config.StoreS3:
		store, err = storage.NewS3Storage(cfg)
	default:
		store, err = storage.NewDiskStorage(cfg.UploadDir)
	}
	if err != nil {
		logger.Fatal("Failed to initialize temporary store", "backend", cfg.TempStore, "error", err)
	}

	metrics, err := services.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal("Failed to register metrics", "error", err)
	}

	// Initialize feedback service
	feedbackService := services.NewService(
		store,
		extractor.NewExtractor(),
		inference.NewClient(cfg.APIKey, cfg.InferenceBaseURL, cfg.InferenceTimeout, logger),
		cfg.Models,
		metrics,
		logger,
	)

	// Setup HTTP router
	handler, err := router.NewRouter(feedbackService, logger, router.Options{
		MaxFileSize:        cfg.MaxFileSize,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Registerer:         prometheus.DefaultRegisterer,
		Gatherer:           prometheus.DefaultGatherer,
	})
	if err != nil {
		logger.Fatal("Failed to build router", "error", err)
	}

	// Create HTTP server. Inference calls can run long, so the write timeout is generous.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("Starting server",
			"port", cfg.Port,
			"temp_store", cfg.TempStore,
			"review_model", cfg.Models.Review,
			"guidance_model", cfg.Models.Guidance,
			"interview_model", cfg.Models.Interview)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
