package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movie-catalog-service/internal/api"
	"movie-catalog-service/internal/config"
	"movie-catalog-service/internal/store"

	"github.com/go-playground/validator/v10"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	validate := validator.New()

	cfg, err := config.Load(os.Getenv("MOVIE_CATALOG_CONFIG_FILE"))
	if err != nil {
		logger.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, disconnect, err := store.Connect(store.MongoConfig{
		URI:              cfg.MongoURI,
		Database:         cfg.MongoDatabase,
		ConnectTimeout:   cfg.MongoConnectTimeout,
		OperationTimeout: cfg.MongoOperationTimeout,
	}, logger)
	if err != nil {
		logger.Error("Failed to initialize MongoDB connection", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		logger.Info("Closing MongoDB connection...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := disconnect(ctx); err != nil {
			logger.Error("Failed to close MongoDB connection", slog.String("error", err.Error()))
		}
	}()

	movieStore, err := store.NewMongoMovieStore(db, logger, cfg.MongoOperationTimeout)
	if err != nil {
		logger.Error("Failed to initialize movie store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	commentStore, err := store.NewMongoCommentStore(db, logger, cfg.MongoOperationTimeout)
	if err != nil {
		logger.Error("Failed to initialize comment store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Listing endpoints work without the text index; only search needs it.
	// A failure here is worth a warning, not a dead service.
	if err := movieStore.EnsureIndexes(context.Background()); err != nil {
		logger.Warn("Failed to ensure text index, search will be unavailable", slog.String("error", err.Error()))
	}

	handler := api.NewMovieHandler(movieStore, commentStore, logger, validate)
	router := api.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	httpSrv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("Catalog HTTP server starting", slog.String("port", cfg.HTTPPort))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server ListenAndServe() failed", slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Catalog service shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", slog.String("error", err.Error()))
	} else {
		logger.Info("HTTP server gracefully stopped.")
	}
}
