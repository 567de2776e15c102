package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/feeddigital/cursos-api/internal/config"
	"github.com/feeddigital/cursos-api/internal/helpers"
	"github.com/feeddigital/cursos-api/internal/logger"
	"github.com/feeddigital/cursos-api/internal/server"
)

// @title           Feed Digital Cursos API
// @version         1.0
// @description     Form submission endpoints for the Feed Digital course site.
// @BasePath        /
func main() {
	ctx := context.Background()

	dotenvErr := config.LoadDotEnv()
	// An invalid STAGE is reported by config.FromEnvironment below.
	stage, _ := helpers.ParseStage(os.Getenv("STAGE"))
	logger.InitLogger(stage)
	defer func() { _ = logger.Sync() }()
	if dotenvErr != nil {
		logger.Warn("Error loading .env file", zap.Error(dotenvErr))
	}

	cfg, err := config.FromEnvironment(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	srv, err := server.Bootstrap(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 20 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port), zap.String("stage", cfg.Stage))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("Server exiting")
}
