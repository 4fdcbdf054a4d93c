// Command server loads the campus datasets and serves the way-finding
// API over HTTP.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"campusways/campus"
	"campusways/campusdata"
	"campusways/internal/config"
	"campusways/internal/logging"
	"campusways/internal/server"
)

func main() {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	model, err := loadModel(cfg.Data)
	if err != nil {
		logger.Error("failed to load campus data", "error", err)
		os.Exit(1)
	}
	logger.Info("campus data loaded",
		"buildings_file", cfg.Data.BuildingsFile,
		"paths_file", cfg.Data.PathsFile,
		"buildings", len(model.BuildingNames()),
	)

	deps := server.RouterDependencies{
		Model:          model,
		AllowedOrigins: parseAllowedOrigins(cfg.HTTP.AllowedOriginsCSV),
	}
	if cfg.HTTP.MetricsEnabled {
		deps.Metrics = server.NewMetrics()
	}

	srv := server.New(logger, cfg.HTTP, server.NewRouter(logger, deps))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

func loadModel(cfg config.DataConfig) (*campus.Map, error) {
	buildings, err := campusdata.LoadBuildingsFile(cfg.BuildingsFile)
	if err != nil {
		return nil, err
	}
	segments, err := campusdata.LoadSegmentsFile(cfg.PathsFile)
	if err != nil {
		return nil, err
	}

	return campus.NewMap(buildings, segments)
}

func parseAllowedOrigins(csv string) []string {
	if csv == "" {
		return nil
	}
	var origins []string
	for _, part := range strings.Split(csv, ",") {
		if part = strings.TrimSpace(part); part != "" {
			origins = append(origins, part)
		}
	}

	return origins
}
