package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/clear-route/cityinfo-api/internal/cities"
	"github.com/clear-route/cityinfo-api/internal/collector"
	"github.com/clear-route/cityinfo-api/internal/config"
	"github.com/clear-route/cityinfo-api/internal/logging"
	"github.com/clear-route/cityinfo-api/internal/server"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var version string

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	defaultConfig := os.Getenv("CITYINFO_CONFIG")
	if defaultConfig == "" {
		defaultConfig = "config.yml"
	}

	configPath := flag.String("config", defaultConfig, "path to the yaml configuration file")

	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	slog.SetDefault(logger)

	store, err := cities.NewStore(cfg.Cities)
	if err != nil {
		log.Fatalf("error loading cities: %v", err)
	}

	slog.Info("loaded cities", slog.Int("count", store.Len()))

	c, err := collector.New(
		collector.WithStore(store),
		collector.WithBuildInfo(version),
	)
	if err != nil {
		log.Fatalf("error initializing collector: %v", err)
	}

	reg := prometheus.NewRegistry()

	reg.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: "cityinfo"}),
		collectors.NewGoCollector(),
		c,
	)

	router, err := server.NewRouter(logger, store, reg)
	if err != nil {
		log.Fatalf("error building router: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout.Duration,
	}

	go func() {
		slog.Info("start listening", slog.String("address", cfg.Server.Address))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("error while listening", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("error while shutting down server: %v", err)
	}

	slog.Info("Exiting")
}

func loadConfig(path string) (*config.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("error closing config file", slog.String("error", err.Error()))
		}
	}()

	return config.Parse(f)
}
