package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/pulseworks/campaignpulse/internal/config"
	"github.com/pulseworks/campaignpulse/internal/httpx"
	"github.com/pulseworks/campaignpulse/internal/klaviyo"
	"github.com/pulseworks/campaignpulse/internal/report"
)

func main() {
	_ = godotenv.Load() // best effort, env vars win

	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	cl := klaviyo.NewClient(cfg, klaviyo.NewHTTPClient(cfg.HTTPTimeout), logger)
	fetcher := report.NewFetcher(cl, cl, cfg, logger)

	r := httpx.NewRouter(logger, fetcher, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
