package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	APIKey             string
	BaseURL            string
	Revision           string
	ConversionMetricID string
	Port               string
	HTTPTimeout        time.Duration
	StatsConcurrency   int
	LogLevel           slog.Level
	CORSOrigins        []string
}

func FromEnv() Config {
	to := 15 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			to = time.Duration(n) * time.Second
		}
	}
	lvl := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		lvl = slog.LevelDebug
	}
	return Config{
		APIKey:             os.Getenv("KLAVIYO_API_KEY"),
		BaseURL:            envOr("KLAVIYO_BASE_URL", "https://a.klaviyo.com"),
		Revision:           envOr("KLAVIYO_REVISION", "2025-07-15"),
		ConversionMetricID: envOr("CONVERSION_METRIC_ID", "YsNXnq"),
		Port:               envOr("PORT", "8080"),
		HTTPTimeout:        to,
		StatsConcurrency:   clampConcurrency(atoiOr("STATS_CONCURRENCY", 5)),
		LogLevel:           lvl,
		CORSOrigins:        splitCSV(envOr("CORS_ORIGINS", "*")),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func atoiOr(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}

// clampConcurrency keeps the statistics fan-out inside the upstream
// rate-limit budget.
func clampConcurrency(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
