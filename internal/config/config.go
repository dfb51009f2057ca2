package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string

	GeminiAPIKey string
	GeminiModel  string

	// HTTPTimeout bounds each outbound provider call.
	HTTPTimeout time.Duration

	// ProviderMaxRetries is the number of extra attempts on 429/5xx (0 = none).
	ProviderMaxRetries int

	// HistoryReportInterval controls how often history statistics are logged (0 = off).
	HistoryReportInterval time.Duration

	LogLevel string
	LogFile  string

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.OpenWeatherBaseURL = getenvDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5/forecast")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.GeminiModel = getenvDefault("GEMINI_MODEL", "gemini-2.0-flash")

	timeout, err := getenvDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	retries, err := getenvInt("PROVIDER_MAX_RETRIES", 0)
	if err != nil {
		return nil, err
	}
	if retries < 0 {
		return nil, fmt.Errorf("invalid PROVIDER_MAX_RETRIES: must not be negative")
	}
	cfg.ProviderMaxRetries = retries

	report, err := getenvDuration("HISTORY_REPORT_INTERVAL", "15m")
	if err != nil {
		return nil, err
	}
	cfg.HistoryReportInterval = report

	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")
	cfg.LogFile = os.Getenv("LOG_FILE")
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
