package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"OPENWEATHER_API_KEY", "OPENWEATHER_BASE_URL", "GEMINI_API_KEY", "GEMINI_MODEL",
		"HTTP_TIMEOUT", "PROVIDER_MAX_RETRIES", "HISTORY_REPORT_INTERVAL",
		"LOG_LEVEL", "LOG_FILE", "PORT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Errorf("unexpected HTTPTimeout: %v", cfg.HTTPTimeout)
	}
	if cfg.ProviderMaxRetries != 0 {
		t.Errorf("unexpected ProviderMaxRetries: %d", cfg.ProviderMaxRetries)
	}
	if cfg.HistoryReportInterval != 15*time.Minute {
		t.Errorf("unexpected HistoryReportInterval: %v", cfg.HistoryReportInterval)
	}
	if cfg.GeminiModel != "gemini-2.0-flash" || cfg.Port != "8080" || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "ow-key")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("PROVIDER_MAX_RETRIES", "2")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenWeatherAPIKey != "ow-key" || cfg.HTTPTimeout != 3*time.Second ||
		cfg.ProviderMaxRetries != 2 || cfg.Port != "9090" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"HTTP_TIMEOUT":            "soon",
		"PROVIDER_MAX_RETRIES":    "-1",
		"HISTORY_REPORT_INTERVAL": "weekly",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, val)
			}
		})
	}
}
