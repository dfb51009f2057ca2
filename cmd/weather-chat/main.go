package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	httpapi "github.com/i474232898/weather-chat/internal/api/http"
	"github.com/i474232898/weather-chat/internal/chat"
	"github.com/i474232898/weather-chat/internal/config"
	"github.com/i474232898/weather-chat/internal/llm"
	"github.com/i474232898/weather-chat/internal/logging"
	"github.com/i474232898/weather-chat/internal/scheduler"
	"github.com/i474232898/weather-chat/internal/store"
	"github.com/i474232898/weather-chat/internal/weather"
	"github.com/i474232898/weather-chat/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logging.New(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	if cfg.OpenWeatherAPIKey == "" {
		zl.Warn("OPENWEATHER_API_KEY is empty; weather answers will report missing forecasts")
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provider := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey,
		providers.WithBaseURL(cfg.OpenWeatherBaseURL),
		providers.WithMaxRetries(cfg.ProviderMaxRetries),
		providers.WithProviderLogger(zl.Named("openweather")),
	)
	weatherSvc := weather.NewService(provider, weather.WithLogger(zl.Named("weather")))

	gemini, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		zl.Fatal("failed to create gemini client", zap.Error(err))
	}
	defer gemini.Close()

	// Process-lifetime chat history, owned here and handed to the router.
	history := store.NewMemoryStore()
	router := chat.NewRouter(weatherSvc, gemini, history, zl.Named("chat"))

	sched := scheduler.New(history, cfg.HistoryReportInterval, zl.Named("scheduler"))
	if err := sched.Start(); err != nil {
		zl.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "weather-chat",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          60 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-chat",
		})
	})

	httpapi.RegisterRoutes(app, router, history, zl.Named("http"))

	go func() {
		zl.Info("listening", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			zl.Error("fiber server stopped", zap.Error(err))
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		zl.Error("error during shutdown", zap.Error(err))
	}
}
