package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Service answers weather questions from a forecast provider.
type Service struct {
	provider ForecastProvider
	logger   *zap.Logger
	now      func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the clock used to resolve "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a new Service.
func NewService(provider ForecastProvider, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WeatherForDay describes the weather in city dayOffset days from today (UTC).
// Provider problems come back as reply text; only unexpected failures return an error.
func (s *Service) WeatherForDay(ctx context.Context, city string, dayOffset int) (string, error) {
	if dayOffset > MaxDayOffset {
		return tooFarAheadMessage, nil
	}

	res, err := s.fetch(ctx, city)
	if err != nil {
		return "", err
	}
	if res.Malformed {
		return unavailableMessage(city), nil
	}

	targetDate := s.now().UTC().AddDate(0, 0, dayOffset).Format(dateLayout)
	records := FilterByDate(res.Records, targetDate)
	if len(records) == 0 {
		s.logger.Debug("no forecast records for date",
			zap.String("city", city),
			zap.String("date", targetDate),
			zap.Int("records", len(res.Records)))
		return noForecastMessage(city, targetDate), nil
	}

	avgTemp, description := AggregateDay(records)
	return FormatDay(city, dayOffset, targetDate, description, avgTemp), nil
}

// Forecast summarizes up to five days of forecast for city.
func (s *Service) Forecast(ctx context.Context, city string) (string, error) {
	res, err := s.fetch(ctx, city)
	if err != nil {
		return "", err
	}
	if res.Malformed {
		return unavailableMessage(city), nil
	}

	return FormatForecast(city, GroupByDate(res.Records)), nil
}

func (s *Service) fetch(ctx context.Context, city string) (ForecastResult, error) {
	if s.provider == nil {
		return ForecastResult{}, errors.New("no forecast provider configured")
	}

	res, err := s.provider.FetchForecast(ctx, city)
	if err != nil {
		s.logger.Error("forecast fetch failed",
			zap.String("provider", s.provider.Name()),
			zap.String("city", city),
			zap.Error(err))
		return ForecastResult{}, fmt.Errorf("fetch forecast for %q: %w", city, err)
	}
	if res.Malformed {
		s.logger.Warn("provider returned no forecast list",
			zap.String("provider", s.provider.Name()),
			zap.String("city", city))
	}
	return res, nil
}
