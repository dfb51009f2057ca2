package weather

import (
	"context"
)

// ForecastProvider abstracts a 5-day / 3-hour forecast source (e.g. OpenWeatherMap).
//
// Responses that do not carry a record list come back as a Malformed result
// with a nil error. A non-nil error means the call itself failed unexpectedly.
type ForecastProvider interface {
	Name() string
	FetchForecast(ctx context.Context, city string) (ForecastResult, error)
}
