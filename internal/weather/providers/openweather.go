package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/i474232898/weather-chat/internal/weather"
)

// DefaultOpenWeatherForecastURL is the 5-day / 3-hour forecast endpoint.
const DefaultOpenWeatherForecastURL = "https://api.openweathermap.org/data/2.5/forecast"

// OpenWeatherProvider implements weather.ForecastProvider for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// OpenWeatherOption customizes an OpenWeatherProvider.
type OpenWeatherOption func(*OpenWeatherProvider)

// WithBaseURL points the provider at a different forecast endpoint.
func WithBaseURL(u string) OpenWeatherOption {
	return func(p *OpenWeatherProvider) {
		if u != "" {
			p.baseURL = u
		}
	}
}

// WithMaxRetries allows retries on rate limiting and server errors.
func WithMaxRetries(n int) OpenWeatherOption {
	return func(p *OpenWeatherProvider) {
		p.httpCfg.Backoff.MaxRetries = n
	}
}

// WithProviderLogger attaches a logger.
func WithProviderLogger(logger *zap.Logger) OpenWeatherOption {
	return func(p *OpenWeatherProvider) {
		p.logger = logger
	}
}

func NewOpenWeatherProvider(client *http.Client, apiKey string, opts ...OpenWeatherOption) *OpenWeatherProvider {
	p := &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: DefaultOpenWeatherForecastURL,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      0,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: newCircuitBreaker("openweather"),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

type openWeatherRecord struct {
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// FetchForecast queries the forecast for city in metric units.
// Anything other than a decodable "list" array is reported as a malformed result.
func (p *OpenWeatherProvider) FetchForecast(ctx context.Context, city string) (weather.ForecastResult, error) {
	if p.apiKey == "" {
		p.logger.Warn("openweather api key is not configured")
		return weather.MalformedResult(), nil
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", city)
		values.Set("units", "metric")
		values.Set("appid", p.apiKey)

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		if isUpstreamFailure(err) {
			p.logger.Warn("openweather request failed", zap.String("city", city), zap.Error(err))
			return weather.MalformedResult(), nil
		}
		return weather.ForecastResult{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		List json.RawMessage `json:"list"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		p.logger.Warn("openweather response is not json",
			zap.String("city", city),
			zap.Int("status", resp.StatusCode),
			zap.Error(err))
		return weather.MalformedResult(), nil
	}

	list := bytes.TrimSpace(payload.List)
	if len(list) == 0 || bytes.Equal(list, []byte("null")) {
		return weather.MalformedResult(), nil
	}

	var items []openWeatherRecord
	if err := json.Unmarshal(list, &items); err != nil {
		p.logger.Warn("openweather list has unexpected shape", zap.String("city", city), zap.Error(err))
		return weather.MalformedResult(), nil
	}

	records := make([]weather.ForecastRecord, 0, len(items))
	for _, it := range items {
		var desc string
		if len(it.Weather) > 0 {
			desc = it.Weather[0].Description
		}
		records = append(records, weather.ForecastRecord{
			Timestamp:    it.DtTxt,
			TemperatureC: it.Main.Temp,
			Description:  desc,
		})
	}

	return weather.ForecastResult{Records: records}, nil
}
