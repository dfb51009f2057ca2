package chat

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/i474232898/weather-chat/internal/common"
	"github.com/i474232898/weather-chat/internal/weather"
)

const askForCityMessage = "Please specify a city. Example: 'What's the weather in Mumbai tomorrow?'"

var forecastWords = []string{"week", "forecast", "7 day"}

// Router decides per message between the weather path and the LLM, and
// records every successful exchange.
type Router struct {
	weather WeatherResponder
	llm     LLM
	history HistoryStore
	logger  *zap.Logger
}

// NewRouter creates a new Router.
func NewRouter(w WeatherResponder, llm LLM, history HistoryStore, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		weather: w,
		llm:     llm,
		history: history,
		logger:  logger,
	}
}

// Handle answers one message. On error nothing is appended to history.
func (r *Router) Handle(ctx context.Context, msg Message) (Reply, error) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return Reply{}, ErrEmptyMessage
	}

	lower := strings.ToLower(text)
	isWeather := strings.Contains(lower, "weather")

	var (
		reply string
		err   error
	)
	if isWeather {
		reply, err = r.answerWeather(ctx, text, lower)
	} else {
		reply, err = r.llm.Reply(ctx, text)
		if err != nil {
			err = fmt.Errorf("llm reply: %w", err)
		}
	}
	if err != nil {
		return Reply{}, err
	}

	r.history.Append(msg.Sender, Exchange{User: text, Bot: reply})

	// Labelled by the word "weather" alone, even when no provider was called.
	model := ModelGemini
	if isWeather {
		model = ModelOpenWeatherMap
	}

	r.logger.Debug("chat handled",
		zap.String("sender", msg.Sender),
		zap.String("model", model))

	return Reply{Text: reply, UsingModel: model}, nil
}

func (r *Router) answerWeather(ctx context.Context, text, lower string) (string, error) {
	q := weather.ParseQuery(text)
	if !q.HasCity {
		return askForCityMessage, nil
	}

	if common.HasAny(lower, forecastWords...) {
		return r.weather.Forecast(ctx, q.City)
	}

	day := 0
	if q.HasDay {
		day = q.DayOffset
	}
	return r.weather.WeatherForDay(ctx, q.City, day)
}
