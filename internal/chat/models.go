package chat

import (
	"context"
	"errors"
)

// Model labels reported back to the client.
const (
	ModelOpenWeatherMap = "OpenWeatherMap"
	ModelGemini         = "Gemini"
)

// ErrEmptyMessage is returned for blank input; nothing is recorded.
var ErrEmptyMessage = errors.New("empty message")

// Message is one incoming chat request.
type Message struct {
	Sender string
	Text   string
}

// Exchange is a completed request/reply pair as kept in history.
type Exchange struct {
	User string `json:"user"`
	Bot  string `json:"bot"`
}

// Reply is what the router answers with.
type Reply struct {
	Text       string `json:"reply"`
	UsingModel string `json:"using_model"`
}

// LLM is the conversational collaborator. Each call starts a fresh session.
type LLM interface {
	Reply(ctx context.Context, text string) (string, error)
}

// WeatherResponder answers weather questions with ready-to-send text.
type WeatherResponder interface {
	WeatherForDay(ctx context.Context, city string, dayOffset int) (string, error)
	Forecast(ctx context.Context, city string) (string, error)
}

// HistoryStore is the contract the in-memory history store must satisfy.
type HistoryStore interface {
	Append(identity string, ex Exchange)
	History(identity string) []Exchange
}
