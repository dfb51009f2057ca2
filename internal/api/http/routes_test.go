package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-chat/internal/chat"
	"github.com/i474232898/weather-chat/internal/store"
	"github.com/i474232898/weather-chat/internal/weather"
)

type stubProvider struct {
	result weather.ForecastResult
}

func (s stubProvider) Name() string { return "stub" }

func (s stubProvider) FetchForecast(ctx context.Context, city string) (weather.ForecastResult, error) {
	return s.result, nil
}

type stubLLM struct {
	reply string
	err   error
}

func (s stubLLM) Reply(ctx context.Context, text string) (string, error) {
	return s.reply, s.err
}

func newTestApp(t *testing.T, llm chat.LLM) *fiber.App {
	t.Helper()

	now := time.Now().UTC()
	today := now.Format("2006-01-02")
	provider := stubProvider{result: weather.ForecastResult{Records: []weather.ForecastRecord{
		{Timestamp: today + " 09:00:00", TemperatureC: 10.0, Description: "clear sky"},
		{Timestamp: today + " 12:00:00", TemperatureC: 14.0, Description: "clear sky"},
	}}}

	svc := weather.NewService(provider, weather.WithClock(func() time.Time { return now }))
	history := store.NewMemoryStore()
	router := chat.NewRouter(svc, llm, history, nil)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	RegisterRoutes(app, router, history, nil)
	return app
}

func postChat(t *testing.T, app *fiber.App, body string) (*http.Response, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return do(t, app, req)
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode body %q: %v", raw, err)
	}
	return resp, out
}

func getHistory(t *testing.T, app *fiber.App) []any {
	t.Helper()

	_, body := do(t, app, httptest.NewRequest(http.MethodGet, "/history", nil))
	if _, ok := body["client_ip"].(string); !ok {
		t.Fatalf("missing client_ip in %v", body)
	}
	list, ok := body["chat_history"].([]any)
	if !ok {
		t.Fatalf("chat_history is not a list: %v", body)
	}
	return list
}

func TestWelcome(t *testing.T) {
	app := newTestApp(t, stubLLM{})

	resp, body := do(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if body["message"] != welcomeMessage {
		t.Fatalf("unexpected welcome: %v", body)
	}
}

func TestChatWeatherToday(t *testing.T) {
	app := newTestApp(t, stubLLM{})

	resp, body := postChat(t, app, `{"message": "What's the weather in Paris today?"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d (%v)", http.StatusOK, resp.StatusCode, body)
	}
	if body["reply"] != "Today's in Paris: clear sky, average temperature: 12.0°C." {
		t.Fatalf("unexpected reply: %v", body["reply"])
	}
	if body["using_model"] != "OpenWeatherMap" {
		t.Fatalf("unexpected model: %v", body["using_model"])
	}

	hist := getHistory(t, app)
	if len(hist) != 1 {
		t.Fatalf("expected one exchange, got %v", hist)
	}
	entry := hist[0].(map[string]any)
	if entry["user"] != "What's the weather in Paris today?" || entry["bot"] != body["reply"] {
		t.Fatalf("unexpected history entry: %v", entry)
	}
}

func TestChatDelegatesToLLM(t *testing.T) {
	app := newTestApp(t, stubLLM{reply: "Hello! How can I help?"})

	resp, body := postChat(t, app, `{"message": "hello"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if body["reply"] != "Hello! How can I help?" || body["using_model"] != "Gemini" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestChatRejectsBlankMessage(t *testing.T) {
	app := newTestApp(t, stubLLM{})

	for _, payload := range []string{`{"message": "   "}`, `{"message": ""}`, `{}`} {
		resp, body := postChat(t, app, payload)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected status %d, got %d", payload, http.StatusBadRequest, resp.StatusCode)
		}
		if body["detail"] != "No message provided." {
			t.Fatalf("%s: unexpected detail: %v", payload, body)
		}
	}

	if hist := getHistory(t, app); len(hist) != 0 {
		t.Fatalf("expected empty history, got %v", hist)
	}
}

func TestChatInvalidBody(t *testing.T) {
	app := newTestApp(t, stubLLM{})

	resp, _ := postChat(t, app, `{"message":`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestChatUnexpectedFailure(t *testing.T) {
	app := newTestApp(t, stubLLM{err: errors.New("upstream unavailable")})

	resp, body := postChat(t, app, `{"message": "tell me a story"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, resp.StatusCode)
	}
	detail, _ := body["detail"].(string)
	if !strings.Contains(detail, "upstream unavailable") {
		t.Fatalf("unexpected detail: %v", body)
	}

	if hist := getHistory(t, app); len(hist) != 0 {
		t.Fatalf("expected empty history, got %v", hist)
	}
}
