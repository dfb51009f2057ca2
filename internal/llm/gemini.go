package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when no model name is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

var errNoCandidates = errors.New("no response candidates")

// GeminiClient sends one message per fresh chat session; nothing is carried
// over between calls.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a Gemini client for modelName.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

// Reply starts a new chat, sends text and returns the model's answer.
func (g *GeminiClient) Reply(ctx context.Context, text string) (string, error) {
	session := g.model.StartChat()

	resp, err := session.SendMessage(ctx, genai.Text(text))
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	return extractText(resp)
}

// extractText joins the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errNoCandidates
	}

	cand := resp.Candidates[0]
	if cand.Content == nil {
		return "", errNoCandidates
	}

	var result strings.Builder
	for _, part := range cand.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			result.WriteString(string(t))
		}
	}
	return result.String(), nil
}

// Close releases the underlying client.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}
