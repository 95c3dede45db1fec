package internal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when GEMINI_MODEL is not set
const DefaultGeminiModel = "gemini-1.5-flash"

// TextModel turns one instruction string into generated text
type TextModel interface {
	GenerateText(ctx context.Context, instructions string) (string, error)
}

// GeminiModel is a TextModel backed by the Gemini API
type GeminiModel struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

// NewGeminiModel creates a Gemini client for the given key and model name
func NewGeminiModel(ctx context.Context, apiKey, modelName string) (*GeminiModel, error) {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	slog.Info("[GEMINI] Client initialized", slog.String("model", modelName))

	return &GeminiModel{
		client: client,
		model:  client.GenerativeModel(modelName),
		name:   modelName,
	}, nil
}

// GenerateText sends a single, non-streaming request and concatenates the text parts
// of the first candidate
func (g *GeminiModel) GenerateText(ctx context.Context, instructions string) (string, error) {
	slog.Debug("[GEMINI] Sending request to API",
		slog.String("model", g.name),
		slog.Int("instructions_length", len(instructions)))

	resp, err := g.model.GenerateContent(ctx, genai.Text(instructions))
	if err != nil {
		slog.Debug("[GEMINI] Request failed", slog.String("error", err.Error()))
		return "", err
	}

	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}

	slog.Debug("[GEMINI] Response received successfully", slog.Int("length", len(text)))
	return text, nil
}

// Close releases the underlying client connection
func (g *GeminiModel) Close() error {
	return g.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	if resp != nil && len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				text.WriteString(string(txt))
			}
		}
	}
	return text.String()
}
