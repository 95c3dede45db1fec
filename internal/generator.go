package internal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Generator turns prompts into stories and comics. A nil model puts it in mock mode.
// Generate never fails: every model error is logged and replaced by a mock artifact.
type Generator struct {
	model   TextModel
	timeout time.Duration
}

// NewGenerator creates a Generator. model may be nil; timeout <= 0 sets no deadline.
func NewGenerator(model TextModel, timeout time.Duration) *Generator {
	return &Generator{model: model, timeout: timeout}
}

// MockMode reports whether the generator runs without a text model
func (g *Generator) MockMode() bool {
	return g.model == nil
}

// Generate returns the model's text for prompt, or the mock artifact when the model
// is not configured or fails
func (g *Generator) Generate(ctx context.Context, prompt string, kind Kind) GenerationResult {
	if g.model == nil {
		slog.Info("[GENERATOR] No API key configured, using mock content", slog.String("kind", string(kind)))
		return GenerationResult{Text: Mock(prompt, kind), Source: SourceMock}
	}

	text, err := g.callModel(ctx, BuildInstructions(prompt, kind))
	if err != nil {
		slog.Error("[GENERATOR] Falling back to mock content",
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()))
		return GenerationResult{Text: Mock(prompt, kind), Source: SourceMock}
	}

	return GenerationResult{Text: text, Source: SourceModel}
}

// Diagnose performs one trivial round trip against the model
func (g *Generator) Diagnose(ctx context.Context) DiagnosticReport {
	if g.model == nil {
		return DiagnosticReport{Error: "No API key found", Status: "mock_mode"}
	}

	text, err := g.invokeModel(ctx, DiagnosticPrompt)
	if err != nil {
		slog.Error("[GENERATOR] API test failed", slog.String("error", err.Error()))
		return DiagnosticReport{Error: err.Error(), Status: "api_error"}
	}

	return DiagnosticReport{Success: true, Message: text}
}

// callModel wraps every failure of invokeModel in ErrGenerationUnavailable
func (g *Generator) callModel(ctx context.Context, instructions string) (string, error) {
	text, err := g.invokeModel(ctx, instructions)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationUnavailable, err)
	}
	return text, nil
}

// invokeModel returns the client's own error unchanged; a panic inside the client and an
// empty answer are reported as errors too
func (g *Generator) invokeModel(ctx context.Context, instructions string) (text string, err error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("panic: %v", r)
		}
	}()

	text, err = g.model.GenerateText(ctx, instructions)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}
