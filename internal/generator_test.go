package internal

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// fakeModel is a TextModel that records its input and replays a canned answer
type fakeModel struct {
	text   string
	err    error
	panics bool
	delay  time.Duration
	calls  int
	last   string
}

func (f *fakeModel) GenerateText(ctx context.Context, instructions string) (string, error) {
	f.calls++
	f.last = instructions
	if f.panics {
		panic("client exploded")
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.text, f.err
}

func TestGenerateMockMode(t *testing.T) {
	g := NewGenerator(nil, 0)
	if !g.MockMode() {
		t.Fatal("generator without a model should be in mock mode")
	}

	result := g.Generate(context.Background(), "What if Iron Man died?", KindStory)
	if result.Source != SourceMock {
		t.Errorf("Source = %q, want %q", result.Source, SourceMock)
	}
	if result.Text != Mock("What if Iron Man died?", KindStory) {
		t.Error("mock mode should return the mock artifact")
	}
}

func TestGenerateWithModel(t *testing.T) {
	model := &fakeModel{text: "  # 🎬 What If?\nverbatim output\n"}
	g := NewGenerator(model, 0)

	for _, kind := range []Kind{KindStory, KindComic} {
		t.Run(string(kind), func(t *testing.T) {
			result := g.Generate(context.Background(), "a frog became king", kind)
			if result.Source != SourceModel {
				t.Errorf("Source = %q, want %q", result.Source, SourceModel)
			}
			if result.Text != model.text {
				t.Errorf("Text = %q, want the model output verbatim", result.Text)
			}
			if !strings.Contains(model.last, `"a frog became king"`) {
				t.Error("instructions should embed the literal prompt")
			}
		})
	}
}

func TestGenerateInstructionsPerKind(t *testing.T) {
	model := &fakeModel{text: "ok"}
	g := NewGenerator(model, 0)

	g.Generate(context.Background(), "x", KindStory)
	if !strings.Contains(model.last, "under 300 words") || !strings.Contains(model.last, "⚡ **The New Reality**") {
		t.Error("story instructions are missing their requirements")
	}

	g.Generate(context.Background(), "x", KindComic)
	if !strings.Contains(model.last, "6-8 page") || !strings.Contains(model.last, "## Page 1: [Page Title]") {
		t.Error("comic instructions are missing their format")
	}
}

func TestGenerateFallback(t *testing.T) {
	tests := []struct {
		name  string
		model *fakeModel
	}{
		{"Model error", &fakeModel{err: errors.New("quota exceeded")}},
		{"Empty response", &fakeModel{text: "   "}},
		{"Panic in client", &fakeModel{panics: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(tt.model, 0)
			result := g.Generate(context.Background(), "What if Harry Potter was sorted into Slytherin?", KindComic)
			if result.Source != SourceMock {
				t.Errorf("Source = %q, want %q", result.Source, SourceMock)
			}
			if result.Text != harryPotterComic {
				t.Error("fallback should serve the matching mock artifact")
			}
			if tt.model.calls != 1 {
				t.Errorf("model called %d times, want exactly 1", tt.model.calls)
			}
		})
	}
}

func TestGenerateTimeout(t *testing.T) {
	g := NewGenerator(&fakeModel{text: "late", delay: time.Second}, 10*time.Millisecond)
	result := g.Generate(context.Background(), "slow", KindStory)
	if result.Source != SourceMock {
		t.Errorf("Source = %q, want %q after timeout", result.Source, SourceMock)
	}
}

func TestCallModelWrapsErrors(t *testing.T) {
	g := NewGenerator(&fakeModel{text: ""}, 0)
	_, err := g.callModel(context.Background(), "x")
	if !errors.Is(err, ErrGenerationUnavailable) || !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("err = %v, want ErrGenerationUnavailable wrapping ErrEmptyResponse", err)
	}
}

func TestDiagnose(t *testing.T) {
	t.Run("Mock mode", func(t *testing.T) {
		report := NewGenerator(nil, 0).Diagnose(context.Background())
		if report.Success || report.Status != "mock_mode" || report.Error != "No API key found" {
			t.Errorf("unexpected report: %+v", report)
		}
	})

	t.Run("Reachable", func(t *testing.T) {
		model := &fakeModel{text: "Hello, API is working!"}
		report := NewGenerator(model, 0).Diagnose(context.Background())
		if !report.Success || report.Message != "Hello, API is working!" {
			t.Errorf("unexpected report: %+v", report)
		}
		if model.last != DiagnosticPrompt {
			t.Errorf("sent %q, want %q", model.last, DiagnosticPrompt)
		}
	})

	t.Run("API error", func(t *testing.T) {
		report := NewGenerator(&fakeModel{err: errors.New("API key not valid")}, 0).Diagnose(context.Background())
		if report.Success || report.Status != "api_error" {
			t.Errorf("unexpected report: %+v", report)
		}
		if report.Error != "API key not valid" {
			t.Errorf("Error = %q, want the client's message verbatim", report.Error)
		}
	})

	t.Run("Empty answer", func(t *testing.T) {
		report := NewGenerator(&fakeModel{text: ""}, 0).Diagnose(context.Background())
		if report.Error != ErrEmptyResponse.Error() {
			t.Errorf("Error = %q, want %q", report.Error, ErrEmptyResponse.Error())
		}
	})
}
