package internal

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"GEMINI_API_KEY", "GEMINI_MODEL", "PORT", "ALLOWED_ORIGINS", "GENERATION_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.HasAPIKey() {
		t.Error("HasAPIKey() should be false without GEMINI_API_KEY")
	}
	if cfg.GeminiModel != DefaultGeminiModel || cfg.Addr() != ":8080" || cfg.AllowedOrigins != "*" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.GenerationTimeout != 0 || cfg.LogLevel != slog.LevelInfo {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("PORT", "3000")
	t.Setenv("GENERATION_TIMEOUT", "45s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !cfg.HasAPIKey() || cfg.GeminiModel != "gemini-2.5-pro" || cfg.Addr() != ":3000" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.GenerationTimeout != 45*time.Second || cfg.LogLevel != slog.LevelDebug {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"Bad timeout", "GENERATION_TIMEOUT", "soon"},
		{"Bad log level", "LOG_LEVEL", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadConfig(); err == nil {
				t.Errorf("LoadConfig() with %s=%q should fail", tt.key, tt.value)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind(" Comic "); err != nil || k != KindComic {
		t.Errorf("ParseKind(Comic) = %q, %v", k, err)
	}
	if _, err := ParseKind("poem"); err == nil {
		t.Error("ParseKind(poem) should fail")
	}
}
