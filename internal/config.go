package internal

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment
type Config struct {
	GeminiAPIKey      string
	GeminiModel       string
	Port              string
	AllowedOrigins    string
	GenerationTimeout time.Duration
	LogLevel          slog.Level
}

// HasAPIKey reports whether a credential is configured. Presence is all that is checked.
func (c Config) HasAPIKey() bool {
	return c.GeminiAPIKey != ""
}

// Addr returns the listen address of the HTTP server
func (c Config) Addr() string {
	return ":" + c.Port
}

// LoadEnvFile loads variables from .env, falling back to env.example. Variables already
// set in the process environment win.
func LoadEnvFile() {
	if err := godotenv.Load(); err == nil {
		return
	}
	if err := godotenv.Load("env.example"); err != nil {
		slog.Warn("[CONFIG] .env file not found or could not be loaded, using OS environment")
	}
}

// LoadConfig reads the configuration from the process environment
func LoadConfig() (Config, error) {
	cfg := Config{
		GeminiAPIKey:   strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:    getEnv("GEMINI_MODEL", DefaultGeminiModel),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		LogLevel:       slog.LevelInfo,
	}

	if raw := os.Getenv("GENERATION_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid GENERATION_TIMEOUT %q: %w", raw, err)
		}
		cfg.GenerationTimeout = timeout
	}

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
