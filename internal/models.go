package internal

import (
	"fmt"
	"strings"
)

// Kind is the shape of the artifact a prompt is turned into
type Kind string

// Supported kinds
const (
	KindStory Kind = "story"
	KindComic Kind = "comic"
)

// ParseKind maps a user supplied string onto a Kind
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindStory:
		return KindStory, nil
	case KindComic:
		return KindComic, nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, s)
}

// Source records where a generated text came from
type Source string

// Valid sources
const (
	SourceModel Source = "model"
	SourceMock  Source = "mock"
)

// GenerationResult is what the generation service hands back for every prompt
type GenerationResult struct {
	Text   string `json:"text"`
	Source Source `json:"source"`
}

// GenerateRequest is the body accepted by both generation endpoints
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// StoryResponse represents the response of /api/generate-story
type StoryResponse struct {
	Story string `json:"story"`
}

// ComicResponse represents the response of /api/generate-comic
type ComicResponse struct {
	Comic string `json:"comic"`
}

// ComicPagesRequest carries a full comic script to be split into pages
type ComicPagesRequest struct {
	Comic string `json:"comic"`
}

// ComicPageView is one rendered page of a comic script
type ComicPageView struct {
	Page     int    `json:"page"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

// ComicPagesResponse represents the response of /api/comic-pages
type ComicPagesResponse struct {
	Pages []ComicPageView `json:"pages"`
	Total int             `json:"total"`
}

// DiagnosticReport is the payload of /api/test-api
type DiagnosticReport struct {
	Success      bool   `json:"success,omitempty"`
	Message      string `json:"message,omitempty"`
	APIKeyLength int    `json:"api_key_length,omitempty"`
	Error        string `json:"error,omitempty"`
	Status       string `json:"status,omitempty"`
}

// HealthResponse represents the response of /healthz
type HealthResponse struct {
	Status string `json:"status"`
	Mode   string `json:"mode"`
}
