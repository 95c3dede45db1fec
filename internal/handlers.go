package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// maxBodyBytes caps request bodies on the JSON endpoints
const maxBodyBytes = 1 << 20

// Server exposes a Generator over HTTP
type Server struct {
	generator *Generator
	cfg       Config
}

// NewServer creates the HTTP layer around generator
func NewServer(generator *Generator, cfg Config) *Server {
	return &Server{generator: generator, cfg: cfg}
}

// SetupRouter configures and returns the application router
func (s *Server) SetupRouter() *mux.Router {
	r := mux.NewRouter()

	r.Use(CorsMiddleware(s.cfg.AllowedOrigins))
	r.Use(LoggingMiddleware)

	r.HandleFunc("/api/generate-story", s.generateHandler(KindStory)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/generate-comic", s.generateHandler(KindComic)).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/comic-pages", s.comicPagesHandler).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/test-api", s.testAPIHandler).Methods(http.MethodGet, http.MethodOptions)

	r.HandleFunc("/healthz", s.healthHandler).Methods(http.MethodGet)

	return r
}

// generateHandler serves /api/generate-story and /api/generate-comic. Only a missing
// prompt is reported as an error; every other failure is answered with mock content.
func (s *Server) generateHandler(kind Kind) http.HandlerFunc {
	endpoint := "/api/generate-" + string(kind)

	return func(w http.ResponseWriter, r *http.Request) {
		var prompt string
		defer func() {
			if rec := recover(); rec != nil {
				LogResponse(endpoint, "Recovered from panic, using mock content", fmt.Errorf("%v", rec))
				writeGenerated(w, kind, Mock(prompt, kind))
			}
		}()

		var req GenerateRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			LogResponse(endpoint, "Invalid request format, using mock content", err)
			writeGenerated(w, kind, Mock(FallbackPrompt, kind))
			return
		}

		prompt = strings.TrimSpace(req.Prompt)
		if prompt == "" {
			LogResponse(endpoint, "Prompt is required", ErrInvalidInput)
			EncodeError(w, "Prompt is required", http.StatusBadRequest)
			return
		}

		LogRequest(endpoint, "Prompt: "+truncate(prompt, 120))

		result := s.generator.Generate(r.Context(), prompt, kind)

		LogResponse(endpoint, fmt.Sprintf("Generated %s from %s", kind, result.Source), nil)
		writeGenerated(w, kind, result.Text)
	}
}

func writeGenerated(w http.ResponseWriter, kind Kind, text string) {
	if kind == KindComic {
		EncodeJSON(w, ComicResponse{Comic: text}, http.StatusOK)
		return
	}
	EncodeJSON(w, StoryResponse{Story: text}, http.StatusOK)
}

func (s *Server) comicPagesHandler(w http.ResponseWriter, r *http.Request) {
	var req ComicPagesRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		LogResponse("/api/comic-pages", "Invalid request format", err)
		EncodeError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Comic) == "" {
		LogResponse("/api/comic-pages", "Comic is required", ErrInvalidInput)
		EncodeError(w, "Comic is required", http.StatusBadRequest)
		return
	}

	pages := RenderComicPages(req.Comic)

	LogResponse("/api/comic-pages", fmt.Sprintf("Split comic into %d pages", len(pages)), nil)
	EncodeJSON(w, ComicPagesResponse{Pages: pages, Total: len(pages)}, http.StatusOK)
}

// testAPIHandler is a diagnostic for operators; it always answers 200
func (s *Server) testAPIHandler(w http.ResponseWriter, r *http.Request) {
	LogRequest("/api/test-api", "Running API diagnostic")

	report := s.generator.Diagnose(r.Context())
	if report.Success {
		report.APIKeyLength = len(s.cfg.GeminiAPIKey)
		LogResponse("/api/test-api", "API is reachable", nil)
	} else {
		LogResponse("/api/test-api", "API check failed: "+report.Status, nil)
	}
	EncodeJSON(w, report, http.StatusOK)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	mode := string(SourceModel)
	if s.generator.MockMode() {
		mode = string(SourceMock)
	}
	EncodeJSON(w, HealthResponse{Status: "ok", Mode: mode}, http.StatusOK)
}
