package internal

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestRouter(model TextModel) http.Handler {
	cfg := Config{AllowedOrigins: "*", GeminiAPIKey: ""}
	if model != nil {
		cfg.GeminiAPIKey = "test-key"
	}
	return NewServer(NewGenerator(model, 0), cfg).SetupRouter()
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("response is not JSON: %v: %s", err, rec.Body.String())
		}
	}
	return rec, decoded
}

func TestGenerateHandlersRejectEmptyPrompt(t *testing.T) {
	router := newTestRouter(nil)

	for _, path := range []string{"/api/generate-story", "/api/generate-comic"} {
		for _, body := range []string{`{}`, `{"prompt":""}`, `{"prompt":"   \n"}`} {
			t.Run(path+" "+body, func(t *testing.T) {
				rec, resp := doRequest(t, router, http.MethodPost, path, body)
				if rec.Code != http.StatusBadRequest {
					t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
				}
				if resp["error"] != "Prompt is required" {
					t.Errorf("error = %v, want %q", resp["error"], "Prompt is required")
				}
			})
		}
	}
}

func TestGenerateComicMockMode(t *testing.T) {
	router := newTestRouter(nil)

	rec, resp := doRequest(t, router, http.MethodPost, "/api/generate-comic",
		`{"prompt":"What if Harry Potter was sorted into Slytherin?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	comic, _ := resp["comic"].(string)
	if !strings.Contains(comic, "What If Harry Potter Was Sorted Into Slytherin?") {
		t.Error("comic is missing its heading")
	}
	if !strings.Contains(comic, "## Page") {
		t.Error("comic has no page markers")
	}
}

func TestGenerateStoryWithModel(t *testing.T) {
	router := newTestRouter(&fakeModel{text: "# 🎬 What If Frogs Ruled?"})

	rec, resp := doRequest(t, router, http.MethodPost, "/api/generate-story", `{"prompt":"frogs ruled"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if resp["story"] != "# 🎬 What If Frogs Ruled?" {
		t.Errorf("story = %v, want the model output", resp["story"])
	}
}

func TestGenerateHandlersNeverFail(t *testing.T) {
	router := newTestRouter(&fakeModel{err: errors.New("network down")})

	tests := []struct {
		name string
		path string
		body string
		key  string
		want string
	}{
		{"Model failure story", "/api/generate-story", `{"prompt":"avengers"}`, "story", ironManStory},
		{"Model failure comic", "/api/generate-comic", `{"prompt":"a frog became king"}`, "comic", Mock("a frog became king", KindComic)},
		{"Malformed JSON", "/api/generate-story", `{"prompt":`, "story", Mock(FallbackPrompt, KindStory)},
		{"Wrong prompt type", "/api/generate-comic", `{"prompt":42}`, "comic", Mock(FallbackPrompt, KindComic)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := doRequest(t, router, http.MethodPost, tt.path, tt.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			if resp[tt.key] != tt.want {
				t.Errorf("%s = %v, want the mock artifact", tt.key, resp[tt.key])
			}
		})
	}
}

func TestRoutesRejectWrongMethod(t *testing.T) {
	router := newTestRouter(nil)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/generate-story"},
		{http.MethodGet, "/api/generate-comic"},
		{http.MethodGet, "/api/comic-pages"},
		{http.MethodPost, "/api/test-api"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != http.StatusMethodNotAllowed {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
			}
		})
	}
}

func TestTestAPIHandler(t *testing.T) {
	tests := []struct {
		name  string
		model TextModel
		check func(t *testing.T, resp map[string]any)
	}{
		{
			name: "Mock mode",
			check: func(t *testing.T, resp map[string]any) {
				if resp["status"] != "mock_mode" || resp["error"] != "No API key found" {
					t.Errorf("unexpected body: %v", resp)
				}
			},
		},
		{
			name:  "Reachable",
			model: &fakeModel{text: "Hello, API is working!"},
			check: func(t *testing.T, resp map[string]any) {
				if resp["success"] != true || resp["message"] != "Hello, API is working!" {
					t.Errorf("unexpected body: %v", resp)
				}
				if resp["api_key_length"] != float64(len("test-key")) {
					t.Errorf("api_key_length = %v", resp["api_key_length"])
				}
			},
		},
		{
			name:  "API error",
			model: &fakeModel{err: errors.New("permission denied")},
			check: func(t *testing.T, resp map[string]any) {
				if resp["status"] != "api_error" || resp["error"] != "permission denied" {
					t.Errorf("unexpected body: %v", resp)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := doRequest(t, newTestRouter(tt.model), http.MethodGet, "/api/test-api", "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			tt.check(t, resp)
		})
	}
}

func TestComicPagesHandler(t *testing.T) {
	router := newTestRouter(nil)

	body, _ := json.Marshal(ComicPagesRequest{Comic: "## Page 1: A\nfirst\n## Page 2: B\nsecond\n## Page 3: C\nthird"})
	rec, resp := doRequest(t, router, http.MethodPost, "/api/comic-pages", string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if resp["total"] != float64(3) {
		t.Errorf("total = %v, want 3", resp["total"])
	}

	rec, resp = doRequest(t, router, http.MethodPost, "/api/comic-pages", `{"comic":"  "}`)
	if rec.Code != http.StatusBadRequest || resp["error"] != "Comic is required" {
		t.Errorf("blank comic: status %d body %v", rec.Code, resp)
	}
}

func TestHealthHandler(t *testing.T) {
	_, resp := doRequest(t, newTestRouter(nil), http.MethodGet, "/healthz", "")
	if resp["status"] != "ok" || resp["mode"] != "mock" {
		t.Errorf("unexpected body: %v", resp)
	}

	_, resp = doRequest(t, newTestRouter(&fakeModel{text: "x"}), http.MethodGet, "/healthz", "")
	if resp["mode"] != "model" {
		t.Errorf("mode = %v, want model", resp["mode"])
	}
}

func TestCorsMiddleware(t *testing.T) {
	handler := NewServer(NewGenerator(nil, 0), Config{AllowedOrigins: "https://whatif.example"}).SetupRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/generate-story", nil)
	req.Header.Set("Origin", "https://whatif.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://whatif.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/generate-story", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unlisted origin got Access-Control-Allow-Origin = %q", got)
	}
}
