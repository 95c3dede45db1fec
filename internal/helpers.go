package internal

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// LogRequest logs the request details
func LogRequest(endpoint, message string) {
	slog.Info("[REQUEST] "+endpoint, slog.String("message", message))
}

// LogResponse logs the response details
func LogResponse(endpoint, message string, err error) {
	if err != nil {
		slog.Error("[RESPONSE] "+endpoint, slog.String("message", message), slog.String("error", err.Error()))
		return
	}
	slog.Info("[RESPONSE] "+endpoint, slog.String("message", message))
}

// EncodeJSON writes v as a JSON response with the given status code
func EncodeJSON(w http.ResponseWriter, v any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("[RESPONSE] Failed to encode response", slog.String("error", err.Error()))
	}
}

// EncodeError writes a JSON error response
func EncodeError(w http.ResponseWriter, message string, statusCode int) {
	EncodeJSON(w, struct {
		Error string `json:"error"`
	}{Error: message}, statusCode)
}

// truncate shortens s for log lines
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
