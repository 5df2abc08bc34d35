package handlers

import (
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/preston-bernstein/match-thread-service/internal/http/middleware"
	"github.com/preston-bernstein/match-thread-service/internal/http/requestutil"
	"github.com/preston-bernstein/match-thread-service/internal/logging"
)

const contentTypeMarkdown = "text/markdown; charset=utf-8"

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeMarkdown(w http.ResponseWriter, body string, logger *slog.Logger) {
	w.Header().Set("Content-Type", contentTypeMarkdown)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		logging.Warn(logger, "failed to write response", logging.FieldError, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
