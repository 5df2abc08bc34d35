package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"

	"github.com/preston-bernstein/match-thread-service/internal/app/threads"
	"github.com/preston-bernstein/match-thread-service/internal/providers"
)

// Upstream errors carry fetched URLs and response bodies. They are logged by the
// thread service and replaced by this message in responses.
const msgUpstreamFailed = "upstream fetch failed"

// ThreadRenderer is the use case behind GET /threads.
type ThreadRenderer interface {
	Render(ctx context.Context, req threads.Request) (threads.Thread, error)
}

// Handler wires HTTP routes to the thread service.
type Handler struct {
	svc     ThreadRenderer
	logger  *slog.Logger
	readyFn func() error
}

// NewHandler constructs a Handler. readyFn may be nil, meaning always ready.
func NewHandler(svc ThreadRenderer, logger *slog.Logger, readyFn func() error) *Handler {
	return &Handler{
		svc:     svc,
		logger:  logger,
		readyFn: readyFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !allowGet(w, r, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the configured provider can serve renders.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !allowGet(w, r, h.logger) {
		return
	}
	if h.readyFn != nil {
		if err := h.readyFn(); err != nil {
			writeError(w, r, nethttp.StatusServiceUnavailable, err.Error(), h.logger)
			return
		}
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Thread renders the post-match thread for the history, game and timeline query parameters.
func (h *Handler) Thread(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !allowGet(w, r, h.logger) {
		return
	}
	q := r.URL.Query()
	thread, err := h.svc.Render(r.Context(), threads.Request{
		HistoryURL:  q.Get("history"),
		GameURL:     q.Get("game"),
		TimelineURL: q.Get("timeline"),
	})
	if err != nil {
		h.writeRenderError(w, r, err)
		return
	}
	writeMarkdown(w, thread.Markdown, loggerFromContext(r, h.logger))
}

func (h *Handler) writeRenderError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	if errors.Is(err, threads.ErrInvalidRequest) {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if rl, ok := providers.AsRateLimitError(err); ok {
		if secs := int(rl.RetryAfter.Seconds()); secs > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(secs))
		}
		writeError(w, r, nethttp.StatusTooManyRequests, "upstream rate limited", h.logger)
		return
	}
	writeError(w, r, nethttp.StatusBadGateway, msgUpstreamFailed, h.logger)
}

func allowGet(w nethttp.ResponseWriter, r *nethttp.Request, logger *slog.Logger) bool {
	if r.Method == nethttp.MethodGet || r.Method == nethttp.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}
