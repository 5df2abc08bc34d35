package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/match-thread-service/internal/testutil"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	logger, _ := testutil.NewBufferLogger()

	req.Header.Set("X-Request-ID", "abc123")

	rr := testutil.ServeRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", logger)
	}), req)

	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "boom" || body["requestId"] != "abc123" {
		t.Fatalf("unexpected error body %v", body)
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if buf.Len() == 0 {
		t.Fatalf("expected logger to record encode error")
	}
}

func TestWriteErrorWithoutRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	writeError(rr, req, http.StatusTeapot, "boom", nil)
	if bytes.Contains(rr.Body.Bytes(), []byte("requestId")) {
		t.Fatalf("expected no requestId without one on the request, got %s", rr.Body.String())
	}
}

func TestWriteMarkdownSetsContentType(t *testing.T) {
	rr := httptest.NewRecorder()
	writeMarkdown(rr, "|a|b|", nil)
	if rr.Header().Get("Content-Type") != contentTypeMarkdown || rr.Body.String() != "|a|b|" {
		t.Fatalf("unexpected markdown response %q %q", rr.Header().Get("Content-Type"), rr.Body.String())
	}
}
