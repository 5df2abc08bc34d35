package http

import (
	"net/http"
	"testing"

	"github.com/preston-bernstein/match-thread-service/internal/app/threads"
	"github.com/preston-bernstein/match-thread-service/internal/http/handlers"
	"github.com/preston-bernstein/match-thread-service/internal/providers/fixture"
	"github.com/preston-bernstein/match-thread-service/internal/report"
	"github.com/preston-bernstein/match-thread-service/internal/testutil"
)

func newTestRouter() http.Handler {
	svc := threads.NewService(report.NewAssembler(fixture.New()), nil, nil)
	return NewRouter(handlers.NewHandler(svc, nil, nil))
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		path string
		want int
	}{
		{path: "/health", want: http.StatusOK},
		{path: "/ready", want: http.StatusOK},
		{path: "/threads", want: http.StatusBadRequest},
		{path: testutil.ThreadsPath(testutil.SampleHistoryURL, testutil.SampleGameURL, testutil.SampleTimelineURL), want: http.StatusOK},
	}

	for _, tc := range cases {
		rr := testutil.Serve(router, http.MethodGet, tc.path, nil)
		if rr.Code != tc.want {
			t.Fatalf("route %s expected status %d, got %d", tc.path, tc.want, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	rr := testutil.Serve(newTestRouter(), http.MethodGet, "/matches/latest", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}
