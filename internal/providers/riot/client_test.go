package riot

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/match-thread-service/internal/domain"
	"github.com/preston-bernstein/match-thread-service/internal/domain/matches"
	"github.com/preston-bernstein/match-thread-service/internal/providers"
	"github.com/preston-bernstein/match-thread-service/internal/providers/fixture"
)

const gameURL = "https://acs.leagueoflegends.com/v1/stats/game/ESPORTSTMNT01/1001?gameHash=abc"

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func fileResponse(t *testing.T, path string) *http.Response {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(string(data))),
	}
}

func newTestClient(proxy string, rt roundTripperFunc) *Client {
	return NewClient(Config{CORSProxy: proxy, HTTPClient: &http.Client{Transport: rt}})
}

func TestFetchMatchPrefixesProxyAndMaps(t *testing.T) {
	var gotURL, gotMarker string
	c := newTestClient(DefaultCORSProxy, func(req *http.Request) (*http.Response, error) {
		gotURL = req.URL.String()
		gotMarker = req.Header.Get("X-Requested-With")
		return fileResponse(t, "testdata/match.json"), nil
	})

	m, err := c.FetchMatch(context.Background(), gameURL)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if gotURL != DefaultCORSProxy+gameURL {
		t.Fatalf("expected proxied url, got %s", gotURL)
	}
	if gotMarker == "" {
		t.Fatalf("expected X-Requested-With header when proxying")
	}
	if !reflect.DeepEqual(m, fixture.Match()) {
		t.Fatalf("mapped match differs from fixture:\n got %+v\nwant %+v", m, fixture.Match())
	}
}

func TestFetchMatchWithoutProxy(t *testing.T) {
	var gotURL string
	c := newTestClient("", func(req *http.Request) (*http.Response, error) {
		gotURL = req.URL.String()
		if req.Header.Get("X-Requested-With") != "" {
			t.Fatalf("did not expect proxy marker without a proxy")
		}
		return fileResponse(t, "testdata/match.json"), nil
	})

	if _, err := c.FetchMatch(context.Background(), gameURL); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if gotURL != gameURL {
		t.Fatalf("expected direct url, got %s", gotURL)
	}
}

func TestFetchTimelineMapsEvents(t *testing.T) {
	c := newTestClient("", func(req *http.Request) (*http.Response, error) {
		return fileResponse(t, "testdata/timeline.json"), nil
	})

	tl, err := c.FetchTimeline(context.Background(), gameURL)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	got := tl.Events()
	want := fixture.Timeline().Events()
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestFetchMatchRateLimited(t *testing.T) {
	c := newTestClient("", func(req *http.Request) (*http.Response, error) {
		resp := &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Header:     make(http.Header),
			Body:       io.NopCloser(strings.NewReader("slow down")),
		}
		resp.Header.Set("Retry-After", "7")
		return resp, nil
	})

	_, err := c.FetchMatch(context.Background(), gameURL)
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rl.RetryAfter != 7*time.Second || rl.Provider != "riot" {
		t.Fatalf("unexpected rate limit error %+v", rl)
	}
}

func TestFetchMatchNon200IsNetworkError(t *testing.T) {
	c := newTestClient("", func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Header:     make(http.Header),
			Body:       io.NopCloser(strings.NewReader(" missing \n")),
		}, nil
	})

	_, err := c.FetchMatch(context.Background(), gameURL)
	netErr, ok := providers.AsNetworkError(err)
	if !ok {
		t.Fatalf("expected network error, got %v", err)
	}
	if netErr.StatusCode != http.StatusNotFound || netErr.Body != "missing" || netErr.URL != gameURL {
		t.Fatalf("unexpected network error %+v", netErr)
	}
}

func TestFetchTimelineTransportError(t *testing.T) {
	boom := errors.New("dial failed")
	c := newTestClient("", func(req *http.Request) (*http.Response, error) {
		return nil, boom
	})

	_, err := c.FetchTimeline(context.Background(), gameURL)
	if _, ok := providers.AsNetworkError(err); !ok {
		t.Fatalf("expected network error, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected transport error to be wrapped, got %v", err)
	}
}

func TestFetchMatchUndecodableBody(t *testing.T) {
	c := newTestClient("", func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     make(http.Header),
			Body:       io.NopCloser(strings.NewReader("<html>")),
		}, nil
	})

	if _, err := c.FetchMatch(context.Background(), gameURL); !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("expected malformed record, got %v", err)
	}
}

func TestDecodeTimelineRejectsGarbage(t *testing.T) {
	if _, err := DecodeTimeline(strings.NewReader("{")); !errors.Is(err, domain.ErrMalformedRecord) {
		t.Fatalf("expected malformed record, got %v", err)
	}
	tl, err := DecodeTimeline(strings.NewReader(`{"frames":[]}`))
	if err != nil || len(tl.Events()) != 0 {
		t.Fatalf("expected empty timeline, got %+v err %v", tl, err)
	}
}

func TestDecodeMatchEmptyStatsAreZero(t *testing.T) {
	data, err := os.ReadFile("testdata/match.json")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	stripped := strings.Replace(string(data), `"goldEarned": 12000`, `"goldEarnedX": 12000`, 1)
	m, err := DecodeMatch(strings.NewReader(stripped))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := m.Participants[0].Stats; got != (matches.Stats{Kills: 3, Deaths: 1, Assists: 2}) {
		t.Fatalf("expected missing gold to decode as zero, got %+v", got)
	}
}

func TestFetchRawReturnsBody(t *testing.T) {
	c := newTestClient("", func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     make(http.Header),
			Body:       io.NopCloser(strings.NewReader(`{"gameId":1}`)),
		}, nil
	})
	data, err := c.FetchRaw(context.Background(), gameURL)
	if err != nil || string(data) != `{"gameId":1}` {
		t.Fatalf("unexpected raw body %q err %v", data, err)
	}
}
