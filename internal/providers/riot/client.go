package riot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/preston-bernstein/match-thread-service/internal/domain"
	"github.com/preston-bernstein/match-thread-service/internal/domain/matches"
	"github.com/preston-bernstein/match-thread-service/internal/providers"
)

// Config controls how the client reaches match-history endpoints.
// An empty CORSProxy fetches URLs directly.
type Config struct {
	CORSProxy  string
	HTTPClient *http.Client
}

// Client fetches match records and timelines by URL and maps them to domain models.
type Client struct {
	proxy      string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		proxy:      normalizeProxy(cfg.CORSProxy),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchMatch retrieves and maps the match record at url.
func (c *Client) FetchMatch(ctx context.Context, url string) (matches.Match, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return matches.Match{}, err
	}
	defer body.Close()
	return DecodeMatch(body)
}

// FetchTimeline retrieves and maps the timeline at url.
func (c *Client) FetchTimeline(ctx context.Context, url string) (matches.Timeline, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return matches.Timeline{}, err
	}
	defer body.Close()
	return DecodeTimeline(body)
}

// FetchRaw returns the undecoded payload at url, for recording snapshots.
func (c *Client) FetchRaw(ctx context.Context, url string) ([]byte, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, &providers.NetworkError{Provider: providerName, URL: url, Err: err}
	}
	return data, nil
}

// DecodeMatch reads a raw match payload and maps it to the domain model.
func DecodeMatch(r io.Reader) (matches.Match, error) {
	var raw matchPayload
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return matches.Match{}, fmt.Errorf("%w: decode match: %v", domain.ErrMalformedRecord, err)
	}
	return mapMatch(raw)
}

// DecodeTimeline reads a raw timeline payload and maps it to the domain model.
func DecodeTimeline(r io.Reader) (matches.Timeline, error) {
	var raw timelinePayload
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return matches.Timeline{}, fmt.Errorf("%w: decode timeline: %v", domain.ErrMalformedRecord, err)
	}
	return mapTimeline(raw), nil
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.proxy+url, nil)
	if err != nil {
		return nil, &providers.NetworkError{Provider: providerName, URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.proxy != "" {
		// cors-anywhere rejects requests without an XHR marker or Origin.
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.NetworkError{Provider: providerName, URL: url, Err: err}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		defer resp.Body.Close()
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: providers.ParseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-Rate-Limit-Count"),
			Message:    "riot rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, &providers.NetworkError{
			Provider:   providerName,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}
	return resp.Body, nil
}
