package ddragon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/preston-bernstein/match-thread-service/internal/domain"
	"github.com/preston-bernstein/match-thread-service/internal/domain/champions"
	"github.com/preston-bernstein/match-thread-service/internal/providers"
)

// Config controls how the client reaches Data Dragon.
type Config struct {
	BaseURL    string
	Locale     string
	HTTPClient *http.Client
}

// Client loads the champion directory for the newest Data Dragon version.
type Client struct {
	baseURL    string
	locale     string
	httpClient httpDoer
}

// NewClient constructs a Data Dragon client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		locale:     resolveLocale(cfg.Locale),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchChampions resolves the latest version and loads its champion list.
func (c *Client) FetchChampions(ctx context.Context) (champions.Directory, error) {
	version, err := c.latestVersion(ctx)
	if err != nil {
		return champions.Directory{}, err
	}

	body, err := c.get(ctx, c.championURL(version))
	if err != nil {
		return champions.Directory{}, err
	}
	defer body.Close()
	return DecodeChampions(version, body)
}

// FetchRawChampions returns the undecoded champion.json for the latest version.
// The file embeds its version, so DecodeChampions can read it back without one.
func (c *Client) FetchRawChampions(ctx context.Context) ([]byte, error) {
	version, err := c.latestVersion(ctx)
	if err != nil {
		return nil, err
	}
	url := c.championURL(version)
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

func (c *Client) championURL(version string) string {
	return fmt.Sprintf("%s/cdn/%s/data/%s/champion.json", c.baseURL, version, c.locale)
}

func (c *Client) latestVersion(ctx context.Context) (string, error) {
	body, err := c.get(ctx, c.baseURL+"/api/versions.json")
	if err != nil {
		return "", err
	}
	defer body.Close()

	var versions []string
	if err := json.NewDecoder(body).Decode(&versions); err != nil {
		return "", fmt.Errorf("%w: decode versions: %v", domain.ErrMalformedRecord, err)
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("%w: empty version list", domain.ErrMalformedRecord)
	}
	return versions[0], nil
}

// DecodeChampions reads a champion.json body into a directory. Entries whose key is not
// an integer are skipped. An empty version falls back to the one embedded in the file.
func DecodeChampions(version string, r io.Reader) (champions.Directory, error) {
	var file championFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return champions.Directory{}, fmt.Errorf("%w: decode champions: %v", domain.ErrMalformedRecord, err)
	}
	if version == "" {
		version = file.Version
	}

	entries := make([]champions.Champion, 0, len(file.Data))
	for id, champ := range file.Data {
		key, err := strconv.Atoi(champ.Key)
		if err != nil {
			continue
		}
		if champ.ID != "" {
			id = champ.ID
		}
		entries = append(entries, champions.Champion{Key: key, ID: id, Name: champ.Name})
	}
	return champions.NewDirectory(version, entries), nil
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &providers.NetworkError{Provider: providerName, URL: url, Err: err}
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
			Message:    "ddragon rate limited",
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
