package record

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mids/internal/model"
)

// DefaultGBIFBaseURL is the GBIF API root used for occurrence lookups.
const DefaultGBIFBaseURL = "https://api.gbif.org/v1"

// DefaultTimeout bounds a single record request.
const DefaultTimeout = 30 * time.Second

// maxBodySize caps how much of a response body is read.
const maxBodySize = 10 << 20

// ErrNotFound is returned when the server has no record at the location.
var ErrNotFound = errors.New("record not found")

// HTTPClient is an interface matching the Do method of *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches records over HTTP.
type Client struct {
	http    HTTPClient
	gbifURL string
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c HTTPClient) Option {
	return func(cl *Client) { cl.http = c }
}

// WithGBIFBaseURL points GBIF lookups at another API root.
func WithGBIFBaseURL(base string) Option {
	return func(cl *Client) { cl.gbifURL = strings.TrimRight(base, "/") }
}

// WithLogger sets the logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) { cl.logger = l }
}

// NewClient creates a Client with a DefaultTimeout http.Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: DefaultTimeout},
		gbifURL: DefaultGBIFBaseURL,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchURL downloads and decodes the JSON record at rawURL.
func (c *Client) FetchURL(ctx context.Context, rawURL string) (model.Record, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid record URL %q: %w", rawURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid record URL %q: unsupported scheme %q", rawURL, u.Scheme)
	}

	return c.get(ctx, u.String())
}

// FetchGBIF retrieves the GBIF occurrence with the given ID.
func (c *Client) FetchGBIF(ctx context.Context, id int64) (model.Record, error) {
	rec, err := c.get(ctx, c.gbifURL+"/occurrence/"+strconv.FormatInt(id, 10))
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("no GBIF occurrence with ID %d: %w", id, ErrNotFound)
	}

	return rec, err
}

func (c *Client) get(ctx context.Context, target string) (model.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", target, err)
	}

	req.Header.Set("Accept", "application/json")

	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("fetched record",
		slog.String("url", target),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", target, ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", target, resp.Status)
	}

	rec, err := Decode(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", target, err)
	}

	return rec, nil
}
