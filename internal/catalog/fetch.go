package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	// fetchTimeout bounds a single catalog request.
	fetchTimeout = time.Minute
	// MaxCatalogSize caps the size of a downloaded catalog.
	MaxCatalogSize = 32 << 20
)

// Fetcher downloads catalogs served over HTTP(S), retrying transient failures.
type Fetcher struct {
	client  *retryablehttp.Client
	maxSize int64
}

// NewFetcher returns a Fetcher retrying up to retries times. Retry attempts
// are logged to logger at debug level; nil disables logging.
func NewFetcher(logger *slog.Logger, retries int) *Fetcher {
	c := retryablehttp.NewClient()
	c.RetryMax = retries
	c.RetryWaitMin = 100 * time.Millisecond
	c.RetryWaitMax = 2 * time.Second
	c.HTTPClient.Timeout = fetchTimeout
	c.Logger = nil
	if logger != nil {
		c.Logger = logger
	}
	return &Fetcher{client: c, maxSize: MaxCatalogSize}
}

// Fetch downloads and parses the catalog at rawURL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]Test, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rawURL, err)
	}
	if int64(len(data)) > f.maxSize {
		return nil, fmt.Errorf("fetch %s: catalog exceeds %d bytes", rawURL, f.maxSize)
	}
	tests, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", rawURL, err)
	}
	return tests, nil
}

// IsRemote reports whether source is an http or https URL.
func IsRemote(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

// Open loads a catalog from a local path or, through f, from a URL.
// A nil f uses NewFetcher(nil, 3).
func Open(ctx context.Context, source string, f *Fetcher) ([]Test, error) {
	if !IsRemote(source) {
		return Load(source)
	}
	if f == nil {
		f = NewFetcher(nil, 3)
	}
	return f.Fetch(ctx, source)
}
