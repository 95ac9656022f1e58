// Package http provides the HTTP implementations of the medium2dev
// network interfaces: the article fetcher, the image downloader, and the
// DEV.to draft publisher.
package http

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fwojciec/medium2dev"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// browserHeaders mimic a regular browser session. Medium serves altered
// or blocked responses to requests without a browser identity.
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"Referer":                   "https://medium.com/",
	"DNT":                       "1",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
	"Cache-Control":             "max-age=0",
}

// scriptRedirect matches the client-side redirect Medium embeds in some
// responses instead of issuing an HTTP redirect.
var scriptRedirect = regexp.MustCompile(`window\.location\.href\s*=\s*"([^"]+)"`)

// Ensure Fetcher implements medium2dev.Fetcher at compile time.
var _ medium2dev.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves article HTML with a browser-like request identity.
// It follows at most one script-based redirect; any transport error or
// non-2xx status is returned to the caller, which treats it as fatal.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. When the response
// body contains a script-based redirect assignment, the target address is
// fetched once and its body returned instead.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, err := f.get(ctx, url)
	if err != nil {
		return "", err
	}

	if strings.Contains(body, "window.location.href") {
		if m := scriptRedirect.FindStringSubmatch(body); m != nil {
			body, err = f.get(ctx, m[1])
			if err != nil {
				return "", err
			}
		}
	}

	return body, nil
}

func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", medium2dev.Errorf(medium2dev.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
