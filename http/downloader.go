package http

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/medium2dev"
	"golang.org/x/time/rate"
)

// DefaultDownloadTimeout is the default timeout for a single image
// download. Images can be large; allow more than a page fetch.
const DefaultDownloadTimeout = 30 * time.Second

// Ensure Downloader implements medium2dev.Downloader at compile time.
var _ medium2dev.Downloader = (*Downloader)(nil)

// Downloader streams remote assets to local files. Downloads happen one
// at a time, in document order; there is no retry.
type Downloader struct {
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
}

// DownloaderOption configures a Downloader.
type DownloaderOption func(*Downloader)

// WithDownloadTimeout sets the per-download timeout.
// Defaults to DefaultDownloadTimeout (30s) if not specified.
func WithDownloadTimeout(d time.Duration) DownloaderOption {
	return func(dl *Downloader) {
		dl.timeout = d
	}
}

// WithRateLimit throttles downloads to rps requests per second with a
// burst of 1. Zero or negative rps disables throttling.
func WithRateLimit(rps float64) DownloaderOption {
	return func(dl *Downloader) {
		if rps > 0 {
			dl.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewDownloader creates a new Downloader.
func NewDownloader(opts ...DownloaderOption) *Downloader {
	dl := &Downloader{
		timeout: DefaultDownloadTimeout,
	}
	for _, opt := range opts {
		opt(dl)
	}

	dl.client = &http.Client{
		Timeout: dl.timeout,
	}

	return dl
}

// Download fetches url and writes the body to destPath, creating parent
// directories as needed. The write is whole-operation; a failure mid-way
// leaves a partial file behind.
func (dl *Downloader) Download(ctx context.Context, url, destPath string) error {
	if dl.limiter != nil {
		if err := dl.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", browserHeaders["User-Agent"])
	req.Header.Set("Referer", browserHeaders["Referer"])

	resp, err := dl.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return medium2dev.Errorf(medium2dev.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return err
	}

	f, err := os.Create(destPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
