package mock

import (
	"context"

	"github.com/fwojciec/medium2dev"
)

var _ medium2dev.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of medium2dev.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url, destPath string) error
}

func (d *Downloader) Download(ctx context.Context, url, destPath string) error {
	return d.DownloadFn(ctx, url, destPath)
}
