package mock

import (
	"context"

	"github.com/fwojciec/medium2dev"
)

var _ medium2dev.Localizer = (*Localizer)(nil)

// Localizer is a mock implementation of medium2dev.Localizer.
type Localizer struct {
	LocalizeFn func(ctx context.Context, article *medium2dev.Article, articleURL string) ([]medium2dev.DownloadedImage, error)
}

func (l *Localizer) Localize(ctx context.Context, article *medium2dev.Article, articleURL string) ([]medium2dev.DownloadedImage, error) {
	return l.LocalizeFn(ctx, article, articleURL)
}
