// Package mock provides function-field mock implementations of the
// medium2dev interfaces for use in tests.
package mock

import (
	"context"

	"github.com/fwojciec/medium2dev"
)

var _ medium2dev.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of medium2dev.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
