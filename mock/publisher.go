package mock

import (
	"context"

	"github.com/fwojciec/medium2dev"
)

var _ medium2dev.Publisher = (*Publisher)(nil)

// Publisher is a mock implementation of medium2dev.Publisher.
type Publisher struct {
	PublishFn func(ctx context.Context, title, bodyMarkdown string) error
}

func (p *Publisher) Publish(ctx context.Context, title, bodyMarkdown string) error {
	return p.PublishFn(ctx, title, bodyMarkdown)
}
