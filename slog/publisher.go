package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/medium2dev"
)

// Ensure LoggingPublisher implements medium2dev.Publisher at compile time.
var _ medium2dev.Publisher = (*LoggingPublisher)(nil)

// LoggingPublisher wraps a Publisher with logging.
type LoggingPublisher struct {
	next   medium2dev.Publisher
	logger *slog.Logger
}

// NewLoggingPublisher creates a new LoggingPublisher.
func NewLoggingPublisher(next medium2dev.Publisher, logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{next: next, logger: logger}
}

// Publish delegates to the wrapped publisher and logs the operation.
func (p *LoggingPublisher) Publish(ctx context.Context, title, bodyMarkdown string) (err error) {
	defer func(begin time.Time) {
		p.logger.Info("publish draft",
			"title", title,
			"bytes", len(bodyMarkdown),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Publish(ctx, title, bodyMarkdown)
}
