package mock

import (
	"context"

	"github.com/fwojciec/medium2dev"
)

var _ medium2dev.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of medium2dev.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *medium2dev.Document) (string, error)
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *medium2dev.Document) (string, error) {
	return w.WriteDocumentFn(ctx, doc)
}
