package mock

import "github.com/fwojciec/medium2dev"

var _ medium2dev.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of medium2dev.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML string) (*medium2dev.Article, error)
}

func (e *Extractor) Extract(rawHTML string) (*medium2dev.Article, error) {
	return e.ExtractFn(rawHTML)
}
