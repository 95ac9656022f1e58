package mock

import "github.com/fwojciec/medium2dev"

var _ medium2dev.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of medium2dev.Renderer.
type Renderer struct {
	RenderFn func(article *medium2dev.Article) (string, error)
}

func (r *Renderer) Render(article *medium2dev.Article) (string, error) {
	return r.RenderFn(article)
}

var _ medium2dev.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of medium2dev.Cleaner.
type Cleaner struct {
	CleanFn func(markdown string) string
}

func (c *Cleaner) Clean(markdown string) string {
	return c.CleanFn(markdown)
}
