package medium2dev

import "context"

// Document is the final conversion artifact: the frontmatter header, a
// blank line, and the rendered markdown body as a single string.
type Document struct {
	Slug        string // output filename stem, from the article URL
	Title       string
	Content     string // full markdown including the frontmatter header
	ContentHash string // set by the writer on a successful write
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Slug == "" {
		return Errorf(EINVALID, "document slug required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// DocumentWriter persists a document and returns the path it was
// written to.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, doc *Document) (string, error)
}
