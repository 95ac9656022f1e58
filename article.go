package medium2dev

import (
	"context"

	"golang.org/x/net/html"
)

// Article is the extracted, cleaned logical document derived from a
// fetched page. Content holds the surviving markup nodes in document
// order; the nodes are detached from the source document during
// extraction and are owned by the Article for the rest of the run.
// The Media Localizer mutates them in place; the Article is otherwise
// immutable after extraction.
type Article struct {
	Title     string
	Date      string // ISO date (YYYY-MM-DD) or empty
	Content   []*html.Node
	WordCount int
}

// DownloadedImage describes one successfully localized image.
type DownloadedImage struct {
	SourceURL string // remote address the bytes were fetched from
	Filename  string // sequential local filename, e.g. image_1.jpg
	RelPath   string // relative path written into the content tree
}

// Fetcher retrieves the raw HTML of an article page.
// Implementations hide request identity and redirect handling.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Extractor isolates an Article from raw HTML.
// Returns ENOTFOUND if no content root can be located.
type Extractor interface {
	Extract(rawHTML string) (*Article, error)
}

// Localizer downloads images referenced by the article content and
// rewrites their references to local relative paths in place. A failed
// download is logged and leaves the reference untouched; only the
// successfully localized images are returned.
type Localizer interface {
	Localize(ctx context.Context, article *Article, articleURL string) ([]DownloadedImage, error)
}

// Renderer converts the article content tree to markdown text.
type Renderer interface {
	Render(article *Article) (string, error)
}

// Cleaner applies the ordered textual cleanup passes to rendered
// markdown. Cleaning already-clean text is a no-op.
type Cleaner interface {
	Clean(markdown string) string
}

// Downloader streams a remote asset to a local file, creating parent
// directories as needed.
type Downloader interface {
	Download(ctx context.Context, url, destPath string) error
}

// Publisher submits a finished document as an unpublished draft to a
// remote content-creation endpoint.
type Publisher interface {
	Publish(ctx context.Context, title, bodyMarkdown string) error
}
