package markdown

import (
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/fwojciec/medium2dev"
)

// Meta is the parsed form of the document's metadata header.
type Meta struct {
	Title        string   `yaml:"title"`
	Published    bool     `yaml:"published"`
	Date         string   `yaml:"date"`
	Tags         []string `yaml:"tags"`
	CanonicalURL string   `yaml:"canonical_url"`
	CoverImage   string   `yaml:"cover_image"`
}

// ParseFrontmatter splits a rendered document into its metadata header
// and markdown body. A document without a header is invalid.
func ParseFrontmatter(doc string) (*Meta, string, error) {
	var meta Meta
	body, err := frontmatter.MustParse(strings.NewReader(doc), &meta)
	if err != nil {
		return nil, "", medium2dev.Errorf(medium2dev.EINVALID, "parse frontmatter: %v", err)
	}
	return &meta, string(body), nil
}

// BodyWordCount counts the whitespace-separated words of the document
// body, excluding the metadata header. Documents without a header are
// counted whole.
func BodyWordCount(doc string) int {
	_, body, err := ParseFrontmatter(doc)
	if err != nil {
		body = doc
	}
	return len(strings.Fields(body))
}
