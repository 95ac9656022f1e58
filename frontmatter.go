package medium2dev

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
)

// DefaultTags are always present in the frontmatter tag list. A tag
// derived from the article URL path, when one exists, is prepended.
var DefaultTags = []string{"aws", "tutorial", "programming"}

// excludedTagWords are path segments that carry no topical meaning and
// never become tags.
var excludedTagWords = map[string]bool{
	"medium": true,
	"blog":   true,
	"posts":  true,
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Frontmatter is the DEV.to metadata header prefixed to the rendered
// markdown body. Published is always false: the tool only creates drafts.
type Frontmatter struct {
	Title        string
	Date         string // ISO date or empty
	Tags         []string
	CanonicalURL string
	CoverImage   string
}

// Render produces the header block in its fixed key order, terminated by
// the closing fence and a newline. The caller appends a blank line and
// the body.
func (f *Frontmatter) Render() string {
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, _ := json.Marshal(tags)

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: ")
	b.WriteString(f.Title)
	b.WriteString("\npublished: false\n")
	b.WriteString("date: \"")
	b.WriteString(f.Date)
	b.WriteString("\"\ntags: ")
	b.Write(tagsJSON)
	b.WriteString("\ncanonical_url: \"")
	b.WriteString(f.CanonicalURL)
	b.WriteString("\"\ncover_image: ")
	b.WriteString(f.CoverImage)
	b.WriteString("\n---\n")
	return b.String()
}

// DeriveTags builds the tag list for an article URL: the default tags,
// with the first path segment prepended when the path has more than one
// segment and the segment survives hyphen stripping, the excluded-word
// check, and alphanumeric filtering.
func DeriveTags(articleURL string) []string {
	tags := make([]string, len(DefaultTags))
	copy(tags, DefaultTags)

	u, err := url.Parse(articleURL)
	if err != nil {
		return tags
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) <= 1 {
		return tags
	}

	// The first segment is usually a publication name or topic.
	tag := strings.ReplaceAll(segments[0], "-", "")
	if tag == "" || excludedTagWords[tag] {
		return tags
	}
	tag = nonAlphanumeric.ReplaceAllString(tag, "")
	if tag == "" {
		return tags
	}

	return append([]string{tag}, tags...)
}

// Slug returns the output filename stem for an article URL: the last
// non-empty path segment, or "article" when the path has none.
func Slug(articleURL string) string {
	u, err := url.Parse(articleURL)
	if err != nil {
		return "article"
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return "article"
}
