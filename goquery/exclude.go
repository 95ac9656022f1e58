package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// bylineClassMarkers identify author byline and metadata blocks by class
// attribute substring.
var bylineClassMarkers = []string{
	"postMetaLockup",
	"graf--authorName",
	"authorLockup",
}

// uiTextPattern matches interaction and UI marker words. Case-sensitive
// on purpose: "Listen" and "Share" are UI chrome, "listen" and "share"
// are ordinary prose.
var uiTextPattern = regexp.MustCompile(`clap|follow|min read|sign up|bookmark|Listen|Share`)

// separatorOrNumber matches paragraphs that are a bare "--" separator or
// a lone integer (clap counts, section numbers).
var separatorOrNumber = regexp.MustCompile(`^\s*--\s*$|^\s*\d+\s*$`)

// defaultFooterPhrases mark the platform-community footer block. Tuned
// to the "In Plain English" publication; override with WithFooterPhrases.
var defaultFooterPhrases = []string{
	"In Plain English",
	"Thank you for being a part of",
}

// candidate carries the per-node facts the exclusion predicates need.
type candidate struct {
	sel       *goquery.Selection
	tag       string
	isHeading bool
	text      string // trimmed
}

func newCandidate(s *goquery.Selection) *candidate {
	tag := goquery.NodeName(s)
	return &candidate{
		sel:       s,
		tag:       tag,
		isHeading: isHeadingTag(tag),
		text:      strings.TrimSpace(s.Text()),
	}
}

func isHeadingTag(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// predicate reports whether a candidate node must be discarded.
type predicate func(c *candidate) bool

// predicates returns the exclusion chain in its documented order. The
// chain short-circuits on the first match; each predicate is independent
// so the heuristics stay testable in isolation.
func (e *Extractor) predicates(title string) []predicate {
	return []predicate{
		byBylineClass,
		byUIText,
		bySeparatorParagraph,
		byTitleHeading(title),
		byFooterPhrase(e.footerPhrases),
		byMiddleDotParagraph,
	}
}

// byBylineClass discards non-heading nodes whose class attribute carries
// a byline/metadata marker.
func byBylineClass(c *candidate) bool {
	if c.isHeading {
		return false
	}
	class, ok := c.sel.Attr("class")
	if !ok {
		return false
	}
	for _, marker := range bylineClassMarkers {
		if strings.Contains(class, marker) {
			return true
		}
	}
	return false
}

// byUIText discards non-heading nodes containing interaction/UI marker
// words in any of their text nodes.
func byUIText(c *candidate) bool {
	return !c.isHeading && anyTextNodeMatches(c.sel, uiTextPattern)
}

// bySeparatorParagraph discards paragraphs that are exactly a separator
// marker or a bare integer.
func bySeparatorParagraph(c *candidate) bool {
	return c.tag == "p" && separatorOrNumber.MatchString(c.text)
}

// byTitleHeading discards headings duplicating the extracted title; the
// title is rendered in the frontmatter, not the body.
func byTitleHeading(title string) predicate {
	return func(c *candidate) bool {
		return c.isHeading && c.text == title
	}
}

// byFooterPhrase discards non-heading nodes containing a community
// footer phrase.
func byFooterPhrase(phrases []string) predicate {
	if len(phrases) == 0 {
		return func(*candidate) bool { return false }
	}
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = regexp.QuoteMeta(p)
	}
	re := regexp.MustCompile(strings.Join(quoted, "|"))
	return func(c *candidate) bool {
		return !c.isHeading && anyTextNodeMatches(c.sel, re)
	}
}

// byMiddleDotParagraph discards paragraphs that are exactly a single
// middle-dot separator.
func byMiddleDotParagraph(c *candidate) bool {
	return c.tag == "p" && c.text == "·"
}
