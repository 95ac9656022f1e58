// Package goquery implements content extraction and media localization
// over the parsed HTML document tree.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/medium2dev"
)

// PlaceholderTitle is used when the document has no top-level heading.
const PlaceholderTitle = "Untitled Article"

// contentRootSelectors are tried in priority order to locate the element
// holding the article's real body.
var contentRootSelectors = []string{
	"article",
	"div.section-content",
	"div.postArticle-content",
}

// candidateSelector is the allow-list of node kinds considered for the
// article content.
const candidateSelector = "p, h1, h2, h3, h4, h5, h6, pre, figure, img, blockquote, ul, ol, div"

// Ensure Extractor implements medium2dev.Extractor at compile time.
var _ medium2dev.Extractor = (*Extractor)(nil)

// Extractor isolates the article title, publication date, and body
// content from raw HTML using structural selectors and an ordered chain
// of exclusion heuristics.
type Extractor struct {
	footerPhrases []string
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithFooterPhrases overrides the platform-community footer phrases that
// cause a node to be discarded. Defaults to the Medium "In Plain English"
// community markers.
func WithFooterPhrases(phrases ...string) ExtractorOption {
	return func(e *Extractor) {
		e.footerPhrases = phrases
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		footerPhrases: defaultFooterPhrases,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract produces an Article from raw HTML. Returns ENOTFOUND when no
// content root selector matches.
func (e *Extractor) Extract(rawHTML string) (*medium2dev.Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, medium2dev.Errorf(medium2dev.EINVALID, "failed to parse HTML: %v", err)
	}

	title := PlaceholderTitle
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		title = strings.TrimSpace(h1.Text())
	}

	var date string
	if content, ok := doc.Find(`meta[property="article:published_time"]`).Attr("content"); ok {
		date = strings.SplitN(content, "T", 2)[0]
	}

	var root *goquery.Selection
	for _, sel := range contentRootSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			root = s
			break
		}
	}
	if root == nil {
		return nil, medium2dev.Errorf(medium2dev.ENOTFOUND, "could not find article content")
	}

	preds := e.predicates(title)
	article := &medium2dev.Article{Title: title, Date: date}

	root.Find(candidateSelector).Each(func(_ int, s *goquery.Selection) {
		c := newCandidate(s)
		for _, pred := range preds {
			if pred(c) {
				return
			}
		}
		// Append-moves: detaching here means a surviving node nested in
		// an earlier survivor ends up as its own entry, not duplicated.
		detach(s)
		article.Content = append(article.Content, s.Nodes...)
	})

	article.WordCount = wordCount(article)

	return article, nil
}

// wordCount joins the surviving nodes' plain text with spaces and counts
// whitespace-separated words. Recorded for reporting only.
func wordCount(article *medium2dev.Article) int {
	texts := make([]string, 0, len(article.Content))
	for _, n := range article.Content {
		texts = append(texts, nodeText(n))
	}
	return len(strings.Fields(strings.Join(texts, " ")))
}

func detach(s *goquery.Selection) {
	for _, n := range s.Nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
}
