// Package htmltomarkdown renders the extracted content tree to markdown
// using the html-to-markdown converter.
package htmltomarkdown

import (
	"bytes"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/medium2dev"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// removeSelectors are platform UI and interactive elements stripped from
// the tree before rendering.
var removeSelectors = []string{
	".postMetaLockup, .graf--pullquote, .section-divider, .js-actionMultirecommendCount, .js-actionRecommend",
	"button, .buttonSet, .js-postMetaLockup",
}

// Ensure Renderer implements medium2dev.Renderer at compile time.
var _ medium2dev.Renderer = (*Renderer)(nil)

// Renderer converts article content to markdown. Structural touch-ups
// (code block highlighting, figure captions, UI element removal) happen
// on the tree before conversion; the textual cleanup passes that follow
// rendering live in the markdown package.
type Renderer struct {
	conv *converter.Converter
}

// NewRenderer creates a new Renderer. The converter preserves links,
// images, emphasis, and tables, and never wraps lines.
func NewRenderer() *Renderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Renderer{conv: conv}
}

// Render transforms the article's content tree into markdown text. The
// content nodes are reparented into a working container; Render is the
// terminal consumer of the tree.
func (r *Renderer) Render(article *medium2dev.Article) (string, error) {
	container := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	for _, n := range article.Content {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		container.AppendChild(n)
	}

	doc := goquery.NewDocumentFromNode(container)

	// Mark code blocks so fenced output survives downstream cleanup.
	doc.Find("pre").Each(func(_ int, pre *goquery.Selection) {
		if pre.Find("code").Length() > 0 {
			pre.SetAttr("class", "highlight")
		}
	})

	// Figure captions become the image's accessible text.
	doc.Find("figure").Each(func(_ int, fig *goquery.Selection) {
		caption := fig.Find("figcaption")
		if caption.Length() == 0 {
			return
		}
		if img := fig.Find("img"); img.Length() > 0 {
			img.SetAttr("alt", strings.TrimSpace(caption.Text()))
		}
	})

	for _, sel := range removeSelectors {
		doc.Find(sel).Remove()
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, container); err != nil {
		return "", err
	}

	return r.conv.ConvertString(buf.String())
}
