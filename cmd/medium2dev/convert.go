package main

import (
	"context"
	"log/slog"

	"github.com/fwojciec/medium2dev"
)

// Converter runs the conversion pipeline for a single article URL:
// fetch, extract, localize images, render, clean, write.
type Converter struct {
	URL       string
	Fetcher   medium2dev.Fetcher
	Extractor medium2dev.Extractor
	Localizer medium2dev.Localizer
	Renderer  medium2dev.Renderer
	Cleaner   medium2dev.Cleaner
	Writer    medium2dev.DocumentWriter
	Logger    *slog.Logger
}

// Result describes a completed conversion.
type Result struct {
	Path            string // where the markdown file was written
	Title           string
	Content         string // full markdown including the frontmatter header
	SourceWordCount int
	ImageCount      int
}

// Convert executes the pipeline. Fetch and extraction failures abort the
// run; image download failures are handled inside the Localizer.
func (c *Converter) Convert(ctx context.Context) (*Result, error) {
	rawHTML, err := c.Fetcher.Fetch(ctx, c.URL)
	if err != nil {
		return nil, err
	}

	article, err := c.Extractor.Extract(rawHTML)
	if err != nil {
		return nil, err
	}
	c.Logger.Info("extracted article", "title", article.Title, "words", article.WordCount)

	images, err := c.Localizer.Localize(ctx, article, c.URL)
	if err != nil {
		return nil, err
	}
	c.Logger.Info("downloaded content images", "count", len(images))

	rendered, err := c.Renderer.Render(article)
	if err != nil {
		return nil, err
	}
	body := c.Cleaner.Clean(rendered)

	fm := &medium2dev.Frontmatter{
		Title:        article.Title,
		Date:         article.Date,
		Tags:         medium2dev.DeriveTags(c.URL),
		CanonicalURL: c.URL,
	}

	doc := &medium2dev.Document{
		Slug:    medium2dev.Slug(c.URL),
		Title:   article.Title,
		Content: fm.Render() + "\n" + body,
	}

	path, err := c.Writer.WriteDocument(ctx, doc)
	if err != nil {
		return nil, err
	}
	c.Logger.Info("conversion complete", "path", path, "hash", doc.ContentHash)

	return &Result{
		Path:            path,
		Title:           article.Title,
		Content:         doc.Content,
		SourceWordCount: article.WordCount,
		ImageCount:      len(images),
	}, nil
}
