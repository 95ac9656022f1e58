// Package fs writes conversion output to the local filesystem.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/medium2dev"
)

// Ensure Writer implements medium2dev.DocumentWriter at compile time.
var _ medium2dev.DocumentWriter = (*Writer)(nil)

// Writer writes documents as markdown files to a directory. The write is
// whole-operation: open, write, close, with no partial-write recovery.
type Writer struct {
	outputDir string
}

// NewWriter creates a new Writer that writes to the given directory,
// creating it if absent.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// WriteDocument writes the document to <slug>.md under the output
// directory and returns the full path. The document's ContentHash is set
// on a successful write.
func (w *Writer) WriteDocument(ctx context.Context, doc *medium2dev.Document) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.outputDir, doc.Slug+".md")
	if err := os.WriteFile(fullPath, []byte(doc.Content), 0644); err != nil {
		return "", err
	}

	doc.ContentHash = ContentHash(doc.Content)
	return fullPath, nil
}

// ContentHash returns the xxhash digest of content as a fixed-width hex
// string.
func ContentHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
