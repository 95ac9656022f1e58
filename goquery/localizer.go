package goquery

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fwojciec/medium2dev"
	"golang.org/x/net/html"
)

// avatarSizeMarkers identify small profile images and icons by the
// resize directive embedded in their URL. Covers both the fill and fit
// variants at the two avatar sizes Medium uses.
var avatarSizeMarkers = []string{
	"resize:fill:64:64",
	"resize:fit:64:64",
	"resize:fill:88:88",
	"resize:fit:88:88",
}

// miroResizeSegment matches the resize directive path segment in
// miro.medium.com image URLs.
var miroResizeSegment = regexp.MustCompile(`/resize:[^/]+/`)

// DefaultImageExtension is used when none can be inferred from the URL.
const DefaultImageExtension = ".jpg"

// Ensure Localizer implements medium2dev.Localizer at compile time.
var _ medium2dev.Localizer = (*Localizer)(nil)

// Localizer downloads the images referenced by an article's content and
// rewrites their src attributes to relative local paths, in place.
// Avatar-sized images are removed from the content outright. A failed
// download is logged as a warning and leaves the reference untouched.
type Localizer struct {
	downloader medium2dev.Downloader
	imageDir   string
	logger     *slog.Logger
}

// NewLocalizer creates a Localizer that saves images under imageDir.
// A nil logger falls back to slog.Default.
func NewLocalizer(downloader medium2dev.Downloader, imageDir string, logger *slog.Logger) *Localizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Localizer{
		downloader: downloader,
		imageDir:   imageDir,
		logger:     logger,
	}
}

// Localize processes every image in document order. The sequential
// filename index is 1-based and counts every image with a usable source,
// including ones that are later skipped or fail to download.
func (l *Localizer) Localize(ctx context.Context, article *medium2dev.Article, articleURL string) ([]medium2dev.DownloadedImage, error) {
	base, err := url.Parse(articleURL)
	if err != nil {
		return nil, medium2dev.Errorf(medium2dev.EINVALID, "invalid article URL: %v", err)
	}

	var downloaded []medium2dev.DownloadedImage
	for i, img := range imageNodes(article.Content) {
		src := attrValue(img, "src")
		if src == "" {
			continue
		}

		imgURL := src
		if !strings.HasPrefix(imgURL, "http://") && !strings.HasPrefix(imgURL, "https://") {
			ref, err := url.Parse(imgURL)
			if err != nil {
				continue
			}
			imgURL = base.ResolveReference(ref).String()
		}

		if isAvatarURL(imgURL) {
			removeNode(article, img)
			continue
		}

		if strings.Contains(imgURL, "miro.medium.com") {
			imgURL = CanonicalImageURL(imgURL)
		}

		filename := fmt.Sprintf("image_%d%s", i+1, extensionOf(imgURL))
		dest := filepath.Join(l.imageDir, filename)

		l.logger.Info("downloading image", "url", imgURL)
		if err := l.downloader.Download(ctx, imgURL, dest); err != nil {
			l.logger.Warn("failed to download image", "url", imgURL, "err", err)
			continue
		}

		rel := path.Join(filepath.Base(l.imageDir), filename)
		setAttr(img, "src", rel)
		downloaded = append(downloaded, medium2dev.DownloadedImage{
			SourceURL: imgURL,
			Filename:  filename,
			RelPath:   rel,
		})
	}

	return downloaded, nil
}

// CanonicalImageURL strips the resize directive segment and the query
// string from a Medium CDN image URL so the unconstrained original asset
// is requested.
func CanonicalImageURL(rawURL string) string {
	u := miroResizeSegment.ReplaceAllString(rawURL, "/")
	if i := strings.Index(u, "?"); i >= 0 {
		u = u[:i]
	}
	return u
}

func isAvatarURL(imgURL string) bool {
	for _, marker := range avatarSizeMarkers {
		if strings.Contains(imgURL, marker) {
			return true
		}
	}
	return false
}

// extensionOf infers the local file extension from the URL path.
func extensionOf(imgURL string) string {
	u, err := url.Parse(imgURL)
	if err != nil {
		return DefaultImageExtension
	}
	if ext := path.Ext(u.Path); ext != "" {
		return ext
	}
	return DefaultImageExtension
}

// removeNode drops an image from the content: detached from its parent
// when nested, or removed from the content sequence when top-level.
func removeNode(article *medium2dev.Article, n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
		return
	}
	for i, c := range article.Content {
		if c == n {
			article.Content = append(article.Content[:i], article.Content[i+1:]...)
			return
		}
	}
}
