package goquery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/medium2dev"
	m2dgoquery "github.com/fwojciec/medium2dev/goquery"
	"github.com/fwojciec/medium2dev/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Localizer implements medium2dev.Localizer at compile time.
var _ medium2dev.Localizer = (*m2dgoquery.Localizer)(nil)

const articleURL = "https://medium.com/pub/hello-world-abc123"

func extractArticle(t *testing.T, rawHTML string) *medium2dev.Article {
	t.Helper()
	article, err := m2dgoquery.NewExtractor().Extract(rawHTML)
	require.NoError(t, err)
	return article
}

func TestLocalizer_Localize(t *testing.T) {
	t.Parallel()

	t.Run("downloads image and rewrites reference", func(t *testing.T) {
		t.Parallel()

		article := extractArticle(t, `<html><body><article>
<p>Text.</p>
<img src="https://miro.medium.com/photo.png">
</article></body></html>`)

		var gotURL, gotDest string
		dl := &mock.Downloader{
			DownloadFn: func(ctx context.Context, url, destPath string) error {
				gotURL = url
				gotDest = destPath
				return nil
			},
		}

		loc := m2dgoquery.NewLocalizer(dl, "/tmp/out/images", nil)
		downloaded, err := loc.Localize(context.Background(), article, articleURL)

		require.NoError(t, err)
		require.Len(t, downloaded, 1)
		assert.Equal(t, "https://miro.medium.com/photo.png", gotURL)
		assert.Contains(t, gotDest, "image_1.png")
		assert.Equal(t, "images/image_1.png", downloaded[0].RelPath)
		assert.Contains(t, contentHTML(t, article), `src="images/image_1.png"`)
	})

	t.Run("discards avatar-sized images before download", func(t *testing.T) {
		t.Parallel()

		article := extractArticle(t, `<html><body><h1>Hello World</h1><article>
<p>Some content here.</p>
<img src="https://miro.medium.com/resize:fit:64:64/abc.png">
</article></body></html>`)

		dl := &mock.Downloader{
			DownloadFn: func(ctx context.Context, url, destPath string) error {
				t.Fatalf("unexpected download of %s", url)
				return nil
			},
		}

		loc := m2dgoquery.NewLocalizer(dl, "/tmp/out/images", nil)
		downloaded, err := loc.Localize(context.Background(), article, articleURL)

		require.NoError(t, err)
		assert.Empty(t, downloaded)
		assert.NotContains(t, contentHTML(t, article), "abc.png")
	})

	t.Run("strips resize directive and query from medium CDN URLs", func(t *testing.T) {
		t.Parallel()

		article := extractArticle(t, `<html><body><article>
<img src="https://miro.medium.com/resize:fit:800:400/photo.jpg?q=1">
</article></body></html>`)

		var gotURL string
		dl := &mock.Downloader{
			DownloadFn: func(ctx context.Context, url, destPath string) error {
				gotURL = url
				return nil
			},
		}

		loc := m2dgoquery.NewLocalizer(dl, "images", nil)
		_, err := loc.Localize(context.Background(), article, articleURL)

		require.NoError(t, err)
		assert.Equal(t, "https://miro.medium.com/photo.jpg", gotURL)
	})

	t.Run("resolves relative image addresses against the article URL", func(t *testing.T) {
		t.Parallel()

		article := extractArticle(t, `<html><body><article>
<img src="/assets/pic.gif">
</article></body></html>`)

		var gotURL string
		dl := &mock.Downloader{
			DownloadFn: func(ctx context.Context, url, destPath string) error {
				gotURL = url
				return nil
			},
		}

		loc := m2dgoquery.NewLocalizer(dl, "images", nil)
		_, err := loc.Localize(context.Background(), article, articleURL)

		require.NoError(t, err)
		assert.Equal(t, "https://medium.com/assets/pic.gif", gotURL)
	})

	t.Run("defaults extension when none is inferable", func(t *testing.T) {
		t.Parallel()

		article := extractArticle(t, `<html><body><article>
<img src="https://miro.medium.com/0a1b2c3d4e5f">
</article></body></html>`)

		var gotDest string
		dl := &mock.Downloader{
			DownloadFn: func(ctx context.Context, url, destPath string) error {
				gotDest = destPath
				return nil
			},
		}

		loc := m2dgoquery.NewLocalizer(dl, "images", nil)
		_, err := loc.Localize(context.Background(), article, articleURL)

		require.NoError(t, err)
		assert.Contains(t, gotDest, "image_1.jpg")
	})

	t.Run("failed download leaves the reference untouched", func(t *testing.T) {
		t.Parallel()

		article := extractArticle(t, `<html><body><article>
<p>Text.</p>
<img src="https://miro.medium.com/broken.png">
</article></body></html>`)

		dl := &mock.Downloader{
			DownloadFn: func(ctx context.Context, url, destPath string) error {
				return errors.New("connection refused")
			},
		}

		loc := m2dgoquery.NewLocalizer(dl, "images", nil)
		downloaded, err := loc.Localize(context.Background(), article, articleURL)

		require.NoError(t, err)
		assert.Empty(t, downloaded)
		assert.Contains(t, contentHTML(t, article), `src="https://miro.medium.com/broken.png"`)
	})

	t.Run("filename index counts skipped images", func(t *testing.T) {
		t.Parallel()

		article := extractArticle(t, `<html><body><article>
<img src="https://miro.medium.com/resize:fill:88:88/avatar.png">
<img src="https://miro.medium.com/real.png">
</article></body></html>`)

		var gotDest string
		dl := &mock.Downloader{
			DownloadFn: func(ctx context.Context, url, destPath string) error {
				gotDest = destPath
				return nil
			},
		}

		loc := m2dgoquery.NewLocalizer(dl, "images", nil)
		downloaded, err := loc.Localize(context.Background(), article, articleURL)

		require.NoError(t, err)
		require.Len(t, downloaded, 1)
		assert.Contains(t, gotDest, "image_2.png")
	})

	t.Run("invalid article URL is invalid", func(t *testing.T) {
		t.Parallel()

		article := &medium2dev.Article{}
		loc := m2dgoquery.NewLocalizer(&mock.Downloader{}, "images", nil)

		_, err := loc.Localize(context.Background(), article, "://bad")

		require.Error(t, err)
		assert.Equal(t, medium2dev.EINVALID, medium2dev.ErrorCode(err))
	})
}

func TestCanonicalImageURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "strips resize segment and query",
			url:  "https://miro.medium.com/resize:fit:800:400/photo.jpg?q=1",
			want: "https://miro.medium.com/photo.jpg",
		},
		{
			name: "strips query only",
			url:  "https://miro.medium.com/photo.jpg?q=1",
			want: "https://miro.medium.com/photo.jpg",
		},
		{
			name: "leaves plain URL alone",
			url:  "https://miro.medium.com/photo.jpg",
			want: "https://miro.medium.com/photo.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, m2dgoquery.CanonicalImageURL(tt.url))
		})
	}
}
