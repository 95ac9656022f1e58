package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/medium2dev"
)

// DefaultPublishEndpoint is the DEV.to article creation endpoint.
const DefaultPublishEndpoint = "https://dev.to/api/articles"

// DefaultPublishTimeout is the default timeout for the publish request.
const DefaultPublishTimeout = 30 * time.Second

// Ensure Publisher implements medium2dev.Publisher at compile time.
var _ medium2dev.Publisher = (*Publisher)(nil)

// Publisher submits drafts to the DEV.to articles API. The body markdown
// includes the frontmatter header; the article is always created
// unpublished. There is no retry; any transport error or non-2xx
// response is a failure.
type Publisher struct {
	client   *http.Client
	endpoint string
	apiKey   string
	timeout  time.Duration
}

// PublisherOption configures a Publisher.
type PublisherOption func(*Publisher)

// WithEndpoint overrides the publish endpoint. Used in tests.
func WithEndpoint(endpoint string) PublisherOption {
	return func(p *Publisher) {
		p.endpoint = endpoint
	}
}

// WithPublishTimeout sets the publish request timeout.
// Defaults to DefaultPublishTimeout (30s) if not specified.
func WithPublishTimeout(d time.Duration) PublisherOption {
	return func(p *Publisher) {
		p.timeout = d
	}
}

// NewPublisher creates a new Publisher authenticating with apiKey.
func NewPublisher(apiKey string, opts ...PublisherOption) *Publisher {
	p := &Publisher{
		endpoint: DefaultPublishEndpoint,
		apiKey:   apiKey,
		timeout:  DefaultPublishTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.client = &http.Client{
		Timeout: p.timeout,
	}

	return p
}

type draftRequest struct {
	Article draftArticle `json:"article"`
}

type draftArticle struct {
	Title        string `json:"title"`
	BodyMarkdown string `json:"body_markdown"`
	Published    bool   `json:"published"`
}

// Publish creates an unpublished draft with the given title and full
// markdown body.
func (p *Publisher) Publish(ctx context.Context, title, bodyMarkdown string) error {
	payload, err := json.Marshal(draftRequest{
		Article: draftArticle{
			Title:        title,
			BodyMarkdown: bodyMarkdown,
			Published:    false,
		},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return medium2dev.Errorf(medium2dev.EUNAVAILABLE, "DEV.to returned HTTP %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
