package publish

import (
	"bytes"
	"context"
	"log/slog"
	"path"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/element"
	"github.com/vango-dev/markup/pkg/render"
)

// ContentType is the media type stored with published markup.
const ContentType = "text/html; charset=utf-8"

// Sink stores rendered markup under a key.
type Sink interface {
	Put(ctx context.Context, key string, body []byte) error
}

// Publisher renders trees as documents and puts them into a Sink.
type Publisher struct {
	renderer *render.Renderer
	sink     Sink
	logger   *slog.Logger
}

// New creates a Publisher. A nil renderer uses a default render.Renderer.
func New(renderer *render.Renderer, sink Sink) *Publisher {
	if renderer == nil {
		renderer = render.NewRenderer(render.RendererConfig{})
	}
	return &Publisher{
		renderer: renderer,
		sink:     sink,
		logger:   slog.Default(),
	}
}

// WithLogger sets the logger.
func (p *Publisher) WithLogger(logger *slog.Logger) *Publisher {
	p.logger = logger
	return p
}

// Publish renders el as a document and stores it under key, returning
// the key used. See Key for how key is normalized.
func (p *Publisher) Publish(ctx context.Context, key string, el *element.Element) (string, error) {
	var buf bytes.Buffer
	if err := p.renderer.RenderDocument(ctx, &buf, el); err != nil {
		return "", err
	}
	return p.PublishBytes(ctx, key, buf.Bytes())
}

// PublishBytes stores already rendered markup under key.
func (p *Publisher) PublishBytes(ctx context.Context, key string, body []byte) (string, error) {
	key = Key(key)
	if err := p.sink.Put(ctx, key, body); err != nil {
		return "", errors.FromError(err, "M030")
	}
	p.logger.InfoContext(ctx, "published", slog.String("key", key), slog.Int("bytes", len(body)))
	return key, nil
}

// MarkupExtensions are the key extensions Key leaves alone.
var MarkupExtensions = []string{".html", ".htm", ".xhtml"}

// Key normalizes a publish key: leading slashes are dropped, an empty key
// becomes a random UUID and ".html" is appended unless the key already
// ends in one of MarkupExtensions. Dots elsewhere do not count, so
// "v1.2" becomes "v1.2.html".
func Key(key string) string {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		key = uuid.NewString()
	}
	if !slices.Contains(MarkupExtensions, strings.ToLower(path.Ext(key))) {
		key += ".html"
	}
	return key
}
