package render

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/element"
)

// Default tracer name for markup renderers.
const defaultTracerName = "markup"

// Doctype is written before the root element by RenderDocument.
const Doctype = "<!DOCTYPE html>\n"

// RendererConfig configures the guarded renderer.
type RendererConfig struct {
	// MaxDepth limits how many levels of elements are rendered. The root
	// is at depth 1. Zero disables the limit.
	MaxDepth int

	// DetectCycles fails the render when an element is found among its
	// own ancestors.
	DetectCycles bool

	// Logger receives debug and warning records. Defaults to slog.Default().
	Logger *slog.Logger

	// TracerName is the name of the tracer (default: "markup").
	TracerName string

	// Metrics records Prometheus metrics when non-nil.
	Metrics *Metrics
}

// Renderer renders element trees with depth and cycle guards.
// A Renderer holds no per-render state and is safe for concurrent use,
// provided the trees it renders are not mutated concurrently.
type Renderer struct {
	config RendererConfig
	logger *slog.Logger
	tracer trace.Tracer
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.TracerName == "" {
		config.TracerName = defaultTracerName
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		config: config,
		logger: logger,
		tracer: otel.Tracer(config.TracerName),
	}
}

// Stats describes a finished render.
type Stats struct {
	Elements int
	Depth    int
	Bytes    int
}

// RenderToString renders el to a string.
func (r *Renderer) RenderToString(ctx context.Context, el *element.Element) (string, error) {
	var buf bytes.Buffer
	if _, err := r.render(ctx, &buf, el, ""); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter renders el and writes the markup to w. Nothing is
// written when a guard fails.
func (r *Renderer) RenderToWriter(ctx context.Context, w io.Writer, el *element.Element) error {
	_, err := r.render(ctx, w, el, "")
	return err
}

// RenderDocument renders el as a complete document, prefixed by Doctype.
func (r *Renderer) RenderDocument(ctx context.Context, w io.Writer, el *element.Element) error {
	_, err := r.render(ctx, w, el, Doctype)
	return err
}

// Render renders el to w after prefix and reports statistics about the
// rendered tree.
func (r *Renderer) Render(ctx context.Context, w io.Writer, el *element.Element, prefix string) (Stats, error) {
	return r.render(ctx, w, el, prefix)
}

func (r *Renderer) render(ctx context.Context, w io.Writer, el *element.Element, prefix string) (Stats, error) {
	start := time.Now()

	attrs := []attribute.KeyValue{
		attribute.Int("markup.max_depth", r.config.MaxDepth),
		attribute.Bool("markup.detect_cycles", r.config.DetectCycles),
	}
	if el != nil {
		attrs = append(attrs, attribute.String("markup.tag", el.Tag()))
	}
	_, span := r.tracer.Start(ctx, "markup.render",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	wk := &walker{maxDepth: r.config.MaxDepth}
	wk.buf.WriteString(prefix)
	if r.config.DetectCycles {
		wk.ancestors = make(map[*element.Element]struct{})
	}

	err := wk.walk(el, 1)
	if err == nil {
		if _, werr := w.Write(wk.buf.Bytes()); werr != nil {
			err = errors.New("M013").Wrap(werr)
		}
	}

	stats := Stats{Elements: wk.elements, Depth: wk.deepest, Bytes: wk.buf.Len()}
	span.SetAttributes(
		attribute.Int("markup.elements", stats.Elements),
		attribute.Int("markup.depth", stats.Depth),
		attribute.Int("markup.bytes", stats.Bytes),
	)
	r.config.Metrics.observe(err, stats.Bytes, time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.WarnContext(ctx, "render failed",
			slog.String("error", err.Error()),
			slog.Int("elements", stats.Elements),
			slog.Int("depth", stats.Depth),
		)
		return stats, err
	}

	span.SetStatus(codes.Ok, "")
	r.logger.DebugContext(ctx, "rendered",
		slog.Int("elements", stats.Elements),
		slog.Int("depth", stats.Depth),
		slog.Int("bytes", stats.Bytes),
		slog.Duration("took", time.Since(start)),
	)
	return stats, nil
}

// walker emits markup in the same order as element.Element.Render.
type walker struct {
	buf       bytes.Buffer
	maxDepth  int
	ancestors map[*element.Element]struct{}
	elements  int
	deepest   int
}

func (wk *walker) walk(el *element.Element, depth int) error {
	if el == nil {
		return errors.New("M012")
	}
	if wk.maxDepth > 0 && depth > wk.maxDepth {
		return errors.New("M010").
			WithDetail("Element <" + el.Tag() + "> is at depth " + strconv.Itoa(depth) +
				", the limit is " + strconv.Itoa(wk.maxDepth) + ".").
			WithSuggestion("Raise the depth limit or check that no element is attached as its own descendant")
	}
	if wk.ancestors != nil {
		if _, ok := wk.ancestors[el]; ok {
			return errors.New("M011").
				WithDetail("Element <" + el.Tag() + "> at depth " + strconv.Itoa(depth) + " is one of its own ancestors.")
		}
		wk.ancestors[el] = struct{}{}
		defer delete(wk.ancestors, el)
	}

	wk.elements++
	wk.deepest = max(wk.deepest, depth)

	wk.buf.WriteString(el.StartTag())
	if el.IsVoid() {
		return nil
	}
	if el.Placement() == element.Prepend {
		wk.buf.WriteString(el.Content())
	}
	for _, child := range el.Children() {
		if err := wk.walk(child, depth+1); err != nil {
			return err
		}
	}
	if el.Placement() != element.Prepend {
		wk.buf.WriteString(el.Content())
	}
	wk.buf.WriteString(el.EndTag())
	return nil
}
