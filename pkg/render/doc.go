// Package render provides guarded rendering of element trees.
//
// element.Element.Render recurses without any checks, so a tree in which an
// element is its own ancestor never finishes rendering. Renderer produces
// the same bytes but walks the tree with an explicit depth limit and,
// optionally, cycle detection, returning a structured error instead of
// exhausting the stack.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{
//	    MaxDepth:     256,
//	    DetectCycles: true,
//	})
//	html, err := renderer.RenderToString(ctx, root)
//
// # Documents
//
// RenderDocument prefixes the markup with the HTML5 doctype:
//
//	err := renderer.RenderDocument(ctx, w, root)
//
// # Observability
//
// Each render runs in an OpenTelemetry span named "markup.render" taken
// from the global tracer provider. Pass a Metrics created with NewMetrics
// to record Prometheus counters and histograms.
//
// # Security
//
// Like the element package, the renderer never escapes attribute values or
// content. Only render trees built from trusted strings.
package render
