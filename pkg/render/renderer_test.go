package render

import (
	"bytes"
	"context"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/element"
)

func sampleTree() *element.Element {
	root := element.New("div", element.Attr{Key: "id", Value: "main"})
	root.SpawnChild("span").SetContent("hi")
	list := root.SpawnChild("ul").AddClass("items")
	list.SpawnChild("li").SetContent("one")
	list.SpawnChild("li").SetContent("two").SetPrependContent().SpawnChild("br")
	root.SpawnChild("img", element.Attr{Key: "src", Value: "x.png"}).SetXHTML(true)
	return root
}

func TestRenderMatchesElementRender(t *testing.T) {
	renderer := NewRenderer(RendererConfig{MaxDepth: 10, DetectCycles: true})
	root := sampleTree()

	html, err := renderer.RenderToString(context.Background(), root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != root.Render() {
		t.Errorf("got %q, want %q", html, root.Render())
	}
	want := `<div id="main"><span>hi</span><ul class="items"><li>one</li><li>two<br></li></ul><img src="x.png" /></div>`
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestRenderEndToEnd(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	tests := []struct {
		name string
		el   func() *element.Element
		want string
	}{
		{
			name: "div with span",
			el: func() *element.Element {
				root := element.New("div", element.Attr{Key: "id", Value: "main"})
				root.SpawnChild("span").SetContent("hi")
				return root
			},
			want: `<div id="main"><span>hi</span></div>`,
		},
		{
			name: "xhtml img",
			el: func() *element.Element {
				return element.New("img", element.Attr{Key: "src", Value: "x.png"}).SetXHTML(true)
			},
			want: `<img src="x.png" />`,
		},
		{
			name: "void ignores children",
			el: func() *element.Element {
				br := element.New("br").SetContent("x")
				br.AddChild(element.New("b"))
				return br
			},
			want: `<br>`,
		},
		{
			name: "prepend content",
			el: func() *element.Element {
				return element.New("p").SetContent("X").SetPrependContent().AddChild(element.New("b"))
			},
			want: `<p>X<b></b></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := renderer.RenderToString(context.Background(), tt.el())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if html != tt.want {
				t.Errorf("got %q, want %q", html, tt.want)
			}
		})
	}
}

func TestRenderMaxDepth(t *testing.T) {
	root := element.New("div")
	root.SpawnChild("div").SpawnChild("div")

	ok := NewRenderer(RendererConfig{MaxDepth: 3})
	if _, err := ok.RenderToString(context.Background(), root); err != nil {
		t.Fatalf("depth 3 tree should render with MaxDepth 3: %v", err)
	}

	tooShallow := NewRenderer(RendererConfig{MaxDepth: 2})
	_, err := tooShallow.RenderToString(context.Background(), root)
	if !errors.HasCode(err, "M010") {
		t.Errorf("error = %v, want M010", err)
	}
}

func TestRenderDetectsCycles(t *testing.T) {
	root := element.New("div")
	child := root.SpawnChild("section")
	child.AddChild(root)

	var buf bytes.Buffer
	renderer := NewRenderer(RendererConfig{DetectCycles: true})
	err := renderer.RenderToWriter(context.Background(), &buf, root)
	if !errors.HasCode(err, "M011") {
		t.Fatalf("error = %v, want M011", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written on failure, got %q", buf.String())
	}

	// Without cycle detection the depth limit still stops the walk.
	limited := NewRenderer(RendererConfig{MaxDepth: 50})
	if err := limited.RenderToWriter(context.Background(), &buf, root); !errors.HasCode(err, "M010") {
		t.Errorf("error = %v, want M010", err)
	}
}

func TestRenderSharedSubtreeIsNotACycle(t *testing.T) {
	shared := element.New("b").SetContent("x")
	root := element.New("p").AddChild(shared).AddChild(shared)

	renderer := NewRenderer(RendererConfig{DetectCycles: true})
	html, err := renderer.RenderToString(context.Background(), root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if html != "<p><b>x</b><b>x</b></p>" {
		t.Errorf("got %q", html)
	}
}

func TestRenderNilElement(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	if _, err := renderer.RenderToString(context.Background(), nil); !errors.HasCode(err, "M012") {
		t.Errorf("error = %v, want M012", err)
	}

	root := element.New("div").AddChild(nil)
	if _, err := renderer.RenderToString(context.Background(), root); !errors.HasCode(err, "M012") {
		t.Errorf("error = %v, want M012", err)
	}
}

func TestRenderDocument(t *testing.T) {
	html := element.New("html", element.Attr{Key: "lang", Value: "en"})
	html.SpawnChild("body").SetContent("hello")

	var buf bytes.Buffer
	renderer := NewRenderer(RendererConfig{})
	if err := renderer.RenderDocument(context.Background(), &buf, html); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<!DOCTYPE html>\n" + `<html lang="en"><body>hello</body></html>`
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestRenderStats(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	var buf bytes.Buffer
	stats, err := renderer.Render(context.Background(), &buf, sampleTree(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Elements != 7 {
		t.Errorf("Elements = %d, want 7", stats.Elements)
	}
	if stats.Depth != 4 {
		t.Errorf("Depth = %d, want 4", stats.Depth)
	}
	if stats.Bytes != buf.Len() {
		t.Errorf("Bytes = %d, wrote %d", stats.Bytes, buf.Len())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, stderrors.New("closed") }

func TestRenderWriteError(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	renderer := NewRenderer(RendererConfig{Logger: logger})
	err := renderer.RenderToWriter(context.Background(), failingWriter{}, element.New("p"))
	if !errors.HasCode(err, "M013") {
		t.Fatalf("error = %v, want M013", err)
	}
	if !strings.Contains(logs.String(), "render failed") {
		t.Errorf("expected warning log, got %q", logs.String())
	}
}

func TestRenderLogsDebug(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	renderer := NewRenderer(RendererConfig{Logger: logger})
	if _, err := renderer.RenderToString(context.Background(), sampleTree()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), "msg=rendered") || !strings.Contains(logs.String(), "elements=7") {
		t.Errorf("unexpected log output %q", logs.String())
	}
}
