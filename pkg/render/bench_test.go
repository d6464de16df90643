package render

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/vango-dev/markup/pkg/element"
)

func largeList() *element.Element {
	list := element.New("ul")
	for i := 0; i < 1000; i++ {
		list.SpawnChild("li").SetContent(fmt.Sprintf("Item %d", i))
	}
	return list
}

func BenchmarkElementRender(b *testing.B) {
	node := largeList()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = node.Render()
	}
}

func BenchmarkRendererGuarded(b *testing.B) {
	renderer := NewRenderer(RendererConfig{
		MaxDepth:     256,
		DetectCycles: true,
		Logger:       discardLogger(),
	})
	node := largeList()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		renderer.RenderToWriter(ctx, io.Discard, node)
	}
}
