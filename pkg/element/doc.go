// Package element provides an imperative builder for HTML markup.
//
// An Element is a node in an ownership tree. It owns an ordered list of
// child Elements, an insertion-ordered attribute map, a content string and
// the flags that control how it is serialized. Mutating methods return the
// receiver so calls can be chained:
//
//	root := element.New("div", element.Attr{Key: "id", Value: "main"})
//	root.SpawnChild("span").SetContent("hi")
//	root.Render() // <div id="main"><span>hi</span></div>
//
// # Void Elements
//
// Tags listed in the HTML void-element table (img, br, input, ...) render
// without a closing tag. Children and content attached to a void element
// are kept but never rendered. SetVoid overrides the table per instance.
// In XHTML mode void elements self-close with " />".
//
// # Content Placement
//
// Content is separate from child markup. With the default Append placement
// it is written after the rendered children, with Prepend before them.
//
// # Trust
//
// Attribute values and content are written verbatim. Nothing is escaped,
// so callers must only pass trusted strings or escape them first.
//
// # Cycles
//
// No Element may be its own ancestor. Render does not check for this and
// recurses without bound on a cyclic tree. Use the render package for a
// depth limited, cycle checked rendering.
package element
