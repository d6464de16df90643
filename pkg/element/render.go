package element

import (
	"io"
	"strings"
)

// Render returns the markup for the element and its subtree.
//
// Render recurses once per tree level and never terminates on a cyclic
// tree.
func (e *Element) Render() string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}

// RenderChildren returns the concatenated markup of the children, in
// order, without the element's own tags or content.
func (e *Element) RenderChildren() string {
	var b strings.Builder
	for _, child := range e.children {
		child.render(&b)
	}
	return b.String()
}

// WriteTo writes the element's markup to w. It implements io.WriterTo.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.Render())
	return int64(n), err
}

// String implements fmt.Stringer.
func (e *Element) String() string {
	return e.Render()
}

func (e *Element) render(b *strings.Builder) {
	b.WriteString(e.StartTag())
	if e.void {
		return
	}
	if e.placement == Prepend {
		b.WriteString(e.content)
	}
	for _, child := range e.children {
		child.render(b)
	}
	if e.placement != Prepend {
		b.WriteString(e.content)
	}
	b.WriteString(e.EndTag())
}

// StartTag returns the opening tag with its attributes. For a void
// element this is the complete markup: "<tag ...>" or "<tag ... />" in
// XHTML mode.
func (e *Element) StartTag() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.Tag())
	for name, value := range e.attrs.All() {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(value)
		b.WriteByte('"')
	}
	if e.void && e.xhtml {
		b.WriteString(" /")
	}
	b.WriteByte('>')
	return b.String()
}

// EndTag returns the closing tag, or "" for a void element.
func (e *Element) EndTag() string {
	if e.void {
		return ""
	}
	return "</" + e.Tag() + ">"
}
