package element

// AddChild appends child to the element's children and returns the
// element. The child's XHTML flag is left as it is.
func (e *Element) AddChild(child *Element) *Element {
	e.children = append(e.children, child)
	return e
}

// SpawnChild creates a child with New, copies the element's current
// XHTML flag into it, attaches it and returns the child.
func (e *Element) SpawnChild(tag string, attrs ...Attr) *Element {
	child := New(tag, attrs...)
	child.xhtml = e.xhtml
	e.AddChild(child)
	return child
}

// Children returns the live slice of children.
func (e *Element) Children() []*Element {
	return e.children
}
