package element

// Content returns the element's own text content.
func (e *Element) Content() string {
	return e.content
}

// SetContent replaces the element's content.
func (e *Element) SetContent(content string) *Element {
	e.content = content
	return e
}

// AppendContent adds content after the existing content.
func (e *Element) AppendContent(content string) *Element {
	e.content += content
	return e
}

// PrependContent adds content before the existing content.
func (e *Element) PrependContent(content string) *Element {
	e.content = content + e.content
	return e
}

// ClearContent empties the element's content. Placement is unchanged.
func (e *Element) ClearContent() *Element {
	e.content = ""
	return e
}

// Placement returns where content is written relative to the children.
func (e *Element) Placement() Placement {
	return e.placement
}

// SetAppendContent writes content after the rendered children.
func (e *Element) SetAppendContent() *Element {
	e.placement = Append
	return e
}

// SetPrependContent writes content before the rendered children.
func (e *Element) SetPrependContent() *Element {
	e.placement = Prepend
	return e
}
