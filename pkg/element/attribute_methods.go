package element

// Attribute returns the value of name and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	return e.attrs.Get(name)
}

// SetAttribute inserts name or overwrites its value.
func (e *Element) SetAttribute(name, value string) *Element {
	e.attributes().Set(name, value)
	return e
}

// RemoveAttribute deletes name. It is a no-op if name is not set.
func (e *Element) RemoveAttribute(name string) *Element {
	e.attrs.Delete(name)
	return e
}

// SetAttributes replaces the whole attribute map with a copy of attrs,
// discarding every attribute set before. A nil attrs clears all
// attributes.
func (e *Element) SetAttributes(attrs *Attributes) *Element {
	e.attrs = attrs.Clone()
	return e
}

// AddAttributes merges attrs into the element in attrs' order. Existing
// keys are overwritten.
func (e *Element) AddAttributes(attrs *Attributes) *Element {
	for k, v := range attrs.All() {
		e.SetAttribute(k, v)
	}
	return e
}

// Attributes returns the live attribute map.
func (e *Element) Attributes() *Attributes {
	return e.attributes()
}

// attributes returns e.attrs, allocating it for a zero Element.
func (e *Element) attributes() *Attributes {
	if e.attrs == nil {
		e.attrs = &Attributes{}
	}
	return e.attrs
}
