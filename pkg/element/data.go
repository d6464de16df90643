package element

const dataPrefix = "data-"

// Data returns the value of the data-key attribute and whether it is set.
func (e *Element) Data(key string) (string, bool) {
	return e.Attribute(dataPrefix + key)
}

// SetData sets the data-key attribute.
func (e *Element) SetData(key, value string) *Element {
	return e.SetAttribute(dataPrefix+key, value)
}

// RemoveData deletes the data-key attribute.
func (e *Element) RemoveData(key string) *Element {
	return e.RemoveAttribute(dataPrefix + key)
}
