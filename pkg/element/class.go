package element

import (
	"slices"
	"strings"
)

const classAttr = "class"

// classList splits the class attribute on single spaces. An unset
// attribute yields an empty list.
func (e *Element) classList() ([]string, bool) {
	value, ok := e.Attribute(classAttr)
	if !ok {
		return nil, false
	}
	return strings.Split(value, " "), true
}

// AddClass appends name to the class attribute. Duplicates are kept.
func (e *Element) AddClass(name string) *Element {
	classes, ok := e.classList()
	if !ok {
		return e.SetAttribute(classAttr, name)
	}
	return e.SetAttribute(classAttr, strings.Join(append(classes, name), " "))
}

// RemoveClass removes the first occurrence of name from the class
// attribute. The attribute is left in place even if it ends up empty.
// It is a no-op when the element has no class attribute.
func (e *Element) RemoveClass(name string) *Element {
	classes, ok := e.classList()
	if !ok {
		return e
	}
	if i := slices.Index(classes, name); i >= 0 {
		classes = slices.Delete(classes, i, i+1)
	}
	return e.SetAttribute(classAttr, strings.Join(classes, " "))
}

// HasClass reports whether name is one of the element's classes.
func (e *Element) HasClass(name string) bool {
	classes, _ := e.classList()
	return slices.Contains(classes, name)
}
