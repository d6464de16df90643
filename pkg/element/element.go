package element

// DefaultTag is used when an Element is created with an empty tag.
const DefaultTag = "div"

// Placement controls where an Element's content is written relative to
// its rendered children.
type Placement uint8

const (
	Append  Placement = iota // children, then content
	Prepend                  // content, then children
)

// String returns the string representation of the Placement.
func (p Placement) String() string {
	switch p {
	case Append:
		return "append"
	case Prepend:
		return "prepend"
	default:
		return "unknown"
	}
}

// Element is a node in a markup tree.
//
// An Element exclusively owns its children. It keeps no reference to its
// parent. Attaching an Element to more than one parent, or to one of its
// own descendants, is a caller error.
//
// The zero value is an empty DefaultTag element, ready to use.
type Element struct {
	tag       string
	attrs     *Attributes
	children  []*Element
	content   string
	placement Placement
	void      bool
	xhtml     bool
}

// New creates an Element. An empty tag means DefaultTag. The attribute
// pairs are copied into a new attribute map in the given order. Whether
// the element is void is looked up in the void-element table.
func New(tag string, attrs ...Attr) *Element {
	return NewWithAttributes(tag, NewAttributes(attrs...))
}

// NewWithAttributes creates an Element that uses attrs as its attribute
// map without copying it. Later changes made through attrs are visible on
// the element and vice versa. A nil attrs is replaced by an empty map.
func NewWithAttributes(tag string, attrs *Attributes) *Element {
	if tag == "" {
		tag = DefaultTag
	}
	if attrs == nil {
		attrs = &Attributes{}
	}
	return &Element{
		tag:   tag,
		attrs: attrs,
		void:  IsVoidTag(tag),
	}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	if e.tag == "" {
		return DefaultTag
	}
	return e.tag
}

// IsVoid reports whether the element renders as a void element.
func (e *Element) IsVoid() bool {
	return e.void
}

// SetVoid overrides the void flag derived from the tag.
func (e *Element) SetVoid(void bool) *Element {
	e.void = void
	return e
}

// XHTML reports whether void elements self-close with " />".
func (e *Element) XHTML() bool {
	return e.xhtml
}

// SetXHTML sets the self-closing policy. Children spawned afterwards copy
// the flag; existing children are not changed.
func (e *Element) SetXHTML(xhtml bool) *Element {
	e.xhtml = xhtml
	return e
}
