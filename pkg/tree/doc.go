// Package tree reads and writes element trees as YAML documents.
//
// A document describes one element; children nest under "children":
//
//	tag: div
//	attributes:
//	  id: main
//	classes: [card, wide]
//	data:
//	  user: "42"
//	children:
//	  - tag: span
//	    content: hi
//	  - tag: img
//	    xhtml: true
//	    attributes:
//	      src: x.png
//
// Recognized keys are tag, attributes, classes, data, content, placement
// ("append" or "prepend"), void, xhtml and children. Attribute order in
// the document is the serialization order. Children are created with
// SpawnChild, so they inherit the parent's xhtml flag unless they set
// their own. JSON is valid YAML and decodes the same way.
package tree
