package tree

import (
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/element"
)

// Encode writes el as a tree document. Class and data attributes are
// written as plain attributes so their order is kept. Decoding the output
// yields a tree that renders identically.
func Encode(w io.Writer, el *element.Element) error {
	node, err := encodeElement(el, false, map[*element.Element]bool{})
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return errors.New("M023").Wrap(err)
	}
	if err := enc.Close(); err != nil {
		return errors.New("M023").Wrap(err)
	}
	return nil
}

func encodeElement(el *element.Element, parentXHTML bool, ancestors map[*element.Element]bool) (*yaml.Node, error) {
	if el == nil {
		return nil, errors.New("M012")
	}
	if ancestors[el] {
		return nil, errors.New("M011")
	}
	ancestors[el] = true
	defer delete(ancestors, el)

	m := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, value *yaml.Node) {
		m.Content = append(m.Content, str(key), value)
	}

	add(keyTag, str(el.Tag()))
	if el.XHTML() != parentXHTML {
		add(keyXHTML, boolean(el.XHTML()))
	}
	if el.IsVoid() != element.IsVoidTag(el.Tag()) {
		add(keyVoid, boolean(el.IsVoid()))
	}
	if el.Attributes().Len() > 0 {
		attrs := &yaml.Node{Kind: yaml.MappingNode}
		for k, v := range el.Attributes().All() {
			attrs.Content = append(attrs.Content, str(k), str(v))
		}
		add(keyAttributes, attrs)
	}
	if el.Content() != "" {
		add(keyContent, str(el.Content()))
	}
	if el.Placement() == element.Prepend {
		add(keyPlacement, str(element.Prepend.String()))
	}
	if len(el.Children()) > 0 {
		children := &yaml.Node{Kind: yaml.SequenceNode}
		for _, c := range el.Children() {
			cn, err := encodeElement(c, el.XHTML(), ancestors)
			if err != nil {
				return nil, err
			}
			children.Content = append(children.Content, cn)
		}
		add(keyChildren, children)
	}
	return m, nil
}

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func boolean(b bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
}
