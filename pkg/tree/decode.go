package tree

import (
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/element"
)

// Document keys.
const (
	keyTag        = "tag"
	keyAttributes = "attributes"
	keyClasses    = "classes"
	keyData       = "data"
	keyContent    = "content"
	keyPlacement  = "placement"
	keyVoid       = "void"
	keyXHTML      = "xhtml"
	keyChildren   = "children"
)

var knownKeys = map[string]bool{
	keyTag: true, keyAttributes: true, keyClasses: true, keyData: true,
	keyContent: true, keyPlacement: true, keyVoid: true, keyXHTML: true,
	keyChildren: true,
}

// Decode reads one tree document from r.
func Decode(r io.Reader) (*element.Element, error) {
	return decode(r, "")
}

// DecodeFile reads one tree document from path. Decoding errors point
// at the offending line of the file.
func DecodeFile(path string) (*element.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New("M022").
			WithDetail("Could not open " + path).
			Wrap(err)
	}
	defer f.Close()
	return decode(f, path)
}

func decode(r io.Reader, file string) (*element.Element, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New("M022").Wrap(err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New("M020").
			WithDetail("YAML parse error").
			Wrap(err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("M020").
			WithDetail("The document is empty.")
	}

	d := &decoder{file: file}
	return d.element(doc.Content[0], nil)
}

type decoder struct {
	file string
}

// fail returns an M020 error located at n.
func (d *decoder) fail(n *yaml.Node, code, detail string) *errors.MarkupError {
	err := errors.New(code).WithDetail(detail)
	if d.file != "" {
		return err.WithLocation(d.file, n.Line, n.Column)
	}
	err.Location = &errors.Location{File: "<input>", Line: n.Line, Column: n.Column}
	return err
}

// element decodes a mapping node. When parent is non-nil the element is
// spawned as its child.
func (d *decoder) element(n *yaml.Node, parent *element.Element) (*element.Element, error) {
	if n.Kind != yaml.MappingNode {
		return nil, d.fail(n, "M020", "An element must be a mapping.")
	}

	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if !knownKeys[key.Value] {
			return nil, d.fail(key, "M020", "Unknown key "+key.Value+".")
		}
		fields[key.Value] = n.Content[i+1]
	}

	tag := ""
	if v, ok := fields[keyTag]; ok {
		s, err := d.scalar(v, keyTag)
		if err != nil {
			return nil, err
		}
		tag = s
	}

	var el *element.Element
	if parent != nil {
		el = parent.SpawnChild(tag)
	} else {
		el = element.New(tag)
	}

	if v, ok := fields[keyXHTML]; ok {
		b, err := d.boolean(v, keyXHTML)
		if err != nil {
			return nil, err
		}
		el.SetXHTML(b)
	}
	if v, ok := fields[keyVoid]; ok {
		b, err := d.boolean(v, keyVoid)
		if err != nil {
			return nil, err
		}
		el.SetVoid(b)
	}
	if v, ok := fields[keyAttributes]; ok {
		if err := d.pairs(v, keyAttributes, func(k, val string) { el.SetAttribute(k, val) }); err != nil {
			return nil, err
		}
	}
	if v, ok := fields[keyClasses]; ok {
		if err := d.classes(v, el); err != nil {
			return nil, err
		}
	}
	if v, ok := fields[keyData]; ok {
		if err := d.pairs(v, keyData, func(k, val string) { el.SetData(k, val) }); err != nil {
			return nil, err
		}
	}
	if v, ok := fields[keyContent]; ok {
		s, err := d.scalar(v, keyContent)
		if err != nil {
			return nil, err
		}
		el.SetContent(s)
	}
	if v, ok := fields[keyPlacement]; ok {
		s, err := d.scalar(v, keyPlacement)
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(s) {
		case element.Append.String():
			el.SetAppendContent()
		case element.Prepend.String():
			el.SetPrependContent()
		default:
			return nil, d.fail(v, "M021", "placement must be \"append\" or \"prepend\", got "+strconv.Quote(s)+".")
		}
	}
	if v, ok := fields[keyChildren]; ok {
		if v.Kind != yaml.SequenceNode {
			return nil, d.fail(v, "M020", "children must be a list of elements.")
		}
		for _, c := range v.Content {
			if _, err := d.element(c, el); err != nil {
				return nil, err
			}
		}
	}

	return el, nil
}

func (d *decoder) scalar(n *yaml.Node, key string) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", d.fail(n, "M020", key+" must be a string.")
	}
	return text(n), nil
}

// text returns the value of a scalar node. Every spelling of null
// ("null", "~" or nothing at all) reads as the empty string.
func text(n *yaml.Node) string {
	if n.ShortTag() == "!!null" {
		return ""
	}
	return n.Value
}

func (d *decoder) boolean(n *yaml.Node, key string) (bool, error) {
	var b bool
	if n.Kind != yaml.ScalarNode || n.Decode(&b) != nil {
		return false, d.fail(n, "M020", key+" must be true or false.")
	}
	return b, nil
}

// pairs walks a mapping of scalars in document order.
func (d *decoder) pairs(n *yaml.Node, key string, set func(k, v string)) error {
	if n.Kind != yaml.MappingNode {
		return d.fail(n, "M020", key+" must be a mapping of names to strings.")
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return d.fail(k, "M020", key+" must be a mapping of names to strings.")
		}
		if text(k) == "" {
			return d.fail(k, "M020", key+" names must not be empty.")
		}
		set(k.Value, text(v))
	}
	return nil
}

func (d *decoder) classes(n *yaml.Node, el *element.Element) error {
	switch n.Kind {
	case yaml.ScalarNode:
		if name := text(n); name != "" {
			el.AddClass(name)
		}
	case yaml.SequenceNode:
		for _, c := range n.Content {
			if c.Kind != yaml.ScalarNode {
				return d.fail(c, "M020", "classes must be a list of strings.")
			}
			if name := text(c); name != "" {
				el.AddClass(name)
			}
		}
	default:
		return d.fail(n, "M020", "classes must be a list of strings.")
	}
	return nil
}
