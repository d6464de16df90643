package element

import (
	"iter"
	"slices"
)

// Attr is a single attribute name/value pair.
type Attr struct {
	Key   string
	Value string
}

// Attributes is a string map that remembers insertion order. Keys are
// unique; setting an existing key overwrites the value in place and keeps
// its original position.
//
// The zero value is ready to use.
type Attributes struct {
	keys   []string
	values map[string]string
}

// NewAttributes returns an Attributes holding pairs in the given order.
// Later duplicates overwrite earlier ones.
func NewAttributes(pairs ...Attr) *Attributes {
	a := &Attributes{}
	for _, p := range pairs {
		a.Set(p.Key, p.Value)
	}
	return a
}

// Get returns the value for name and whether it was set.
func (a *Attributes) Get(name string) (string, bool) {
	if a == nil || a.values == nil {
		return "", false
	}
	v, ok := a.values[name]
	return v, ok
}

// Has reports whether name is set.
func (a *Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Set inserts or overwrites name. Unlike the read methods and Delete,
// Set needs a non-nil receiver.
func (a *Attributes) Set(name, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, ok := a.values[name]; !ok {
		a.keys = append(a.keys, name)
	}
	a.values[name] = value
}

// Delete removes name. It is a no-op if name is not set.
func (a *Attributes) Delete(name string) {
	if a == nil {
		return
	}
	if _, ok := a.values[name]; !ok {
		return
	}
	delete(a.values, name)
	if i := slices.Index(a.keys, name); i >= 0 {
		a.keys = slices.Delete(a.keys, i, i+1)
	}
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Keys returns the attribute names in insertion order.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	return slices.Clone(a.keys)
}

// All iterates over the attributes in insertion order.
func (a *Attributes) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if a == nil {
			return
		}
		for _, k := range a.keys {
			if !yield(k, a.values[k]) {
				return
			}
		}
	}
}

// Pairs returns the attributes as a slice in insertion order.
func (a *Attributes) Pairs() []Attr {
	pairs := make([]Attr, 0, a.Len())
	for k, v := range a.All() {
		pairs = append(pairs, Attr{Key: k, Value: v})
	}
	return pairs
}

// Map returns an unordered copy of the attributes.
func (a *Attributes) Map() map[string]string {
	m := make(map[string]string, a.Len())
	for k, v := range a.All() {
		m[k] = v
	}
	return m
}

// Clone returns an independent copy.
func (a *Attributes) Clone() *Attributes {
	return NewAttributes(a.Pairs()...)
}
