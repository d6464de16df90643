package element

import (
	"slices"
	"testing"
)

func TestAttributeOperations(t *testing.T) {
	e := New("div")

	if _, ok := e.Attribute("id"); ok {
		t.Error("unset attribute should report absent")
	}

	e.SetAttribute("id", "a").SetAttribute("title", "t").SetAttribute("id", "b")
	if v, ok := e.Attribute("id"); !ok || v != "b" {
		t.Errorf("Attribute(id) = %q, %v; want %q, true", v, ok, "b")
	}
	// Overwrite keeps the original position.
	if got := e.Render(); got != `<div id="b" title="t"></div>` {
		t.Errorf("got %q", got)
	}

	e.RemoveAttribute("missing").RemoveAttribute("id")
	if e.Attributes().Has("id") {
		t.Error("id should be removed")
	}
	if got := e.Render(); got != `<div title="t"></div>` {
		t.Errorf("got %q", got)
	}
}

func TestAttributesRoundTrip(t *testing.T) {
	e := New("div", Attr{"x", "0"})
	e.SetAttributes(NewAttributes(Attr{"a", "1"}))

	got := e.Attributes().Map()
	if len(got) != 1 || got["a"] != "1" {
		t.Errorf("Attributes() = %v, want map[a:1]", got)
	}

	e.AddAttributes(NewAttributes(Attr{"b", "2"}, Attr{"a", "3"}))
	if keys := e.Attributes().Keys(); !slices.Equal(keys, []string{"a", "b"}) {
		t.Errorf("Keys() = %v, want [a b]", keys)
	}
	if got := e.Render(); got != `<div a="3" b="2"></div>` {
		t.Errorf("got %q", got)
	}
}

func TestAttributesLiveMap(t *testing.T) {
	e := New("div")
	e.Attributes().Set("role", "main")
	if v, _ := e.Attribute("role"); v != "main" {
		t.Errorf("mutation through Attributes() not visible, got %q", v)
	}
}

func TestNewCopiesAttributes(t *testing.T) {
	pairs := []Attr{{"a", "1"}}
	e := New("div", pairs...)
	pairs[0].Value = "changed"
	if v, _ := e.Attribute("a"); v != "1" {
		t.Errorf("Attribute(a) = %q, want %q", v, "1")
	}

	shared := NewAttributes(Attr{"a", "1"})
	aliased := NewWithAttributes("div", shared)
	shared.Set("b", "2")
	if !aliased.Attributes().Has("b") {
		t.Error("NewWithAttributes should alias the given map")
	}

	set := NewAttributes(Attr{"c", "3"})
	e.SetAttributes(set)
	set.Set("d", "4")
	if e.Attributes().Has("d") {
		t.Error("SetAttributes should copy the given map")
	}
}

func TestAttributesType(t *testing.T) {
	var a Attributes
	if a.Len() != 0 || a.Has("x") {
		t.Error("zero Attributes should be empty")
	}
	a.Delete("x")
	a.Set("x", "1")
	a.Set("y", "2")
	a.Set("z", "3")
	a.Delete("y")

	if keys := a.Keys(); !slices.Equal(keys, []string{"x", "z"}) {
		t.Errorf("Keys() = %v", keys)
	}

	var seen []string
	for k := range a.All() {
		seen = append(seen, k)
		break
	}
	if !slices.Equal(seen, []string{"x"}) {
		t.Errorf("All() should stop early, saw %v", seen)
	}

	c := a.Clone()
	c.Set("x", "changed")
	if v, _ := a.Get("x"); v != "1" {
		t.Errorf("Clone shares storage, original x = %q", v)
	}

	var nilAttrs *Attributes
	if nilAttrs.Len() != 0 || nilAttrs.Keys() != nil || len(nilAttrs.Pairs()) != 0 {
		t.Error("nil Attributes should read as empty")
	}
	nilAttrs.Delete("x")
	if nilAttrs.Has("x") {
		t.Error("Delete on nil Attributes should be a no-op")
	}
}

func TestClassHelpers(t *testing.T) {
	e := New("div")
	e.RemoveClass("a")
	if e.Attributes().Has("class") {
		t.Fatal("RemoveClass on unset class should not create the attribute")
	}

	e.AddClass("a")
	if v, _ := e.Attribute("class"); v != "a" {
		t.Errorf("class = %q, want %q", v, "a")
	}
	e.AddClass("a")
	if v, _ := e.Attribute("class"); v != "a a" {
		t.Errorf("class = %q, want %q", v, "a a")
	}
	e.RemoveClass("a")
	if v, _ := e.Attribute("class"); v != "a" {
		t.Errorf("class = %q, want %q", v, "a")
	}
	if !e.HasClass("a") || e.HasClass("b") {
		t.Error("HasClass mismatch")
	}

	e.RemoveClass("a")
	v, ok := e.Attribute("class")
	if !ok || v != "" {
		t.Errorf("class = %q, %v; want empty but present", v, ok)
	}
	if got := e.Render(); got != `<div class=""></div>` {
		t.Errorf("got %q", got)
	}
}

func TestRemoveClassFirstOccurrence(t *testing.T) {
	e := New("div", Attr{"class", "x a y a"})
	e.RemoveClass("a")
	if v, _ := e.Attribute("class"); v != "x y a" {
		t.Errorf("class = %q, want %q", v, "x y a")
	}
}

func TestDataHelpers(t *testing.T) {
	e := New("div").SetData("id", "42")
	if v, ok := e.Data("id"); !ok || v != "42" {
		t.Errorf("Data(id) = %q, %v", v, ok)
	}
	if v, _ := e.Attribute("data-id"); v != "42" {
		t.Errorf("data-id = %q", v)
	}
	if got := e.Render(); got != `<div data-id="42"></div>` {
		t.Errorf("got %q", got)
	}

	e.RemoveData("id").RemoveData("id")
	if _, ok := e.Data("id"); ok {
		t.Error("data-id should be removed")
	}
}
