package element

import "testing"

func TestSpawnChildReturnsChild(t *testing.T) {
	root := New("div")
	child := root.SpawnChild("section", Attr{"id", "s"})

	if child == root {
		t.Fatal("SpawnChild should return the new child")
	}
	if child.Tag() != "section" {
		t.Errorf("child.Tag() = %q, want %q", child.Tag(), "section")
	}
	if len(root.Children()) != 1 || root.Children()[0] != child {
		t.Error("child was not attached to root")
	}

	// Depth-first chained construction.
	root.SpawnChild("ul").SpawnChild("li").SetContent("x")
	want := `<div><section id="s"></section><ul><li>x</li></ul></div>`
	if got := root.Render(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSpawnChildCopiesXHTML(t *testing.T) {
	root := New("div").SetXHTML(true)
	spawned := root.SpawnChild("br")

	added := New("br")
	root.AddChild(added)

	if !spawned.XHTML() {
		t.Error("spawned child should inherit xhtml")
	}
	if added.XHTML() {
		t.Error("added child should not inherit xhtml")
	}

	// Later parent changes do not propagate.
	root.SetXHTML(false)
	if !spawned.XHTML() {
		t.Error("spawned child xhtml changed with parent")
	}

	if got := root.Render(); got != "<div><br /><br></div>" {
		t.Errorf("got %q, want %q", got, "<div><br /><br></div>")
	}
}

func TestAddChildReturnsSelf(t *testing.T) {
	root := New("p")
	if got := root.AddChild(New("b")).AddChild(New("i")); got != root {
		t.Fatal("AddChild should return the receiver")
	}
	if got := root.RenderChildren(); got != "<b></b><i></i>" {
		t.Errorf("RenderChildren() = %q, want %q", got, "<b></b><i></i>")
	}
}

func TestContentPlacement(t *testing.T) {
	tests := []struct {
		name      string
		placement func(*Element) *Element
		want      string
	}{
		{"append", (*Element).SetAppendContent, "<p><b></b>X</p>"},
		{"prepend", (*Element).SetPrependContent, "<p>X<b></b></p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("p").SetContent("X").AddChild(New("b"))
			tt.placement(p)
			if got := p.Render(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContentOperations(t *testing.T) {
	e := New("p").SetContent("b")
	e.AppendContent("c").PrependContent("a")
	if e.Content() != "abc" {
		t.Errorf("Content() = %q, want %q", e.Content(), "abc")
	}

	// Placement does not change storage order.
	e.SetPrependContent()
	if e.Content() != "abc" {
		t.Errorf("Content() = %q after SetPrependContent, want %q", e.Content(), "abc")
	}

	e.ClearContent()
	if e.Content() != "" {
		t.Errorf("Content() = %q after ClearContent, want empty", e.Content())
	}
}

func TestPlacementString(t *testing.T) {
	if Append.String() != "append" || Prepend.String() != "prepend" {
		t.Errorf("unexpected placement names %q, %q", Append, Prepend)
	}
	if Placement(9).String() != "unknown" {
		t.Errorf("Placement(9).String() = %q", Placement(9).String())
	}
}
