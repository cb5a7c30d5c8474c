package flex

import "testing"

func TestNodeAddChild(t *testing.T) {
	parent := NewNode(DefaultStyle())
	a := NewNode(DefaultStyle())
	b := NewNode(DefaultStyle())

	parent.AddChild(a, b)
	if len(parent.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(parent.Children))
	}
	if a.parent != parent || b.parent != parent {
		t.Error("children missing parent back-pointer")
	}
}

func TestNodeRemoveChildKeepsOrder(t *testing.T) {
	parent := NewNode(DefaultStyle())
	a := NewNode(DefaultStyle())
	b := NewNode(DefaultStyle())
	c := NewNode(DefaultStyle())
	parent.AddChild(a, b, c)

	if !parent.RemoveChild(b) {
		t.Fatal("RemoveChild(b) = false, want true")
	}
	// Sibling order is layout order, so removal must preserve it.
	if len(parent.Children) != 2 || parent.Children[0] != a || parent.Children[1] != c {
		t.Errorf("children after removal = %v, want [a c]", parent.Children)
	}
	if b.parent != nil {
		t.Error("removed child keeps parent back-pointer")
	}
	if parent.RemoveChild(b) {
		t.Error("RemoveChild(b) twice = true, want false")
	}
}

func TestNodeDirtyPropagation(t *testing.T) {
	root := NewNode(DefaultStyle())
	mid := NewNode(DefaultStyle())
	leaf := NewNode(DefaultStyle())
	root.AddChild(mid)
	mid.AddChild(leaf)

	Calculate(root, 100, 100)
	if root.IsDirty() || mid.IsDirty() || leaf.IsDirty() {
		t.Fatal("tree still dirty after Calculate")
	}

	leaf.SetStyle(DefaultStyle())
	if !leaf.IsDirty() || !mid.IsDirty() || !root.IsDirty() {
		t.Error("SetStyle on a leaf must dirty the whole ancestor chain")
	}
}
