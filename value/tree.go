package value

import "github.com/google/uuid"

// Tree is the result of one root generation call: an Arena plus the handle
// of the root value. Shared and circular references inside the tree are
// repeated handles into the same Arena.
type Tree struct {
	// ID identifies the generation call, for correlating logs and failures.
	ID uuid.UUID
	// Root addresses the value that was requested.
	Root Handle
	// Arena owns every slot produced by the call.
	Arena *Arena
	// Reused counts how many times an existing slot was handed out again
	// instead of generating a new value.
	Reused int
}

// NewTree returns a Tree with a fresh ID and an empty Arena.
func NewTree() *Tree {
	return &Tree{ID: uuid.New(), Root: NoHandle, Arena: NewArena()}
}

// Value returns the value stored at h.
func (t *Tree) Value(h Handle) (*Value, bool) {
	if t == nil {
		return nil, false
	}
	return t.Arena.At(h)
}

// RootValue returns the root value. It panics if the tree has no root, which
// only happens for a Tree that was never filled by a generator.
func (t *Tree) RootValue() *Value {
	v, ok := t.Value(t.Root)
	if !ok {
		panic("value: tree has no root")
	}
	return v
}

// Children returns the handles directly referenced by the slot at h.
func (t *Tree) Children(h Handle) []Handle {
	v, ok := t.Value(h)
	if !ok {
		return nil
	}
	return v.Children()
}

// TreeOf returns a new Tree holding v as its root. It is the usual way to
// turn a hand-built object into a base for further generation.
func TreeOf(v Value) *Tree {
	t := NewTree()
	t.Root = t.Arena.Alloc(v)
	return t
}

// Ref returns a reference to slot h of t.
func (t *Tree) Ref(h Handle) *Ref {
	return &Ref{Tree: t, Handle: h}
}

// Ref addresses one slot together with the Tree whose Arena issued it. The
// handles stored inside that slot resolve against the same Arena.
type Ref struct {
	Tree   *Tree
	Handle Handle
}

// Object returns the object or function stored at r.
func (r *Ref) Object() (*Object, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.Tree.Value(r.Handle)
	if !ok || v.Object == nil || (v.Kind != KindObject && v.Kind != KindFunction) {
		return nil, false
	}
	return v.Object, true
}
