package inspect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/esfuzz/value"
)

// selfArray builds <ref *0> [1.5, "a", [Circular *0]].
func selfArray(t *testing.T) *value.Tree {
	t.Helper()
	tree := value.NewTree()
	arr := &value.Array{}
	tree.Root = tree.Arena.Alloc(value.ArrayValue(arr))
	n := tree.Arena.Alloc(value.NumberValue(1.5))
	s := tree.Arena.Alloc(value.StringValue(value.StringOf("a")))
	arr.Elements = []value.Handle{n, s, tree.Root}
	return tree
}

// sharedLeaf builds {"x": null, "y": [same null]} without cycles.
func sharedLeaf(t *testing.T) *value.Tree {
	t.Helper()
	tree := value.NewTree()
	obj := value.NewObject()
	tree.Root = tree.Arena.Alloc(value.ObjectValue(obj))
	leaf := tree.Arena.Alloc(value.NullValue())
	arr := tree.Arena.Alloc(value.ArrayValue(&value.Array{Elements: []value.Handle{leaf}}))
	require.NoError(t, obj.Define(value.Property{Name: value.StringOf("x"), Data: &value.Data{Value: leaf}}))
	require.NoError(t, obj.Define(value.Property{Name: value.StringOf("y"), Data: &value.Data{Value: arr}}))
	return tree
}

// mutualArrays builds two arrays that hold each other.
func mutualArrays(t *testing.T) *value.Tree {
	t.Helper()
	tree := value.NewTree()
	a := &value.Array{}
	b := &value.Array{}
	tree.Root = tree.Arena.Alloc(value.ArrayValue(a))
	bh := tree.Arena.Alloc(value.ArrayValue(b))
	a.Elements = []value.Handle{bh}
	b.Elements = []value.Handle{tree.Root}
	return tree
}

// chain builds a depth-n chain of single-element arrays ending in null.
func chain(t *testing.T, n int) *value.Tree {
	t.Helper()
	tree := value.NewTree()
	cur := &value.Array{}
	tree.Root = tree.Arena.Alloc(value.ArrayValue(cur))
	for i := 2; i < n; i++ {
		next := &value.Array{}
		cur.Elements = []value.Handle{tree.Arena.Alloc(value.ArrayValue(next))}
		cur = next
	}
	cur.Elements = []value.Handle{tree.Arena.Alloc(value.NullValue())}
	return tree
}
