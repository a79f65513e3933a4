package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/esfuzz/value"
)

func TestKinds_AtomicFirst(t *testing.T) {
	ks := value.Kinds()
	require.Len(t, ks, 11)
	for i, k := range ks {
		assert.True(t, k.Valid(), "kind %q", k)
		if i < 5 {
			assert.True(t, k.Atomic(), "kind %q should be atomic", k)
		} else {
			assert.False(t, k.Atomic(), "kind %q should be composite", k)
		}
	}
	assert.False(t, value.Kind("not-a-kind").Valid())

	// Kinds returns a copy.
	ks[0] = "mutated"
	assert.Equal(t, value.KindUndefined, value.Kinds()[0])
}

func TestObjectValue_TagsCallable(t *testing.T) {
	assert.Equal(t, value.KindObject, value.ObjectValue(value.NewObject()).Kind)
	assert.Equal(t, value.KindFunction, value.ObjectValue(value.NewFunction()).Kind)
}

func TestObject_DefineUnique(t *testing.T) {
	o := value.NewObject()
	name := value.StringOf("x")

	require.NoError(t, o.Define(value.Property{Name: name, Data: &value.Data{Value: 0}}))
	err := o.Define(value.Property{Name: value.StringOf("x"), Accessor: value.NoopAccessor()})
	assert.ErrorIs(t, err, value.ErrDuplicateProperty)
	assert.Equal(t, 1, o.Len())

	p, ok := o.Lookup(name)
	require.True(t, ok)
	assert.False(t, p.IsAccessor())
	assert.True(t, o.Has(name))
	assert.False(t, o.Has(value.StringOf("y")))
}

func TestObject_DefineRejectsAmbiguousDescriptor(t *testing.T) {
	o := value.NewObject()
	err := o.Define(value.Property{Name: value.StringOf("a")})
	assert.ErrorIs(t, err, value.ErrBadDescriptor)

	err = o.Define(value.Property{
		Name:     value.StringOf("b"),
		Data:     &value.Data{},
		Accessor: value.NoopAccessor(),
	})
	assert.ErrorIs(t, err, value.ErrBadDescriptor)
	assert.Zero(t, o.Len())
}

func TestObject_ZeroValueDefine(t *testing.T) {
	var o value.Object
	require.NoError(t, o.Define(value.Property{Name: value.StringOf(""), Data: &value.Data{}}))
	assert.Equal(t, 1, o.Len())
	assert.True(t, o.Has(value.String{}))
}

func TestNoopAccessor(t *testing.T) {
	acc := value.NoopAccessor()
	assert.Equal(t, value.KindUndefined, acc.Get().Kind)
	assert.NotPanics(t, func() { acc.Set(value.NumberValue(1)) })
}

func TestString_KeyDistinguishesCodeUnits(t *testing.T) {
	a := value.String{0x0001, 0x0000}
	b := value.String{0x0100}
	c := value.String{0x0001}
	assert.NotEqual(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.Equal(t, "", value.String{}.Key())
	assert.True(t, a.Equal(value.String{0x0001, 0x0000}))
	assert.False(t, a.Equal(c))
}

func TestString_TextReplacesLoneSurrogate(t *testing.T) {
	s := value.String{'a', 0xD800, 'b'}
	assert.Equal(t, "a�b", s.Text())
	assert.Equal(t, "héllo", value.StringOf("héllo").Text())
}

func TestDate_Bounds(t *testing.T) {
	assert.True(t, value.MaxDate.Valid())
	assert.True(t, value.MinDate.Valid())
	assert.False(t, (value.MaxDate + 1).Valid())
	assert.False(t, (value.MinDate - 1).Valid())
	assert.Equal(t, 275760, value.MaxDate.Time().Year())
	assert.Equal(t, 1970, value.Date(0).Time().Year())
}

func TestPattern_Compile(t *testing.T) {
	tests := []struct {
		flags                  string
		global, ignore, multil bool
	}{
		{"", false, false, false},
		{"g", true, false, false},
		{"im", false, true, true},
		{"gim", true, true, true},
	}
	for _, tc := range tests {
		p := &value.Pattern{Source: value.PatternSource, Flags: tc.flags}
		assert.Equal(t, tc.global, p.Global(), tc.flags)
		assert.Equal(t, tc.ignore, p.IgnoreCase(), tc.flags)
		assert.Equal(t, tc.multil, p.Multiline(), tc.flags)

		re, err := p.Compile()
		require.NoError(t, err, tc.flags)
		assert.True(t, re.MatchString(""), tc.flags)
	}
	assert.Equal(t, "/(?:)/gi", (&value.Pattern{Source: value.PatternSource, Flags: "gi"}).String())
}

func TestErrorValue_String(t *testing.T) {
	e := &value.ErrorValue{Type: value.RangeError, Message: value.StringOf("bad")}
	assert.Equal(t, "RangeError: bad", e.String())
	assert.Equal(t, "TypeError", (&value.ErrorValue{Type: value.TypeError}).String())
	assert.Len(t, value.ErrorTypes(), 6)
}

func TestClassifyNumber(t *testing.T) {
	assert.Equal(t, value.NumberNaN, value.ClassifyNumber(math.NaN()))
	assert.Equal(t, value.NumberPosInf, value.ClassifyNumber(math.Inf(1)))
	assert.Equal(t, value.NumberNegInf, value.ClassifyNumber(math.Inf(-1)))
	assert.Equal(t, value.NumberMax, value.ClassifyNumber(math.MaxFloat64))
	assert.Equal(t, value.NumberFinite, value.ClassifyNumber(-math.MaxFloat64))
	assert.Equal(t, value.NumberFinite, value.ClassifyNumber(0))
}

func TestValue_ChildrenAndMembers(t *testing.T) {
	arena := value.NewArena()
	leaf := arena.Alloc(value.NullValue())

	obj := value.NewObject()
	require.NoError(t, obj.Define(value.Property{Name: value.StringOf("d"), Data: &value.Data{Value: leaf}}))
	require.NoError(t, obj.Define(value.Property{Name: value.StringOf("a"), Accessor: value.NoopAccessor()}))
	oh := arena.Alloc(value.ObjectValue(obj))

	arr := &value.Array{Elements: []value.Handle{leaf, oh}}
	ah := arena.Alloc(value.ArrayValue(arr))

	ov, ok := arena.At(oh)
	require.True(t, ok)
	assert.Equal(t, []value.Handle{leaf}, ov.Children())
	assert.Equal(t, 2, ov.Members())

	av, ok := arena.At(ah)
	require.True(t, ok)
	assert.Equal(t, []value.Handle{leaf, oh}, av.Children())
	assert.Equal(t, 2, av.Members())

	lv, _ := arena.At(leaf)
	assert.Nil(t, lv.Children())
	assert.Zero(t, lv.Members())
}

func TestArena_Handles(t *testing.T) {
	arena := value.NewArena()
	h := arena.Alloc(value.BooleanValue(true))
	assert.Equal(t, value.Handle(0), h)
	assert.Equal(t, 1, arena.Len())
	assert.False(t, arena.Contains(value.NoHandle))
	assert.False(t, arena.Contains(1))

	require.NoError(t, arena.Set(h, value.BooleanValue(false)))
	v, ok := arena.At(h)
	require.True(t, ok)
	assert.False(t, v.Bool)

	assert.ErrorIs(t, arena.Set(5, value.NullValue()), value.ErrBadHandle)
	_, ok = arena.At(5)
	assert.False(t, ok)
}

func TestTree_RootValue(t *testing.T) {
	tree := value.NewTree()
	assert.NotEqual(t, tree.ID.String(), value.NewTree().ID.String())
	assert.Panics(t, func() { tree.RootValue() })

	tree.Root = tree.Arena.Alloc(value.NumberValue(42))
	assert.Equal(t, 42.0, tree.RootValue().Number)
	assert.Nil(t, tree.Children(tree.Root))

	var nilTree *value.Tree
	_, ok := nilTree.Value(0)
	assert.False(t, ok)
}

func TestTreeOfAndRef(t *testing.T) {
	obj := value.NewFunction()
	tree := value.TreeOf(value.ObjectValue(obj))
	assert.Equal(t, value.Handle(0), tree.Root)

	got, ok := tree.Ref(tree.Root).Object()
	require.True(t, ok)
	assert.Same(t, obj, got)

	leaf := tree.Arena.Alloc(value.NullValue())
	_, ok = tree.Ref(leaf).Object()
	assert.False(t, ok, "null is not an object")
	_, ok = tree.Ref(99).Object()
	assert.False(t, ok)

	var nilRef *value.Ref
	_, ok = nilRef.Object()
	assert.False(t, ok)
	_, ok = (&value.Ref{Handle: 0}).Object()
	assert.False(t, ok, "a ref without a tree resolves nothing")
}
