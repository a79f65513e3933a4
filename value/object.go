package value

import "fmt"

// Data is the stored-value variant of a property descriptor.
type Data struct {
	// Value addresses the stored value in the owning Arena.
	Value Handle
	// Writable reports whether assignment may replace Value.
	Writable bool
}

// Accessor is the getter/setter variant of a property descriptor.
// Generated accessors are no-ops: Get yields Undefined and Set discards.
type Accessor struct {
	Get func() Value
	Set func(Value)
}

// NoopAccessor returns an Accessor whose getter returns Undefined and whose
// setter does nothing.
func NoopAccessor() *Accessor {
	return &Accessor{
		Get: func() Value { return UndefinedValue() },
		Set: func(Value) {},
	}
}

// Property is one named member of an Object. Exactly one of Data and
// Accessor is set.
type Property struct {
	Name         String
	Enumerable   bool
	Configurable bool

	Data     *Data
	Accessor *Accessor
}

// IsAccessor reports whether p is an accessor property.
func (p Property) IsAccessor() bool { return p.Accessor != nil }

// Object is a set of uniquely named properties kept in definition order.
// A callable Object is a function.
type Object struct {
	// Callable marks the object as invocable (KindFunction).
	Callable bool

	props []Property
	index map[string]int // name key -> position in props
}

// NewObject returns an empty plain object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// NewFunction returns an empty callable object.
func NewFunction() *Object {
	o := NewObject()
	o.Callable = true
	return o
}

// Define appends p. It returns ErrBadDescriptor when p is neither (or both)
// data and accessor, and ErrDuplicateProperty when the name is taken.
func (o *Object) Define(p Property) error {
	if (p.Data == nil) == (p.Accessor == nil) {
		return fmt.Errorf("Define(%q): %w", p.Name.Text(), ErrBadDescriptor)
	}
	if o.index == nil {
		o.index = make(map[string]int)
	}
	key := p.Name.Key()
	if _, ok := o.index[key]; ok {
		return fmt.Errorf("Define(%q): %w", p.Name.Text(), ErrDuplicateProperty)
	}
	o.index[key] = len(o.props)
	o.props = append(o.props, p)
	return nil
}

// Has reports whether a property named name exists.
func (o *Object) Has(name String) bool {
	if o == nil {
		return false
	}
	_, ok := o.index[name.Key()]
	return ok
}

// Lookup returns the property named name.
func (o *Object) Lookup(name String) (Property, bool) {
	if o == nil {
		return Property{}, false
	}
	i, ok := o.index[name.Key()]
	if !ok {
		return Property{}, false
	}
	return o.props[i], true
}

// Properties returns a copy of the properties in definition order.
func (o *Object) Properties() []Property {
	if o == nil {
		return nil
	}
	return append([]Property(nil), o.props...)
}

// Len returns the number of own properties.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.props)
}

// Array is an ordered sequence of values addressed by Handle.
type Array struct {
	Elements []Handle
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Elements)
}
