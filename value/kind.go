package value

import "golang.org/x/exp/slices"

// Kind names one category of producible value.
type Kind string

// Atomic kinds.
const (
	// KindUndefined is the "no value present" marker.
	KindUndefined = Kind("undefined")
	// KindNull is the explicit null value.
	KindNull = Kind("null")
	// KindBoolean is true or false.
	KindBoolean = Kind("boolean")
	// KindString is a sequence of UTF-16 code units.
	KindString = Kind("string")
	// KindNumber is an IEEE-754 double, including NaN and the infinities.
	KindNumber = Kind("number")
)

// Composite kinds.
const (
	// KindObject is a set of uniquely named properties.
	KindObject = Kind("object")
	// KindFunction is an object that is additionally callable.
	KindFunction = Kind("function")
	// KindArray is an ordered sequence of values.
	KindArray = Kind("array")
	// KindDate is a point in time bounded to [MinDate, MaxDate].
	KindDate = Kind("date")
	// KindRegExp is a pattern object with an optional flag combination.
	KindRegExp = Kind("regexp")
	// KindError is one of the standard error types carrying a message.
	KindError = Kind("error")
)

// kinds lists every Kind in a stable order: atomic kinds first.
var kinds = []Kind{
	KindUndefined, KindNull, KindBoolean, KindString, KindNumber,
	KindObject, KindFunction, KindArray, KindDate, KindRegExp, KindError,
}

// Kinds returns every known Kind, atomic kinds first. The slice is a copy.
func Kinds() []Kind {
	return slices.Clone(kinds)
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return slices.Contains(kinds, k)
}

// Atomic reports whether values of kind k never contain nested values.
func (k Kind) Atomic() bool {
	switch k {
	case KindUndefined, KindNull, KindBoolean, KindString, KindNumber:
		return true
	default:
		return false
	}
}

// String returns the kind name.
func (k Kind) String() string { return string(k) }
