package value

import "math"

// Value is one generated value. Kind selects which payload field is
// meaningful; all other payload fields stay at their zero value.
//
//	KindUndefined, KindNull  no payload
//	KindBoolean              Bool
//	KindNumber               Number
//	KindString               Str
//	KindObject, KindFunction Object (Object.Callable distinguishes them)
//	KindArray                Array
//	KindDate                 Date
//	KindRegExp               Pattern
//	KindError                Err
type Value struct {
	Kind Kind

	Bool    bool
	Number  float64
	Str     String
	Object  *Object
	Array   *Array
	Date    Date
	Pattern *Pattern
	Err     *ErrorValue
}

// UndefinedValue returns the absence marker.
func UndefinedValue() Value { return Value{Kind: KindUndefined} }

// NullValue returns the null value.
func NullValue() Value { return Value{Kind: KindNull} }

// BooleanValue wraps b.
func BooleanValue(b bool) Value { return Value{Kind: KindBoolean, Bool: b} }

// NumberValue wraps f.
func NumberValue(f float64) Value { return Value{Kind: KindNumber, Number: f} }

// StringValue wraps s.
func StringValue(s String) Value { return Value{Kind: KindString, Str: s} }

// ObjectValue wraps o as KindFunction when o is callable, KindObject otherwise.
func ObjectValue(o *Object) Value {
	if o != nil && o.Callable {
		return Value{Kind: KindFunction, Object: o}
	}
	return Value{Kind: KindObject, Object: o}
}

// ArrayValue wraps a.
func ArrayValue(a *Array) Value { return Value{Kind: KindArray, Array: a} }

// DateValue wraps d.
func DateValue(d Date) Value { return Value{Kind: KindDate, Date: d} }

// PatternValue wraps p.
func PatternValue(p *Pattern) Value { return Value{Kind: KindRegExp, Pattern: p} }

// ErrorValueOf wraps e.
func ErrorValueOf(e *ErrorValue) Value { return Value{Kind: KindError, Err: e} }

// Children returns the handles directly referenced by v, in definition order.
// Atomic values, dates, patterns and errors reference nothing.
func (v *Value) Children() []Handle {
	switch v.Kind {
	case KindObject, KindFunction:
		if v.Object == nil {
			return nil
		}
		var out []Handle
		for _, p := range v.Object.props {
			if p.Data != nil {
				out = append(out, p.Data.Value)
			}
		}
		return out
	case KindArray:
		if v.Array == nil {
			return nil
		}
		return append([]Handle(nil), v.Array.Elements...)
	default:
		return nil
	}
}

// Members returns the number of top-level members of a composite value:
// own properties for objects and functions, elements for arrays, 0 otherwise.
func (v *Value) Members() int {
	switch v.Kind {
	case KindObject, KindFunction:
		return v.Object.Len()
	case KindArray:
		return v.Array.Len()
	default:
		return 0
	}
}

// NumberClass classifies a float64 the way the number generator does.
type NumberClass int

// Number classes, one per generator outcome.
const (
	NumberFinite NumberClass = iota
	NumberMax
	NumberNaN
	NumberPosInf
	NumberNegInf
)

// ClassifyNumber returns the class of f. The exact maximum finite magnitude is
// reported as NumberMax only for the positive value; -MaxFloat64 is finite.
func ClassifyNumber(f float64) NumberClass {
	switch {
	case math.IsNaN(f):
		return NumberNaN
	case math.IsInf(f, 1):
		return NumberPosInf
	case math.IsInf(f, -1):
		return NumberNegInf
	case f == math.MaxFloat64:
		return NumberMax
	default:
		return NumberFinite
	}
}
