// SPDX-License-Identifier: MIT
// Package: esfuzz/generator
//
// api.go - public entry points.
//
// Design contract:
//   • Generate(kind, opts...) is the single orchestrator: resolve options,
//     look up the kind, run one root call, return the Tree.
//   • Any(opts...) is Generate with no kind requested.
//   • Per-kind helpers exist for callers that want one specific kind without
//     a registry lookup. Leaf kinds return the payload directly; kinds that
//     can hold nested values return a Tree.
//   • Every call owns a fresh pool; nothing persists between calls except the
//     RNG stream when the same *rand.Rand is supplied again.

package generator

import (
	"github.com/katalvlaran/esfuzz/value"
)

// Generate produces one value of kind k, or of a uniformly chosen kind when k
// is empty. It fails only with an *UnknownKindError (errors.Is ErrUnknownKind)
// when k is not registered.
func Generate(k value.Kind, opts ...Option) (*value.Tree, error) {
	if k != "" && !Registered(k) {
		return nil, unknownKind(MethodGenerate, k)
	}
	return run(NewConfig(opts...), k), nil
}

// Any produces one value of a uniformly chosen kind. Composite kinds are
// only eligible while the depth budget exceeds 1.
func Any(opts ...Option) *value.Tree {
	return run(NewConfig(opts...), "")
}

// Object produces a random object. Given WithBase on a plain object it
// extends that object and the result shares the base's Arena.
func Object(opts ...Option) *value.Tree {
	return run(NewConfig(opts...), value.KindObject)
}

// Function produces a random callable object, extending WithBase when it
// names a callable one. With functions disabled it still returns a function
// at the root, but nothing nested inside is callable or an accessor and no
// nested reference leads back to the root.
func Function(opts ...Option) *value.Tree {
	return run(NewConfig(opts...), value.KindFunction)
}

// Array produces a random array.
func Array(opts ...Option) *value.Tree {
	return run(NewConfig(opts...), value.KindArray)
}

// Undefined returns the absence marker.
func Undefined() value.Value { return value.UndefinedValue() }

// Null returns null.
func Null() value.Value { return value.NullValue() }

// Boolean returns a fair coin flip.
func Boolean(opts ...Option) bool {
	return newState(NewConfig(opts...)).coin()
}

// String returns a random string of at most MaximumLength code units.
func String(opts ...Option) value.String {
	cfg := NewConfig(opts...)
	return newState(cfg).randomString(cfg)
}

// Number returns a random double; see impl_number.go for the outcomes.
func Number(opts ...Option) float64 {
	return newState(NewConfig(opts...)).randomNumber()
}

// Date returns a random time value within [value.MinDate, value.MaxDate].
func Date(opts ...Option) value.Date {
	return newState(NewConfig(opts...)).randomDate()
}

// Pattern returns a random pattern.
func Pattern(opts ...Option) *value.Pattern {
	return newState(NewConfig(opts...)).randomPattern()
}

// Error returns a random error instance.
func Error(opts ...Option) *value.ErrorValue {
	cfg := NewConfig(opts...)
	return newState(cfg).randomError(cfg)
}
