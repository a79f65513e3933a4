// SPDX-License-Identifier: MIT
// Package: esfuzz/generator
//
// errors.go - sentinel errors for the generator package.
//
// Error policy:
//   • The only engine-level failure is requesting a kind the registry does
//     not define. It is reported as *UnknownKindError, which unwraps to the
//     ErrUnknownKind sentinel, so both errors.Is and errors.As work.
//   • Every other input is clamped into a valid, possibly empty, result.
//   • Entry points prefix errors with their method name using %w.
//   • Option constructors panic on nil arguments; generation never panics.

package generator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/esfuzz/value"
)

// ErrUnknownKind indicates a kind name not present in the registry.
// Usage: if errors.Is(err, ErrUnknownKind) { /* fix the kind name */ }.
var ErrUnknownKind = errors.New("generator: unknown kind")

// UnknownKindError carries the kind name that failed the registry lookup.
type UnknownKindError struct {
	Kind value.Kind
}

// Error implements error.
func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("generator: unknown kind %q", string(e.Kind))
}

// Unwrap exposes ErrUnknownKind to errors.Is.
func (e *UnknownKindError) Unwrap() error { return ErrUnknownKind }

// unknownKind wraps an UnknownKindError with the method context.
func unknownKind(method string, k value.Kind) error {
	return fmt.Errorf("%s: %w", method, &UnknownKindError{Kind: k})
}
