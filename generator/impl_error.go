// SPDX-License-Identifier: MIT
// Package: esfuzz/generator
//
// impl_error.go - instances of the standard error types.
//
// Contract:
//   • The type is uniform over value.ErrorTypes().
//   • The message is a random string under the same length cap as strings.
//   • The diagnostic Stack accessor is attached only when Functions is
//     enabled, so a callable-free tree never carries it.

package generator

import "github.com/katalvlaran/esfuzz/value"

func generateError(s *state, cfg Config) value.Handle {
	return s.alloc(value.ErrorValueOf(s.randomError(cfg)))
}

func (s *state) randomError(cfg Config) *value.ErrorValue {
	types := value.ErrorTypes()
	e := &value.ErrorValue{
		Type:    types[s.rng.Intn(len(types))],
		Message: s.randomString(cfg),
	}
	if cfg.Functions {
		e.Stack = value.NoopAccessor()
	}
	return e
}
