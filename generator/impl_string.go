// SPDX-License-Identifier: MIT
// Package: esfuzz/generator
//
// impl_string.go - random strings of UTF-16 code units.
//
// Contract:
//   • Length is uniform in [0, MaximumLength].
//   • Every code unit is uniform in [0, CodeUnitLimit); unpaired surrogates
//     are produced as readily as any other unit.
//   • MaximumLength = 0 always yields the empty string.

package generator

import "github.com/katalvlaran/esfuzz/value"

func generateString(s *state, cfg Config) value.Handle {
	return s.alloc(value.StringValue(s.randomString(cfg)))
}

// randomString draws one string without allocating a slot. Object property
// names and error messages use it directly.
func (s *state) randomString(cfg Config) value.String {
	n := s.rng.Intn(cfg.MaximumLength + 1)
	out := make(value.String, n)
	for i := range out {
		out[i] = uint16(s.rng.Intn(CodeUnitLimit))
	}
	return out
}
