// SPDX-License-Identifier: MIT
// Package: esfuzz/generator
//
// impl_number.go - random doubles with the IEEE-754 edge cases enumerated.
//
// Contract: each of five outcomes is chosen with probability 1/5:
//   • a finite value sign × U[0,1) × MaxFloat64 spanning the whole magnitude
//     range;
//   • exactly MaxFloat64, which the continuous draw never reaches;
//   • NaN;
//   • +Inf;
//   • −Inf.

package generator

import (
	"math"

	"github.com/katalvlaran/esfuzz/value"
)

// numberOutcomes are the five equally likely number generators.
var numberOutcomes = [...]func(s *state) float64{
	func(s *state) float64 {
		sign := 1.0
		if s.coin() {
			sign = -1
		}
		return sign * s.rng.Float64() * math.MaxFloat64
	},
	func(*state) float64 { return math.MaxFloat64 },
	func(*state) float64 { return math.NaN() },
	func(*state) float64 { return math.Inf(-1) },
	func(*state) float64 { return math.Inf(1) },
}

func generateNumber(s *state, _ Config) value.Handle {
	return s.alloc(value.NumberValue(s.randomNumber()))
}

func (s *state) randomNumber() float64 {
	return numberOutcomes[s.rng.Intn(len(numberOutcomes))](s)
}
