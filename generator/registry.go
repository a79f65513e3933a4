// SPDX-License-Identifier: MIT
// Package: esfuzz/generator
//
// registry.go - the Kind Registry.
//
// The registry maps every value.Kind to its generator and atomicity. It is
// built once in init and never mutated afterwards; the eligible-kind lists
// used by the dispatcher are derived from it in value.Kinds() order, so
// selection is reproducible for a fixed seed.

package generator

import (
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/esfuzz/value"
)

// kindGenerator describes how to produce one instance of a kind. generate
// allocates exactly one slot for the value it produces and returns its handle;
// nested values are obtained through state.dispatch.
type kindGenerator struct {
	atomic   bool
	generate func(s *state, cfg Config) value.Handle
}

// Set once by init. The composite generators reach these through dispatch,
// so they cannot be package-level initializers.
var (
	registry         map[value.Kind]kindGenerator
	allKinds         []value.Kind
	atomicKinds      []value.Kind
	nonCallableKinds []value.Kind
)

func init() {
	registry = map[value.Kind]kindGenerator{
		value.KindUndefined: {atomic: true, generate: generateUndefined},
		value.KindNull:      {atomic: true, generate: generateNull},
		value.KindBoolean:   {atomic: true, generate: generateBoolean},
		value.KindString:    {atomic: true, generate: generateString},
		value.KindNumber:    {atomic: true, generate: generateNumber},
		value.KindObject:    {atomic: false, generate: generateObject},
		value.KindFunction:  {atomic: false, generate: generateFunction},
		value.KindArray:     {atomic: false, generate: generateArray},
		value.KindDate:      {atomic: false, generate: generateDate},
		value.KindRegExp:    {atomic: false, generate: generatePattern},
		value.KindError:     {atomic: false, generate: generateError},
	}
	allKinds = registeredKinds(func(value.Kind, kindGenerator) bool { return true })
	atomicKinds = registeredKinds(func(_ value.Kind, g kindGenerator) bool { return g.atomic })
	nonCallableKinds = registeredKinds(func(k value.Kind, _ kindGenerator) bool { return k != value.KindFunction })
}

// registeredKinds returns the registry keys accepted by keep, in
// value.Kinds() order.
func registeredKinds(keep func(value.Kind, kindGenerator) bool) []value.Kind {
	out := make([]value.Kind, 0, len(registry))
	for _, k := range value.Kinds() {
		if g, ok := registry[k]; ok && keep(k, g) {
			out = append(out, k)
		}
	}
	return slices.Clip(out)
}

// lookup returns the generator registered for k.
func lookup(k value.Kind) (kindGenerator, bool) {
	g, ok := registry[k]
	return g, ok
}

// eligibleKinds returns the kinds the dispatcher may pick under cfg.
func eligibleKinds(cfg Config) []value.Kind {
	switch {
	case cfg.MaximumDepth <= 1:
		return atomicKinds
	case !cfg.Functions:
		return nonCallableKinds
	default:
		return allKinds
	}
}

// Registered reports whether k names a registered kind.
func Registered(k value.Kind) bool {
	_, ok := lookup(k)
	return ok
}

// RegisteredKinds returns every registered kind in value.Kinds() order.
func RegisteredKinds() []value.Kind {
	return slices.Clone(allKinds)
}
