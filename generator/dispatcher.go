// SPDX-License-Identifier: MIT
// Package: esfuzz/generator
//
// dispatcher.go - kind selection, depth budget and value reuse.
//
// Model:
//   • One root call owns one state: a Tree whose Arena doubles as the value
//     pool. Every generated value occupies exactly one slot, so "the pool"
//     is the set of slots allocated so far in this root call.
//   • Composites allocate their slot before generating children, so a
//     child may be handed the handle of an ancestor (a true cycle) or of an
//     earlier sibling (sharing).
//   • A nested request picks, with ReuseProbability, a uniformly chosen
//     existing slot; otherwise a uniformly chosen eligible kind.
//   • The root is always generated, never reused.
//   • With a Base, the call allocates into the base's Arena and the pool
//     starts at the first slot it allocates, so older slots are not reused.
//   • With Functions disabled a function root is left out of the pool, so
//     nothing beneath it can reach a callable value.
//
// Termination: the depth budget strictly decreases on every composite
// recursion and at budget ≤ 1 only atomic kinds are eligible.

package generator

import (
	"math/rand"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/esfuzz/value"
)

// state is the mutable context of one root generation call.
type state struct {
	tree *value.Tree
	rng  *rand.Rand
	log  logr.Logger
	// first is the first slot allocated by this call. Slots below it belong
	// to an adopted base and are never reused.
	first value.Handle
}

// newState prepares a root call under cfg.
func newState(cfg Config) *state {
	return &state{
		tree: value.NewTree(),
		rng:  cfg.source(),
		log:  cfg.log,
	}
}

// alloc stores v in the arena, which also makes it eligible for reuse.
func (s *state) alloc(v value.Value) value.Handle {
	return s.tree.Arena.Alloc(v)
}

// coin returns a fair boolean.
func (s *state) coin() bool {
	return s.rng.Intn(2) == 1
}

// pick returns a uniformly chosen eligible kind.
func (s *state) pick(cfg Config) value.Kind {
	kinds := eligibleKinds(cfg)
	return kinds[s.rng.Intn(len(kinds))]
}

// callable reports whether slot h holds a function.
func (s *state) callable(h value.Handle) bool {
	v, ok := s.tree.Value(h)
	return ok && v.Kind == value.KindFunction
}

// dispatch produces one nested value of any eligible kind. With Functions
// disabled the only callable slot of the pool is a function root, which is
// left out.
func (s *state) dispatch(cfg Config) value.Handle {
	lo := s.first
	if !cfg.Functions && s.callable(lo) {
		lo++
	}
	if n := s.tree.Arena.Len() - int(lo); n > 0 && s.rng.Float64() < ReuseProbability {
		h := lo + value.Handle(s.rng.Intn(n))
		s.tree.Reused++
		if l := s.log.V(2); l.Enabled() {
			l.Info("reusing value", "tree", s.tree.ID.String(), "handle", int(h))
		}
		return h
	}
	return registry[s.pick(cfg)].generate(s, cfg)
}

// adopt makes the call generate into the Arena of cfg.Base when the root of
// kind k is going to extend it.
func (s *state) adopt(cfg Config, k value.Kind) {
	if k != value.KindObject && k != value.KindFunction {
		return
	}
	obj, ok := cfg.Base.Object()
	if !ok || obj.Callable != (k == value.KindFunction) {
		return
	}
	s.tree.Arena = cfg.Base.Tree.Arena
	s.first = value.Handle(s.tree.Arena.Len())
}

// run performs one root call. An empty kind means "any kind"; any other kind
// must already be known to exist in the registry. The root is never a reused
// value.
func run(cfg Config, k value.Kind) *value.Tree {
	s := newState(cfg)
	if k == "" {
		k = s.pick(cfg)
	}
	s.adopt(cfg, k)
	s.tree.Root = registry[k].generate(s, cfg)

	if l := s.log.V(1); l.Enabled() {
		l.Info("generated tree",
			"tree", s.tree.ID.String(),
			"kind", string(s.tree.RootValue().Kind),
			"slots", s.tree.Arena.Len()-int(s.first),
			"reused", s.tree.Reused)
	}
	return s.tree
}
