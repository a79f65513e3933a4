// SPDX-License-Identifier: MIT
// Package: esfuzz/generator
//
// options.go - functional options for the generator package.
//
// Contract:
//   • Options are functional (type Option func(*Config)).
//   • Numeric limits are never rejected: negative values clamp to zero when
//     the configuration is resolved.
//   • Option constructors PANIC on nil RNGs, since a nil source can only be a
//     programmer error. Generation itself never panics.
//   • Determinism is explicit: seed via WithSeed or WithRand.

package generator

import (
	"math/rand"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/esfuzz/value"
)

// Option customizes a Config before generation begins.
type Option func(*Config)

// WithMaximumDepth sets the recursion budget. Values below zero clamp to 0.
func WithMaximumDepth(n int) Option {
	return func(c *Config) {
		c.MaximumDepth = n
	}
}

// WithMaximumLength caps composite members and string length. Values below
// zero clamp to 0, which yields empty strings and empty composites.
func WithMaximumLength(n int) Option {
	return func(c *Config) {
		c.MaximumLength = n
	}
}

// WithFunctions enables or disables callable values and accessor properties.
func WithFunctions(enabled bool) Option {
	return func(c *Config) {
		c.Functions = enabled
	}
}

// WithBase makes the top-level object (or, for a callable base, function)
// generation extend the object stored at slot h of tree in place. New values
// are allocated in tree's Arena and the result shares it. A nil tree restores
// fresh objects.
func WithBase(tree *value.Tree, h value.Handle) Option {
	return func(c *Config) {
		if tree == nil {
			c.Base = nil
			return
		}
		c.Base = tree.Ref(h)
	}
}

// WithRand provides an explicit RNG. The RNG is not safe for concurrent use;
// do not share it between concurrent root calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *Config) {
		c.rng = r
	}
}

// WithSeed creates a new RNG from seed, making generation reproducible.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger routes generator diagnostics to l. Root calls log at V(1),
// reuse decisions at V(2).
func WithLogger(l logr.Logger) Option {
	return func(c *Config) {
		c.log = l
	}
}

// WithConfig copies the public fields of base (depth, length, functions and
// base object), leaving RNG and logger untouched. It is how a Config obtained
// elsewhere, e.g. from NewConfig, is fed back into an entry point.
func WithConfig(base Config) Option {
	return func(c *Config) {
		c.MaximumDepth = base.MaximumDepth
		c.MaximumLength = base.MaximumLength
		c.Functions = base.Functions
		c.Base = base.Base
	}
}
