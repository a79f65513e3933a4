// SPDX-License-Identifier: MIT
// Package: esfuzz/generator
//
// config.go - generation configuration and deterministic defaults.
//
// Design:
//   • Config is the single source of truth for every generator knob.
//   • It is passed by VALUE down the recursion; nested calls receive a copy
//     with the depth budget decremented and Base cleared.
//   • NewConfig applies options in order (later overrides earlier), then
//     clamps limits into their valid domain. Nothing here ever fails.
//
// Defaults:
//   • MaximumDepth  = DefaultMaximumDepth  (5)
//   • MaximumLength = DefaultMaximumLength (10)
//   • Functions     = true
//   • Base          = nil (fresh object per call)
//
// A Base is a Ref, not a bare *value.Object: the handles stored in an object
// only resolve against the Arena that issued them, so extending a base means
// generating into that Arena.
//   • rng           = nil (each root call seeds its own from math/rand)
//   • log           = logr.Discard()

package generator

import (
	"math/rand"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/esfuzz/value"
)

// Config holds the options threaded through one generation tree.
type Config struct {
	// MaximumDepth is the remaining recursion budget. Once it is 1 or less,
	// the dispatcher only picks atomic kinds.
	MaximumDepth int
	// MaximumLength caps the members of every composite and the length of
	// every string.
	MaximumLength int
	// Functions enables callable values and accessor properties. When false,
	// no generated value transitively contains either.
	Functions bool
	// Base, if set, is extended in place by the top-level object or function
	// generation instead of a fresh object. The call then allocates into the
	// base's Arena. Nested calls never see it. Its existing properties count
	// toward MaximumLength.
	Base *value.Ref

	rng *rand.Rand
	log logr.Logger
}

// NewConfig returns the default configuration with opts applied in order.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		MaximumDepth:  DefaultMaximumDepth,
		MaximumLength: DefaultMaximumLength,
		Functions:     true,
		log:           logr.Discard(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.clamped()
}

// clamped returns cfg with negative limits raised to zero.
func (cfg Config) clamped() Config {
	if cfg.MaximumDepth < 0 {
		cfg.MaximumDepth = 0
	}
	if cfg.MaximumLength < 0 {
		cfg.MaximumLength = 0
	}
	return cfg
}

// nested returns the configuration for a value one level below cfg.
func (cfg Config) nested() Config {
	cfg.MaximumDepth--
	if cfg.MaximumDepth < 0 {
		cfg.MaximumDepth = 0
	}
	cfg.Base = nil
	return cfg
}

// source returns the configured RNG, or a freshly seeded one when none was
// supplied. The global math/rand source is safe for concurrent use, so
// concurrent root calls without an explicit RNG never share state.
func (cfg Config) source() *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}
	return rand.New(rand.NewSource(rand.Int63()))
}
