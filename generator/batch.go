// SPDX-License-Identifier: MIT
// Package: esfuzz/generator
//
// batch.go - many independent root calls in parallel.
//
// Each root gets its own RNG seeded from the configured source before any
// goroutine starts, so the batch is reproducible under WithSeed regardless of
// scheduling. Roots share no mutable state; Base is not applied because every
// root would extend the same object.

package generator

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/esfuzz/value"
)

// Batch produces n trees of uniformly chosen kinds. It stops early and
// returns the context error when ctx is cancelled.
func Batch(ctx context.Context, n int, opts ...Option) ([]*value.Tree, error) {
	return batch(ctx, "", n, opts)
}

// BatchKind produces n trees of kind k. An unknown k fails before any work
// starts.
func BatchKind(ctx context.Context, k value.Kind, n int, opts ...Option) ([]*value.Tree, error) {
	if !Registered(k) {
		return nil, unknownKind(MethodBatch, k)
	}
	return batch(ctx, k, n, opts)
}

func batch(ctx context.Context, k value.Kind, n int, opts []Option) ([]*value.Tree, error) {
	if n <= 0 {
		return []*value.Tree{}, nil
	}
	cfg := NewConfig(opts...)
	if cfg.Base != nil {
		cfg.log.V(1).Info("ignoring base object in batch", "n", n)
		cfg.Base = nil
	}

	master := cfg.source()
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = master.Int63()
	}

	out := make([]*value.Tree, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range seeds {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			root := cfg
			root.rng = rand.New(rand.NewSource(seeds[i]))
			out[i] = run(root, k)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBatch, err)
	}
	return out, nil
}
