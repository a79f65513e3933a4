package generator_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/esfuzz/generator"
)

func BenchmarkAny(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		generator.Any(generator.WithRand(r))
	}
}

func BenchmarkAnyDeep(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		generator.Any(generator.WithRand(r), generator.WithMaximumDepth(8), generator.WithMaximumLength(6))
	}
}

func BenchmarkBatch(b *testing.B) {
	ctx := context.Background()
	for i := 0; i < b.N; i++ {
		if _, err := generator.Batch(ctx, 128, generator.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}
