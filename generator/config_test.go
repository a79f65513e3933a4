// Package generator contains unit tests for the configuration primitives
// (Config and Option) to ensure correct defaults, ordering and clamping.
package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/esfuzz/value"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	assert.Equal(t, DefaultMaximumDepth, cfg.MaximumDepth)
	assert.Equal(t, DefaultMaximumLength, cfg.MaximumLength)
	assert.True(t, cfg.Functions)
	assert.Nil(t, cfg.Base)
	assert.Nil(t, cfg.rng)
	assert.Nil(t, cfg.log.GetSink(), "default logger discards")
}

func TestNewConfig_LastOptionWins(t *testing.T) {
	t.Parallel()

	cfg := NewConfig(WithMaximumDepth(2), WithMaximumDepth(7), WithFunctions(false), WithFunctions(true))
	assert.Equal(t, 7, cfg.MaximumDepth)
	assert.True(t, cfg.Functions)
}

func TestNewConfig_ClampsNegativeLimits(t *testing.T) {
	t.Parallel()

	cfg := NewConfig(WithMaximumDepth(-3), WithMaximumLength(-1))
	assert.Zero(t, cfg.MaximumDepth)
	assert.Zero(t, cfg.MaximumLength)
}

func TestConfig_Nested(t *testing.T) {
	t.Parallel()

	base := value.TreeOf(value.ObjectValue(value.NewObject()))
	cfg := NewConfig(WithMaximumDepth(2), WithBase(base, base.Root))
	require.NotNil(t, cfg.Base)

	n1 := cfg.nested()
	assert.Equal(t, 1, n1.MaximumDepth)
	assert.Nil(t, n1.Base, "nested calls never extend the base")
	assert.Same(t, base, cfg.Base.Tree, "nested must not mutate the parent config")

	n2 := n1.nested().nested()
	assert.Zero(t, n2.MaximumDepth, "depth floors at zero")
}

func TestRNGOptions(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { WithRand(nil) })

	r := rand.New(rand.NewSource(1))
	cfg := NewConfig(WithRand(r))
	assert.Same(t, r, cfg.source())

	a := NewConfig(WithSeed(42)).source()
	b := NewConfig(WithSeed(42)).source()
	assert.Equal(t, a.Int63(), b.Int63())

	// Without an RNG every call to source yields an independent generator.
	unseeded := NewConfig()
	assert.NotSame(t, unseeded.source(), unseeded.source())
}

func TestWithConfig_CopiesPublicFields(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(3))
	base := value.TreeOf(value.ObjectValue(value.NewFunction()))
	src := NewConfig(WithMaximumDepth(9), WithMaximumLength(4), WithFunctions(false), WithBase(base, base.Root))

	cfg := NewConfig(WithRand(r), WithConfig(src))
	assert.Equal(t, 9, cfg.MaximumDepth)
	assert.Equal(t, 4, cfg.MaximumLength)
	assert.False(t, cfg.Functions)
	assert.Same(t, src.Base, cfg.Base)
	assert.Same(t, r, cfg.rng, "WithConfig leaves the RNG alone")
}

func TestWithBase_NilTreeClears(t *testing.T) {
	t.Parallel()

	base := value.TreeOf(value.ObjectValue(value.NewObject()))
	cfg := NewConfig(WithBase(base, base.Root), WithBase(nil, 0))
	assert.Nil(t, cfg.Base)
}
