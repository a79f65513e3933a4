package generator_test

import (
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/esfuzz/generator"
)

func TestLogger_ReportsRootsAndReuse(t *testing.T) {
	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 2})

	reused := 0
	for seed := int64(0); seed < 50 && reused == 0; seed++ {
		tree := generator.Any(generator.WithLogger(log), generator.WithSeed(seed))
		reused += tree.Reused
	}
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, `"generated tree"`)
	assert.Positive(t, reused)
	assert.Contains(t, joined, `"reusing value"`)
}

func TestLogger_QuietBelowVerbosity(t *testing.T) {
	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 0})

	generator.Any(generator.WithLogger(log), generator.WithSeed(1))
	assert.Empty(t, lines)
}
