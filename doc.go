// Package esfuzz generates random values of a dynamic, ECMAScript-like type
// system for property-based and fuzz testing.
//
// Values are drawn from eleven kinds:
//
//	atomic:    undefined, null, boolean, string, number
//	composite: object, function, array, date, regexp, error
//
// Generated structures may share values and may be circular: a nested
// request can be answered with a value produced earlier in the same call,
// including one of its own ancestors.
//
// The module is organized in three subpackages:
//
//	value/     - the value model: kinds, property descriptors, the arena that
//	             owns every value of one generated Tree
//	generator/ - the kind registry, the dispatcher with its depth and length
//	             budgets, per-kind generators and parallel batches
//	inspect/   - reference graph over a Tree: depth, cycles, sharing,
//	             invariant checks and a cycle-safe printer
//
// Quick start:
//
//	tree := generator.Any(generator.WithSeed(7), generator.WithMaximumDepth(3))
//	out, _ := inspect.Format(tree)
//	fmt.Println(out)
//
// Every entry point accepts functional options (WithMaximumDepth,
// WithMaximumLength, WithFunctions, WithBase, WithSeed, WithRand,
// WithLogger). Generation is deterministic for a fixed seed.
package esfuzz
