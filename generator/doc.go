// Package generator synthesizes random values of every value.Kind.
//
// What
//
//   - Generate(kind, opts...) produces exactly the requested kind, or any kind
//     when kind is empty; Any(opts...) is the latter.
//   - Per-kind helpers (String, Number, Date, Pattern, Error, Object,
//     Function, Array, ...) skip the registry lookup.
//   - Batch/BatchKind run many independent root calls concurrently.
//
// How
//
//	Kind Registry: a static table kind → {atomic, generate}. Atomic kinds
//	(undefined, null, boolean, string, number) never recurse. Composite kinds
//	(object, function, array, date, regexp, error) may dispatch nested values.
//
//	Dispatcher: for every nested value, with probability ReuseProbability it
//	returns a uniformly chosen value already generated in this root call
//	(this is how shared and circular references arise); otherwise it picks a
//	kind uniformly among the eligible ones. Once the depth budget is ≤ 1 only
//	atomic kinds are eligible, and with functions disabled the function kind
//	never is.
//
// Limits
//
//   - MaximumDepth (default 5): decremented by one per composite recursion.
//   - MaximumLength (default 10): caps composite members and string length.
//   - Functions (default true): false forbids callables and accessors
//     transitively.
//   - Negative limits clamp to zero; zero yields empty strings/composites.
//
// Determinism
//
//	With WithSeed or WithRand, identical options and call order produce
//	identical trees. Without them each root call seeds its own RNG from the
//	process-wide math/rand source.
//
// Errors
//
//	The only failure is an unregistered kind: *UnknownKindError, matching
//	errors.Is(err, ErrUnknownKind).
//
// Usage
//
//	tree, err := generator.Generate(value.KindArray,
//	    generator.WithMaximumLength(3),
//	    generator.WithMaximumDepth(2),
//	    generator.WithSeed(42),
//	)
//	if err != nil {
//	    // only ErrUnknownKind
//	}
//	root := tree.RootValue()
//	for _, h := range root.Array.Elements {
//	    v, _ := tree.Value(h)
//	    _ = v.Kind
//	}
package generator
