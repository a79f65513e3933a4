package generator

import "github.com/katalvlaran/esfuzz/value"

// generateArray produces an array of length uniform in [0, MaximumLength].
// The array's slot exists before its elements are dispatched, so an element
// may be the array itself or one of its earlier siblings.
func generateArray(s *state, cfg Config) value.Handle {
	arr := &value.Array{}
	h := s.alloc(value.ArrayValue(arr))

	n := s.rng.Intn(cfg.MaximumLength + 1)
	arr.Elements = make([]value.Handle, 0, n)
	nested := cfg.nested()
	for i := 0; i < n; i++ {
		arr.Elements = append(arr.Elements, s.dispatch(nested))
	}
	return h
}
