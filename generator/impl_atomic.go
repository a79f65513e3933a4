package generator

import "github.com/katalvlaran/esfuzz/value"

// generateUndefined produces the absence marker.
func generateUndefined(s *state, _ Config) value.Handle {
	return s.alloc(value.UndefinedValue())
}

// generateNull produces null.
func generateNull(s *state, _ Config) value.Handle {
	return s.alloc(value.NullValue())
}

// generateBoolean produces a fair coin flip.
func generateBoolean(s *state, _ Config) value.Handle {
	return s.alloc(value.BooleanValue(s.coin()))
}
