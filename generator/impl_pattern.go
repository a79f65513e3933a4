package generator

import "github.com/katalvlaran/esfuzz/value"

// generatePattern produces the fixed pattern body with each recognized flag
// included independently with probability 1/2.
func generatePattern(s *state, _ Config) value.Handle {
	return s.alloc(value.PatternValue(s.randomPattern()))
}

func (s *state) randomPattern() *value.Pattern {
	flags := make([]byte, 0, len(value.PatternFlags))
	for i := 0; i < len(value.PatternFlags); i++ {
		if s.coin() {
			flags = append(flags, value.PatternFlags[i])
		}
	}
	return &value.Pattern{Source: value.PatternSource, Flags: string(flags)}
}
