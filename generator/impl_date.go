package generator

import "github.com/katalvlaran/esfuzz/value"

// dateSpan is the number of distinct representable dates.
const dateSpan = int64(value.MaxDate-value.MinDate) + 1

// generateDate produces a millisecond offset uniform in [MinDate, MaxDate].
func generateDate(s *state, _ Config) value.Handle {
	return s.alloc(value.DateValue(s.randomDate()))
}

func (s *state) randomDate() value.Date {
	return value.MinDate + value.Date(s.rng.Int63n(dateSpan))
}
