package value

import "time"

// Date is a time value in milliseconds from the Unix epoch.
type Date int64

// Bounds of representable time values: ±100,000,000 days around the epoch.
const (
	MaxDate Date = 8_640_000_000_000_000
	MinDate Date = -MaxDate
)

// Valid reports whether d lies within [MinDate, MaxDate].
func (d Date) Valid() bool { return d >= MinDate && d <= MaxDate }

// Time converts d to a UTC time.Time.
func (d Date) Time() time.Time { return time.UnixMilli(int64(d)).UTC() }
