package sortable

import "time"

// Time is a sortable wrapper type for time.Time, so instants can key sorted
// collections (schedules, validity windows, and similar time-sliced data).
//
// Equality and ordering use time.Time.Equal and time.Time.Before, which
// compare the instant rather than the wall-clock representation, so the same
// moment in different locations compares equal.
type Time time.Time

// Compile-time check that Time implements Sortable[Time].
var _ Sortable[Time] = (*Time)(nil)

// Equals returns true if both values represent the same time instant.
func (t Time) Equals(other Time) bool {
	return time.Time(t).Equal(time.Time(other))
}

// LessThan returns true if this instant is before the other instant.
func (t Time) LessThan(other Time) bool {
	return time.Time(t).Before(time.Time(other))
}
