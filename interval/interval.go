package interval

import (
	"fmt"
	"hash"

	"github.com/amp-labs/amp-ranges/sortable"
)

// Interval is a contiguous span of the key space delimited by a pair of
// cuts, lower before-or-equal upper. The canonical shape is the half-open
// interval [lo, hi) built with ClosedOpen; the unbounded constructors
// (AtLeast, LessThan, All) cover the open-ended cases.
//
// An interval whose cuts coincide is empty: it contains no key and must not
// be stored in an interval map. Interval is an immutable value type.
type Interval[K sortable.Sortable[K]] struct {
	lower Cut[K]
	upper Cut[K]
}

// New creates an interval from two cuts.
// Panics if upper sorts before lower; an empty interval (equal cuts) is allowed.
func New[K sortable.Sortable[K]](lower, upper Cut[K]) Interval[K] {
	if upper.LessThan(lower) {
		panic(fmt.Sprintf("interval: inverted bounds %s..%s", lower.describeAsLower(), upper.describeAsUpper()))
	}

	return Interval[K]{lower: lower, upper: upper}
}

// ClosedOpen returns the half-open interval [lo, hi): lo included, hi
// excluded. Panics if hi is less than lo; lo == hi yields the empty interval.
func ClosedOpen[K sortable.Sortable[K]](lo, hi K) Interval[K] {
	return New(Below(lo), Below(hi))
}

// AtLeast returns the interval of every key >= lo.
func AtLeast[K sortable.Sortable[K]](lo K) Interval[K] {
	return New(Below(lo), AboveAll[K]())
}

// LessThan returns the interval of every key < hi.
func LessThan[K sortable.Sortable[K]](hi K) Interval[K] {
	return New(BelowAll[K](), Below(hi))
}

// All returns the interval containing every key.
func All[K sortable.Sortable[K]]() Interval[K] {
	return New(BelowAll[K](), AboveAll[K]())
}

// LowerCut returns the lower boundary.
func (r Interval[K]) LowerCut() Cut[K] {
	return r.lower
}

// UpperCut returns the upper boundary.
func (r Interval[K]) UpperCut() Cut[K] {
	return r.upper
}

// IsEmpty returns true if the interval contains no keys.
func (r Interval[K]) IsEmpty() bool {
	return r.lower.Equals(r.upper)
}

// Contains returns true if key lies inside the interval.
func (r Interval[K]) Contains(key K) bool {
	probe := Below(key)

	return r.lower.AtMost(probe) && probe.LessThan(r.upper)
}

// Encloses returns true if every key of other also lies in r.
// Every interval encloses an empty interval positioned inside it.
func (r Interval[K]) Encloses(other Interval[K]) bool {
	return r.lower.AtMost(other.lower) && other.upper.AtMost(r.upper)
}

// IsConnected returns true if there exists an interval (possibly empty)
// that both r and other enclose: they overlap or touch with no gap between
// them. Intersection is well-defined exactly when this holds.
func (r Interval[K]) IsConnected(other Interval[K]) bool {
	return r.lower.AtMost(other.upper) && other.lower.AtMost(r.upper)
}

// Intersection returns the largest interval enclosed by both r and other.
// The result may be empty when the two merely touch. Panics if the intervals
// are not connected; guard with IsConnected.
func (r Interval[K]) Intersection(other Interval[K]) Interval[K] {
	lower := r.lower
	if lower.LessThan(other.lower) {
		lower = other.lower
	}

	upper := r.upper
	if other.upper.LessThan(upper) {
		upper = other.upper
	}

	if upper.LessThan(lower) {
		panic(fmt.Sprintf("interval: %s and %s are not connected", r, other))
	}

	return Interval[K]{lower: lower, upper: upper}
}

// Equals returns true if both intervals have identical boundaries.
func (r Interval[K]) Equals(other Interval[K]) bool {
	return r.lower.Equals(other.lower) && r.upper.Equals(other.upper)
}

// String renders the interval in bracket notation, e.g. "[3..7)" or "(-∞..+∞)".
func (r Interval[K]) String() string {
	return r.lower.describeAsLower() + ".." + r.upper.describeAsUpper()
}

// UpdateHash writes both boundaries into h.
func (r Interval[K]) UpdateHash(h hash.Hash) error {
	if err := r.lower.UpdateHash(h); err != nil {
		return err
	}

	if _, err := h.Write([]byte("..")); err != nil {
		return err
	}

	return r.upper.UpdateHash(h)
}
