// Package interval provides half-open intervals over sortable keys, the
// boundary (Cut) type that delimits them, and the interval-to-value Entry
// pair. These are the building blocks of
// [github.com/amp-labs/amp-ranges/intervalmap].
package interval

import (
	"fmt"
	"hash"

	"github.com/amp-labs/amp-ranges/sortable"
)

// cutKind tags the four flavors of boundary. The declaration order is the
// sort order for the unbounded sentinels.
type cutKind int8

const (
	belowAll cutKind = iota
	belowValue
	aboveValue
	aboveAll
)

// Cut is a boundary in the key space: a point that every key is either
// strictly below or strictly above, so a pair of cuts delimits an interval
// without open/closed special cases.
//
// A cut either sits immediately below or immediately above a concrete key
// (Below, Above), or is one of the two unbounded sentinels (BelowAll,
// AboveAll). Cuts are totally ordered: BelowAll precedes every value cut,
// AboveAll follows every value cut, and for the same key Below(k) precedes
// Above(k). Cut implements sortable.Sortable, so cuts can key the sorted
// maps in this module directly.
//
// The zero value of Cut is BelowAll.
type Cut[K sortable.Sortable[K]] struct {
	kind     cutKind
	endpoint K
}

// Compile-time check that Cut implements Sortable over itself.
var _ sortable.Sortable[Cut[sortable.Int]] = Cut[sortable.Int]{}

// BelowAll returns the cut below every key: the lower boundary of an
// interval with no lower bound.
func BelowAll[K sortable.Sortable[K]]() Cut[K] {
	return Cut[K]{kind: belowAll}
}

// AboveAll returns the cut above every key: the upper boundary of an
// interval with no upper bound.
func AboveAll[K sortable.Sortable[K]]() Cut[K] {
	return Cut[K]{kind: aboveAll}
}

// Below returns the cut immediately below key, so key itself lies on the
// cut's upper side. As a lower boundary it includes key; as an upper
// boundary it excludes key.
func Below[K sortable.Sortable[K]](key K) Cut[K] {
	return Cut[K]{kind: belowValue, endpoint: key}
}

// Above returns the cut immediately above key, so key itself lies on the
// cut's lower side. As a lower boundary it excludes key; as an upper
// boundary it includes key.
func Above[K sortable.Sortable[K]](key K) Cut[K] {
	return Cut[K]{kind: aboveValue, endpoint: key}
}

// Compare returns -1, 0, or +1 as c sorts before, equal to, or after other.
func (c Cut[K]) Compare(other Cut[K]) int {
	if c.kind == belowAll || c.kind == aboveAll || other.kind == belowAll || other.kind == aboveAll {
		// At least one sentinel: the kind alone decides.
		switch {
		case c.kind == other.kind:
			return 0
		case c.kind == belowAll || other.kind == aboveAll:
			return -1
		default:
			return 1
		}
	}

	switch {
	case c.endpoint.LessThan(other.endpoint):
		return -1
	case other.endpoint.LessThan(c.endpoint):
		return 1
	case c.kind == other.kind:
		return 0
	case c.kind == belowValue:
		return -1
	default:
		return 1
	}
}

// Equals returns true if both cuts mark the same boundary.
func (c Cut[K]) Equals(other Cut[K]) bool {
	return c.Compare(other) == 0
}

// LessThan returns true if c sorts strictly before other.
func (c Cut[K]) LessThan(other Cut[K]) bool {
	return c.Compare(other) < 0
}

// AtMost returns true if c sorts before or equal to other.
func (c Cut[K]) AtMost(other Cut[K]) bool {
	return c.Compare(other) <= 0
}

// Endpoint returns the key the cut sits against, with ok=false for the
// unbounded sentinels, which have no endpoint.
func (c Cut[K]) Endpoint() (key K, ok bool) {
	return c.endpoint, c.kind == belowValue || c.kind == aboveValue
}

// Unbounded returns true for the BelowAll and AboveAll sentinels.
func (c Cut[K]) Unbounded() bool {
	return c.kind == belowAll || c.kind == aboveAll
}

// describeAsLower renders the cut as the left end of an interval.
func (c Cut[K]) describeAsLower() string {
	switch c.kind {
	case belowAll:
		return "(-∞"
	case belowValue:
		return fmt.Sprintf("[%v", c.endpoint)
	case aboveValue:
		return fmt.Sprintf("(%v", c.endpoint)
	default: // aboveAll never opens an interval, but stay printable
		return "(+∞"
	}
}

// describeAsUpper renders the cut as the right end of an interval.
func (c Cut[K]) describeAsUpper() string {
	switch c.kind {
	case aboveAll:
		return "+∞)"
	case belowValue:
		return fmt.Sprintf("%v)", c.endpoint)
	case aboveValue:
		return fmt.Sprintf("%v]", c.endpoint)
	default: // belowAll never closes an interval, but stay printable
		return "-∞)"
	}
}

// String returns the cut rendered as a lower boundary, e.g. "[5" or "(-∞".
func (c Cut[K]) String() string {
	return c.describeAsLower()
}

// UpdateHash writes the cut's kind and endpoint into h.
// The endpoint contributes through its fmt representation, so two keys with
// the same rendering hash alike; equality always has the final say.
func (c Cut[K]) UpdateHash(h hash.Hash) error {
	if _, err := fmt.Fprintf(h, "%d:", c.kind); err != nil {
		return err
	}

	if c.kind == belowValue || c.kind == aboveValue {
		if _, err := fmt.Fprintf(h, "%v", c.endpoint); err != nil {
			return err
		}
	}

	return nil
}
