package intervalmap

import (
	"hash"
	"iter"
	"strings"

	"github.com/amp-labs/amp-ranges/interval"
	"github.com/amp-labs/amp-ranges/sortable"
)

// View is a live read-only rendering of an interval map as an ordered
// mapping from interval to value. Iteration ascends by lower boundary.
// Lookups match exact intervals: a probe interval merely contained in a
// stored one is not a hit.
//
// A View re-reads its backing map on every call. Mutating the backing map
// while iterating a View produces undefined results; copy Entries first if
// a stable snapshot is needed.
type View[K sortable.Sortable[K], V any] interface {
	// Get returns the value stored under exactly rng, or found=false.
	Get(rng interval.Interval[K]) (value V, found bool)

	// Contains returns true if exactly rng is a stored interval.
	Contains(rng interval.Interval[K]) bool

	// Size returns the number of visible entries.
	Size() int

	// IsEmpty returns true if no entries are visible.
	IsEmpty() bool

	// Seq iterates the visible (interval, value) pairs in ascending order
	// of lower boundary.
	Seq() iter.Seq2[interval.Interval[K], V]

	// Entries returns the visible entries, ascending, as a fresh slice.
	Entries() []interval.Entry[K, V]

	// Equals reports whether both views hold the same intervals in the same
	// order with values equal under eq.
	Equals(other View[K, V], eq func(V, V) bool) bool

	// String renders the view as "{[1..4)=a, [8..10)=b}".
	String() string
}

// viewsEqual compares two views entry by entry in iteration order.
func viewsEqual[K sortable.Sortable[K], V any](a, b View[K, V], eq func(V, V) bool) bool {
	if a.Size() != b.Size() {
		return false
	}

	next, stop := iter.Pull2(b.Seq())
	defer stop()

	for rng, value := range a.Seq() {
		otherRng, otherValue, ok := next()
		if !ok || !rng.Equals(otherRng) || !eq(value, otherValue) {
			return false
		}
	}

	return true
}

// viewString renders a view in map notation.
func viewString[K sortable.Sortable[K], V any](v View[K, V]) string {
	var sb strings.Builder

	sb.WriteByte('{')

	first := true
	for _, entry := range collectEntries(v) {
		if !first {
			sb.WriteString(", ")
		}

		sb.WriteString(entry.String())

		first = false
	}

	sb.WriteByte('}')

	return sb.String()
}

// collectEntries materializes a view's contents, ascending.
func collectEntries[K sortable.Sortable[K], V any](v View[K, V]) []interval.Entry[K, V] {
	entries := make([]interval.Entry[K, V], 0, v.Size())
	for rng, value := range v.Seq() {
		entries = append(entries, interval.NewEntry(rng, value))
	}

	return entries
}

// hashEntries feeds every visible entry of a view, in order, into h.
// Hashing delegates to the view so that a map and an equal sub-range view
// hash alike.
func hashEntries[K sortable.Sortable[K], V any](h hash.Hash, v View[K, V]) error {
	for _, entry := range collectEntries(v) {
		if err := entry.UpdateHash(h); err != nil {
			return err
		}
	}

	return nil
}
