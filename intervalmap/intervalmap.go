// Package intervalmap provides a mutable map from non-overlapping half-open
// intervals to values, backed by a sorted map keyed on each interval's lower
// boundary.
//
// Put associates an interval with a value, overwriting and splitting
// whatever it overlaps; Remove clears an interval, truncating or splitting
// the entries at its edges; Get answers point lookups in O(log n). Read-only
// views expose the contents as an ordered interval-to-value mapping
// (AsMapOfRanges) and as a restriction to a sub-interval (SubRangeMap).
//
// Invariant: the stored intervals are pairwise disjoint at all times, and
// each entry is keyed by its own lower boundary, so the backing map's key
// order is interval order.
//
// No implementation in this package is safe for concurrent mutation; callers
// that share a map across goroutines must synchronize externally. Views are
// live windows onto the owning map, not snapshots: mutating the map while
// iterating a view produces undefined results.
package intervalmap

import (
	"errors"
	"hash"
	"iter"

	"github.com/amp-labs/amp-ranges/hashing"
	"github.com/amp-labs/amp-ranges/interval"
	"github.com/amp-labs/amp-ranges/maps"
	"github.com/amp-labs/amp-ranges/sortable"
	"github.com/amp-labs/amp-ranges/zero"
)

var (
	// ErrEmptyMap is returned by Span when a map or sub-range view has no
	// visible entries.
	ErrEmptyMap = errors.New("interval map is empty")

	// ErrNotEnclosed is returned when a write through a sub-range view falls
	// outside the view's restriction. Writes are never clipped implicitly.
	ErrNotEnclosed = errors.New("interval not enclosed by sub-range restriction")

	// ErrEmptySubRangeMap is returned by writes against the degenerate empty
	// sub-range map, which cannot accept any interval.
	ErrEmptySubRangeMap = errors.New("cannot insert into an empty sub-range map")
)

// Map associates non-overlapping intervals of the key space with values.
//
// Every Map implementation in this package shares the semantics documented
// on the methods here; SubRangeMap returns Maps that delegate to their
// parent under an interval restriction.
type Map[K sortable.Sortable[K], V any] interface {
	// Get returns the value of the entry whose interval contains key,
	// or a zero value with found=false when no interval covers it.
	Get(key K) (value V, found bool)

	// GetEntry returns the full (interval, value) entry covering key, so the
	// caller learns the exact extent of the association, or found=false when
	// no interval covers it.
	GetEntry(key K) (entry interval.Entry[K, V], found bool)

	// Put associates rng with value. Any existing associations overlapping
	// rng are removed first (truncated or split at the edges), so afterwards
	// every key in rng maps to exactly (rng, value). Putting an empty
	// interval is a no-op.
	Put(rng interval.Interval[K], value V) error

	// PutAll applies Put for each entry of other's AsMapOfRanges view, in
	// ascending interval order. PutAll is not atomic: if a Put fails midway,
	// the entries already applied remain visible.
	PutAll(other Map[K, V]) error

	// Remove clears every association for keys in rng: entries inside rng
	// are deleted, entries straddling its edges are truncated, and an entry
	// enclosing all of rng is split in two. Associations outside rng are
	// preserved exactly. Removing an empty interval is a no-op.
	Remove(rng interval.Interval[K])

	// Clear removes all entries.
	Clear()

	// Span returns the minimal interval enclosing every entry, from the
	// lowest stored lower boundary to the highest stored upper boundary.
	// Returns ErrEmptyMap when there are no entries.
	Span() (interval.Interval[K], error)

	// AsMapOfRanges returns a live read-only view of the map as an ordered
	// interval-to-value mapping. Lookups on the view match exact intervals,
	// not containment.
	AsMapOfRanges() View[K, V]

	// SubRangeMap returns a live view of the portion of this map that
	// intersects rng. Reads are clipped to rng; writes must be enclosed by
	// rng or fail with ErrNotEnclosed; Clear on the view removes rng from
	// the parent. Narrowing a view further always re-derives against the
	// original backing map.
	SubRangeMap(rng interval.Interval[K]) Map[K, V]

	// Size returns the number of visible entries.
	Size() int

	// IsEmpty returns true if no entries are visible.
	IsEmpty() bool

	// Equals reports whether both maps hold the same intervals with equal
	// values, comparing their AsMapOfRanges views entry by entry with eq.
	Equals(other Map[K, V], eq func(V, V) bool) bool

	// String renders the AsMapOfRanges view.
	String() string

	hashing.Hashable
}

// treeMap is the owning implementation of Map: a navigable map from each
// stored interval's lower cut to its entry.
type treeMap[K sortable.Sortable[K], V any] struct {
	entriesByLowerCut maps.NavigableMap[interval.Cut[K], interval.Entry[K, V]]
}

// New creates an empty interval map.
func New[K sortable.Sortable[K], V any]() Map[K, V] {
	return &treeMap[K, V]{
		entriesByLowerCut: maps.NewNavigableMap[interval.Cut[K], interval.Entry[K, V]](),
	}
}

func (m *treeMap[K, V]) Get(key K) (V, bool) {
	entry, found := m.GetEntry(key)
	if !found {
		return zero.Value[V](), false
	}

	return entry.Value(), true
}

func (m *treeMap[K, V]) GetEntry(key K) (interval.Entry[K, V], bool) {
	// The covering entry, if any, is the one with the greatest lower
	// boundary at or below the key.
	candidate, found := m.entriesByLowerCut.FloorEntry(interval.Below(key)).Get()
	if found && candidate.Value.Contains(key) {
		return candidate.Value, true
	}

	return zero.Value[interval.Entry[K, V]](), false
}

func (m *treeMap[K, V]) Put(rng interval.Interval[K], value V) error {
	if rng.IsEmpty() {
		return nil
	}

	// Punch a hole for rng, then drop the new entry into it.
	m.Remove(rng)
	m.putEntry(rng.LowerCut(), rng.UpperCut(), value)

	return nil
}

func (m *treeMap[K, V]) PutAll(other Map[K, V]) error {
	for rng, value := range other.AsMapOfRanges().Seq() {
		if err := m.Put(rng, value); err != nil {
			return err
		}
	}

	return nil
}

// putEntry stores value for the interval [lower, upper), keyed at lower.
func (m *treeMap[K, V]) putEntry(lower, upper interval.Cut[K], value V) {
	m.entriesByLowerCut.Add(lower, interval.NewEntry(interval.New(lower, upper), value))
}

func (m *treeMap[K, V]) Remove(rng interval.Interval[K]) {
	if rng.IsEmpty() {
		return
	}

	// The comments below use [ ] for the bounds of rng and ( ) for the
	// bounds of stored entries.

	if below, found := m.entriesByLowerCut.LowerEntry(rng.LowerCut()).Get(); found {
		// ( [
		entry := below.Value
		if rng.LowerCut().LessThan(entry.Interval().UpperCut()) {
			// ( [ )
			if rng.UpperCut().LessThan(entry.Interval().UpperCut()) {
				// ( [ ] ): the entry is being split apart, so reinsert
				// the piece beyond rng.
				m.putEntry(rng.UpperCut(), entry.Interval().UpperCut(), entry.Value())
			}
			// Overwrite the entry with its truncated head.
			m.putEntry(entry.Interval().LowerCut(), rng.LowerCut(), entry.Value())
		}
	}

	if above, found := m.entriesByLowerCut.LowerEntry(rng.UpperCut()).Get(); found {
		// ( ]
		entry := above.Value
		if rng.UpperCut().LessThan(entry.Interval().UpperCut()) {
			// ( ] ), and truncation below already ran, so [ ( ] ):
			// keep the tail and drop whatever now sits at rng's lower cut.
			m.putEntry(rng.UpperCut(), entry.Interval().UpperCut(), entry.Value())
			m.entriesByLowerCut.Remove(rng.LowerCut())
		}
	}

	// Erase every entry whose lower cut lies inside rng. Collect first:
	// deleting while iterating the tree is undefined.
	var doomed []interval.Cut[K]

	for cut := range m.entriesByLowerCut.SeqFrom(rng.LowerCut()) {
		if !cut.LessThan(rng.UpperCut()) {
			break
		}

		doomed = append(doomed, cut)
	}

	for _, cut := range doomed {
		m.entriesByLowerCut.Remove(cut)
	}
}

func (m *treeMap[K, V]) Clear() {
	m.entriesByLowerCut.Clear()
}

func (m *treeMap[K, V]) Span() (interval.Interval[K], error) {
	first, found := m.entriesByLowerCut.FirstEntry().Get()
	if !found {
		return zero.Value[interval.Interval[K]](), ErrEmptyMap
	}

	last := m.entriesByLowerCut.LastEntry().GetOrPanic()

	return interval.New(first.Value.Interval().LowerCut(), last.Value.Interval().UpperCut()), nil
}

func (m *treeMap[K, V]) AsMapOfRanges() View[K, V] {
	return &mapOfRanges[K, V]{owner: m}
}

func (m *treeMap[K, V]) SubRangeMap(rng interval.Interval[K]) Map[K, V] {
	if rng.Equals(interval.All[K]()) {
		return m
	}

	return &subRangeMap[K, V]{parent: m, subRange: rng}
}

func (m *treeMap[K, V]) Size() int {
	return m.entriesByLowerCut.Size()
}

func (m *treeMap[K, V]) IsEmpty() bool {
	return m.entriesByLowerCut.IsEmpty()
}

func (m *treeMap[K, V]) Equals(other Map[K, V], eq func(V, V) bool) bool {
	return viewsEqual(m.AsMapOfRanges(), other.AsMapOfRanges(), eq)
}

func (m *treeMap[K, V]) String() string {
	return m.AsMapOfRanges().String()
}

func (m *treeMap[K, V]) UpdateHash(h hash.Hash) error {
	return hashEntries(h, m.AsMapOfRanges())
}

// mapOfRanges is the live AsMapOfRanges view over a treeMap: the map's
// contents read as an ordered interval-to-value mapping.
type mapOfRanges[K sortable.Sortable[K], V any] struct {
	owner *treeMap[K, V]
}

// Get matches by exact interval: the probe must equal a stored entry's
// interval boundary for boundary, not merely be contained in one.
func (v *mapOfRanges[K, V]) Get(rng interval.Interval[K]) (V, bool) {
	entry, found := v.owner.entriesByLowerCut.Get(rng.LowerCut())
	if found && entry.Interval().Equals(rng) {
		return entry.Value(), true
	}

	return zero.Value[V](), false
}

func (v *mapOfRanges[K, V]) Contains(rng interval.Interval[K]) bool {
	_, found := v.Get(rng)

	return found
}

func (v *mapOfRanges[K, V]) Size() int {
	return v.owner.entriesByLowerCut.Size()
}

func (v *mapOfRanges[K, V]) IsEmpty() bool {
	return v.owner.entriesByLowerCut.IsEmpty()
}

func (v *mapOfRanges[K, V]) Seq() iter.Seq2[interval.Interval[K], V] {
	return func(yield func(interval.Interval[K], V) bool) {
		for _, entry := range v.owner.entriesByLowerCut.Seq() {
			if !yield(entry.Interval(), entry.Value()) {
				return
			}
		}
	}
}

func (v *mapOfRanges[K, V]) Entries() []interval.Entry[K, V] {
	return collectEntries[K, V](v)
}

func (v *mapOfRanges[K, V]) Equals(other View[K, V], eq func(V, V) bool) bool {
	return viewsEqual[K, V](v, other, eq)
}

func (v *mapOfRanges[K, V]) String() string {
	return viewString[K, V](v)
}
