package intervalmap

import (
	"fmt"
	"hash"
	"iter"

	"github.com/amp-labs/amp-ranges/interval"
	"github.com/amp-labs/amp-ranges/sortable"
	"github.com/amp-labs/amp-ranges/zero"
)

// subRangeMap is the live view of a treeMap restricted to subRange. It owns
// no entries: every operation delegates to the parent after intersecting
// with the restriction. Reads clip their results to subRange; writes must
// already be enclosed by it.
type subRangeMap[K sortable.Sortable[K], V any] struct {
	parent   *treeMap[K, V]
	subRange interval.Interval[K]
}

func (s *subRangeMap[K, V]) Get(key K) (V, bool) {
	if !s.subRange.Contains(key) {
		return zero.Value[V](), false
	}

	return s.parent.Get(key)
}

func (s *subRangeMap[K, V]) GetEntry(key K) (interval.Entry[K, V], bool) {
	if s.subRange.Contains(key) {
		if entry, found := s.parent.GetEntry(key); found {
			// Never report coverage beyond the restriction.
			return interval.NewEntry(entry.Interval().Intersection(s.subRange), entry.Value()), true
		}
	}

	return zero.Value[interval.Entry[K, V]](), false
}

func (s *subRangeMap[K, V]) Put(rng interval.Interval[K], value V) error {
	if !s.subRange.Encloses(rng) {
		return fmt.Errorf("%w: cannot put %s into a sub-range map over %s",
			ErrNotEnclosed, rng, s.subRange)
	}

	return s.parent.Put(rng, value)
}

func (s *subRangeMap[K, V]) PutAll(other Map[K, V]) error {
	if other.AsMapOfRanges().IsEmpty() {
		return nil
	}

	span, err := other.Span()
	if err != nil {
		return err
	}

	if !s.subRange.Encloses(span) {
		return fmt.Errorf("%w: cannot put a map spanning %s into a sub-range map over %s",
			ErrNotEnclosed, span, s.subRange)
	}

	return s.parent.PutAll(other)
}

func (s *subRangeMap[K, V]) Remove(rng interval.Interval[K]) {
	if rng.IsConnected(s.subRange) {
		s.parent.Remove(rng.Intersection(s.subRange))
	}
}

func (s *subRangeMap[K, V]) Clear() {
	s.parent.Remove(s.subRange)
}

// Span probes the parent for entries adjacent to the restriction's
// boundaries and clamps the result to the restriction.
func (s *subRangeMap[K, V]) Span() (interval.Interval[K], error) {
	entries := s.parent.entriesByLowerCut

	var lower interval.Cut[K]

	lowerEntry, found := entries.FloorEntry(s.subRange.LowerCut()).Get()
	if found && s.subRange.LowerCut().LessThan(lowerEntry.Value.Interval().UpperCut()) {
		// An entry straddles the restriction's lower edge.
		lower = s.subRange.LowerCut()
	} else {
		ceiling, found := entries.CeilingEntry(s.subRange.LowerCut()).Get()
		if !found || !ceiling.Key.LessThan(s.subRange.UpperCut()) {
			return zero.Value[interval.Interval[K]](), ErrEmptyMap
		}

		lower = ceiling.Key
	}

	upperEntry, found := entries.LowerEntry(s.subRange.UpperCut()).Get()
	if !found {
		return zero.Value[interval.Interval[K]](), ErrEmptyMap
	}

	upper := upperEntry.Value.Interval().UpperCut()
	if !upper.LessThan(s.subRange.UpperCut()) {
		upper = s.subRange.UpperCut()
	}

	return interval.New(lower, upper), nil
}

func (s *subRangeMap[K, V]) AsMapOfRanges() View[K, V] {
	return &subRangeView[K, V]{restricted: s}
}

// SubRangeMap narrows further. The result is always a restriction of the
// original backing map to the intersected interval, never a view stacked on
// a view, so lookups stay O(log n) however many times callers narrow.
func (s *subRangeMap[K, V]) SubRangeMap(rng interval.Interval[K]) Map[K, V] {
	if !rng.IsConnected(s.subRange) {
		return emptySubRangeMap[K, V]{}
	}

	return s.parent.SubRangeMap(rng.Intersection(s.subRange))
}

func (s *subRangeMap[K, V]) Size() int {
	return s.AsMapOfRanges().Size()
}

func (s *subRangeMap[K, V]) IsEmpty() bool {
	return s.AsMapOfRanges().IsEmpty()
}

func (s *subRangeMap[K, V]) Equals(other Map[K, V], eq func(V, V) bool) bool {
	return viewsEqual(s.AsMapOfRanges(), other.AsMapOfRanges(), eq)
}

func (s *subRangeMap[K, V]) String() string {
	return s.AsMapOfRanges().String()
}

func (s *subRangeMap[K, V]) UpdateHash(h hash.Hash) error {
	return hashEntries(h, s.AsMapOfRanges())
}

// subRangeView is the AsMapOfRanges view of a subRangeMap: the parent's
// entries intersecting the restriction, each clipped to it.
type subRangeView[K sortable.Sortable[K], V any] struct {
	restricted *subRangeMap[K, V]
}

// Get matches an exact clipped interval. The candidate entry is re-derived
// from the parent and its clipped interval compared for equality before the
// hit is reported, because a stored interval may extend past the
// restriction on either side.
func (v *subRangeView[K, V]) Get(rng interval.Interval[K]) (V, bool) {
	subRange := v.restricted.subRange
	entries := v.restricted.parent.entriesByLowerCut

	if !subRange.Encloses(rng) || rng.IsEmpty() {
		return zero.Value[V](), false
	}

	var (
		candidate interval.Entry[K, V]
		found     bool
	)

	if rng.LowerCut().Equals(subRange.LowerCut()) {
		// rng may be the clipped head of an entry starting below the
		// restriction.
		if kv, ok := entries.FloorEntry(rng.LowerCut()).Get(); ok {
			candidate, found = kv.Value, true
		}
	} else {
		candidate, found = entries.Get(rng.LowerCut())
	}

	if found && candidate.Interval().IsConnected(subRange) &&
		candidate.Interval().Intersection(subRange).Equals(rng) {
		return candidate.Value(), true
	}

	return zero.Value[V](), false
}

func (v *subRangeView[K, V]) Contains(rng interval.Interval[K]) bool {
	_, found := v.Get(rng)

	return found
}

func (v *subRangeView[K, V]) Size() int {
	count := 0
	for range v.Seq() {
		count++
	}

	return count
}

func (v *subRangeView[K, V]) IsEmpty() bool {
	for range v.Seq() {
		return false
	}

	return true
}

func (v *subRangeView[K, V]) Seq() iter.Seq2[interval.Interval[K], V] {
	return func(yield func(interval.Interval[K], V) bool) {
		subRange := v.restricted.subRange
		entries := v.restricted.parent.entriesByLowerCut

		if subRange.IsEmpty() {
			return
		}

		// Start at the last entry opening at or before the restriction; it
		// may reach into the restriction even though it starts outside.
		start := subRange.LowerCut()
		if kv, ok := entries.FloorEntry(subRange.LowerCut()).Get(); ok {
			start = kv.Key
		}

		for cut, entry := range entries.SeqFrom(start) {
			if !cut.LessThan(subRange.UpperCut()) {
				break
			}

			// Entries below the restriction's lower edge (possible at the
			// start of the walk) are skipped rather than clipped to nothing.
			if subRange.LowerCut().LessThan(entry.Interval().UpperCut()) {
				if !yield(entry.Interval().Intersection(subRange), entry.Value()) {
					return
				}
			}
		}
	}
}

func (v *subRangeView[K, V]) Entries() []interval.Entry[K, V] {
	return collectEntries[K, V](v)
}

func (v *subRangeView[K, V]) Equals(other View[K, V], eq func(V, V) bool) bool {
	return viewsEqual[K, V](v, other, eq)
}

func (v *subRangeView[K, V]) String() string {
	return viewString[K, V](v)
}
