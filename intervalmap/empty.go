package intervalmap

import (
	"fmt"
	"hash"
	"iter"

	"github.com/amp-labs/amp-ranges/interval"
	"github.com/amp-labs/amp-ranges/sortable"
	"github.com/amp-labs/amp-ranges/zero"
)

// emptySubRangeMap is the degenerate result of narrowing a sub-range view to
// an interval it doesn't touch. It is permanently empty and detached from
// any backing map: reads find nothing, removals are no-ops, and writes fail
// because no interval fits inside it. A zero-sized value, so handing it out
// allocates nothing.
type emptySubRangeMap[K sortable.Sortable[K], V any] struct{}

func (emptySubRangeMap[K, V]) Get(K) (V, bool) {
	return zero.Value[V](), false
}

func (emptySubRangeMap[K, V]) GetEntry(K) (interval.Entry[K, V], bool) {
	return zero.Value[interval.Entry[K, V]](), false
}

func (emptySubRangeMap[K, V]) Put(rng interval.Interval[K], _ V) error {
	return fmt.Errorf("%w: %s", ErrEmptySubRangeMap, rng)
}

func (emptySubRangeMap[K, V]) PutAll(other Map[K, V]) error {
	if other.AsMapOfRanges().IsEmpty() {
		return nil
	}

	return fmt.Errorf("%w: source map is not empty", ErrEmptySubRangeMap)
}

func (emptySubRangeMap[K, V]) Remove(interval.Interval[K]) {}

func (emptySubRangeMap[K, V]) Clear() {}

func (emptySubRangeMap[K, V]) Span() (interval.Interval[K], error) {
	return zero.Value[interval.Interval[K]](), ErrEmptyMap
}

func (emptySubRangeMap[K, V]) AsMapOfRanges() View[K, V] {
	return emptyView[K, V]{}
}

func (e emptySubRangeMap[K, V]) SubRangeMap(interval.Interval[K]) Map[K, V] {
	return e
}

func (emptySubRangeMap[K, V]) Size() int {
	return 0
}

func (emptySubRangeMap[K, V]) IsEmpty() bool {
	return true
}

func (emptySubRangeMap[K, V]) Equals(other Map[K, V], _ func(V, V) bool) bool {
	return other.AsMapOfRanges().IsEmpty()
}

func (emptySubRangeMap[K, V]) String() string {
	return "{}"
}

func (emptySubRangeMap[K, V]) UpdateHash(hash.Hash) error {
	return nil
}

// emptyView is the AsMapOfRanges view of emptySubRangeMap.
type emptyView[K sortable.Sortable[K], V any] struct{}

func (emptyView[K, V]) Get(interval.Interval[K]) (V, bool) {
	return zero.Value[V](), false
}

func (emptyView[K, V]) Contains(interval.Interval[K]) bool {
	return false
}

func (emptyView[K, V]) Size() int {
	return 0
}

func (emptyView[K, V]) IsEmpty() bool {
	return true
}

func (emptyView[K, V]) Seq() iter.Seq2[interval.Interval[K], V] {
	return func(func(interval.Interval[K], V) bool) {}
}

func (emptyView[K, V]) Entries() []interval.Entry[K, V] {
	return nil
}

func (emptyView[K, V]) Equals(other View[K, V], _ func(V, V) bool) bool {
	return other.IsEmpty()
}

func (emptyView[K, V]) String() string {
	return "{}"
}
