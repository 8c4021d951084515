package interval

import (
	"fmt"
	"hash"

	"github.com/amp-labs/amp-ranges/sortable"
)

// Entry is an immutable (interval, value) pair, the unit an interval map
// stores and returns.
type Entry[K sortable.Sortable[K], V any] struct {
	interval Interval[K]
	value    V
}

// NewEntry pairs an interval with its value.
func NewEntry[K sortable.Sortable[K], V any](rng Interval[K], value V) Entry[K, V] {
	return Entry[K, V]{interval: rng, value: value}
}

// Interval returns the interval the entry covers.
func (e Entry[K, V]) Interval() Interval[K] {
	return e.interval
}

// Value returns the value associated with the interval.
func (e Entry[K, V]) Value() V {
	return e.value
}

// Contains returns true if key lies inside the entry's interval.
func (e Entry[K, V]) Contains(key K) bool {
	return e.interval.Contains(key)
}

// String renders the entry as "interval=value", e.g. "[3..7)=a".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%s=%v", e.interval, e.value)
}

// UpdateHash writes the entry's interval and the fmt representation of its
// value into h.
func (e Entry[K, V]) UpdateHash(h hash.Hash) error {
	if err := e.interval.UpdateHash(h); err != nil {
		return err
	}

	_, err := fmt.Fprintf(h, "=%v;", e.value)

	return err
}
