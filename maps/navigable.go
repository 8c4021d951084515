package maps

import (
	"iter"

	"github.com/amp-labs/amp-ranges/optional"
	"github.com/amp-labs/amp-ranges/sortable"
)

// KeyValuePair is a generic key-value pair struct used to represent entries
// in maps. The navigation queries on NavigableMap (FirstEntry, FloorEntry,
// and friends) return it wrapped in an optional.Value, so absence is modeled
// explicitly rather than with nil.
type KeyValuePair[K sortable.Sortable[K], V any] struct {
	Key   K
	Value V
}

// NavigableMap is a sorted map over Sortable keys that, in addition to the
// usual map operations, answers navigation queries about the key order:
// nearest keys below or above a probe key, the extremes, and ordered
// iteration from an arbitrary starting point.
//
// All operations run in O(log n), except full and tail iteration which cost
// O(log n) to position plus O(1) amortized per yielded entry.
//
// Thread-safety: implementations are not safe for concurrent mutation.
// Concurrent access must be synchronized by the caller.
type NavigableMap[K sortable.Sortable[K], V any] interface {
	// Get retrieves the value for the given key.
	// Returns the value with found=true if the key exists, or a zero value
	// with found=false otherwise.
	Get(key K) (value V, found bool)

	// Contains checks if the given key exists in the map.
	Contains(key K) bool

	// Add inserts a key-value pair into the map.
	// If the key already exists, its value is replaced.
	Add(key K, value V)

	// Remove deletes the key-value pair for the given key.
	// If the key doesn't exist, this is a no-op.
	Remove(key K)

	// Clear removes all key-value pairs from the map, leaving it empty.
	Clear()

	// Size returns the number of key-value pairs currently stored in the map.
	Size() int

	// IsEmpty returns true if the map contains no entries.
	IsEmpty() bool

	// FirstEntry returns the entry with the least key, or None if the map is empty.
	FirstEntry() optional.Value[KeyValuePair[K, V]]

	// LastEntry returns the entry with the greatest key, or None if the map is empty.
	LastEntry() optional.Value[KeyValuePair[K, V]]

	// FloorEntry returns the entry with the greatest key less than or equal
	// to the given key, or None if there is no such key.
	FloorEntry(key K) optional.Value[KeyValuePair[K, V]]

	// LowerEntry returns the entry with the greatest key strictly less than
	// the given key, or None if there is no such key.
	LowerEntry(key K) optional.Value[KeyValuePair[K, V]]

	// CeilingEntry returns the entry with the least key greater than or equal
	// to the given key, or None if there is no such key.
	CeilingEntry(key K) optional.Value[KeyValuePair[K, V]]

	// HigherEntry returns the entry with the least key strictly greater than
	// the given key, or None if there is no such key.
	HigherEntry(key K) optional.Value[KeyValuePair[K, V]]

	// Seq returns an iterator over the map's key-value pairs in ascending key
	// order: for k, v := range m.Seq() { ... }.
	// Mutating the map while iterating produces undefined results.
	Seq() iter.Seq2[K, V]

	// SeqFrom returns an iterator like Seq, but starting at the least key
	// greater than or equal to the given key (a tail view of the map).
	// Mutating the map while iterating produces undefined results.
	SeqFrom(key K) iter.Seq2[K, V]

	// Keys returns all keys in ascending order.
	Keys() []K
}
