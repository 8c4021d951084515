package intervalmap_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/amp-labs/amp-ranges/hashing"
	"github.com/amp-labs/amp-ranges/interval"
	"github.com/amp-labs/amp-ranges/intervalmap"
	"github.com/amp-labs/amp-ranges/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedOpen(lo, hi int) interval.Interval[sortable.Int] {
	return interval.ClosedOpen(sortable.Int(lo), sortable.Int(hi))
}

func stringsEqual(a, b string) bool {
	return a == b
}

func TestMap_Empty(t *testing.T) {
	t.Parallel()

	m := intervalmap.New[sortable.Int, string]()

	assert.True(t, m.IsEmpty())
	assert.Zero(t, m.Size())

	_, found := m.Get(sortable.Int(0))
	assert.False(t, found)

	_, err := m.Span()
	assert.ErrorIs(t, err, intervalmap.ErrEmptyMap)

	assert.Equal(t, "{}", m.String())

	// Removing from an empty map is a no-op.
	m.Remove(closedOpen(0, 10))
	assert.True(t, m.IsEmpty())
}

func TestMap_Put(t *testing.T) {
	t.Parallel()

	t.Run("covers exactly its interval", func(t *testing.T) {
		t.Parallel()

		m := intervalmap.New[sortable.Int, string]()
		require.NoError(t, m.Put(closedOpen(1, 4), "a"))

		_, found := m.Get(sortable.Int(0))
		assert.False(t, found)

		for key := 1; key < 4; key++ {
			value, found := m.Get(sortable.Int(key))
			assert.True(t, found)
			assert.Equal(t, "a", value)
		}

		_, found = m.Get(sortable.Int(4))
		assert.False(t, found)
	})

	t.Run("empty interval is a no-op", func(t *testing.T) {
		t.Parallel()

		m := intervalmap.New[sortable.Int, string]()
		require.NoError(t, m.Put(closedOpen(3, 3), "a"))

		assert.True(t, m.IsEmpty())
	})

	t.Run("overwrites overlap", func(t *testing.T) {
		t.Parallel()

		m := intervalmap.New[sortable.Int, string]()
		require.NoError(t, m.Put(closedOpen(0, 10), "a"))
		require.NoError(t, m.Put(closedOpen(3, 7), "b"))

		assert.Equal(t, 3, m.Size())
		assert.Equal(t, "{[0..3)=a, [3..7)=b, [7..10)=a}", m.String())

		value, found := m.Get(sortable.Int(5))
		require.True(t, found)
		assert.Equal(t, "b", value)

		value, found = m.Get(sortable.Int(2))
		require.True(t, found)
		assert.Equal(t, "a", value)
	})

	t.Run("coalesces nothing", func(t *testing.T) {
		t.Parallel()

		// Adjacent equal-valued intervals stay distinct entries.
		m := intervalmap.New[sortable.Int, string]()
		require.NoError(t, m.Put(closedOpen(0, 5), "a"))
		require.NoError(t, m.Put(closedOpen(5, 10), "a"))

		assert.Equal(t, 2, m.Size())
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		m := intervalmap.New[sortable.Int, string]()
		require.NoError(t, m.Put(closedOpen(1, 4), "a"))
		require.NoError(t, m.Put(closedOpen(1, 4), "a"))

		assert.Equal(t, 1, m.Size())
		assert.Equal(t, "{[1..4)=a}", m.String())
	})
}

func TestMap_GetEntry(t *testing.T) {
	t.Parallel()

	m := intervalmap.New[sortable.Int, string]()
	require.NoError(t, m.Put(closedOpen(1, 4), "a"))

	entry, found := m.GetEntry(sortable.Int(2))
	require.True(t, found)
	assert.True(t, entry.Interval().Equals(closedOpen(1, 4)))
	assert.Equal(t, "a", entry.Value())

	_, found = m.GetEntry(sortable.Int(4))
	assert.False(t, found)
}

func TestMap_Remove(t *testing.T) {
	t.Parallel()

	t.Run("splits an enclosing entry", func(t *testing.T) {
		t.Parallel()

		m := intervalmap.New[sortable.Int, string]()
		require.NoError(t, m.Put(closedOpen(0, 10), "a"))

		m.Remove(closedOpen(3, 7))

		assert.Equal(t, "{[0..3)=a, [7..10)=a}", m.String())

		_, found := m.Get(sortable.Int(5))
		assert.False(t, found)

		value, found := m.Get(sortable.Int(2))
		require.True(t, found)
		assert.Equal(t, "a", value)

		value, found = m.Get(sortable.Int(8))
		require.True(t, found)
		assert.Equal(t, "a", value)
	})

	t.Run("truncates at edges", func(t *testing.T) {
		t.Parallel()

		m := intervalmap.New[sortable.Int, string]()
		require.NoError(t, m.Put(closedOpen(0, 4), "a"))
		require.NoError(t, m.Put(closedOpen(6, 10), "b"))

		m.Remove(closedOpen(2, 8))

		assert.Equal(t, "{[0..2)=a, [8..10)=b}", m.String())
	})

	t.Run("deletes enclosed entries", func(t *testing.T) {
		t.Parallel()

		m := intervalmap.New[sortable.Int, string]()
		require.NoError(t, m.Put(closedOpen(1, 2), "a"))
		require.NoError(t, m.Put(closedOpen(3, 4), "b"))
		require.NoError(t, m.Put(closedOpen(5, 6), "c"))

		m.Remove(closedOpen(0, 5))

		assert.Equal(t, "{[5..6)=c}", m.String())
	})

	t.Run("exact interval", func(t *testing.T) {
		t.Parallel()

		m := intervalmap.New[sortable.Int, string]()
		require.NoError(t, m.Put(closedOpen(1, 4), "a"))

		m.Remove(closedOpen(1, 4))

		assert.True(t, m.IsEmpty())
	})

	t.Run("leading portion", func(t *testing.T) {
		t.Parallel()

		m := intervalmap.New[sortable.Int, string]()
		require.NoError(t, m.Put(closedOpen(0, 10), "a"))

		m.Remove(closedOpen(0, 5))

		assert.Equal(t, "{[5..10)=a}", m.String())
	})

	t.Run("trailing portion", func(t *testing.T) {
		t.Parallel()

		m := intervalmap.New[sortable.Int, string]()
		require.NoError(t, m.Put(closedOpen(0, 10), "a"))

		m.Remove(closedOpen(5, 10))

		assert.Equal(t, "{[0..5)=a}", m.String())
	})

	t.Run("disjoint interval leaves entries untouched", func(t *testing.T) {
		t.Parallel()

		m := intervalmap.New[sortable.Int, string]()
		require.NoError(t, m.Put(closedOpen(1, 4), "a"))

		m.Remove(closedOpen(10, 20))

		assert.Equal(t, "{[1..4)=a}", m.String())
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		m := intervalmap.New[sortable.Int, string]()
		require.NoError(t, m.Put(closedOpen(0, 10), "a"))

		m.Remove(closedOpen(3, 7))
		m.Remove(closedOpen(3, 7))

		assert.Equal(t, "{[0..3)=a, [7..10)=a}", m.String())
	})
}

func TestMap_Clear(t *testing.T) {
	t.Parallel()

	m := intervalmap.New[sortable.Int, string]()
	require.NoError(t, m.Put(closedOpen(1, 4), "a"))
	require.NoError(t, m.Put(closedOpen(8, 10), "b"))

	m.Clear()

	assert.True(t, m.IsEmpty())
	assert.Zero(t, m.Size())
}

func TestMap_Span(t *testing.T) {
	t.Parallel()

	m := intervalmap.New[sortable.Int, string]()
	require.NoError(t, m.Put(closedOpen(1, 4), "a"))
	require.NoError(t, m.Put(closedOpen(8, 10), "b"))

	// The span bridges the gap between disjoint entries.
	span, err := m.Span()
	require.NoError(t, err)
	assert.True(t, span.Equals(closedOpen(1, 10)))
}

func TestMap_PutAll(t *testing.T) {
	t.Parallel()

	source := intervalmap.New[sortable.Int, string]()
	require.NoError(t, source.Put(closedOpen(1, 4), "a"))
	require.NoError(t, source.Put(closedOpen(8, 10), "b"))

	dest := intervalmap.New[sortable.Int, string]()
	require.NoError(t, dest.Put(closedOpen(0, 2), "c"))

	require.NoError(t, dest.PutAll(source))

	assert.Equal(t, "{[0..1)=c, [1..4)=a, [8..10)=b}", dest.String())
}

func TestMap_AsMapOfRanges(t *testing.T) {
	t.Parallel()

	m := intervalmap.New[sortable.Int, string]()
	require.NoError(t, m.Put(closedOpen(1, 4), "a"))
	require.NoError(t, m.Put(closedOpen(8, 10), "b"))

	view := m.AsMapOfRanges()

	t.Run("exact interval lookup", func(t *testing.T) {
		t.Parallel()

		value, found := view.Get(closedOpen(1, 4))
		require.True(t, found)
		assert.Equal(t, "a", value)

		// Containment is not enough.
		_, found = view.Get(closedOpen(2, 3))
		assert.False(t, found)

		_, found = view.Get(closedOpen(1, 5))
		assert.False(t, found)

		assert.True(t, view.Contains(closedOpen(8, 10)))
		assert.False(t, view.Contains(closedOpen(4, 8)))
	})

	t.Run("ordered iteration", func(t *testing.T) {
		t.Parallel()

		entries := view.Entries()
		require.Len(t, entries, 2)
		assert.True(t, entries[0].Interval().Equals(closedOpen(1, 4)))
		assert.True(t, entries[1].Interval().Equals(closedOpen(8, 10)))
	})

	t.Run("live window", func(t *testing.T) {
		m := intervalmap.New[sortable.Int, string]()
		view := m.AsMapOfRanges()

		assert.True(t, view.IsEmpty())

		require.NoError(t, m.Put(closedOpen(1, 4), "a"))

		assert.Equal(t, 1, view.Size())
	})
}

func TestMap_Equals(t *testing.T) {
	t.Parallel()

	// The same contents reached through different operation orders compare
	// equal.
	first := intervalmap.New[sortable.Int, string]()
	require.NoError(t, first.Put(closedOpen(0, 3), "a"))
	require.NoError(t, first.Put(closedOpen(7, 10), "a"))

	second := intervalmap.New[sortable.Int, string]()
	require.NoError(t, second.Put(closedOpen(0, 10), "a"))
	second.Remove(closedOpen(3, 7))

	assert.True(t, first.Equals(second, stringsEqual))
	assert.True(t, second.Equals(first, stringsEqual))

	require.NoError(t, second.Put(closedOpen(7, 10), "b"))
	assert.False(t, first.Equals(second, stringsEqual))
}

func TestMap_Hash(t *testing.T) {
	t.Parallel()

	first := intervalmap.New[sortable.Int, string]()
	require.NoError(t, first.Put(closedOpen(0, 3), "a"))
	require.NoError(t, first.Put(closedOpen(7, 10), "a"))

	second := intervalmap.New[sortable.Int, string]()
	require.NoError(t, second.Put(closedOpen(0, 10), "a"))
	second.Remove(closedOpen(3, 7))

	firstHash, err := hashing.Sha256(first)
	require.NoError(t, err)

	secondHash, err := hashing.Sha256(second)
	require.NoError(t, err)

	assert.Equal(t, firstHash, secondHash)

	second.Remove(closedOpen(0, 1))

	thirdHash, err := hashing.Sha256(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstHash, thirdHash)
}

func TestMap_StringKeys(t *testing.T) {
	t.Parallel()

	m := intervalmap.New[sortable.String, int]()
	require.NoError(t, m.Put(interval.ClosedOpen(sortable.String("a"), sortable.String("d")), 1))

	value, found := m.Get(sortable.String("banana"))
	require.True(t, found)
	assert.Equal(t, 1, value)

	_, found = m.Get(sortable.String("d"))
	assert.False(t, found)
}

// TestMap_RandomizedChurn drives a long seeded sequence of puts and removes
// and cross-checks every point of the key domain against a flat per-point
// model after each operation. This is the brute-force statement of the map's
// contract: whatever the operation history, Get(k) answers with the value of
// the last put whose interval covered k and was not since removed.
func TestMap_RandomizedChurn(t *testing.T) {
	t.Parallel()

	const (
		ops    = 1000
		domain = 64
	)

	random := rand.New(rand.NewSource(7)) //nolint:gosec // Deterministic test sequence
	m := intervalmap.New[sortable.Int, string]()

	// model[k] is the value visible at point k; "" means uncovered.
	var model [domain]string

	for op := range ops {
		lo := random.Intn(domain)
		hi := lo + 1 + random.Intn(domain-lo)

		if random.Intn(3) < 2 {
			value := fmt.Sprintf("v%d", op)
			require.NoError(t, m.Put(closedOpen(lo, hi), value))

			for k := lo; k < hi; k++ {
				model[k] = value
			}
		} else {
			m.Remove(closedOpen(lo, hi))

			for k := lo; k < hi; k++ {
				model[k] = ""
			}
		}

		for k := range domain {
			value, found := m.Get(sortable.Int(k))
			if model[k] == "" {
				require.False(t, found, "op %d: stale coverage at key %d", op, k)
			} else {
				require.True(t, found, "op %d: missing coverage at key %d", op, k)
				require.Equal(t, model[k], value, "op %d: wrong value at key %d", op, k)
			}
		}
	}

	// The surviving entries must be non-empty, disjoint, and ascending.
	entries := m.AsMapOfRanges().Entries()
	for i, entry := range entries {
		require.False(t, entry.Interval().IsEmpty())

		if i > 0 {
			prev := entries[i-1].Interval()
			require.True(t, prev.UpperCut().AtMost(entry.Interval().LowerCut()),
				"entries %s and %s out of order or overlapping", prev, entry.Interval())
		}
	}
}

func TestMap_UnboundedIntervals(t *testing.T) {
	t.Parallel()

	m := intervalmap.New[sortable.Int, string]()
	require.NoError(t, m.Put(interval.LessThan(sortable.Int(0)), "neg"))
	require.NoError(t, m.Put(interval.AtLeast(sortable.Int(0)), "pos"))

	value, found := m.Get(sortable.Int(-1000))
	require.True(t, found)
	assert.Equal(t, "neg", value)

	value, found = m.Get(sortable.Int(1000))
	require.True(t, found)
	assert.Equal(t, "pos", value)

	span, err := m.Span()
	require.NoError(t, err)
	assert.True(t, span.Equals(interval.All[sortable.Int]()))
}
