package sortable

import (
	"github.com/amp-labs/amp-ranges/compare"
)

// Sortable describes types that have both equality and a strict total order.
// It is the key constraint for every sorted collection in this module.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}
