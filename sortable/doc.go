// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as keys in sorted data structures.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides
// ready-to-use implementations for common key types: [Int], [Int64],
// [Float64], [String], [Byte], and [Time]. These types work with the sorted
// collections in this module (see
// [github.com/amp-labs/amp-ranges/maps.NewNavigableMap] and
// [github.com/amp-labs/amp-ranges/intervalmap.New]).
//
// The Sortable interface extends [github.com/amp-labs/amp-ranges/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and a total
// order.
//
// # Creating Custom Sortable Types
//
// To use your own type as a key, implement the Sortable interface:
//
//	type Version struct {
//	    Major, Minor int
//	}
//
//	func (v Version) Equals(other Version) bool {
//	    return v == other
//	}
//
//	func (v Version) LessThan(other Version) bool {
//	    if v.Major != other.Major {
//	        return v.Major < other.Major
//	    }
//	    return v.Minor < other.Minor
//	}
//
// LessThan must describe a strict total order that is consistent with Equals:
// for any a and b, exactly one of a.LessThan(b), b.LessThan(a), or
// a.Equals(b) holds. Collections in this module rely on that consistency.
//
// # Thread Safety
//
// The wrapper types in this package are immutable value types and are safe to
// share between goroutines. Collections keyed by them make no such guarantee
// and require external synchronization for concurrent mutation.
package sortable
