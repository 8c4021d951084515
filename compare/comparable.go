// Package compare defines the equality vocabulary shared by the collection
// packages in this module.
package compare

// Comparable is a generic interface for types that can decide equality with
// another value of the same type. Implementations define what "equal" means
// for the type; collections use it to resolve exact matches.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals reports whether a and b are equal, delegating to a's Equals method.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
