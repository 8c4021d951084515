// Package zero provides helpers for producing and recognizing zero values of
// generic type parameters.
package zero

import "reflect"

// Value returns the zero value for type T.
// Useful when generic code must return "no value" alongside a false flag:
//
//	func (m *someMap[K, V]) Get(key K) (V, bool) {
//	    ...
//	    return zero.Value[V](), false
//	}
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value is the zero value for type T.
// The comparison is deep (reflect.DeepEqual), so it also works for struct,
// slice, and map types.
func IsZero[T any](value T) bool {
	var zeroVal T

	return reflect.DeepEqual(value, zeroVal)
}
