// Package hashing defines how objects in this module contribute to hashes.
// An object implements Hashable by writing its contents into a hash.Hash; a
// HashFunc turns a Hashable into a printable digest.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hash.
// Sha256 and XXH3 are both HashFuncs.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hash of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hash, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	h := sha256.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	bts := h.Sum(nil)

	return hex.EncodeToString(bts), nil
}

// XXH3 returns the XXH3 hash of the given Hashable as a hex-encoded string.
// XXH3 is a fast non-cryptographic hash, the right choice for container
// fingerprints and change detection where collision resistance against an
// adversary is not required.
func XXH3(hashable Hashable) (string, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	bts := h.Sum(nil)

	return hex.EncodeToString(bts), nil
}

// HashableString is a string that can contribute itself to a hash.
type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))
	if err != nil {
		return err
	}

	return nil
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}
