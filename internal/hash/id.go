package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
//
// Equal content always produces equal IDs, so ID(s) == IDBytes([]byte(s))
// for every s. Distinct contents can still collide; callers that need
// exactness must resolve collisions by comparing content.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// IDBytes computes the xxHash64 of the given byte slice without converting
// it to a string.
func IDBytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
