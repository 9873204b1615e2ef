package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Bytes computes the xxHash64 of the given byte slice, used by the
// export driver to assert a marker's payloads share one checksum
// (spec.md §4.4 step 5).
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
