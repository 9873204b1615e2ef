// Package marker implements the compile-time data-marker identity
// described in spec.md §3.2: a DataMarkerId string carrying a 4-byte
// FxHash32, plus the DataMarkerInfo metadata (singleton-ness, checksum
// requirement, fallback configuration, attributes domain) every
// provider consults when resolving a request.
package marker

import (
	"fmt"

	"github.com/intlgo/icucore/internal/fxhash"
)

// ID is a compile-time string of the form [A-Za-z0-9_/]+@[0-9]+, per
// spec.md §3.2 and §8. Two markers with different strings must not
// collide in Hash within one release; Hash is used for equality and
// ordering so marker sets can live in an OrderedMap.
type ID struct {
	path string
	hash uint32
}

// NewID validates s against the marker-id grammar and returns an ID
// carrying the FxHash32 of its UTF-8 bytes.
//
// Grounded on section.NumericFlag's preference for a single explicit
// byte-scan validator over a regexp in a path that runs once per data
// request (teacher); cross-checked against the grammar in
// provider/core/src/marker.rs (original_source).
func NewID(s string) (ID, error) {
	if err := validatePath(s); err != nil {
		return ID{}, err
	}

	return ID{path: s, hash: fxhash.Hash32(s)}, nil
}

func validatePath(s string) error {
	at := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '@':
			if at != -1 {
				return fmt.Errorf("marker: %q has more than one '@'", s)
			}
			at = i
		case isPathChar(c):
			// ok
		default:
			return fmt.Errorf("marker: %q contains invalid character %q", s, c)
		}
	}
	if at <= 0 {
		return fmt.Errorf("marker: %q is missing a non-empty prefix before '@'", s)
	}
	if at == len(s)-1 {
		return fmt.Errorf("marker: %q is missing digits after '@'", s)
	}
	for i := at + 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("marker: %q has non-digit version suffix", s)
		}
	}

	return nil
}

func isPathChar(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '/':
		return true
	default:
		return false
	}
}

// String returns the marker-id string.
func (id ID) String() string { return id.path }

// Hash returns the marker's FxHash32 identity hash.
func (id ID) Hash() uint32 { return id.hash }

// Compare gives IDs a total order by hash, then by string for a
// deterministic tie-break (collisions are a release-time bug per
// spec.md §3.2, but ordering must still be total).
func (id ID) Compare(other ID) int {
	switch {
	case id.hash < other.hash:
		return -1
	case id.hash > other.hash:
		return 1
	case id.path < other.path:
		return -1
	case id.path > other.path:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two IDs have the same string.
func (id ID) Equal(other ID) bool { return id.path == other.path }
