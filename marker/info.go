package marker

import "github.com/intlgo/icucore/datalocale"

// FallbackConfig configures how the locale-fallback iterator (spec.md
// §4.3, implemented in package datalocale) walks a requested locale's
// parent chain for this marker.
type FallbackConfig = datalocale.FallbackConfig

// AttributesDomain is a predicate over a DataIdentifier's marker
// attributes, used by the export driver's "Optionally filter by
// attributes_domain predicate" step (spec.md §4.4 step 2).
type AttributesDomain func(attributes string) bool

// Info is a marker's compile-time metadata: {id, is_singleton,
// has_checksum, fallback_config, attributes_domain} per spec.md §3.2.
type Info struct {
	ID              ID
	IsSingleton     bool
	HasChecksum     bool
	Fallback        FallbackConfig
	AttributesDomain AttributesDomain
}

// rootIdentifierAttributes is the empty attribute tag singleton markers
// must be queried with, paired with the root "und" locale.
const rootIdentifierAttributes = ""

// AcceptsAttributes reports whether attrs is permitted for this marker:
// singleton markers only accept the empty attribute tag (spec.md §4.2
// "Singleton markers: must be queried with the root identifier");
// non-singleton markers defer to AttributesDomain when set.
func (m Info) AcceptsAttributes(attrs string) bool {
	if m.IsSingleton {
		return attrs == rootIdentifierAttributes
	}
	if m.AttributesDomain == nil {
		return true
	}

	return m.AttributesDomain(attrs)
}

// NeverMarker is the sentinel marker described in spec.md §4.2 and §9:
// loading it always fails with MarkerNotFound, giving callers a
// compile-checked "unreachable" branch. It is not registered with any
// real payload; provider.Load special-cases it.
var NeverMarker = mustID("never/marker@1")

func mustID(s string) ID {
	id, err := NewID(s)
	if err != nil {
		panic(err)
	}

	return id
}
