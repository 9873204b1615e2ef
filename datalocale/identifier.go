package datalocale

// Identifier is a (marker_attributes, locale) pair per spec.md §3.2: the
// short ASCII attribute tag (e.g. "wide", "M02", "M02-leap") combined
// with the locale the payload was authored for.
type Identifier struct {
	Attributes string
	Locale     Locale
}

// Compare orders identifiers by locale first, then attributes, giving
// Identifier a total order suitable for container.OrderedMap keys.
func (id Identifier) Compare(other Identifier) int {
	if c := id.Locale.Compare(other.Locale); c != 0 {
		return c
	}
	switch {
	case id.Attributes < other.Attributes:
		return -1
	case id.Attributes > other.Attributes:
		return 1
	default:
		return 0
	}
}

func (id Identifier) String() string {
	if id.Attributes == "" {
		return id.Locale.String()
	}

	return id.Locale.String() + "/" + id.Attributes
}
