package export

import "github.com/intlgo/icucore/datalocale"

// DeduplicationStrategy selects how redundant per-locale payloads are
// dropped from an export (spec.md §4.4 step 6).
type DeduplicationStrategy uint8

const (
	// DedupNone emits every payload, however redundant.
	DedupNone DeduplicationStrategy = iota
	// DedupRetainBaseLanguages drops a payload equal to its fallback
	// parent's payload unless the payload's own locale is a base
	// language node (no script/region/variants/extensions).
	DedupRetainBaseLanguages
	// DedupMaximal drops a payload equal to its immediate fallback
	// parent's payload, regardless of locale shape.
	DedupMaximal
)

// isBaseLanguage reports whether l names only a language, with no
// script, region, variant, or extension narrowing it further.
func isBaseLanguage(l datalocale.Locale) bool {
	return l.Script == "" && l.Region == "" && len(l.Variants) == 0 && l.Extensions == ""
}

// keep decides, under strategy, whether child's payload should be
// emitted given whether it differs from the immediate fallback
// parent's resolved payload (parentFound is false when child has no
// fallback parent or no payload resolves anywhere along the parent's
// fallback chain -- which always counts as "differs").
func keep(strategy DeduplicationStrategy, child datalocale.Locale, parentFound, payloadsEqual bool) bool {
	switch strategy {
	case DedupNone:
		return true
	case DedupMaximal:
		return !parentFound || !payloadsEqual
	case DedupRetainBaseLanguages:
		if !parentFound || !payloadsEqual {
			return true
		}
		return isBaseLanguage(child)
	default:
		return true
	}
}
