// Package datalocale implements the DataLocale/DataIdentifier entities
// and the locale-fallback iterator described in spec.md §3.2 and §4.3.
//
// No teacher file models a BCP-47 locale (mebo has no such concept);
// the package instead follows the teacher's preference for small,
// immutable value types with explicit constructors
// (section.NewNumericHeader, section.NewNumericFlag). The fallback
// chain is available both step by step through Iterator.Next and as a
// whole slice through All.
package datalocale

import (
	"sort"
	"strings"
)

// Root is the "und" (undetermined) locale every fallback chain
// terminates at.
var Root = Locale{Language: "und"}

// Locale is a canonical BCP-47-derived locale identifier: language,
// optional script, optional region, ordered variants, and a raw
// extension tail carried through untouched unless a marker's
// FallbackConfig explicitly strips it (spec.md §4.3 rule 4).
type Locale struct {
	Language   string
	Script     string
	Region     string
	Variants   []string // already sorted ascending; canonical form is order-independent
	Extensions string   // e.g. "u-ca-buddhist", verbatim
}

// Parse splits a BCP-47-ish tag ("sr-Latn-RS-u-ca-buddhist") into a
// Locale. It is deliberately permissive: callers that need strict BCP-47
// validation should validate before calling Parse.
func Parse(tag string) Locale {
	if tag == "" {
		return Root
	}

	parts := strings.Split(tag, "-")
	var l Locale
	l.Language = parts[0]
	rest := parts[1:]

	if len(rest) > 0 && isScript(rest[0]) {
		l.Script = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 && isRegion(rest[0]) {
		l.Region = rest[0]
		rest = rest[1:]
	}
	for len(rest) > 0 && isVariant(rest[0]) {
		l.Variants = append(l.Variants, rest[0])
		rest = rest[1:]
	}
	sort.Strings(l.Variants)
	if len(rest) > 0 {
		l.Extensions = strings.Join(rest, "-")
	}

	return l
}

func isScript(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'z' {
			return false
		}
	}

	return true
}

func isRegion(s string) bool {
	if len(s) == 2 {
		return true
	}
	if len(s) == 3 {
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}

		return true
	}

	return false
}

func isVariant(s string) bool {
	return len(s) >= 4 && len(s) <= 8 && s != "u" && s != "x" && s != "t"
}

// String renders the canonical BCP-47-ish tag.
func (l Locale) String() string {
	var b strings.Builder
	b.WriteString(l.Language)
	if l.Script != "" {
		b.WriteByte('-')
		b.WriteString(l.Script)
	}
	if l.Region != "" {
		b.WriteByte('-')
		b.WriteString(l.Region)
	}
	for _, v := range l.Variants {
		b.WriteByte('-')
		b.WriteString(v)
	}
	if l.Extensions != "" {
		b.WriteByte('-')
		b.WriteString(l.Extensions)
	}

	return b.String()
}

// IsRoot reports whether l is the "und" root locale with no subtags.
func (l Locale) IsRoot() bool {
	return l.Language == "und" && l.Script == "" && l.Region == "" && len(l.Variants) == 0
}

// LanguagePriorityString renders the language-priority derived form:
// subtags ordered lang-script-region, used as the canonical key when a
// marker's FallbackConfig.Priority is PriorityLanguage.
func (l Locale) LanguagePriorityString() string {
	return l.String()
}

// RegionPriorityString renders the region-priority derived form:
// lang-region-script, the mirror ordering used when
// FallbackConfig.Priority is PriorityRegion. Both forms carry the same
// information; only field order differs, which matters for the
// canonical sort key used to group exported payloads by locale family.
func (l Locale) RegionPriorityString() string {
	var b strings.Builder
	b.WriteString(l.Language)
	if l.Region != "" {
		b.WriteByte('-')
		b.WriteString(l.Region)
	}
	if l.Script != "" {
		b.WriteByte('-')
		b.WriteString(l.Script)
	}
	for _, v := range l.Variants {
		b.WriteByte('-')
		b.WriteString(v)
	}
	if l.Extensions != "" {
		b.WriteByte('-')
		b.WriteString(l.Extensions)
	}

	return b.String()
}

// Compare gives Locale a total order over its canonical string form, so
// it can serve as a container.Ordered key.
func (l Locale) Compare(other Locale) int {
	a, b := l.String(), other.String()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
