package main

import (
	"strings"

	"github.com/intlgo/icucore/datalocale"
)

// recommendedLocales is a small, hand-picked subset standing in for
// ICU4X's data-driven "recommended" locale set (CLDR's own
// classification is part of the JSON ingestion pipeline spec.md §1
// scopes out). It intersects with whatever the source actually holds.
var recommendedLocales = []string{
	"en", "en-GB", "en-US", "fr", "de", "es", "ja", "zh", "ar", "ru",
}

// resolveLocales turns the --locales flag value into a list of
// FamilyRequest locales, per spec.md §6.4's full|modern|recommended|
// none|<list> grammar.
func resolveLocales(spec string, universe []datalocale.Locale) []datalocale.Locale {
	switch spec {
	case "none", "":
		return nil
	case "full":
		return universe
	case "modern":
		return filterLocales(universe, func(l datalocale.Locale) bool {
			return len(l.Variants) == 0
		})
	case "recommended":
		return filterLocales(universe, func(l datalocale.Locale) bool {
			for _, tag := range recommendedLocales {
				if l.String() == tag {
					return true
				}
			}
			return false
		})
	default:
		var out []datalocale.Locale
		for _, tag := range strings.Split(spec, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			out = append(out, datalocale.Parse(tag))
		}
		return out
	}
}

func filterLocales(universe []datalocale.Locale, keep func(datalocale.Locale) bool) []datalocale.Locale {
	var out []datalocale.Locale
	for _, l := range universe {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}
