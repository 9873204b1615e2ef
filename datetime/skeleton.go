package datetime

import (
	"sort"

	"github.com/intlgo/icucore/errs"
)

// SkeletonField is one (symbol, length) member of a Skeleton's
// unordered field multiset (spec.md glossary).
type SkeletonField struct {
	Symbol FieldSymbol
	Length FieldLength
}

// Skeleton is an unordered multiset of field-symbol+length pairs
// representing a desired output shape, independent of ordering or
// literals (spec.md glossary).
type Skeleton struct {
	Fields []SkeletonField
}

// classOrder gives symbolClass the total order the matcher's merge-walk
// advances over (spec.md §4.6: "total order on symbols matching UTS-35
// skeleton compare"): era, year, month, day, weekday, day period, hour,
// minute, second, decimal second, zone.
func classOrder(c symbolClass) int {
	switch c {
	case classEra:
		return 0
	case classYear:
		return 1
	case classMonth:
		return 2
	case classDay:
		return 3
	case classWeekday:
		return 4
	case classDayPeriod:
		return 5
	case classHour:
		return 6
	case classMinute:
		return 7
	case classSecond:
		return 8
	case classDecimalSecond:
		return 9
	case classTimeZone:
		return 10
	default:
		return 11
	}
}

func sortedFields(fields []SkeletonField) []SkeletonField {
	out := make([]SkeletonField, len(fields))
	copy(out, fields)
	sort.Slice(out, func(i, j int) bool {
		ci, cj := classOrder(out[i].Symbol.class()), classOrder(out[j].Symbol.class())
		if ci != cj {
			return ci < cj
		}

		return out[i].Length < out[j].Length
	})

	return out
}

// Penalty magnitudes from spec.md §4.6's distance table.
const (
	penaltyRequestedAbsent = 100_000
	penaltySkeletonAbsent  = 10_000
	penaltyDifferentClass  = 1_000
	penaltyTextNumeric     = 100
	penaltyGlue            = 10
	penaltyDifferentWidth  = 1
	penaltyIdentical       = 0
)

// Distance scores requested against a candidate skeleton's field set,
// per spec.md §4.6: advance the lesser side of the class-ordered
// merge-walk, charging the matching asymmetric penalty.
func Distance(requested, candidate Skeleton) int {
	req := sortedFields(requested.Fields)
	cand := sortedFields(candidate.Fields)

	dist := 0
	i, j := 0, 0
	for i < len(req) && j < len(cand) {
		a, b := req[i], cand[j]
		ca, cb := a.Symbol.class(), b.Symbol.class()
		switch {
		case ca == cb:
			switch {
			case a.Symbol == b.Symbol && a.Length == b.Length:
				dist += penaltyIdentical
			case isTextField(a.Symbol, a.Length) != isTextField(b.Symbol, b.Length):
				dist += penaltyTextNumeric
			default:
				dist += penaltyDifferentWidth
			}
			i++
			j++
		case classOrder(ca) < classOrder(cb):
			dist += penaltyRequestedAbsent
			i++
		default:
			dist += penaltySkeletonAbsent
			j++
		}
	}
	dist += penaltyRequestedAbsent * (len(req) - i)
	dist += penaltySkeletonAbsent * (len(cand) - j)

	return dist
}

// SkeletonEntry pairs a pre-authored skeleton with its resolved
// Pattern, the unit of lookup in a locale's skeleton table.
type SkeletonEntry struct {
	Skeleton Skeleton
	Pattern  Pattern
}

// Match picks the entry in table minimizing Distance against requested,
// applying the post-match length adjustment and the single-field
// synthesis fallback from spec.md §4.6.
func Match(requested Skeleton, table []SkeletonEntry) (Pattern, error) {
	if len(table) == 0 {
		if len(requested.Fields) == 1 {
			return synthesizeSingleField(requested.Fields[0]), nil
		}

		return Pattern{}, errs.ErrInvalidPattern
	}

	bestIdx := -1
	bestDist := 0
	for idx, entry := range table {
		d := Distance(requested, entry.Skeleton)
		if bestIdx == -1 || d < bestDist {
			bestIdx = idx
			bestDist = d
		}
	}

	// "If no skeleton contains any requested symbol and the request is
	// a single field, synthesize a one-field pattern instead of
	// returning the best (bad) match."
	if len(requested.Fields) == 1 && noSkeletonSharesSymbol(requested.Fields[0], table) {
		return synthesizeSingleField(requested.Fields[0]), nil
	}

	return adjustLengths(table[bestIdx].Pattern, requested.Fields), nil
}

func noSkeletonSharesSymbol(f SkeletonField, table []SkeletonEntry) bool {
	for _, entry := range table {
		for _, cf := range entry.Skeleton.Fields {
			if cf.Symbol.class() == f.Symbol.class() {
				return false
			}
		}
	}

	return true
}

func synthesizeSingleField(f SkeletonField) Pattern {
	return Pattern{Items: []PatternItem{NewField(f.Symbol, f.Length)}}
}

// adjustLengths rewrites each field's length in pattern to match the
// corresponding requested field, per symbol class (spec.md §4.6's
// post-match adjustment, implemented by Pattern.withAdjustedLength).
func adjustLengths(pattern Pattern, requested []SkeletonField) Pattern {
	out := pattern
	for _, rf := range requested {
		out = out.withAdjustedLength(rf.Symbol, rf.Length, isTextField(rf.Symbol, rf.Length))
	}

	return out
}

// GlueWidth is the composition-glue width selected per spec.md §4.6:
// the longest month length requested across the date skeleton
// determines it (wide+weekday -> Full; wide -> Long; abbreviated ->
// Medium; else Short).
type GlueWidth uint8

const (
	GlueFull GlueWidth = iota
	GlueLong
	GlueMedium
	GlueShort
)

func glueWidth(dateFields []SkeletonField) GlueWidth {
	hasWeekday := false
	monthLen := One
	for _, f := range dateFields {
		if f.Symbol.class() == classWeekday {
			hasWeekday = true
		}
		if f.Symbol.class() == classMonth && f.Length > monthLen {
			monthLen = f.Length
		}
	}
	switch {
	case monthLen >= Four && hasWeekday:
		return GlueFull
	case monthLen >= Four:
		return GlueLong
	case monthLen == Three:
		return GlueMedium
	default:
		return GlueShort
	}
}

// Compose substitutes a matched date pattern and a matched time pattern
// into the glue template for the date skeleton's selected GlueWidth,
// implementing spec.md §4.6's composition step. Per spec.md §9's Open
// Question (b) decision -- the source's real `appendItem` composition
// has not landed -- every width uses the same glue until locale-specific
// glue patterns are wired in: "{time} {date}".
func Compose(dateSkeleton Skeleton, datePattern, timePattern Pattern) (Pattern, error) {
	_ = glueWidth(dateSkeleton.Fields) // selects the width a locale-specific glue table would key on

	items := make([]PatternItem, 0, len(timePattern.Items)+1+len(datePattern.Items))
	items = append(items, timePattern.Items...)
	items = append(items, NewLiteral(' '))
	items = append(items, datePattern.Items...)

	return Pattern{Items: items}, nil
}

// ComposeWithZone appends the zone sub-pattern after a composed
// date+time pattern using the " {2}" suffix mandated by spec.md §9.
func ComposeWithZone(dateTimePattern, zonePattern Pattern) Pattern {
	items := make([]PatternItem, 0, len(dateTimePattern.Items)+1+len(zonePattern.Items))
	items = append(items, dateTimePattern.Items...)
	items = append(items, NewLiteral(' '))
	items = append(items, zonePattern.Items...)

	return Pattern{Items: items}
}
