package calendar

import (
	"sort"
	"strconv"
	"strings"

	"github.com/intlgo/icucore/container"
	"github.com/intlgo/icucore/errs"
)

var (
	meijiStart  = EraDate{1868, 10, 23}
	taishoStart = EraDate{1912, 7, 30}
	showaStart  = EraDate{1926, 12, 25}
	heiseiStart = EraDate{1989, 1, 8}
	reiwaStart  = EraDate{2019, 5, 1}
)

// modernEras are the five post-Meiji eras, hardcoded as the fast path
// spec.md §4.8 calls out: most callers never touch the historical
// extended table at all.
var modernEras = []Era{
	{"meiji", meijiStart},
	{"taisho", taishoStart},
	{"showa", showaStart},
	{"heisei", heiseiStart},
	{"reiwa", reiwaStart},
}

// EraTable holds the historical era list, sorted ascending by Start
// date. A zero-value table (no historical data loaded) still resolves
// the five modern eras via the fast path.
type EraTable struct {
	// Eras is sorted ascending by Start. The "Japanese" (modern-only)
	// variant leaves this empty; "JapaneseExtended" populates it with
	// the full historical list, including the five modern eras.
	Eras []Era
}

// usesModernFastPath reports whether the table's newest entry is still
// "reiwa" -- i.e. no era newer than the hardcoded set has been loaded.
func (t EraTable) usesModernFastPath() bool {
	if len(t.Eras) == 0 {
		return true
	}
	return t.Eras[len(t.Eras)-1].Code == "reiwa"
}

// eraFor returns the latest era whose start is <= date, per spec.md
// §4.8 step 2 (binary search over the sorted era list).
func (t EraTable) eraFor(date EraDate) Era {
	if date.GreaterEqual(meijiStart) && t.usesModernFastPath() {
		switch {
		case date.GreaterEqual(reiwaStart):
			return Era{"reiwa", reiwaStart}
		case date.GreaterEqual(heiseiStart):
			return Era{"heisei", heiseiStart}
		case date.GreaterEqual(showaStart):
			return Era{"showa", showaStart}
		case date.GreaterEqual(taishoStart):
			return Era{"taisho", taishoStart}
		default:
			return Era{"meiji", meijiStart}
		}
	}

	eras := t.Eras
	idx := sort.Search(len(eras), func(i int) bool { return !eras[i].Start.Less(date) })
	if idx < len(eras) && eras[idx].Start.Compare(date) == 0 {
		return eras[idx]
	}
	if idx == 0 {
		if len(eras) == 0 {
			return Era{"reiwa", reiwaStart}
		}
		return eras[0]
	}
	return eras[idx-1]
}

// eraStart resolves an era code to its start date (spec.md §4.8's
// inverse direction): direct match against the modern fast path, then
// the year-suffix binary-search hint (e.g. "teno-781" hints 781),
// falling back to the table's code index.
func (t EraTable) eraStart(code string) (EraDate, error) {
	for _, m := range modernEras {
		if m.Code == code {
			return m.Start, nil
		}
	}

	if hint, ok := yearSuffixHint(code); ok {
		eras := t.Eras
		idx := sort.Search(len(eras), func(i int) bool { return eras[i].Start.Year >= hint })
		if idx < len(eras) && eras[idx].Start.Year == hint && eras[idx].Code == code {
			return eras[idx].Start, nil
		}
	}

	if start, ok := t.codeIndex().Get(EraCode(code)); ok {
		return start, nil
	}

	return EraDate{}, errs.ErrInvalidEra
}

// codeIndex builds a code->start-date lookup over the historical era
// list via container.OrderedMap, replacing a linear scan for the rare
// lookup that neither the modern fast path nor the year-suffix hint
// resolves. Duplicate codes keep the last-listed entry's start date,
// matching BuildOrderedMap's "last write wins" convention.
func (t EraTable) codeIndex() container.OrderedMap[EraCode, EraDate] {
	codes := make([]EraCode, len(t.Eras))
	starts := make([]EraDate, len(t.Eras))
	for i, e := range t.Eras {
		codes[i] = EraCode(e.Code)
		starts[i] = e.Start
	}
	return container.BuildOrderedMap(codes, starts)
}

// yearSuffixHint extracts the trailing "-<year>" integer from an era
// code like "teno-781", used only as a binary-search starting hint --
// callers must still confirm the code matches at the hinted index.
func yearSuffixHint(code string) (int, bool) {
	idx := strings.LastIndex(code, "-")
	if idx < 0 || idx == len(code)-1 {
		return 0, false
	}
	year, err := strconv.Atoi(code[idx+1:])
	if err != nil {
		return 0, false
	}
	return year, true
}

// AdjustedYearFor resolves an extended (proleptic ISO) date to its
// (year-in-era, era-code) pair, per spec.md §4.8 steps 1-3. Dates
// before the earliest known era fall back to Gregorian bce/ce.
func (t EraTable) AdjustedYearFor(extendedYear, month, day int) (int, string) {
	date := EraDate{extendedYear, month, day}
	era := t.eraFor(date)
	if date.Less(era.Start) {
		if date.Year <= 0 {
			return 1 - date.Year, "bce"
		}
		return date.Year, "ce"
	}
	return date.Year - era.Start.Year + 1, era.Code
}

// ExtendedFromEraYear converts an era-relative year back to an
// extended (proleptic ISO) year: the inverse of AdjustedYearFor's year
// arithmetic, ignoring month/day (era boundaries only gate the year).
func (t EraTable) ExtendedFromEraYear(era string, year int) (int, error) {
	switch era {
	case "", "ce", "ad":
		return year, nil
	case "bce", "bc":
		return 1 - year, nil
	}

	start, err := t.eraStart(era)
	if err != nil {
		return 0, err
	}
	return start.Year + year - 1, nil
}

// NewDate constructs the extended (year, month, day) for a date given
// in era-relative form, rejecting unknown era codes with
// errs.ErrInvalidEra. "", "ce"/"ad", and "bce"/"bc" are always
// accepted regardless of which eras the table carries.
func (t EraTable) NewDate(era string, year, month, day int) (Date, error) {
	extendedYear, err := t.ExtendedFromEraYear(era, year)
	if err != nil {
		return Date{}, err
	}
	return Date{ExtendedYear: extendedYear, Month: month, Day: day}, nil
}

// EraYear resolves a Date to the era-relative year it falls in,
// returning the era code alongside it.
func (t EraTable) EraYear(d Date) (year int, era string) {
	return t.AdjustedYearFor(d.ExtendedYear, d.Month, d.Day)
}
