package datetime

import (
	"sort"

	"github.com/intlgo/icucore/container"
	"github.com/intlgo/icucore/encoding"
)

// NameTable is the concrete Names implementation backing a loaded
// "names" marker payload (spec.md §4.5: era/cyclic-year/month/weekday/
// day-period lookup by "(symbol, length, index-or-code)"). Each
// (symbol, length[, stand-alone]) slot is compressed into one
// encoding.TagEncoder column: era and month slots resolve their code
// through a container.AsciiTrie into the column's row index, the same
// trie-then-sequence shape timezone.Resolver uses for its zone lookups;
// weekday and day-period slots are indexed
// directly since their keys are already small dense integers.
type NameTable struct {
	eras       map[FieldLength]codedNames
	months     map[monthSlot]codedNames
	weekdays   map[weekdaySlot]indexedNames
	dayPeriods map[FieldLength]indexedNames
}

type monthSlot struct {
	Length     FieldLength
	StandAlone bool
}

type weekdaySlot struct {
	Length     FieldLength
	StandAlone bool
}

// codedNames is a TagEncoder column addressed by a string code (era or
// month) through an AsciiTrie giving the code's row index.
type codedNames struct {
	blob  []byte
	count int
	index container.AsciiTrie
}

func newCodedNames(byCode map[string]string) codedNames {
	codes := make([]string, 0, len(byCode))
	for code := range byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	enc := encoding.NewTagEncoder()
	leaves := make(map[string]uint32, len(codes))
	for i, code := range codes {
		enc.Write(byCode[code])
		leaves[code] = uint32(i) //nolint:gosec
	}
	blob := append([]byte(nil), enc.Bytes()...)
	enc.Finish()

	return codedNames{blob: blob, count: len(codes), index: container.NewAsciiTrie(leaves)}
}

func (c codedNames) lookup(code string) (string, bool) {
	i, ok := c.index.Get(code)
	if !ok {
		return "", false
	}

	return encoding.NewTagDecoder().At(c.blob, int(i), c.count)
}

// indexedNames is a TagEncoder column addressed directly by a dense
// integer index (weekday 0..6, day-period index).
type indexedNames struct {
	blob  []byte
	count int
}

func newIndexedNames(names []string) indexedNames {
	enc := encoding.NewTagEncoder()
	enc.WriteSlice(names)
	blob := append([]byte(nil), enc.Bytes()...)
	enc.Finish()

	return indexedNames{blob: blob, count: len(names)}
}

func (n indexedNames) lookup(index int) (string, bool) {
	return encoding.NewTagDecoder().At(n.blob, index, n.count)
}

var _ Names = (*NameTable)(nil)

// NewNameTable builds a NameTable from decoded CLDR-shaped name data:
// eras and months keyed by their calendar codes, weekdays and day
// periods keyed by their already-dense integer indices.
func NewNameTable(
	eras map[FieldLength]map[string]string,
	months map[monthSlot]map[string]string,
	weekdays map[weekdaySlot][]string,
	dayPeriods map[FieldLength][]string,
) *NameTable {
	t := &NameTable{
		eras:       make(map[FieldLength]codedNames, len(eras)),
		months:     make(map[monthSlot]codedNames, len(months)),
		weekdays:   make(map[weekdaySlot]indexedNames, len(weekdays)),
		dayPeriods: make(map[FieldLength]indexedNames, len(dayPeriods)),
	}
	for length, byCode := range eras {
		t.eras[length] = newCodedNames(byCode)
	}
	for slot, byCode := range months {
		t.months[slot] = newCodedNames(byCode)
	}
	for slot, names := range weekdays {
		t.weekdays[slot] = newIndexedNames(names)
	}
	for length, names := range dayPeriods {
		t.dayPeriods[length] = newIndexedNames(names)
	}

	return t
}

// Era resolves a (length, era code) pair.
func (t *NameTable) Era(length FieldLength, eraCode string) (string, bool) {
	set, ok := t.eras[length]
	if !ok {
		return "", false
	}

	return set.lookup(eraCode)
}

// Month resolves a (length, stand-alone, month code) tuple.
func (t *NameTable) Month(length FieldLength, standAlone bool, monthCode string) (string, bool) {
	set, ok := t.months[monthSlot{Length: length, StandAlone: standAlone}]
	if !ok {
		return "", false
	}

	return set.lookup(monthCode)
}

// Weekday resolves a (length, stand-alone, 0=Sunday..6=Saturday) tuple.
func (t *NameTable) Weekday(length FieldLength, standAlone bool, weekday int) (string, bool) {
	set, ok := t.weekdays[weekdaySlot{Length: length, StandAlone: standAlone}]
	if !ok {
		return "", false
	}

	return set.lookup(weekday)
}

// DayPeriod resolves a (length, day-period index) pair.
func (t *NameTable) DayPeriod(length FieldLength, index int) (string, bool) {
	set, ok := t.dayPeriods[length]
	if !ok {
		return "", false
	}

	return set.lookup(index)
}
