package datetime

import (
	"strconv"
	"strings"

	"github.com/intlgo/icucore/errs"
)

// Names resolves the looked-up text for the name-backed fields (era,
// month, weekday, day period); "not loaded" and "code not recognized"
// are both reported as ok == false, per spec.md §4.5's "on not-loaded
// or invalid, emit a designated fallback token."
type Names interface {
	Era(length FieldLength, eraCode string) (string, bool)
	Month(length FieldLength, standAlone bool, monthCode string) (string, bool)
	Weekday(length FieldLength, standAlone bool, weekday int) (string, bool)
	DayPeriod(length FieldLength, index int) (string, bool)
}

// DecimalFormatter left-pads a numeric field to minDigits using the
// locale's decimal digit shapes. A nil Formatter.Decimal, or FormatPadded
// returning ok == false, triggers the error-tagged fallback.
type DecimalFormatter interface {
	FormatPadded(value int64, minDigits int) (string, bool)
}

// ZoneResolver resolves a time-zone display name for a (zone id,
// hour-truncated timestamp) pair; see package timezone for the
// concrete offset/metazone lookup this normally sits on top of.
type ZoneResolver interface {
	Resolve(zoneID string, hourTruncatedUnix int64) (name string, ok bool)
}

// Input is the set of extracted date/time/zone fields a Formatter
// interpolates into a Pattern. Calendar-specific derivation (era code,
// cyclic year, month code) is the caller's responsibility -- package
// calendar computes these for the Japanese calendar example.
type Input struct {
	Year               int
	RelatedIsoYear     int
	CyclicYear         int
	EraCode            string
	MonthOrdinal       int
	MonthCode          string
	DayOfMonth         int
	DayOfYear          int
	DayOfWeekInMonth   int
	Weekday            int // 0 = Sunday .. 6 = Saturday
	Hour               int // 0..23 wall-clock hour, before symbol-specific coercion
	Minute             int
	Second             int
	NanosecondOfSecond int
	DayPeriodIndex     int
	ZoneID             string
	ZoneTimestamp      int64 // unix seconds, truncated to hour precision
}

// Formatter interpolates a Pattern against an Input, per spec.md §4.5's
// field-formatting policy and §4.9's parts-annotated output.
type Formatter struct {
	Names   Names
	Decimal DecimalFormatter
	Zones   ZoneResolver
}

// Format writes pattern against in, returning the composed string, the
// part spans recorded during formatting, and the first recoverable
// error encountered (formatting continues past it, per spec.md §6.1's
// "may partially succeed").
func (f Formatter) Format(pattern Pattern, in Input) (string, []PartSpan, error) {
	w := &PartsWriter{}
	var firstErr error
	for _, item := range pattern.Items {
		if !item.IsField {
			w.Enter(PartLiteral)
			w.WriteRune(item.Literal)
			w.Exit()

			continue
		}
		if err := f.formatField(w, item, in); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return w.String(), w.Spans(), firstErr
}

func (f Formatter) formatField(w *PartsWriter, item PatternItem, in Input) error {
	switch item.Symbol {
	case Era:
		return f.writeEra(w, item, in)
	case YearCalendar:
		return f.writeYear(w, item.Length, in.Year)
	case YearRelatedIso:
		return f.writeNumeric(w, PartRelatedYear, item.Length, int64(in.RelatedIsoYear))
	case YearCyclic:
		return f.writeNumeric(w, PartYear, item.Length, int64(in.CyclicYear))
	case MonthFormat, MonthStandAlone:
		return f.writeMonth(w, item, in)
	case WeekdayFormat, WeekdayStandAlone, WeekdayLocal:
		return f.writeWeekday(w, item, in)
	case DayOfMonth:
		return f.writeNumeric(w, PartDay, item.Length, int64(in.DayOfMonth))
	case DayOfYear:
		return f.writeNumeric(w, PartDay, item.Length, int64(in.DayOfYear))
	case DayOfWeekInMonth:
		return f.writeNumeric(w, PartDay, item.Length, int64(in.DayOfWeekInMonth))
	case HourH11, HourH12, HourH23, HourH24:
		return f.writeHour(w, item, in)
	case Minute:
		return f.writeNumeric(w, PartMinute, item.Length, int64(in.Minute))
	case SecondField:
		return f.writeNumeric(w, PartSecond, item.Length, int64(in.Second))
	case MillisInDay:
		millis := int64(in.Hour)*3_600_000 + int64(in.Minute)*60_000 + int64(in.Second)*1_000 + int64(in.NanosecondOfSecond)/1_000_000
		return f.writeNumeric(w, PartSecond, item.Length, millis)
	case DecimalSecond:
		return f.writeDecimalSecond(w, item, in)
	case DayPeriod:
		return f.writeDayPeriod(w, item, in)
	case TimeZoneField:
		return f.writeZone(w, in)
	default:
		return errs.ErrInvalidPattern
	}
}

func (f Formatter) writeNamesError(w *PartsWriter, field string) error {
	w.Enter(PartError)
	w.WriteRune('�')
	w.Exit()

	return &errs.NamesNotLoadedError{Field: field}
}

func (f Formatter) writeEra(w *PartsWriter, item PatternItem, in Input) error {
	if f.Names == nil {
		return f.writeNamesError(w, "era")
	}
	name, ok := f.Names.Era(item.Length, in.EraCode)
	if !ok {
		return f.writeNamesError(w, "era")
	}
	w.Enter(PartEra)
	w.WriteString(name)
	w.Exit()

	return nil
}

func (f Formatter) writeMonth(w *PartsWriter, item PatternItem, in Input) error {
	if item.Length == One || item.Length == Two {
		return f.writeNumeric(w, PartMonth, item.Length, int64(in.MonthOrdinal))
	}
	if f.Names == nil {
		return f.writeNamesError(w, "month")
	}
	standAlone := item.Symbol == MonthStandAlone
	name, ok := f.Names.Month(item.Length, standAlone, in.MonthCode)
	if !ok {
		return f.writeNamesError(w, "month")
	}
	w.Enter(PartMonth)
	w.WriteString(name)
	w.Exit()

	return nil
}

func (f Formatter) writeWeekday(w *PartsWriter, item PatternItem, in Input) error {
	if f.Names == nil {
		return f.writeNamesError(w, "weekday")
	}
	standAlone := item.Symbol != WeekdayFormat
	name, ok := f.Names.Weekday(item.Length, standAlone, in.Weekday)
	if !ok {
		return f.writeNamesError(w, "weekday")
	}
	w.Enter(PartWeekday)
	w.WriteString(name)
	w.Exit()

	return nil
}

func (f Formatter) writeDayPeriod(w *PartsWriter, item PatternItem, in Input) error {
	if f.Names == nil {
		return f.writeNamesError(w, "day_period")
	}
	name, ok := f.Names.DayPeriod(item.Length, in.DayPeriodIndex)
	if !ok {
		return f.writeNamesError(w, "day_period")
	}
	w.Enter(PartDayPeriod)
	w.WriteString(name)
	w.Exit()

	return nil
}

func (f Formatter) writeZone(w *PartsWriter, in Input) error {
	if f.Zones == nil {
		return f.writeNamesError(w, "timezone")
	}
	name, ok := f.Zones.Resolve(in.ZoneID, in.ZoneTimestamp)
	if !ok {
		return f.writeNamesError(w, "timezone")
	}
	w.Enter(PartTimeZoneName)
	w.WriteString(name)
	w.Exit()

	return nil
}

// writeYear implements the "yy truncates to last two digits, retaining
// sign" rule; any other length formats the full numeric year.
func (f Formatter) writeYear(w *PartsWriter, length FieldLength, year int) error {
	if length != Two {
		return f.writeNumeric(w, PartYear, length, int64(year))
	}

	v := year % 100
	neg := year < 0
	if v < 0 {
		v = -v
	}
	s := strconv.Itoa(v)
	if len(s) < 2 {
		s = "0" + s
	}
	if neg {
		s = "-" + s
	}
	w.Enter(PartYear)
	w.WriteString(s)
	w.Exit()

	return nil
}

// writeNumeric left-pads value to minDigits using the decimal
// formatter when loaded, else the error-tagged fallback (spec.md §4.5).
func (f Formatter) writeNumeric(w *PartsWriter, part Part, length FieldLength, value int64) error {
	minDigits := int(length)
	if f.Decimal != nil {
		if s, ok := f.Decimal.FormatPadded(value, minDigits); ok {
			w.Enter(part)
			w.WriteString(s)
			w.Exit()

			return nil
		}
	}

	w.Enter(PartError)
	w.WriteString(padInt(value, minDigits))
	w.Exit()

	return errs.ErrDecimalFormatterNotLoaded
}

// writeDecimalSecond concatenates the integer second with the
// fractional subsecond scaled to the requested digit count, truncated
// (not rounded) toward zero (spec.md §4.5).
func (f Formatter) writeDecimalSecond(w *PartsWriter, item PatternItem, in Input) error {
	digits := int(item.Length)
	if digits > 9 {
		digits = 9
	}
	frac := in.NanosecondOfSecond
	for d := 9; d > digits; d-- {
		frac /= 10
	}
	fracStr := strconv.Itoa(frac)
	for len(fracStr) < digits {
		fracStr = "0" + fracStr
	}

	w.Enter(PartSecond)
	w.WriteString(strconv.Itoa(in.Second))
	w.WriteRune('.')
	w.WriteString(fracStr)
	w.Exit()

	return nil
}

func (f Formatter) writeHour(w *PartsWriter, item PatternItem, in Input) error {
	val, err := HourCoercion(item.Symbol, in.Hour)
	if err != nil {
		return err
	}

	return f.writeNumeric(w, PartHour, item.Length, int64(val))
}

func padInt(value int64, minDigits int) string {
	neg := value < 0
	if neg {
		value = -value
	}
	s := strconv.FormatInt(value, 10)
	for len(s) < minDigits {
		s = "0" + s
	}
	if neg {
		s = "-" + s
	}

	return s
}

var patternLetterSymbols = map[byte]FieldSymbol{
	'G': Era,
	'E': WeekdayFormat,
	'c': WeekdayStandAlone,
	'e': WeekdayLocal,
	'y': YearCalendar,
	'u': YearRelatedIso,
	'U': YearCyclic,
	'M': MonthFormat,
	'L': MonthStandAlone,
	'd': DayOfMonth,
	'D': DayOfYear,
	'F': DayOfWeekInMonth,
	'h': HourH12,
	'H': HourH23,
	'K': HourH11,
	'k': HourH24,
	'm': Minute,
	's': SecondField,
	'S': DecimalSecond,
	'a': DayPeriod,
	'z': TimeZoneField,
	'Z': TimeZoneField,
	'v': TimeZoneField,
	'V': TimeZoneField,
}

func isPatternLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// ParsePatternString parses a UTS-35-style pattern string (quoted
// literal runs via single quotes, '' for a literal quote, runs of a
// repeated pattern letter mapped to (symbol, run-length-as-FieldLength))
// into a Pattern.
func ParsePatternString(s string) (Pattern, error) {
	var items []PatternItem
	i := 0
	for i < len(s) {
		ch := s[i]
		switch {
		case ch == '\'':
			if i+1 < len(s) && s[i+1] == '\'' {
				items = append(items, NewLiteral('\''))
				i += 2

				continue
			}
			end := strings.IndexByte(s[i+1:], '\'')
			if end < 0 {
				return Pattern{}, errs.ErrInvalidPattern
			}
			for _, r := range s[i+1 : i+1+end] {
				items = append(items, NewLiteral(r))
			}
			i = i + 1 + end + 1
		case isPatternLetter(ch):
			j := i
			for j < len(s) && s[j] == ch {
				j++
			}
			run := j - i
			sym, ok := patternLetterSymbols[ch]
			if !ok || run > int(Six) {
				return Pattern{}, errs.ErrInvalidPattern
			}
			items = append(items, NewField(sym, FieldLength(run)))
			i = j
		default:
			items = append(items, NewLiteral(rune(ch)))
			i++
		}
	}

	p := Pattern{Items: items}
	if err := p.Validate(); err != nil {
		return Pattern{}, err
	}

	return p, nil
}
