// Package datetime implements the pattern IR, placeholder backends, the
// skeleton matcher, and the parts-annotated formatter.
package datetime

import "github.com/intlgo/icucore/errs"

// FieldSymbol is the closed enum of fields a pattern item can name.
type FieldSymbol uint8

const (
	Era FieldSymbol = iota
	YearCalendar
	YearCyclic
	YearRelatedIso
	MonthFormat
	MonthStandAlone
	WeekdayFormat
	WeekdayStandAlone
	WeekdayLocal
	DayOfMonth
	DayOfYear
	DayOfWeekInMonth
	HourH11
	HourH12
	HourH23
	HourH24
	Minute
	SecondField
	MillisInDay
	DecimalSecond
	DayPeriod
	TimeZoneField
)

// symbolClass groups symbols into the "different symbol class" penalty
// buckets the skeleton matcher uses (spec.md §4.6's "weekday vs month").
type symbolClass uint8

const (
	classEra symbolClass = iota
	classYear
	classMonth
	classWeekday
	classDay
	classHour
	classMinute
	classSecond
	classDecimalSecond
	classDayPeriod
	classTimeZone
)

// class reports the symbolClass a FieldSymbol belongs to.
func (s FieldSymbol) class() symbolClass {
	switch s {
	case Era:
		return classEra
	case YearCalendar, YearCyclic, YearRelatedIso:
		return classYear
	case MonthFormat, MonthStandAlone:
		return classMonth
	case WeekdayFormat, WeekdayStandAlone, WeekdayLocal:
		return classWeekday
	case DayOfMonth, DayOfYear, DayOfWeekInMonth:
		return classDay
	case HourH11, HourH12, HourH23, HourH24:
		return classHour
	case Minute:
		return classMinute
	case SecondField, MillisInDay:
		return classSecond
	case DecimalSecond:
		return classDecimalSecond
	case DayPeriod:
		return classDayPeriod
	case TimeZoneField:
		return classTimeZone
	default:
		return classTimeZone
	}
}

// isTextField reports whether (sym, length) renders as a looked-up name
// ("text") as opposed to a padded number ("numeric") -- the distinction
// the skeleton matcher's "text vs numeric mismatch" penalty depends on.
// Month is the one class where the same symbol switches between the two
// depending on requested length (M/MM numeric, MMM+ text); every other
// class is fixed.
func isTextField(sym FieldSymbol, length FieldLength) bool {
	switch sym.class() {
	case classMonth:
		return length > Two
	case classWeekday, classDayPeriod, classEra, classTimeZone:
		return true
	default:
		return false
	}
}

// FieldLength is the closed set of field widths; numeric semantics
// depend on the symbol (spec.md §3.3).
type FieldLength uint8

const (
	One FieldLength = iota + 1
	Two
	Three
	Four
	Five
	Six
)

// HourCoercion maps a 0..23 input hour to the value displayed for the
// given hour symbol, following spec.md §4.5's hour coercion table
// (H11 0..11, H12 1..12, H23 0..23, H24 1..24). A non-hour symbol
// returns an UnsupportedLengthError.
func HourCoercion(sym FieldSymbol, hour24 int) (int, error) {
	switch sym {
	case HourH11:
		return hour24 % 12, nil
	case HourH12:
		h := hour24 % 12
		if h == 0 {
			h = 12
		}

		return h, nil
	case HourH23:
		return hour24 % 24, nil
	case HourH24:
		h := hour24 % 24
		if h == 0 {
			h = 24
		}

		return h, nil
	default:
		return 0, &errs.UnsupportedLengthError{Field: "hour"}
	}
}
