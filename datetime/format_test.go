package datetime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// namesStub implements Names with the literal lookup tables needed by
// the end-to-end scenarios in spec.md §8.
type namesStub struct {
	eras      map[FieldLength]string
	months    map[string]string // key: "format:M10", "standalone:M11" etc.
	weekdays  map[FieldLength]string
	dayPeriod map[int]string
}

func (n namesStub) Era(length FieldLength, _ string) (string, bool) {
	s, ok := n.eras[length]

	return s, ok
}

func (n namesStub) Month(length FieldLength, standAlone bool, monthCode string) (string, bool) {
	kind := "format"
	if standAlone {
		kind = "standalone"
	}
	s, ok := n.months[kind+":"+monthCode]

	return s, ok
}

func (n namesStub) Weekday(length FieldLength, _ bool, _ int) (string, bool) {
	s, ok := n.weekdays[length]

	return s, ok
}

func (n namesStub) DayPeriod(_ FieldLength, index int) (string, bool) {
	s, ok := n.dayPeriod[index]

	return s, ok
}

type decimalStub struct{}

func (decimalStub) FormatPadded(value int64, minDigits int) (string, bool) {
	return padInt(value, minDigits), true
}

func TestFormatLiteralScenarioOne(t *testing.T) {
	pattern, err := ParsePatternString(`'It is' E, MMMM d, y GGGGG 'at' hh:mm a'!'`)
	require.NoError(t, err)

	names := namesStub{
		eras:      map[FieldLength]string{Five: "A"},
		months:    map[string]string{"format:M10": "October"},
		weekdays:  map[FieldLength]string{One: "Wed"},
		dayPeriod: map[int]string{1: "PM"},
	}

	in := Input{
		Year: 2023, MonthOrdinal: 10, MonthCode: "M10", DayOfMonth: 25,
		Weekday: 3, Hour: 15, Minute: 0, Second: 55, DayPeriodIndex: 1,
		EraCode: "ce",
	}

	f := Formatter{Names: names, Decimal: decimalStub{}}
	out, _, err := f.Format(pattern, in)
	require.NoError(t, err)
	require.Equal(t, "It is Wed, October 25, 2023 A at 03:00 PM!", out)
}

func TestFormatEraLengthVariants(t *testing.T) {
	pattern, err := ParsePatternString("<GGG>")
	require.NoError(t, err)
	names := namesStub{eras: map[FieldLength]string{Three: "н. е."}}
	f := Formatter{Names: names}
	out, _, err := f.Format(pattern, Input{EraCode: "ce"})
	require.NoError(t, err)
	require.Equal(t, "<н. е.>", out)

	pattern4, err := ParsePatternString("<GGGG>")
	require.NoError(t, err)
	names4 := namesStub{eras: map[FieldLength]string{Four: "нашої ери"}}
	f4 := Formatter{Names: names4}
	out4, _, err := f4.Format(pattern4, Input{EraCode: "ce"})
	require.NoError(t, err)
	require.Equal(t, "<нашої ери>", out4)

	pattern5, err := ParsePatternString("<GGGGG>")
	require.NoError(t, err)
	names5 := namesStub{eras: map[FieldLength]string{Five: "н.е."}}
	f5 := Formatter{Names: names5}
	out5, _, err := f5.Format(pattern5, Input{EraCode: "ce"})
	require.NoError(t, err)
	require.Equal(t, "<н.е.>", out5)
}

func TestFormatMonthFormatVsStandAlone(t *testing.T) {
	names := namesStub{months: map[string]string{
		"format:M11":     "листопада",
		"standalone:M11": "листопад",
	}}

	formatPattern, err := ParsePatternString("<MMMM>")
	require.NoError(t, err)
	f := Formatter{Names: names}
	out, _, err := f.Format(formatPattern, Input{MonthCode: "M11"})
	require.NoError(t, err)
	require.Equal(t, "<листопада>", out)

	standAlonePattern, err := ParsePatternString("<LLLL>")
	require.NoError(t, err)
	out2, _, err := f.Format(standAlonePattern, Input{MonthCode: "M11"})
	require.NoError(t, err)
	require.Equal(t, "<листопад>", out2)
}

func TestFormatMissingNamesProducesErrorPart(t *testing.T) {
	pattern, err := ParsePatternString("<MMMM>")
	require.NoError(t, err)
	f := Formatter{}
	out, spans, err := f.Format(pattern, Input{MonthCode: "M01"})
	require.Error(t, err)
	require.Contains(t, out, "�")
	found := false
	for _, sp := range spans {
		if sp.Kind == PartError {
			found = true
		}
	}
	require.True(t, found)
}

func TestFormatTwoDigitYearTruncates(t *testing.T) {
	pattern, err := ParsePatternString("yy")
	require.NoError(t, err)
	f := Formatter{Decimal: decimalStub{}}
	out, _, err := f.Format(pattern, Input{Year: 2005})
	require.NoError(t, err)
	require.Equal(t, "05", out)
}

func TestFormatHourCoercionH12(t *testing.T) {
	pattern, err := ParsePatternString("hh")
	require.NoError(t, err)
	f := Formatter{Decimal: decimalStub{}}
	out, _, err := f.Format(pattern, Input{Hour: 0})
	require.NoError(t, err)
	require.Equal(t, "12", out)
}
