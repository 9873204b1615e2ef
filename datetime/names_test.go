package datetime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameTableEraLookup(t *testing.T) {
	table := NewNameTable(
		map[FieldLength]map[string]string{
			Four: {"ce": "Anno Domini", "bce": "Before Christ"},
			One:  {"ce": "A", "bce": "B"},
		},
		nil, nil, nil,
	)

	name, ok := table.Era(Four, "ce")
	require.True(t, ok)
	require.Equal(t, "Anno Domini", name)

	name, ok = table.Era(One, "bce")
	require.True(t, ok)
	require.Equal(t, "B", name)

	_, ok = table.Era(Four, "unknown-era")
	require.False(t, ok)

	_, ok = table.Era(Two, "ce")
	require.False(t, ok, "a length with no loaded slot is absent, not a panic")
}

func TestNameTableMonthLookupDistinguishesStandAlone(t *testing.T) {
	table := NewNameTable(nil, map[monthSlot]map[string]string{
		{Length: Four, StandAlone: false}:  {"M01": "January"},
		{Length: Four, StandAlone: true}:   {"M01": "January"},
		{Length: Three, StandAlone: false}: {"M01": "Jan"},
	}, nil, nil)

	name, ok := table.Month(Four, false, "M01")
	require.True(t, ok)
	require.Equal(t, "January", name)

	name, ok = table.Month(Three, false, "M01")
	require.True(t, ok)
	require.Equal(t, "Jan", name)

	_, ok = table.Month(Three, true, "M01")
	require.False(t, ok, "stand-alone abbreviated slot was never loaded")
}

func TestNameTableWeekdayAndDayPeriodLookup(t *testing.T) {
	table := NewNameTable(nil, nil,
		map[weekdaySlot][]string{
			{Length: Four, StandAlone: false}: {
				"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
			},
		},
		map[FieldLength][]string{
			Four: {"AM", "PM"},
		},
	)

	name, ok := table.Weekday(Four, false, 3)
	require.True(t, ok)
	require.Equal(t, "Wednesday", name)

	_, ok = table.Weekday(Four, false, 7)
	require.False(t, ok, "out-of-range weekday index is absent, not a panic")

	name, ok = table.DayPeriod(Four, 1)
	require.True(t, ok)
	require.Equal(t, "PM", name)

	_, ok = table.DayPeriod(Three, 0)
	require.False(t, ok)
}

func TestNameTableSatisfiesFormatter(t *testing.T) {
	table := NewNameTable(
		map[FieldLength]map[string]string{Four: {"ce": "Anno Domini"}},
		nil, nil, nil,
	)

	f := Formatter{Names: table}
	pattern, err := ParsePatternString("GGGG")
	require.NoError(t, err)

	out, _, err := f.Format(pattern, Input{EraCode: "ce"})
	require.NoError(t, err)
	require.Equal(t, "Anno Domini", out)
}
