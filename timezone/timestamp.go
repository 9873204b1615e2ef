package timezone

import "time"

// ZoneNameTimestamp is a 3-byte truncated wall-clock instant --
// year/month/day/hour packed into 24 bits, hour precision only
// (spec.md §3.3, §4.7): "the metazone table does not need minute
// precision."
type ZoneNameTimestamp uint32

// Field widths sum to exactly 24 bits: 10 bits year-since-tsBaseYear
// (0..1023, i.e. tsBaseYear..tsBaseYear+1023), 4 bits month, 5 bits
// day, 5 bits hour. A metazone/zone-transition table has no need for
// years before the Gregorian calendar's modern adoption, so the base
// year buys back the bits a full 4-digit year would otherwise cost.
const (
	tsBaseYear = 1900

	tsHourBits  = 5
	tsDayBits   = 5
	tsMonthBits = 4
	tsYearBits  = 10

	tsHourShift  = 0
	tsDayShift   = tsHourShift + tsHourBits
	tsMonthShift = tsDayShift + tsDayBits
	tsYearShift  = tsMonthShift + tsMonthBits
)

// NewZoneNameTimestamp truncates a wall-clock instant to hour
// precision and packs it into 24 usable bits.
func NewZoneNameTimestamp(year, month, day, hour int) ZoneNameTimestamp {
	y := uint32(year-tsBaseYear) & (1<<tsYearBits - 1)
	m := uint32(month) & (1<<tsMonthBits - 1)
	d := uint32(day) & (1<<tsDayBits - 1)
	h := uint32(hour) & (1<<tsHourBits - 1)

	return ZoneNameTimestamp(y<<tsYearShift | m<<tsMonthShift | d<<tsDayShift | h<<tsHourShift)
}

func (t ZoneNameTimestamp) Year() int {
	return int(uint32(t)>>tsYearShift&(1<<tsYearBits-1)) + tsBaseYear
}
func (t ZoneNameTimestamp) Month() int { return int(uint32(t) >> tsMonthShift & (1<<tsMonthBits - 1)) }
func (t ZoneNameTimestamp) Day() int   { return int(uint32(t) >> tsDayShift & (1<<tsDayBits - 1)) }
func (t ZoneNameTimestamp) Hour() int  { return int(uint32(t) >> tsHourShift & (1<<tsHourBits - 1)) }

// FromUnix truncates a UTC unix timestamp to hour precision, the
// conversion the zone resolver applies to a formatting call's input
// instant before looking it up (spec.md §4.7: "timestamp is a
// wall-clock instant truncated to hour precision").
func FromUnix(unixSeconds int64) ZoneNameTimestamp {
	t := time.Unix(unixSeconds, 0).UTC()
	return NewZoneNameTimestamp(t.Year(), int(t.Month()), t.Day(), t.Hour())
}

// Compare gives ZoneNameTimestamp the container.Ordered contract --
// packed integer comparison is exactly chronological comparison since
// each field occupies a fixed, non-overflowing bit range above the
// next-coarser one.
func (t ZoneNameTimestamp) Compare(o ZoneNameTimestamp) int {
	switch {
	case t < o:
		return -1
	case t > o:
		return 1
	default:
		return 0
	}
}
