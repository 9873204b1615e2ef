// Package timezone implements the zone-id resolver and the
// VariantOffsets wire format it looks up into (spec.md §4.7, §6.3).
package timezone

import (
	"github.com/intlgo/icucore/errs"
)

// secondsPerEighthHour is the unit byte0 counts in: 1/8 hour = 7.5
// minutes = 450 seconds.
const secondsPerEighthHour = 450

// negativeSentinelSeconds is the historical -00:44:30 offset TZDB
// carries for pre-1900 Liberia but that an eighths-of-an-hour schema
// cannot represent exactly; i8::MAX is reserved to mean exactly this.
const negativeSentinelSeconds = -2670

// DaylightDelta is the closed set of standard->daylight offset deltas
// representable in byte1's low 6 bits (spec.md §4.7).
type DaylightDelta uint8

const (
	DaylightAbsent DaylightDelta = iota
	DaylightZero
	Daylight30m
	Daylight60m
	Daylight90m
	Daylight120m
	DaylightNeg60m
)

func (d DaylightDelta) deltaSeconds() (int, bool) {
	switch d {
	case DaylightAbsent:
		return 0, false
	case DaylightZero:
		return 0, true
	case Daylight30m:
		return 1800, true
	case Daylight60m:
		return 3600, true
	case Daylight90m:
		return 5400, true
	case Daylight120m:
		return 7200, true
	case DaylightNeg60m:
		return -3600, true
	default:
		return 0, false
	}
}

// MetazoneKind classifies how a zone's variants relate to its
// metazone's golden zone (spec.md §4.7).
type MetazoneKind uint8

const (
	BehavesLikeGolden MetazoneKind = iota
	CustomVariants
	CustomTransitions
)

// VariantOffsets is the standard/daylight offset pair plus metazone
// membership, the 2-byte deduplicated record the zone resolver's tail
// sequences index into (spec.md §4.7).
type VariantOffsets struct {
	StandardSeconds int
	Daylight        DaylightDelta
	Metazone        MetazoneKind
}

// Encode packs o into its 2-byte wire form, matching the standard-
// offset rounding rule for the non-quarter-hour TZDB offsets (:10/:20/
// :40/:50) that the eighths-of-an-hour byte can't store exactly.
func (o VariantOffsets) Encode() ([2]byte, error) {
	var b0 int
	if o.StandardSeconds == negativeSentinelSeconds {
		b0 = 127
	} else {
		if o.StandardSeconds%60 != 0 {
			return [2]byte{}, errs.ErrInconsistentData
		}
		abs := o.StandardSeconds
		if abs < 0 {
			abs = -abs
		}
		switch (abs / 60) % 60 {
		case 0, 15, 30, 45, 10, 40:
			b0 = o.StandardSeconds / secondsPerEighthHour
		case 20, 50:
			b0 = o.StandardSeconds/secondsPerEighthHour + signum(o.StandardSeconds)
		default:
			return [2]byte{}, errs.ErrInconsistentData
		}
		if b0 < -128 || b0 > 126 {
			return [2]byte{}, errs.ErrInconsistentData
		}
	}

	var b1 byte
	switch o.Daylight {
	case DaylightAbsent:
		b1 = 0
	case DaylightZero:
		b1 = 1
	case Daylight30m:
		b1 = 2
	case Daylight60m:
		b1 = 3
	case Daylight90m:
		b1 = 4
	case Daylight120m:
		b1 = 5
	case DaylightNeg60m:
		b1 = 6
	default:
		return [2]byte{}, errs.ErrInconsistentData
	}

	var mz byte
	switch o.Metazone {
	case BehavesLikeGolden:
		mz = 0b00
	case CustomVariants:
		mz = 0b01
	case CustomTransitions:
		mz = 0b10
	default:
		return [2]byte{}, errs.ErrInconsistentData
	}
	b1 |= mz << 6

	return [2]byte{byte(int8(b0)), b1}, nil
}

// DecodeVariantOffsets unpacks wire into a VariantOffsets, rejecting a
// daylight-delta field >= 7 or a reserved (0b11) metazone kind as
// malformed (spec.md §6.3).
func DecodeVariantOffsets(wire [2]byte) (VariantOffsets, error) {
	std := int(int8(wire[0]))

	var standardSeconds int
	if std == 127 {
		standardSeconds = negativeSentinelSeconds
	} else {
		standardSeconds = std*secondsPerEighthHour + eighthHourRemainder(std)
	}

	deltaField := wire[1] & 0b0011_1111
	var daylight DaylightDelta
	switch deltaField {
	case 0:
		daylight = DaylightAbsent
	case 1:
		daylight = DaylightZero
	case 2:
		daylight = Daylight30m
	case 3:
		daylight = Daylight60m
	case 4:
		daylight = Daylight90m
	case 5:
		daylight = Daylight120m
	case 6:
		daylight = DaylightNeg60m
	default:
		return VariantOffsets{}, errs.ErrInconsistentData
	}

	var metazone MetazoneKind
	switch (wire[1] & 0b1100_0000) >> 6 {
	case 0b00:
		metazone = BehavesLikeGolden
	case 0b01:
		metazone = CustomVariants
	case 0b10:
		metazone = CustomTransitions
	default:
		return VariantOffsets{}, errs.ErrInconsistentData
	}

	return VariantOffsets{StandardSeconds: standardSeconds, Daylight: daylight, Metazone: metazone}, nil
}

// DaylightSeconds returns the daylight offset in seconds and whether
// one is present, applying the delta on top of StandardSeconds.
func (o VariantOffsets) DaylightSeconds() (int, bool) {
	delta, ok := o.Daylight.deltaSeconds()
	if !ok {
		return 0, false
	}
	return o.StandardSeconds + delta, true
}

// eighthHourRemainder recovers the sub-eighth-hour correction applied
// during Encode for the :10/:20/:40/:50 offsets, keyed off std%8 --
// Go's truncated-division % matches the same sign convention Encode
// relied on.
func eighthHourRemainder(std int) int {
	switch std % 8 {
	case 1, 5:
		return 150
	case -1, -5:
		return -150
	case 3, 7:
		return -150
	case -3, -7:
		return 150
	default:
		return 0
	}
}

func signum(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
