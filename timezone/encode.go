package timezone

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/intlgo/icucore/container"
	"github.com/intlgo/icucore/encoding"
	"github.com/intlgo/icucore/errs"
)

// MarshalZoneEntry serializes a ZoneEntry into the columnar on-wire
// form the export driver writes for a zone marker's per-locale payload
// (spec.md §4.7): the tail's timestamps and offset indices are each
// compressed with the encoding appropriate to its shape, rather than
// stored as a flat array of structs.
//
// Layout: [head uint32][tail count uvarint]
//
//	[timestamp column length uvarint][delta-encoded timestamps]
//	[offset-index column length uvarint][gorilla-encoded offset indices]
//
// Timestamps use delta-of-delta encoding (TimestampDeltaEncoder): a
// zone's DST transitions recur on the same yearly cadence for decades,
// so consecutive deltas are nearly constant. Offset indices use Gorilla
// encoding (NumericGorillaEncoder): almost every zone cycles between
// only one or two distinct offsets, so consecutive index values are
// frequently identical.
func MarshalZoneEntry(e ZoneEntry) ([]byte, error) {
	out := make([]byte, 4, 4+binary.MaxVarintLen64)
	binary.LittleEndian.PutUint32(out, e.Head)

	countBuf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(countBuf, uint64(len(e.Tail)))
	out = append(out, countBuf[:n]...)

	if len(e.Tail) == 0 {
		return out, nil
	}

	tsEnc := encoding.NewTimestampDeltaEncoder()
	defer tsEnc.Finish()
	offEnc := encoding.NewNumericGorillaEncoder()
	defer offEnc.Finish()

	for _, item := range e.Tail {
		tsEnc.Write(int64(item.At))
		offEnc.Write(float64(item.Payload))
	}

	tsBytes := tsEnc.Bytes()
	offBytes := offEnc.Bytes()

	lenBuf := make([]byte, binary.MaxVarintLen64)
	n = binary.PutUvarint(lenBuf, uint64(len(tsBytes)))
	out = append(out, lenBuf[:n]...)
	out = append(out, tsBytes...)

	n = binary.PutUvarint(lenBuf, uint64(len(offBytes)))
	out = append(out, lenBuf[:n]...)
	out = append(out, offBytes...)

	return out, nil
}

// UnmarshalZoneEntry reverses MarshalZoneEntry, reconstructing the
// ZoneEntry's head and ascending tail.
func UnmarshalZoneEntry(data []byte) (ZoneEntry, error) {
	if len(data) < 4 {
		return ZoneEntry{}, fmt.Errorf("%w: zone entry shorter than head", errs.ErrInconsistentData)
	}
	head := binary.LittleEndian.Uint32(data)
	data = data[4:]

	count, n := binary.Uvarint(data)
	if n <= 0 {
		return ZoneEntry{}, fmt.Errorf("%w: zone entry missing tail count", errs.ErrInconsistentData)
	}
	data = data[n:]

	if count == 0 {
		return NewZoneEntry(head, nil)
	}

	tsLen, n := binary.Uvarint(data)
	if n <= 0 || uint64(len(data)-n) < tsLen {
		return ZoneEntry{}, fmt.Errorf("%w: zone entry missing timestamp column", errs.ErrInconsistentData)
	}
	data = data[n:]
	tsBytes := data[:tsLen]
	data = data[tsLen:]

	offLen, n := binary.Uvarint(data)
	if n <= 0 || uint64(len(data)-n) < offLen {
		return ZoneEntry{}, fmt.Errorf("%w: zone entry missing offset-index column", errs.ErrInconsistentData)
	}
	data = data[n:]
	offBytes := data[:offLen]

	tsDec := encoding.NewTimestampDeltaDecoder()
	offDec := encoding.NewNumericGorillaDecoder()

	tail := make([]container.TailItem[ZoneNameTimestamp, uint32], 0, count)
	timestamps := tsDec.All(tsBytes, int(count))
	offsets := offDec.All(offBytes, int(count))

	next, stop := iter.Pull(timestamps)
	defer stop()
	nextOff, stopOff := iter.Pull(offsets)
	defer stopOff()

	for range int(count) {
		ts, ok := next()
		if !ok {
			return ZoneEntry{}, fmt.Errorf("%w: zone entry timestamp column truncated", errs.ErrInconsistentData)
		}
		off, ok := nextOff()
		if !ok {
			return ZoneEntry{}, fmt.Errorf("%w: zone entry offset-index column truncated", errs.ErrInconsistentData)
		}
		tail = append(tail, container.TailItem[ZoneNameTimestamp, uint32]{
			At:      ZoneNameTimestamp(ts),
			Payload: uint32(off),
		})
	}

	return NewZoneEntry(head, tail)
}
