package timezone

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/intlgo/icucore/container"
)

func TestMarshalZoneEntryRoundTripEmptyTail(t *testing.T) {
	entry, err := NewZoneEntry(3, nil)
	require.NoError(t, err)

	data, err := MarshalZoneEntry(entry)
	require.NoError(t, err)

	got, err := UnmarshalZoneEntry(data)
	require.NoError(t, err)
	require.Equal(t, entry, got)
}

func TestMarshalZoneEntryRoundTripWithTail(t *testing.T) {
	tail := []container.TailItem[ZoneNameTimestamp, uint32]{
		{At: NewZoneNameTimestamp(2007, 3, 11, 2), Payload: 1},
		{At: NewZoneNameTimestamp(2007, 11, 4, 2), Payload: 0},
		{At: NewZoneNameTimestamp(2008, 3, 9, 2), Payload: 1},
		{At: NewZoneNameTimestamp(2008, 11, 2, 2), Payload: 0},
	}
	entry, err := NewZoneEntry(0, tail)
	require.NoError(t, err)

	data, err := MarshalZoneEntry(entry)
	require.NoError(t, err)

	got, err := UnmarshalZoneEntry(data)
	require.NoError(t, err)
	require.Equal(t, entry, got)
}

func TestUnmarshalZoneEntryRejectsTruncatedData(t *testing.T) {
	tail := []container.TailItem[ZoneNameTimestamp, uint32]{
		{At: NewZoneNameTimestamp(2020, 6, 1, 0), Payload: 1},
	}
	entry, err := NewZoneEntry(0, tail)
	require.NoError(t, err)

	data, err := MarshalZoneEntry(entry)
	require.NoError(t, err)

	_, err = UnmarshalZoneEntry(data[:len(data)-1])
	require.Error(t, err)

	_, err = UnmarshalZoneEntry(data[:2])
	require.Error(t, err)
}
