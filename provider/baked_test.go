package provider

import (
	"testing"

	"github.com/intlgo/icucore/datalocale"
	"github.com/intlgo/icucore/errs"
	"github.com/intlgo/icucore/marker"
	"github.com/stretchr/testify/require"
)

func TestBakedLoadRoundTrip(t *testing.T) {
	id := mustMarkerID(t, "datetime/symbols@1")
	info := marker.Info{ID: id}

	b := NewBaked()
	frRoot := datalocale.Identifier{Locale: datalocale.Parse("fr")}
	b.Register(info, map[datalocale.Identifier][]byte{
		frRoot: []byte("payload-fr"),
	})

	resp, err := b.Load(id, Request{Identifier: frRoot})
	require.NoError(t, err)
	require.Equal(t, []byte("payload-fr"), resp.Payload.Bytes)
}

func TestBakedLoadMissingIdentifier(t *testing.T) {
	id := mustMarkerID(t, "datetime/symbols@1")
	info := marker.Info{ID: id}

	b := NewBaked()
	b.Register(info, map[datalocale.Identifier][]byte{})

	_, err := b.Load(id, Request{Identifier: datalocale.Identifier{Locale: datalocale.Parse("de")}})
	require.ErrorIs(t, err, errs.ErrIdentifierNotFound)
}

func TestBakedLoadUnregisteredMarker(t *testing.T) {
	b := NewBaked()
	id := mustMarkerID(t, "unregistered/marker@1")

	_, err := b.Load(id, Request{})
	require.ErrorIs(t, err, errs.ErrMarkerNotFound)
}

func TestBakedLoadNeverMarker(t *testing.T) {
	b := NewBaked()
	_, err := b.Load(marker.NeverMarker, Request{})
	require.ErrorIs(t, err, errs.ErrMarkerNotFound)
}
