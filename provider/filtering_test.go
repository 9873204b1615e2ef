package provider

import (
	"testing"

	"github.com/intlgo/icucore/datalocale"
	"github.com/intlgo/icucore/errs"
	"github.com/intlgo/icucore/marker"
	"github.com/stretchr/testify/require"
)

func TestFilteringRejectsViaPredicate(t *testing.T) {
	id := mustMarkerID(t, "datetime/symbols@1")
	info := marker.Info{ID: id}

	inner := NewBaked()
	fr := datalocale.Identifier{Locale: datalocale.Parse("fr")}
	de := datalocale.Identifier{Locale: datalocale.Parse("de")}
	inner.Register(info, map[datalocale.Identifier][]byte{
		fr: []byte("fr-data"),
		de: []byte("de-data"),
	})

	modernOnly := NewFiltering(inner, func(req Request) bool {
		return req.Identifier.Locale.Language == "fr"
	})

	resp, err := modernOnly.Load(id, Request{Identifier: fr})
	require.NoError(t, err)
	require.Equal(t, []byte("fr-data"), resp.Payload.Bytes)

	_, err = modernOnly.Load(id, Request{Identifier: de})
	require.ErrorIs(t, err, errs.ErrIdentifierNotFound)
}

func TestFilteringNilPredicatePassesThrough(t *testing.T) {
	id := mustMarkerID(t, "datetime/symbols@1")
	info := marker.Info{ID: id}

	inner := NewBaked()
	root := datalocale.Identifier{Locale: datalocale.Root}
	inner.Register(info, map[datalocale.Identifier][]byte{root: []byte("data")})

	f := NewFiltering(inner, nil)
	resp, err := f.Load(id, Request{Identifier: root})
	require.NoError(t, err)
	require.Equal(t, []byte("data"), resp.Payload.Bytes)
}

func TestFilteringRejectsNeverMarker(t *testing.T) {
	f := NewFiltering(NewBaked(), nil)
	_, err := f.Load(marker.NeverMarker, Request{})
	require.ErrorIs(t, err, errs.ErrMarkerNotFound)
}
