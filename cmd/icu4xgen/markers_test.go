package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/intlgo/icucore/datalocale"
	"github.com/intlgo/icucore/export"
)

func TestResolveMarkersAllAndNone(t *testing.T) {
	all, err := resolveMarkers("ALL")
	require.NoError(t, err)
	require.Equal(t, knownMarkers, all)

	none, err := resolveMarkers("none")
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestResolveMarkersExplicitList(t *testing.T) {
	got, err := resolveMarkers("calendar/japanese@1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "calendar/japanese@1", got[0].ID.String())
}

func TestResolveMarkersUnknownFails(t *testing.T) {
	_, err := resolveMarkers("no/such@1")
	require.Error(t, err)
}

func TestResolveLocalesNoneAndFull(t *testing.T) {
	universe := []datalocale.Locale{datalocale.Parse("en"), datalocale.Parse("fr")}

	require.Nil(t, resolveLocales("none", universe))
	require.Equal(t, universe, resolveLocales("full", universe))
}

func TestResolveLocalesExplicitList(t *testing.T) {
	got := resolveLocales("en-GB, fr-CA", nil)
	require.Equal(t, []datalocale.Locale{datalocale.Parse("en-GB"), datalocale.Parse("fr-CA")}, got)
}

func TestResolveLocalesRecommendedIntersectsUniverse(t *testing.T) {
	universe := []datalocale.Locale{datalocale.Parse("en"), datalocale.Parse("xx-Zzzz")}
	got := resolveLocales("recommended", universe)
	require.Equal(t, []datalocale.Locale{datalocale.Parse("en")}, got)
}

func TestParseDedup(t *testing.T) {
	d, err := parseDedup("maximal")
	require.NoError(t, err)
	require.Equal(t, export.DedupMaximal, d)

	_, err = parseDedup("bogus")
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	_, ext, err := parseFormat("dir")
	require.NoError(t, err)
	require.Equal(t, ".bin", ext)

	_, _, err = parseFormat("bogus")
	require.Error(t, err)
}

func TestSanitizeGoIdent(t *testing.T) {
	require.Equal(t, "CalendarJapanese1", sanitizeGoIdent("calendar/japanese@1"))
}
