package main

import "github.com/intlgo/icucore/marker"

// knownMarkers is this build's static marker catalog -- the compile-time
// constant spec.md §3.2 describes every DataMarkerInfo as. A real
// generated front-end derives this list from marker-implementing types
// discovered at build time; here it is hand-maintained against the two
// concrete marker payloads this repo knows how to carry end to end.
var knownMarkers = []marker.Info{
	mustMarkerInfo("calendar/japanese@1", false),
	mustMarkerInfo("time/zone/variants@1", false),
}

func mustMarkerInfo(path string, singleton bool) marker.Info {
	id, err := marker.NewID(path)
	if err != nil {
		panic(err)
	}
	return marker.Info{ID: id, IsSingleton: singleton}
}

func markerByPath(path string) (marker.Info, bool) {
	for _, m := range knownMarkers {
		if m.ID.String() == path {
			return m, true
		}
	}
	return marker.Info{}, false
}
