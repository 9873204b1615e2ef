package main

import (
	"fmt"
	"strings"

	"github.com/intlgo/icucore/marker"
)

// resolveMarkers turns the --markers flag value into a marker.Info
// list, per spec.md §6.4's ALL|none|<list> grammar.
func resolveMarkers(spec string) ([]marker.Info, error) {
	switch spec {
	case "ALL", "":
		return knownMarkers, nil
	case "none":
		return nil, nil
	default:
		var out []marker.Info
		for _, path := range strings.Split(spec, ",") {
			path = strings.TrimSpace(path)
			if path == "" {
				continue
			}
			info, ok := markerByPath(path)
			if !ok {
				return nil, fmt.Errorf("icu4xgen: unknown marker %q", path)
			}
			out = append(out, info)
		}
		return out, nil
	}
}
