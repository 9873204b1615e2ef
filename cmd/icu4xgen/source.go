package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/intlgo/icucore/datalocale"
	"github.com/intlgo/icucore/marker"
	"github.com/intlgo/icucore/provider"
)

// loadSource builds a Buffer provider (plus a matching Lister) from a
// directory tree previously written by a "dir"-format export: one file
// per (marker, locale) under <srcDir>/<markerPath>/<locale>.bin. This
// is the round-trip source the CLI re-exports or re-compresses from;
// ingesting CLDR JSON directly is out of scope (spec.md §1).
func loadSource(srcDir string, markers []marker.Info) (*provider.Buffer, *dirLister, error) {
	buf, err := provider.NewBuffer()
	if err != nil {
		return nil, nil, err
	}
	lister := &dirLister{byMarker: make(map[string][]string)}

	for _, m := range markers {
		buf.RegisterMarker(m)
		markerDir := filepath.Join(srcDir, filepath.FromSlash(m.ID.String()))
		entries, err := os.ReadDir(markerDir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("icu4xgen: reading %s: %w", markerDir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".bin") {
				continue
			}
			locale := strings.TrimSuffix(entry.Name(), ".bin")
			bytes, err := os.ReadFile(filepath.Join(markerDir, entry.Name()))
			if err != nil {
				return nil, nil, fmt.Errorf("icu4xgen: reading %s: %w", entry.Name(), err)
			}
			if err := buf.Put(m.ID, locale, bytes); err != nil {
				return nil, nil, err
			}
			lister.byMarker[m.ID.String()] = append(lister.byMarker[m.ID.String()], locale)
		}
	}

	return buf, lister, nil
}

// dirLister implements export.Lister over the directory tree loadSource
// just scanned.
type dirLister struct {
	byMarker map[string][]string
}

func (l *dirLister) ListIdentifiers(id marker.ID) ([]datalocale.Identifier, error) {
	locales := l.byMarker[id.String()]
	out := make([]datalocale.Identifier, len(locales))
	for i, tag := range locales {
		out[i] = datalocale.Identifier{Locale: datalocale.Parse(tag)}
	}
	return out, nil
}
