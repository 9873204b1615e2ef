package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/intlgo/icucore/datalocale"
	"github.com/intlgo/icucore/export"
	"github.com/intlgo/icucore/marker"
	"github.com/intlgo/icucore/provider"
)

// fileSink implements export.Sink for the "dir", "blob", and "blob2"
// output formats: one file per (marker, locale) under outDir, mirroring
// the layout loadSource reads back. "blob2" differs only in that the
// driver has already run payload.Bytes through a compress.Codec before
// Put is called -- the sink itself does not know or care.
type fileSink struct {
	outDir    string
	overwrite bool
	ext       string
}

func newFileSink(outDir, ext string, overwrite bool) *fileSink {
	return &fileSink{outDir: outDir, ext: ext, overwrite: overwrite}
}

func (s *fileSink) Put(id marker.ID, ident datalocale.Identifier, payload provider.Payload) error {
	dir := filepath.Join(s.outDir, filepath.FromSlash(id.String()))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("icu4xgen: %w", err)
	}

	path := filepath.Join(dir, ident.Locale.String()+s.ext)
	if !s.overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("icu4xgen: %s already exists (use --overwrite)", path)
		}
	}

	return os.WriteFile(path, payload.Bytes, 0o644)
}

func (s *fileSink) Flush(id marker.ID, meta export.FlushMetadata) error {
	return nil
}

var _ export.Sink = (*fileSink)(nil)

// modSink implements export.Sink for the "mod" format: it buffers every
// payload in memory and, on Flush, emits one generated Go source file
// per marker declaring a map[string][]byte literal, the shape
// provider.Baked.Register consumes (spec.md §6.2's "generated source
// declaring 'static constants").
type modSink struct {
	outDir    string
	overwrite bool
	pretty    bool
	buffered  map[string]map[string][]byte // marker path -> locale -> bytes
}

func newModSink(outDir string, overwrite, pretty bool) *modSink {
	return &modSink{outDir: outDir, overwrite: overwrite, pretty: pretty, buffered: make(map[string]map[string][]byte)}
}

func (s *modSink) Put(id marker.ID, ident datalocale.Identifier, payload provider.Payload) error {
	path := id.String()
	if s.buffered[path] == nil {
		s.buffered[path] = make(map[string][]byte)
	}
	s.buffered[path][ident.Locale.String()] = payload.Bytes
	return nil
}

func (s *modSink) Flush(id marker.ID, meta export.FlushMetadata) error {
	locales := s.buffered[id.String()]
	if locales == nil {
		return nil
	}

	if err := os.MkdirAll(s.outDir, 0o755); err != nil {
		return fmt.Errorf("icu4xgen: %w", err)
	}

	outPath := filepath.Join(s.outDir, sanitizeMarkerPath(id.String())+".go")
	if !s.overwrite {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("icu4xgen: %s already exists (use --overwrite)", outPath)
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("icu4xgen: %w", err)
	}
	defer f.Close()

	sortedLocales := make([]string, 0, len(locales))
	for locale := range locales {
		sortedLocales = append(sortedLocales, locale)
	}
	sort.Strings(sortedLocales)

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "// Code generated by icu4xgen --format mod. DO NOT EDIT.\n\n")
	fmt.Fprintf(w, "package bakeddata\n\n")
	fmt.Fprintf(w, "// %sData is the baked payload table for marker %q.\n", sanitizeGoIdent(id.String()), id.String())
	if s.pretty {
		fmt.Fprintf(w, "// Locales included (%d): %s\n", len(sortedLocales), strings.Join(sortedLocales, ", "))
	}
	fmt.Fprintf(w, "var %sData = map[string][]byte{\n", sanitizeGoIdent(id.String()))
	for _, locale := range sortedLocales {
		fmt.Fprintf(w, "\t%q: %s,\n", locale, byteSliceLiteral(locales[locale]))
	}
	fmt.Fprintf(w, "}\n")

	return w.Flush()
}

var _ export.Sink = (*modSink)(nil)

func byteSliceLiteral(b []byte) string {
	s := "[]byte{"
	for i, v := range b {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("0x%02x", v)
	}
	return s + "}"
}

func sanitizeMarkerPath(path string) string {
	out := make([]byte, 0, len(path))
	for i := 0; i < len(path); i++ {
		c := path[i]
		if c == '/' || c == '@' {
			out = append(out, '_')
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

func sanitizeGoIdent(path string) string {
	s := sanitizeMarkerPath(path)
	out := make([]byte, 0, len(s))
	upperNext := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			upperNext = true
			continue
		}
		if upperNext && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upperNext = false
		out = append(out, c)
	}
	return string(out)
}
