// Package export implements the export/deduplication driver of
// spec.md §4.4: per-marker parallel family expansion, fallback-chain
// loading, deduplication, and a checksum-carrying flush.
package export

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/intlgo/icucore/compress"
	"github.com/intlgo/icucore/datalocale"
	"github.com/intlgo/icucore/errs"
	"github.com/intlgo/icucore/format"
	"github.com/intlgo/icucore/internal/hash"
	"github.com/intlgo/icucore/marker"
	"github.com/intlgo/icucore/provider"
)

// FamilyRequest is one requested locale family (spec.md §4.4): a
// locale plus whether its ancestors and/or descendants should be
// pulled into the export set.
type FamilyRequest struct {
	Locale             datalocale.Locale
	IncludeAncestors   bool
	IncludeDescendants bool
}

// Lister enumerates the identifiers a source provider actually holds
// data for, the input to spec.md §4.4 step 1. A source that can't
// enumerate (e.g. a pure Baked provider queried by convention) can be
// paired with a Lister that returns a precomputed universe. With no
// Lister the universe is empty, so descendant expansion adds no locales.
type Lister interface {
	ListIdentifiers(id marker.ID) ([]datalocale.Identifier, error)
}

// Sink receives one (marker, identifier, payload) triple at a time,
// followed by one FlushMetadata call per marker once every payload for
// it has been emitted (spec.md §4.4 step 7).
type Sink interface {
	Put(id marker.ID, ident datalocale.Identifier, payload provider.Payload) error
	Flush(id marker.ID, meta FlushMetadata) error
}

// Driver runs the export/deduplication pipeline of spec.md §4.4.
type Driver struct {
	Source   provider.Provider
	Lister   Lister
	Sink     Sink
	Dedup    DeduplicationStrategy
	DryRun   bool
	Checksum bool // whether to assert and carry a per-marker checksum

	// Compression, when not format.CompressionNone, wraps every emitted
	// payload in a compress.Codec before it reaches Sink.Put (the
	// "blob2" output format of spec.md §6.4). The zero value leaves
	// payloads uncompressed.
	Compression format.CompressionType
}

func (d Driver) codec() (compress.Codec, error) {
	compression := d.Compression
	if compression == 0 {
		compression = format.CompressionNone
	}
	return compress.GetCodec(compression)
}

// Export runs one worker per marker (spec.md §5's "data-parallel
// for-each, one marker per worker, workers independent"), expanding
// families, loading with fallback, deduplicating, then flushing.
// A missing identifier with no "und" fallback fails only that
// marker's export; other markers' errors are collected and joined.
func (d Driver) Export(markers []marker.Info, families []FamilyRequest) error {
	g := new(errgroup.Group)
	errsOut := make([]error, len(markers))

	for i, m := range markers {
		i, m := i, m
		g.Go(func() error {
			errsOut[i] = d.exportMarker(m, families)
			return nil
		})
	}
	_ = g.Wait() // workers never return an error directly; failures are per-marker in errsOut

	var joined []error
	for _, e := range errsOut {
		if e != nil {
			joined = append(joined, e)
		}
	}
	return errors.Join(joined...)
}

func (d Driver) exportMarker(m marker.Info, families []FamilyRequest) error {
	codec, err := d.codec()
	if err != nil {
		return fmt.Errorf("marker %s: %w", m.ID.String(), err)
	}

	universe, err := d.universeFor(m.ID)
	if err != nil {
		return fmt.Errorf("marker %s: %w", m.ID.String(), err)
	}

	exportSet := d.expandFamilies(families, m.Fallback, universe)

	type resolved struct {
		ident datalocale.Identifier
		resp  provider.Response
	}
	byLocale := make(map[string]resolved, len(exportSet))

	var checksum uint64
	haveChecksum := false

	for _, loc := range exportSet {
		ident := datalocale.Identifier{Locale: loc}
		resp, resolvedLoc, err := d.loadWithFallback(m.ID, ident, m.Fallback)
		if err != nil {
			if errors.Is(err, errs.ErrIdentifierNotFound) {
				return fmt.Errorf("marker %s: locale %s: %w", m.ID.String(), loc.String(), err)
			}
			return fmt.Errorf("marker %s: locale %s: %w", m.ID.String(), loc.String(), err)
		}

		if d.Checksum {
			sum := hash.Bytes(resp.Payload.Bytes)
			if !haveChecksum {
				checksum = sum
				haveChecksum = true
			} else if sum != checksum {
				return fmt.Errorf("marker %s: %w", m.ID.String(), errs.ErrChecksum)
			}
		}

		byLocale[loc.String()] = resolved{
			ident: datalocale.Identifier{Locale: resolvedLoc},
			resp:  resp,
		}
	}

	for _, loc := range exportSet {
		r := byLocale[loc.String()]

		parentFound, payloadsEqual := d.parentComparison(m, loc, r.resp)
		if !keep(d.Dedup, loc, parentFound, payloadsEqual) {
			continue
		}

		payload := r.resp.Payload
		compressed, err := codec.Compress(payload.Bytes)
		if err != nil {
			return fmt.Errorf("marker %s: locale %s: %w", m.ID.String(), loc.String(), err)
		}
		payload.Bytes = compressed

		ident := datalocale.Identifier{Locale: loc}
		if err := d.Sink.Put(m.ID, ident, payload); err != nil {
			return fmt.Errorf("marker %s: locale %s: %w", m.ID.String(), loc.String(), err)
		}
	}

	return d.Sink.Flush(m.ID, FlushMetadata{
		Checksum:       checksum,
		HasChecksum:    haveChecksum,
		SupportsDryRun: true,
		DryRun:         d.DryRun,
	})
}

// parentComparison loads the immediate fallback parent of loc (if
// any) and compares its resolved payload bytes against child's.
func (d Driver) parentComparison(m marker.Info, loc datalocale.Locale, child provider.Response) (parentFound, payloadsEqual bool) {
	chain := datalocale.All(loc, m.Fallback)
	if len(chain) < 2 {
		return false, false
	}
	parentLoc := chain[1]

	parentResp, _, err := d.loadWithFallback(m.ID, datalocale.Identifier{Locale: parentLoc}, m.Fallback)
	if err != nil {
		return false, false
	}

	return true, string(parentResp.Payload.Bytes) == string(child.Payload.Bytes)
}

// loadWithFallback calls Load for ident; on ErrIdentifierNotFound it
// walks ident's fallback chain until a payload is found or the chain
// (ending in "und") is exhausted (spec.md §4.4 step 4).
func (d Driver) loadWithFallback(id marker.ID, ident datalocale.Identifier, cfg marker.FallbackConfig) (provider.Response, datalocale.Locale, error) {
	for _, loc := range datalocale.All(ident.Locale, cfg) {
		resp, err := d.Source.Load(id, provider.Request{Identifier: datalocale.Identifier{
			Attributes: ident.Attributes,
			Locale:     loc,
		}})
		if err == nil {
			return resp, loc, nil
		}
		if !errors.Is(err, errs.ErrIdentifierNotFound) {
			return provider.Response{}, datalocale.Locale{}, err
		}
	}

	return provider.Response{}, datalocale.Locale{}, errs.ErrIdentifierNotFound
}

func (d Driver) universeFor(id marker.ID) ([]datalocale.Locale, error) {
	if d.Lister == nil {
		return nil, nil
	}
	idents, err := d.Lister.ListIdentifiers(id)
	if err != nil {
		return nil, err
	}
	out := make([]datalocale.Locale, 0, len(idents))
	for _, ident := range idents {
		out = append(out, ident.Locale)
	}
	return out, nil
}

// expandFamilies computes the union export set: step 3 of spec.md
// §4.4, "the union of requested families expanded by the fallback
// iterator (ancestors and/or descendants as requested)".
func (d Driver) expandFamilies(families []FamilyRequest, cfg marker.FallbackConfig, universe []datalocale.Locale) []datalocale.Locale {
	seen := map[string]bool{}
	var out []datalocale.Locale
	add := func(l datalocale.Locale) {
		key := l.String()
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, l)
	}

	for _, fam := range families {
		add(fam.Locale)
		if fam.IncludeAncestors {
			for _, l := range datalocale.All(fam.Locale, cfg) {
				add(l)
			}
		}
		if fam.IncludeDescendants {
			for _, cand := range universe {
				for _, anc := range datalocale.All(cand, cfg) {
					if anc.String() == fam.Locale.String() {
						add(cand)
						break
					}
				}
			}
		}
	}

	return out
}
