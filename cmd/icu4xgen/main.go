// Command icu4xgen is the export tool described in spec.md §6.4: it
// reads a previously exported provider tree, runs it through
// export.Driver's family-expansion/deduplication pipeline, and writes
// the result back out in one of four formats.
package main

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/intlgo/icucore/datalocale"
	"github.com/intlgo/icucore/export"
	"github.com/intlgo/icucore/format"
	"github.com/intlgo/icucore/marker"
	"github.com/intlgo/icucore/provider"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type flags struct {
	sourceDir   string
	outDir      string
	format      string
	markers     string
	locales     string
	dedup       string
	fallbackLoc string
	overwrite   bool
	pretty      bool
	checksum    bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "icu4xgen",
		Short: "Export and deduplicate data-provider payloads",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}

	cmd.Flags().StringVar(&f.sourceDir, "source-dir", "", "directory tree of previously exported payloads to read from (required)")
	cmd.Flags().StringVar(&f.outDir, "out", "", "output directory (required)")
	cmd.Flags().StringVar(&f.format, "format", "dir", "output format: dir|blob|blob2|mod")
	cmd.Flags().StringVar(&f.markers, "markers", "ALL", "ALL|none|<comma-separated marker ids>")
	cmd.Flags().StringVar(&f.locales, "locales", "recommended", "full|modern|recommended|none|<comma-separated locale tags>")
	cmd.Flags().StringVar(&f.dedup, "deduplication", "maximal", "maximal|retain-base-languages|none")
	cmd.Flags().StringVar(&f.fallbackLoc, "runtime-fallback-location", "external", "internal|external")
	cmd.Flags().BoolVar(&f.overwrite, "overwrite", false, "overwrite existing output files")
	cmd.Flags().BoolVar(&f.pretty, "pretty", false, "include a verbose per-locale listing in generated output")
	cmd.Flags().BoolVar(&f.checksum, "checksum", false, "assert and carry a per-marker checksum across its payloads")
	cmd.MarkFlagRequired("source-dir")
	cmd.MarkFlagRequired("out")

	return cmd
}

func run(f *flags) error {
	markers, err := resolveMarkers(f.markers)
	if err != nil {
		return err
	}

	dedup, err := parseDedup(f.dedup)
	if err != nil {
		return err
	}

	// spec.md §6.4's runtime-fallback-location: "internal" bakes a
	// resolved payload into every requested locale because no runtime
	// fallback will be available to the consumer, which makes
	// deduplication unsafe regardless of what --deduplication asked for.
	if f.fallbackLoc == "internal" && dedup != export.DedupNone {
		log.Printf("icu4xgen: --runtime-fallback-location=internal forces --deduplication=none")
		dedup = export.DedupNone
	} else if f.fallbackLoc != "internal" && f.fallbackLoc != "external" {
		return fmt.Errorf("icu4xgen: invalid --runtime-fallback-location %q", f.fallbackLoc)
	}

	compression, ext, err := parseFormat(f.format)
	if err != nil {
		return err
	}

	buf, lister, err := loadSource(f.sourceDir, markers)
	if err != nil {
		return err
	}

	var sink export.Sink
	if f.format == "mod" {
		sink = newModSink(f.outDir, f.overwrite, f.pretty)
	} else {
		sink = newFileSink(f.outDir, ext, f.overwrite)
	}
	counting := newCountingSink(sink)

	driver := export.Driver{
		Source:      buf,
		Lister:      lister,
		Sink:        counting,
		Dedup:       dedup,
		Checksum:    f.checksum,
		Compression: compression,
	}

	for _, m := range markers {
		universe, err := lister.ListIdentifiers(m.ID)
		if err != nil {
			return err
		}
		seen := map[string]bool{}
		var locs []datalocale.Locale
		for _, ident := range universe {
			key := ident.Locale.String()
			if !seen[key] {
				seen[key] = true
				locs = append(locs, ident.Locale)
			}
		}

		requested := resolveLocales(f.locales, locs)
		families := make([]export.FamilyRequest, len(requested))
		for i, l := range requested {
			families[i] = export.FamilyRequest{Locale: l}
		}

		if err := driver.Export([]marker.Info{m}, families); err != nil {
			return err
		}

		n := counting.count(m.ID)
		log.Printf("icu4xgen: marker=%s format=%s locales=%d", m.ID.String(), f.format, n)
	}

	return nil
}

func parseDedup(s string) (export.DeduplicationStrategy, error) {
	switch s {
	case "maximal":
		return export.DedupMaximal, nil
	case "retain-base-languages":
		return export.DedupRetainBaseLanguages, nil
	case "none":
		return export.DedupNone, nil
	default:
		return 0, fmt.Errorf("icu4xgen: invalid --deduplication %q", s)
	}
}

func parseFormat(s string) (format.CompressionType, string, error) {
	switch s {
	case "dir":
		return format.CompressionNone, ".bin", nil
	case "blob":
		return format.CompressionNone, ".blob", nil
	case "blob2":
		return format.CompressionZstd, ".blob2", nil
	case "mod":
		return format.CompressionNone, "", nil
	default:
		return 0, "", fmt.Errorf("icu4xgen: invalid --format %q", s)
	}
}

// countingSink wraps a Sink to track how many payloads were actually
// emitted per marker (post-dedup), for the one-summary-line-per-marker
// logging spec.md §6.4 requires.
type countingSink struct {
	inner export.Sink
	mu    sync.Mutex
	n     map[uint32]int
}

func newCountingSink(inner export.Sink) *countingSink {
	return &countingSink{inner: inner, n: make(map[uint32]int)}
}

func (c *countingSink) Put(id marker.ID, ident datalocale.Identifier, payload provider.Payload) error {
	if err := c.inner.Put(id, ident, payload); err != nil {
		return err
	}
	c.mu.Lock()
	c.n[id.Hash()]++
	c.mu.Unlock()
	return nil
}

func (c *countingSink) Flush(id marker.ID, meta export.FlushMetadata) error {
	return c.inner.Flush(id, meta)
}

func (c *countingSink) count(id marker.ID) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n[id.Hash()]
}

var _ export.Sink = (*countingSink)(nil)
