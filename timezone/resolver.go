package timezone

import (
	"github.com/intlgo/icucore/container"
	"github.com/intlgo/icucore/errs"
)

// ZoneEntry is one zone's transition table: a head value effective
// since the UNIX epoch plus an ascending tail of (timestamp, offset-
// index) overrides (spec.md §4.7).
type ZoneEntry = container.TailSeq[ZoneNameTimestamp, uint32]

// NewZoneEntry validates and builds a ZoneEntry from a head offset
// index and an ascending tail of timestamped overrides.
func NewZoneEntry(head uint32, tail []container.TailItem[ZoneNameTimestamp, uint32]) (ZoneEntry, error) {
	entry, err := container.NewTailSeq[ZoneNameTimestamp, uint32](head, tail)
	if err != nil {
		return ZoneEntry{}, err
	}
	return entry, nil
}

// Resolver maps zone_id -> transition table -> deduplicated
// VariantOffsets, the trie-then-tail-then-offset-table lookup spec.md
// §4.7 describes.
//
// Grounded directly on container.AsciiTrie (zone_id -> index) and
// container.TailSeq (index -> transition table), both already built
// for this codebase's §3.1/§4.1 container layer; the only new piece
// here is the offsets table and the glue between the three.
type Resolver struct {
	trie    container.AsciiTrie
	entries []ZoneEntry
	offsets []VariantOffsets
}

// NewResolver builds a Resolver from a zone_id->index trie, the
// per-zone transition tables in trie-index order, and the
// deduplicated offsets table those tables' indices point into.
func NewResolver(trie container.AsciiTrie, entries []ZoneEntry, offsets []VariantOffsets) Resolver {
	return Resolver{trie: trie, entries: entries, offsets: offsets}
}

// Resolve looks up zoneID's offsets effective at ts: trie lookup into
// the zone's transition table, binary search by timestamp in the
// tail, falling back to the head when ts precedes every tail entry
// (spec.md §4.7).
func (r Resolver) Resolve(zoneID string, ts ZoneNameTimestamp) (VariantOffsets, error) {
	idx, ok := r.trie.Get(zoneID)
	if !ok {
		return VariantOffsets{}, errs.ErrIdentifierNotFound
	}
	if int(idx) >= len(r.entries) {
		return VariantOffsets{}, errs.ErrInconsistentData
	}

	offsetIdx := r.entries[idx].Lookup(ts)
	if int(offsetIdx) >= len(r.offsets) {
		return VariantOffsets{}, errs.ErrInconsistentData
	}

	return r.offsets[offsetIdx], nil
}
