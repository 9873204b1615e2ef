package container

import "sort"

// TailItem pairs a timestamp with the payload effective from that
// timestamp forward. Timestamp is generic so both the time-zone
// resolver's 3-byte truncated wall-clock stamps and any future
// finer-grained clock can reuse TailSeq.
type TailItem[TS Ordered[TS], T any] struct {
	At      TS
	Payload T
}

// TailSeq encodes "one default head value plus an ordered sequence of
// (timestamp, overriding value)" without heap allocation per lookup, per
// spec.md §3.1. The head applies from the earliest possible instant; each
// tail entry applies from its timestamp forward until superseded by the
// next tail entry.
//
// Grounded on blob.BlobSet's head-plus-variable-ordered-tail shape
// (teacher): a blob set has one base structure plus an append-ordered
// sequence of per-blob entries layered on top, the same "default plus
// overrides" arrangement spec.md asks for here.
type TailSeq[TS Ordered[TS], T any] struct {
	Head T
	Tail []TailItem[TS, T]
}

// NewTailSeq validates that tail is sorted ascending by timestamp. Ties
// are legal (see spec.md §9 Open Question (a)); Lookup resolves ties by
// preferring the later-listed entry.
func NewTailSeq[TS Ordered[TS], T any](head T, tail []TailItem[TS, T]) (TailSeq[TS, T], error) {
	for i := 1; i < len(tail); i++ {
		if tail[i-1].At.Compare(tail[i].At) > 0 {
			return TailSeq[TS, T]{}, ErrOffsetsNotSorted
		}
	}

	return TailSeq[TS, T]{Head: head, Tail: tail}, nil
}

// Lookup returns the payload effective at ts: the head if ts precedes
// every tail entry, else the payload of the latest tail entry whose
// timestamp is <= ts. When multiple tail entries share ts exactly, the
// later-listed entry wins (spec.md §9 Open Question (a)).
func (s TailSeq[TS, T]) Lookup(ts TS) T {
	// Find the first index whose timestamp is > ts; the answer is the
	// entry immediately before it (or the head if none precede).
	i := sort.Search(len(s.Tail), func(i int) bool { return s.Tail[i].At.Compare(ts) > 0 })
	if i == 0 {
		return s.Head
	}

	return s.Tail[i-1].Payload
}
