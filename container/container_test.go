package container

import (
	"testing"
)

type u32Key uint32

func (k u32Key) Compare(other u32Key) int {
	switch {
	case k < other:
		return -1
	case k > other:
		return 1
	default:
		return 0
	}
}

func TestOrderedMapLookup(t *testing.T) {
	m := BuildOrderedMap[u32Key, string](
		[]u32Key{5, 1, 3},
		[]string{"five", "one", "three"},
	)
	if v, ok := m.Get(1); !ok || v != "one" {
		t.Fatalf("Get(1) = %q, %v", v, ok)
	}
	if _, ok := m.Get(2); ok {
		t.Fatal("Get(2) should be absent")
	}
}

func TestOrderedMapDuplicateKeepsLast(t *testing.T) {
	m := BuildOrderedMap[u32Key, string]([]u32Key{1, 1}, []string{"first", "second"})
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
	if v, _ := m.Get(1); v != "second" {
		t.Fatalf("Get(1) = %q, want last-write-wins", v)
	}
}

func TestAsciiTrie(t *testing.T) {
	trie := NewAsciiTrie(map[string]uint32{
		"wide":     0,
		"abbr":     1,
		"M02":      2,
		"M02-leap": 3,
	})
	cases := map[string]uint32{"wide": 0, "abbr": 1, "M02": 2, "M02-leap": 3}
	for k, want := range cases {
		got, ok := trie.Get(k)
		if !ok || got != want {
			t.Errorf("Get(%q) = %d, %v, want %d", k, got, ok, want)
		}
	}
	if _, ok := trie.Get("missing"); ok {
		t.Error("Get(missing) should be absent")
	}
	if _, ok := trie.Get("M0"); ok {
		t.Error("Get(M0) (a non-leaf prefix) should be absent")
	}
}

func TestTailSeqLookup(t *testing.T) {
	seq, err := NewTailSeq[u32Key, string]("head", []TailItem[u32Key, string]{
		{At: 100, Payload: "t100"},
		{At: 200, Payload: "t200-first"},
		{At: 200, Payload: "t200-second"},
		{At: 300, Payload: "t300"},
	})
	if err != nil {
		t.Fatalf("NewTailSeq: %v", err)
	}

	if got := seq.Lookup(50); got != "head" {
		t.Errorf("Lookup(50) = %q, want head", got)
	}
	if got := seq.Lookup(100); got != "t100" {
		t.Errorf("Lookup(100) = %q, want t100", got)
	}
	if got := seq.Lookup(150); got != "t100" {
		t.Errorf("Lookup(150) = %q, want t100", got)
	}
	// Equal timestamps: later-listed entry wins (spec.md §9 Open Question a).
	if got := seq.Lookup(200); got != "t200-second" {
		t.Errorf("Lookup(200) = %q, want t200-second", got)
	}
	if got := seq.Lookup(1000); got != "t300" {
		t.Errorf("Lookup(1000) = %q, want t300", got)
	}
}
