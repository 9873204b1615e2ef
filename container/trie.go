package container

import "sort"

// AsciiTrie is a compact trie over ASCII byte strings (marker-attribute
// tags, zone ids) producing a uint32 leaf value used as an index into a
// companion sequence. Per spec.md §4.1, a trie leaf never stores inline
// variable data -- callers dereference the returned index into their own
// sequence.
//
// Representation: a flat array of nodes, each owning a contiguous,
// label-sorted run of child edges in a second flat array, kept as plain
// slices since a trie is built once at data-build time and walked
// read-only afterward; no teacher file encodes a trie (mebo has none), so
// the node/edge split instead reuses the binary-search-over-sorted-
// records idiom from container.OrderedMap, cross-checked only for
// expected semantics (index-valued leaves, no inline data) against
// components/collections/src/codepointtrie/iter.rs in original_source.
type AsciiTrie struct {
	nodes []trieNode
	edges []trieEdge
}

type trieNode struct {
	edgeStart uint32
	edgeCount uint32
	hasValue  bool
	value     uint32
}

type trieEdge struct {
	label  byte
	target uint32
}

// trieBuilder assembles an AsciiTrie from (key, value) pairs.
type trieBuilder struct {
	nodes []trieNode
	kids  [][]trieEdge // kids[i] = unsorted outgoing edges of node i, resolved in Build
}

// NewAsciiTrie builds a trie from a set of ASCII keys mapped to uint32
// values. Keys must be non-empty and unique; duplicate keys keep the
// last value.
func NewAsciiTrie(entries map[string]uint32) AsciiTrie {
	b := &trieBuilder{nodes: []trieNode{{}}, kids: [][]trieEdge{nil}}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.insert(k, entries[k])
	}

	return b.finish()
}

func (b *trieBuilder) insert(key string, value uint32) {
	cur := 0
	for i := 0; i < len(key); i++ {
		label := key[i]
		next := -1
		for _, e := range b.kids[cur] {
			if e.label == label {
				next = int(e.target)
				break
			}
		}
		if next == -1 {
			next = len(b.nodes)
			b.nodes = append(b.nodes, trieNode{})
			b.kids = append(b.kids, nil)
			b.kids[cur] = append(b.kids[cur], trieEdge{label: label, target: uint32(next)})
		}
		cur = next
	}
	b.nodes[cur].hasValue = true
	b.nodes[cur].value = value
}

func (b *trieBuilder) finish() AsciiTrie {
	var edges []trieEdge
	for i, kidEdges := range b.kids {
		sort.Slice(kidEdges, func(a, c int) bool { return kidEdges[a].label < kidEdges[c].label })
		b.nodes[i].edgeStart = uint32(len(edges))
		b.nodes[i].edgeCount = uint32(len(kidEdges))
		edges = append(edges, kidEdges...)
	}

	return AsciiTrie{nodes: b.nodes, edges: edges}
}

// Get looks up key and returns (value, true) if present.
func (t AsciiTrie) Get(key string) (uint32, bool) {
	if len(t.nodes) == 0 {
		return 0, false
	}
	cur := uint32(0)
	for i := 0; i < len(key); i++ {
		node := t.nodes[cur]
		lo, hi := int(node.edgeStart), int(node.edgeStart+node.edgeCount)
		label := key[i]
		idx := sort.Search(hi-lo, func(j int) bool { return t.edges[lo+j].label >= label })
		if lo+idx >= hi || t.edges[lo+idx].label != label {
			return 0, false
		}
		cur = t.edges[lo+idx].target
	}

	node := t.nodes[cur]

	return node.value, node.hasValue
}

// Len returns the number of keyed values stored in the trie.
func (t AsciiTrie) Len() int {
	n := 0
	for _, node := range t.nodes {
		if node.hasValue {
			n++
		}
	}

	return n
}
