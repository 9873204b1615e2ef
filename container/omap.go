package container

import "sort"

// Ordered is the total-order contract a key type K must satisfy to be
// usable in OrderedMap. POD-like keys (integers, fixed-width byte
// arrays) are their own comparator; composite keys bring one explicitly,
// matching spec.md §3.1 ("K is POD-like ... or accompanied by a
// comparator defined by the K type").
type Ordered[K any] interface {
	Compare(other K) int
}

// OrderedMap is a K->V map backed by two parallel, ascending-ordered
// sequences and resolved by binary search, per spec.md §3.1. Lookup
// failure returns (zero, false) rather than panicking -- maps and
// sequences have different failure policies by spec.md §4.1.
type OrderedMap[K Ordered[K], V any] struct {
	keys []K
	vals []V
}

// NewOrderedMap builds a map from already-sorted parallel slices. The
// caller must ensure keys is strictly ascending per Compare; use
// BuildOrderedMap to sort arbitrary input instead.
func NewOrderedMap[K Ordered[K], V any](keys []K, vals []V) (OrderedMap[K, V], error) {
	if len(keys) != len(vals) {
		return OrderedMap[K, V]{}, ErrTruncated
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1].Compare(keys[i]) >= 0 {
			return OrderedMap[K, V]{}, ErrKeysNotSorted
		}
	}

	return OrderedMap[K, V]{keys: keys, vals: vals}, nil
}

// BuildOrderedMap sorts (key, val) pairs by key and constructs a map.
// Duplicate keys keep the last-provided value ("last write wins").
func BuildOrderedMap[K Ordered[K], V any](keys []K, vals []V) OrderedMap[K, V] {
	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return keys[idx[a]].Compare(keys[idx[b]]) < 0 })

	sortedKeys := make([]K, 0, len(keys))
	sortedVals := make([]V, 0, len(keys))
	for _, i := range idx {
		n := len(sortedKeys)
		if n > 0 && sortedKeys[n-1].Compare(keys[i]) == 0 {
			sortedVals[n-1] = vals[i]
			continue
		}
		sortedKeys = append(sortedKeys, keys[i])
		sortedVals = append(sortedVals, vals[i])
	}

	return OrderedMap[K, V]{keys: sortedKeys, vals: sortedVals}
}

// Len returns the number of entries.
func (m OrderedMap[K, V]) Len() int { return len(m.keys) }

// Get performs a binary search for key and returns (value, true) if
// present, or (zero, false) if absent.
func (m OrderedMap[K, V]) Get(key K) (V, bool) {
	i := sort.Search(len(m.keys), func(i int) bool { return m.keys[i].Compare(key) >= 0 })
	if i < len(m.keys) && m.keys[i].Compare(key) == 0 {
		return m.vals[i], true
	}
	var zero V

	return zero, false
}

// All iterates entries in key order.
func (m OrderedMap[K, V]) All() func(yield func(K, V) bool) {
	return func(yield func(K, V) bool) {
		for i := range m.keys {
			if !yield(m.keys[i], m.vals[i]) {
				return
			}
		}
	}
}
