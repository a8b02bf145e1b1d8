// Package item defines the dense integer identifier shared by every layer
// of the mining engine: the tidset store, the co-occurrence matrix, prefix
// partitions, the expansion queue and the top-k heap all key on it.
package item

import "sort"

// Item is an opaque, totally-ordered item identifier. It is dense within
// one run: a Source is free to remap sparse external ids onto a compact
// range before they reach the rest of the engine.
type Item int32

// Canonical returns a new ascending, duplicate-free copy of items. An
// itemset's canonicalization is the ascending tuple of its distinct items.
func Canonical(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	n := 0
	for i, it := range out {
		if i == 0 || it != out[n-1] {
			out[n] = it
			n++
		}
	}
	return out[:n]
}

// Encode returns the little-endian concatenation of an already-canonical
// ascending itemset, for use as a stable hash input.
func Encode(canonical []Item) []byte {
	buf := make([]byte, 4*len(canonical))
	for i, it := range canonical {
		v := uint32(it)
		buf[4*i+0] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v >> 16)
		buf[4*i+3] = byte(v >> 24)
	}
	return buf
}

// Less implements the itemset tie-break order used by the expansion queue
// and the top-k heap: lexicographic comparison of the ascending tuples,
// with a shorter prefix-equal itemset sorting before the longer one.
func Less(a, b []Item) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// Equal reports whether two already-canonical itemsets contain the same
// items in the same order.
func Equal(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
