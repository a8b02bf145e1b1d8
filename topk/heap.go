// Package topk implements a bounded k-slot min-heap keyed by support that
// exposes its current minimum support as rmsup.
package topk

import (
	"container/heap"
	"sort"

	"github.com/minio/highwayhash"

	"github.com/trailbase-oss/ptfmine/item"
)

// hashKey is a canonical-itemset fingerprint used to ensure the heap never
// holds two entries with the same canonicalization, in the spirit of
// fusion/postprocess.go's use of minio/highwayhash to key maps by
// structural identity rather than by a built string.
type hashKey [highwayhash.Size]byte

var zeroHighwayKey [highwayhash.Size]byte

func canonKey(canonical []item.Item) hashKey {
	return hashKey(highwayhash.Sum(item.Encode(canonical), zeroHighwayKey[:]))
}

// Entry is one (itemset, support) member of the heap.
type Entry struct {
	Support int
	Items   []item.Item // canonical, ascending
}

// Heap is the bounded top-k min-heap. The zero value is not usable; use New.
type Heap struct {
	k       int
	entries []Entry
	index   map[hashKey]int
}

// New returns an empty Heap bounded to at most k entries.
func New(k int) *Heap {
	return &Heap{k: k, index: make(map[hashKey]int)}
}

// Len returns the current number of entries, always <= k.
func (h *Heap) Len() int { return len(h.entries) }

// Less implements container/heap's ordering: the root (index 0) is always
// the worst entry currently held, by the same total order DrainSorted
// reports (support descending, ties broken by the itemset sorting first).
// Equal-support entries are thus ordered deterministically by item.Less
// rather than by arrival order, so the set of entries retained at the
// cutoff does not depend on insertion order.
func (h *Heap) Less(i, j int) bool {
	if h.entries[i].Support != h.entries[j].Support {
		return h.entries[i].Support < h.entries[j].Support
	}
	return item.Less(h.entries[j].Items, h.entries[i].Items)
}

func (h *Heap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.index[canonKey(h.entries[i].Items)] = i
	h.index[canonKey(h.entries[j].Items)] = j
}

// Push and Pop implement container/heap.Interface; callers should use
// Insert instead of calling these directly.
func (h *Heap) Push(x interface{}) {
	e := x.(Entry)
	h.entries = append(h.entries, e)
	h.index[canonKey(e.Items)] = len(h.entries) - 1
}

func (h *Heap) Pop() interface{} {
	old := h.entries
	n := len(old)
	e := old[n-1]
	h.entries = old[:n-1]
	delete(h.index, canonKey(e.Items))
	return e
}

// MinSupport returns rmsup: 0 if the heap is not yet full, else the
// smallest support currently held.
func (h *Heap) MinSupport() int {
	if len(h.entries) < h.k {
		return 0
	}
	return h.entries[0].Support
}

// Insert inserts (support, items) if the heap has room, else replaces the
// current worst entry iff (support, items) ranks ahead of it in the
// support-descending, itemset-ascending total order. A duplicate
// canonicalization is a no-op. Reports whether the heap changed.
func (h *Heap) Insert(support int, items []item.Item) bool {
	canonical := item.Canonical(items)
	key := canonKey(canonical)
	if _, exists := h.index[key]; exists {
		return false
	}
	if len(h.entries) < h.k {
		heap.Push(h, Entry{Support: support, Items: canonical})
		return true
	}
	root := h.entries[0]
	if !beats(support, canonical, root) {
		return false
	}
	delete(h.index, canonKey(root.Items))
	h.entries[0] = Entry{Support: support, Items: canonical}
	h.index[key] = 0
	heap.Fix(h, 0)
	return true
}

// beats reports whether (support, items) ranks ahead of existing in the
// support-descending, itemset-ascending total order: strictly higher
// support, or equal support and a lexicographically earlier itemset.
func beats(support int, items []item.Item, existing Entry) bool {
	if support != existing.Support {
		return support > existing.Support
	}
	return item.Less(items, existing.Items)
}

// DrainSorted returns every entry sorted by support descending, then by
// itemset ascending. The heap itself is left untouched.
func (h *Heap) DrainSorted() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Support != out[j].Support {
			return out[i].Support > out[j].Support
		}
		return item.Less(out[i].Items, out[j].Items)
	})
	return out
}

// Snapshot returns an independent value-copy of the heap, suitable for
// dispatching to a worker goroutine that must not mutate the original.
func (h *Heap) Snapshot() *Heap {
	cp := &Heap{k: h.k, entries: make([]Entry, len(h.entries)), index: make(map[hashKey]int, len(h.index))}
	for i, e := range h.entries {
		items := make([]item.Item, len(e.Items))
		copy(items, e.Items)
		cp.entries[i] = Entry{Support: e.Support, Items: items}
		cp.index[canonKey(items)] = i
	}
	return cp
}
