// Package expand mines one prefix partition into a local top-k heap using
// tidset intersections and a max-priority expansion queue.
package expand

import (
	"container/heap"

	farm "github.com/dgryski/go-farm"

	"github.com/trailbase-oss/ptfmine/item"
	"github.com/trailbase-oss/ptfmine/partition"
	"github.com/trailbase-oss/ptfmine/tidset"
	"github.com/trailbase-oss/ptfmine/topk"
)

// htEntry is one row of the local itemset table: a canonical itemset and
// the tidset it was computed with.
type htEntry struct {
	items []item.Item
	tids  []tidset.Tid
}

// localTable is the local itemset table, keyed by a farm hash of the
// canonical itemset bytes, in the style of fusion/kmer_index.go's
// farm-hash-keyed kmerIndex. Collisions are resolved by a short linear scan
// per bucket.
type localTable struct {
	buckets map[uint64][]htEntry
}

func newLocalTable() *localTable {
	return &localTable{buckets: make(map[uint64][]htEntry)}
}

func hashItems(canonical []item.Item) uint64 {
	return farm.Hash64WithSeed(item.Encode(canonical), 0)
}

func (t *localTable) insert(canonical []item.Item, tids []tidset.Tid) {
	h := hashItems(canonical)
	t.buckets[h] = append(t.buckets[h], htEntry{items: canonical, tids: tids})
}

func (t *localTable) lookup(canonical []item.Item) ([]tidset.Tid, bool) {
	h := hashItems(canonical)
	for _, e := range t.buckets[h] {
		if item.Equal(e.items, canonical) {
			return e.tids, true
		}
	}
	return nil, false
}

// queueEntry is one (support, itemset, tidset) triple in the expansion
// queue.
type queueEntry struct {
	support int
	items   []item.Item // canonical, ascending
	tids    []tidset.Tid
}

// expansionQueue is a max-priority queue by support, ties broken by the
// itemset's ascending-tuple lexicographic order, implemented over
// container/heap keyed by (-support, itemset).
type expansionQueue []*queueEntry

func (q expansionQueue) Len() int { return len(q) }

func (q expansionQueue) Less(i, j int) bool {
	if q[i].support != q[j].support {
		return q[i].support > q[j].support
	}
	return item.Less(q[i].items, q[j].items)
}

func (q expansionQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *expansionQueue) Push(x interface{}) { *q = append(*q, x.(*queueEntry)) }

func (q *expansionQueue) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

// Outcome is the (heap, rmsup) result of processing one partition.
type Outcome struct {
	Heap  *topk.Heap
	Rmsup int
}

// Process mines p by high-support-first expansion, mutating localHeap in
// place and returning its final rmsup. localHeap should be a snapshot (or,
// in sequential mode, the live global heap) owned exclusively by this call.
func Process(p partition.Partition, localHeap *topk.Heap) Outcome {
	rmsup := localHeap.MinSupport()
	ht := newLocalTable()
	qe := &expansionQueue{}
	heap.Init(qe)

	prefix := p.Prefix
	prefixTids := p.Tidsets[prefix]

	// Phase A: seed 2-itemsets.
	for idx := 1; idx < len(p.AR); idx++ {
		xj := p.AR[idx]
		tset := tidset.Intersect(prefixTids, p.Tidsets[xj])
		sup := len(tset)
		if sup <= rmsup {
			continue
		}
		items := item.Canonical([]item.Item{prefix, xj})
		ht.insert(items, tset)
		heap.Push(qe, &queueEntry{support: sup, items: items, tids: tset})
	}

	// Phase B: high-support-first expansion.
	for qe.Len() > 0 {
		top := heap.Pop(qe).(*queueEntry)
		if top.support <= rmsup {
			break
		}
		if len(top.items) >= 3 {
			if localHeap.Insert(top.support, top.items) {
				rmsup = localHeap.MinSupport()
			}
		}

		last := top.items[len(top.items)-1] // ascending canonical => max(X)
		pIdx, ok := p.IndexInAR(last)
		if !ok {
			continue
		}
		for yIdx := pIdx + 1; yIdx < len(p.AR); yIdx++ {
			y := p.AR[yIdx]
			leftSibling := leftSiblingOf(top.items, last, y)
			siblingTids, ok := ht.lookup(leftSibling)
			if !ok {
				// Theorem 3: the left sibling is absent from ht, so no
				// extension of X with y can exceed rmsup; skip.
				continue
			}
			newItems := item.Canonical(append(append([]item.Item{}, top.items...), y))
			newTids := tidset.Intersect(top.tids, siblingTids)
			supNew := len(newTids)
			if supNew > rmsup {
				ht.insert(newItems, newTids)
				heap.Push(qe, &queueEntry{support: supNew, items: newItems, tids: newTids})
			}
		}
	}

	return Outcome{Heap: localHeap, Rmsup: rmsup}
}

// leftSiblingOf returns canonical((X \ {last}) ∪ {y}).
func leftSiblingOf(x []item.Item, last, y item.Item) []item.Item {
	out := make([]item.Item, 0, len(x))
	for _, it := range x {
		if it != last {
			out = append(out, it)
		}
	}
	out = append(out, y)
	return item.Canonical(out)
}
