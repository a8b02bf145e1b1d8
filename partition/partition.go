// Package partition builds, for each frequent item, the ordered
// promising-item array used by the partition processor to expand itemsets
// rooted at that item.
package partition

import (
	"sort"

	"github.com/trailbase-oss/ptfmine/cooccur"
	"github.com/trailbase-oss/ptfmine/item"
	"github.com/trailbase-oss/ptfmine/tidset"
)

// Partition holds a prefix item, its promising-item array (the prefix at
// index 0), the restricted tidset map for items in AR, and a reverse index
// from item to its AR position so the processor can find the "index greater
// than p" range in O(1) per candidate.
type Partition struct {
	Prefix  item.Item
	AR      []item.Item
	Tidsets map[item.Item][]tidset.Tid
	arIndex map[item.Item]int
}

// IndexInAR returns the position of it within AR, and whether it is present.
func (p Partition) IndexInAR(it item.Item) (int, bool) {
	idx, ok := p.arIndex[it]
	return idx, ok
}

// Builder constructs partitions from a built tidset Store and Matrix.
type Builder struct {
	Store *tidset.Store
	CO    *cooccur.Matrix
}

// Build constructs the partition rooted at prefix using rmsup as the
// promising-item threshold: candidates are every x_j with
// CO[prefix][x_j] > rmsup, sorted by co-occurrence count descending, ties
// broken by item ascending.
func (b *Builder) Build(prefix item.Item, rmsup int) Partition {
	neighbors := b.CO.Neighbors(prefix)
	cands := make([]cooccur.Neighbor, 0, len(neighbors))
	for _, n := range neighbors {
		if n.Count > rmsup {
			cands = append(cands, n)
		}
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Count != cands[j].Count {
			return cands[i].Count > cands[j].Count
		}
		return cands[i].Item < cands[j].Item
	})

	ar := make([]item.Item, 0, len(cands)+1)
	ar = append(ar, prefix)
	for _, c := range cands {
		ar = append(ar, c.Item)
	}

	tids := make(map[item.Item][]tidset.Tid, len(ar))
	idx := make(map[item.Item]int, len(ar))
	for i, it := range ar {
		tids[it] = b.Store.T(it)
		idx[it] = i
	}

	return Partition{Prefix: prefix, AR: ar, Tidsets: tids, arIndex: idx}
}
