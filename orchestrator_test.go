package ptfmine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trailbase-oss/ptfmine/item"
	"github.com/trailbase-oss/ptfmine/topk"
)

// fold replays runParallel's merge loop: every entry of every local heap,
// in the given order, inserted into a fresh global heap.
func fold(k int, locals ...*topk.Heap) []topk.Entry {
	g := topk.New(k)
	for _, local := range locals {
		for _, e := range local.DrainSorted() {
			g.Insert(e.Support, e.Items)
		}
	}
	return g.DrainSorted()
}

// Two workers each surface a clear winner plus a candidate tied with the
// other worker's candidate at the cutoff support. Whichever worker's result
// is folded into global first must not decide which tied candidate
// survives: the merge must agree with the support-descending,
// itemset-ascending total order regardless of fold order.
func TestOrchestratorFoldOrderIndependentAtCutoffTies(t *testing.T) {
	mkLocal := func(tied item.Item) *topk.Heap {
		h := topk.New(2)
		h.Insert(10, []item.Item{1, 2})
		h.Insert(5, []item.Item{1, tied})
		return h
	}
	localA := mkLocal(3)
	localB := mkLocal(4)

	want := []topk.Entry{
		{Support: 10, Items: []item.Item{1, 2}},
		{Support: 5, Items: []item.Item{1, 3}},
	}
	assert.Equal(t, want, fold(2, localA, localB))
	assert.Equal(t, want, fold(2, localB, localA))
}
