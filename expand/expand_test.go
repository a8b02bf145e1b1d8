package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trailbase-oss/ptfmine/cooccur"
	"github.com/trailbase-oss/ptfmine/item"
	"github.com/trailbase-oss/ptfmine/partition"
	"github.com/trailbase-oss/ptfmine/tidset"
	"github.com/trailbase-oss/ptfmine/topk"
)

// fixture: 5 transactions over {1,2,3}, every pairwise and the single
// triple {1,2,3} has a known, hand-computed support.
//
//	T0 {1,2,3}  T1 {1,2}  T2 {1,3}  T3 {1,2,3}  T4 {2,3}
//
// support(1,2)=3 support(1,3)=3 support(2,3)=3 support(1,2,3)=2
func buildPartition(t *testing.T, prefix item.Item, rmsup int) partition.Partition {
	t.Helper()
	store := tidset.New()
	co := cooccur.New()
	txns := [][]item.Item{
		{1, 2, 3},
		{1, 2},
		{1, 3},
		{1, 2, 3},
		{2, 3},
	}
	for tid, txn := range txns {
		for _, it := range txn {
			store.Add(it, tidset.Tid(tid))
		}
		for a := 0; a < len(txn); a++ {
			for b := a + 1; b < len(txn); b++ {
				co.Inc(txn[a], txn[b])
			}
		}
	}
	store.Finalize(len(txns))

	b := &partition.Builder{Store: store, CO: co}
	return b.Build(prefix, rmsup)
}

func TestProcessExpandsToTripleAndRaisesRmsup(t *testing.T) {
	p := buildPartition(t, 1, 0)
	local := topk.New(1)

	outcome := Process(p, local)

	entries := local.DrainSorted()
	assert.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Support)
	assert.Equal(t, []item.Item{1, 2, 3}, entries[0].Items)
	assert.Equal(t, 2, outcome.Rmsup)
}

func TestProcessSkipsWhenHeapAlreadyAboveEverySupport(t *testing.T) {
	p := buildPartition(t, 1, 0)
	local := topk.New(1)
	local.Insert(5, []item.Item{8, 9}) // fills the single slot at support 5

	outcome := Process(p, local)

	entries := local.DrainSorted()
	assert.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Support)
	assert.Equal(t, []item.Item{8, 9}, entries[0].Items)
	assert.Equal(t, 5, outcome.Rmsup)
}

func TestLeftSiblingOf(t *testing.T) {
	got := leftSiblingOf([]item.Item{1, 2, 4}, 4, 5)
	assert.Equal(t, []item.Item{1, 2, 5}, got)
}
