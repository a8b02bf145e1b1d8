package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trailbase-oss/ptfmine/cooccur"
	"github.com/trailbase-oss/ptfmine/item"
	"github.com/trailbase-oss/ptfmine/tidset"
)

func buildFixture() (*tidset.Store, *cooccur.Matrix) {
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
	return store, co
}

func TestBuildOrdersByCountDescThenItemAsc(t *testing.T) {
	store, co := buildFixture()
	b := &Builder{Store: store, CO: co}

	p := b.Build(1, 0)
	assert.Equal(t, item.Item(1), p.Prefix)
	assert.Equal(t, []item.Item{1, 2, 3}, p.AR) // CO[1][2]==CO[1][3]==3, item asc breaks tie

	idx, ok := p.IndexInAR(3)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = p.IndexInAR(9)
	assert.False(t, ok)
}

func TestBuildFiltersByRmsup(t *testing.T) {
	store, co := buildFixture()
	b := &Builder{Store: store, CO: co}

	p := b.Build(1, 2)
	// CO[1][2] == CO[1][3] == 3 > 2, both survive.
	assert.Equal(t, []item.Item{1, 2, 3}, p.AR)

	p = b.Build(1, 3)
	// Nothing exceeds rmsup 3.
	assert.Equal(t, []item.Item{1}, p.AR)
}

func TestBuildRestrictsTidsetsToAR(t *testing.T) {
	store, co := buildFixture()
	b := &Builder{Store: store, CO: co}

	p := b.Build(1, 0)
	assert.Equal(t, store.T(1), p.Tidsets[1])
	assert.Equal(t, store.T(2), p.Tidsets[2])
	assert.Equal(t, store.T(3), p.Tidsets[3])
}
