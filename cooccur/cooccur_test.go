package cooccur

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trailbase-oss/ptfmine/item"
)

func TestIncSymmetric(t *testing.T) {
	m := New()
	m.Inc(1, 2)
	m.Inc(1, 2)
	m.Inc(2, 1)
	assert.Equal(t, 3, m.Get(1, 2))
	assert.Equal(t, 3, m.Get(2, 1))
}

func TestIncIgnoresSelfPairs(t *testing.T) {
	m := New()
	m.Inc(1, 1)
	assert.Equal(t, 0, m.Get(1, 1))
}

func TestNeighbors(t *testing.T) {
	m := New()
	m.Inc(1, 2)
	m.Inc(1, 3)
	m.Inc(1, 3)

	neighbors := m.Neighbors(1)
	counts := map[item.Item]int{}
	for _, n := range neighbors {
		counts[n.Item] = n.Count
	}
	assert.Equal(t, map[item.Item]int{2: 1, 3: 2}, counts)
}

func TestAllPairsCanonicalAndSorted(t *testing.T) {
	m := New()
	m.Inc(2, 1)
	m.Inc(1, 3)

	pairs := m.AllPairs()
	assert.Equal(t, []Pair{
		{I: 1, J: 2, Count: 1},
		{I: 1, J: 3, Count: 1},
	}, pairs)
}
