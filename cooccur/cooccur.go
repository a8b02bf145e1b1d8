// Package cooccur implements a sparse, symmetric map from item pairs to
// |T(i) ∩ T(j)|, built once during the scan and read-only thereafter.
//
// Storage is a 256-way sharded map keyed by a seahash of the item, mirroring
// the sharded concurrent map in encoding/bamprovider/concurrentmap.go. Each
// shard stores the adjacency of the items it owns (map[item]map[item]count),
// kept bidirectional (both CO[i][j] and CO[j][i]) so a partition's
// promising-item lookup is an O(1) shard read regardless of whether the
// prefix item was the smaller or the larger of a pair when first observed.
package cooccur

import (
	"encoding/binary"
	"sort"
	"sync"

	"blainsmith.com/go/seahash"

	"github.com/trailbase-oss/ptfmine/item"
)

const numShards = 256

type shard struct {
	mu     sync.Mutex
	counts map[item.Item]map[item.Item]int
}

// Matrix is the sharded, concurrency-safe co-occurrence map.
type Matrix struct {
	shards [numShards]*shard
}

// New returns an empty Matrix.
func New() *Matrix {
	m := &Matrix{}
	for i := range m.shards {
		m.shards[i] = &shard{counts: make(map[item.Item]map[item.Item]int)}
	}
	return m
}

func shardIndex(it item.Item) int {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(it))
	return int(seahash.Sum64(buf[:]) % numShards)
}

func (s *shard) bump(owner, other item.Item) {
	s.mu.Lock()
	inner := s.counts[owner]
	if inner == nil {
		inner = make(map[item.Item]int)
		s.counts[owner] = inner
	}
	inner[other]++
	s.mu.Unlock()
}

// Inc increments CO[i][j] (and its mirror CO[j][i]) for one observed
// co-occurrence of the distinct items i and j. Each direction is bumped in
// its own owning shard under that shard's lock alone, so no goroutine ever
// holds two shard locks at once and no lock-ordering discipline is needed.
func (m *Matrix) Inc(i, j item.Item) {
	if i == j {
		return
	}
	m.shards[shardIndex(i)].bump(i, j)
	m.shards[shardIndex(j)].bump(j, i)
}

// Get returns CO[i][j], or 0 if the pair never co-occurred.
func (m *Matrix) Get(i, j item.Item) int {
	s := m.shards[shardIndex(i)]
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[i][j]
}

// Neighbor is one co-occurring partner of an item, with its pair count.
type Neighbor struct {
	Item  item.Item
	Count int
}

// Neighbors returns every item j with CO[it][j] > 0, in no particular
// order; callers that need a deterministic order (the Prefix-Partition
// Builder does) sort the result themselves.
func (m *Matrix) Neighbors(it item.Item) []Neighbor {
	s := m.shards[shardIndex(it)]
	s.mu.Lock()
	defer s.mu.Unlock()
	inner := s.counts[it]
	out := make([]Neighbor, 0, len(inner))
	for j, c := range inner {
		out = append(out, Neighbor{j, c})
	}
	return out
}

// Pair is one unordered co-occurring item pair i<j with its count.
type Pair struct {
	I, J  item.Item
	Count int
}

// AllPairs returns every canonical pair (i<j) with CO[i][j] > 0, sorted by
// i then j, so callers that seed a top-k heap from it get deterministic
// results.
func (m *Matrix) AllPairs() []Pair {
	var out []Pair
	for _, s := range m.shards {
		s.mu.Lock()
		for i, inner := range s.counts {
			for j, c := range inner {
				if i < j && c > 0 {
					out = append(out, Pair{i, j, c})
				}
			}
		}
		s.mu.Unlock()
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].I != out[b].I {
			return out[a].I < out[b].I
		}
		return out[a].J < out[b].J
	})
	return out
}
