// Package tidset implements a mapping from each item to its sorted
// transaction-id list, built in one tid-ascending pass over a transaction
// source.
package tidset

import (
	"encoding/binary"
	"io"
	"sort"

	"github.com/golang/snappy"
	"github.com/grailbio/base/errors"

	"github.com/trailbase-oss/ptfmine/item"
)

// Tid is a transaction id, a dense index in [0, N).
type Tid int32

// Store holds T({i}) for every item seen during a scan.
//
// Because transactions are appended in tid-ascending order (Add is only
// ever called with non-decreasing tids), every per-item slice is naturally
// sorted and never needs a separate sort pass.
type Store struct {
	byItem map[item.Item][]Tid
	n      int
}

// New returns an empty Store.
func New() *Store {
	return &Store{byItem: make(map[item.Item][]Tid)}
}

// Add records that transaction tid contains it. The caller must call Add
// with non-decreasing tid values across the whole scan.
func (s *Store) Add(it item.Item, tid Tid) {
	s.byItem[it] = append(s.byItem[it], tid)
}

// Finalize records the total number of transactions scanned. It must be
// called exactly once, after every Add call for the scan has completed.
func (s *Store) Finalize(n int) {
	s.n = n
}

// NumTransactions returns N, the number of transactions scanned. Valid
// only after Finalize.
func (s *Store) NumTransactions() int { return s.n }

// T returns the tidset of a singleton item, an ascending slice the caller
// must not mutate; larger itemsets' tidsets are computed by Intersect.
func (s *Store) T(it item.Item) []Tid { return s.byItem[it] }

// Support returns |T({i})|.
func (s *Store) Support(it item.Item) int { return len(s.byItem[it]) }

// Items returns every item with support > 0, in ascending order, so
// iteration over the store is deterministic.
func (s *Store) Items() []item.Item {
	out := make([]item.Item, 0, len(s.byItem))
	for it, tids := range s.byItem {
		if len(tids) > 0 {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Intersect computes T(X) ∩ T(Y) for two strictly ascending tid sequences
// via a linear two-pointer merge. The result is also strictly ascending.
func Intersect(a, b []Tid) []Tid {
	out := make([]Tid, 0, minInt(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// WriteCache serializes the store through a snappy-compressed stream, so a
// repeated mining sweep over the same dataset (e.g. trying several values
// of k) can skip the scan. This is a pure convenience: Mine never requires
// it, and nothing it writes is larger than what was already held in
// memory, so it does not reintroduce the disk-resident-database non-goal.
func (s *Store) WriteCache(w io.Writer) error {
	sw := snappy.NewBufferedWriter(w)
	var header [8]byte
	binary.LittleEndian.PutUint32(header[0:4], uint32(s.n))
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(s.byItem)))
	if _, err := sw.Write(header[:]); err != nil {
		return errors.E(err, "tidset: writing cache header")
	}
	items := s.Items()
	var buf []byte
	for _, it := range items {
		tids := s.byItem[it]
		need := 8 + 4*len(tids)
		if cap(buf) < need {
			buf = make([]byte, need)
		}
		buf = buf[:need]
		binary.LittleEndian.PutUint32(buf[0:4], uint32(it))
		binary.LittleEndian.PutUint32(buf[4:8], uint32(len(tids)))
		for i, t := range tids {
			binary.LittleEndian.PutUint32(buf[8+4*i:12+4*i], uint32(t))
		}
		if _, err := sw.Write(buf); err != nil {
			return errors.E(err, "tidset: writing cache entry", it)
		}
	}
	if err := sw.Close(); err != nil {
		return errors.E(err, "tidset: closing cache writer")
	}
	return nil
}

// LoadCache reconstructs a Store written by WriteCache.
func LoadCache(r io.Reader) (*Store, error) {
	sr := snappy.NewReader(r)
	var header [8]byte
	if _, err := io.ReadFull(sr, header[:]); err != nil {
		return nil, errors.E(err, "tidset: reading cache header")
	}
	n := int(binary.LittleEndian.Uint32(header[0:4]))
	numItems := int(binary.LittleEndian.Uint32(header[4:8]))

	s := New()
	var entryHeader [8]byte
	for i := 0; i < numItems; i++ {
		if _, err := io.ReadFull(sr, entryHeader[:]); err != nil {
			return nil, errors.E(err, "tidset: reading cache entry header")
		}
		it := item.Item(binary.LittleEndian.Uint32(entryHeader[0:4]))
		count := int(binary.LittleEndian.Uint32(entryHeader[4:8]))
		buf := make([]byte, 4*count)
		if _, err := io.ReadFull(sr, buf); err != nil {
			return nil, errors.E(err, "tidset: reading cache tids", it)
		}
		tids := make([]Tid, count)
		for j := range tids {
			tids[j] = Tid(binary.LittleEndian.Uint32(buf[4*j : 4*j+4]))
		}
		s.byItem[it] = tids
	}
	s.n = n
	return s, nil
}
