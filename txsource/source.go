// Package txsource defines the abstract transaction source and a couple of
// reference implementations. Dataset file I/O and any format beyond this
// is left to external collaborators.
package txsource

import (
	"github.com/trailbase-oss/ptfmine/item"
)

// Source is a lazy, single-pass-replayable sequence of transactions.
// Duplicate items within one transaction are coalesced by the time
// Transaction() returns.
//
// Usage mirrors bufio.Scanner:
//
//	for src.Next() {
//	    txn := src.Transaction()
//	    ...
//	}
//	if err := src.Err(); err != nil { ... }
//	n := src.N()
type Source interface {
	// Next advances to the next transaction, returning false at end of
	// input or on error.
	Next() bool
	// Transaction returns the current transaction's items, duplicate-free,
	// in ascending order. Valid only after a Next call returned true.
	Transaction() []item.Item
	// Err returns the first error encountered, if any.
	Err() error
	// N returns the number of transactions produced so far. It is only
	// the true transaction count once Next has returned false.
	N() int
}

// Slice is an in-memory Source, primarily for tests and for embedding the
// engine in a program that already has transactions in memory.
type Slice struct {
	txns []([]int)
	pos  int
}

// NewSlice wraps raw transactions (items need not be pre-sorted or
// deduplicated; NewSlice does not touch them until Next/Transaction is
// called) as a Source.
func NewSlice(txns [][]int) *Slice {
	return &Slice{txns: txns, pos: -1}
}

func (s *Slice) Next() bool {
	if s.pos+1 >= len(s.txns) {
		s.pos = len(s.txns)
		return false
	}
	s.pos++
	return true
}

func (s *Slice) Transaction() []item.Item {
	raw := s.txns[s.pos]
	items := make([]item.Item, len(raw))
	for i, v := range raw {
		items[i] = item.Item(v)
	}
	return item.Canonical(items)
}

func (s *Slice) Err() error { return nil }

func (s *Slice) N() int {
	if s.pos < len(s.txns) {
		return s.pos + 1
	}
	return len(s.txns)
}
