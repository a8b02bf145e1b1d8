package ptfmine

import (
	"github.com/pkg/errors"

	"github.com/trailbase-oss/ptfmine/cooccur"
	"github.com/trailbase-oss/ptfmine/tidset"
	"github.com/trailbase-oss/ptfmine/txsource"
)

// scan performs the single pass over src: it assigns tids in input order,
// appends each to its items' tidsets, and increments the co-occurrence
// count of every unordered pair of distinct items in the transaction.
func scan(src txsource.Source, store *tidset.Store, co *cooccur.Matrix) error {
	var tid tidset.Tid
	for src.Next() {
		items := src.Transaction() // already ascending, duplicate-free
		for _, it := range items {
			store.Add(it, tid)
		}
		for a := 0; a < len(items); a++ {
			for b := a + 1; b < len(items); b++ {
				co.Inc(items[a], items[b])
			}
		}
		tid++
	}
	if err := src.Err(); err != nil {
		return errors.Wrapf(ErrMalformedInput, "scanning transaction source: %v", err)
	}
	store.Finalize(src.N())
	return nil
}
