package ptfmine

import (
	"context"

	"github.com/grailbio/base/log"

	"github.com/trailbase-oss/ptfmine/cooccur"
	"github.com/trailbase-oss/ptfmine/expand"
	"github.com/trailbase-oss/ptfmine/item"
	"github.com/trailbase-oss/ptfmine/partition"
	"github.com/trailbase-oss/ptfmine/tidset"
	"github.com/trailbase-oss/ptfmine/topk"
	"github.com/trailbase-oss/ptfmine/txsource"
)

// Mine returns the k itemsets of two or more items with the highest support
// in src, sorted by support descending then by itemset ascending.
// Single-item itemsets are never part of the result.
//
// It scans src once to build the tidset store and co-occurrence matrix,
// bootstraps rmsup from the top-k 2-itemsets, determines the frequent
// items, builds and filters one partition per frequent item, mines every
// surviving partition (sequentially or via the parallel orchestrator), and
// finally drains the global heap.
func Mine(ctx context.Context, src txsource.Source, cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		log.Error.Printf("ptfmine: %v", err)
		return nil, err
	}

	store := tidset.New()
	co := cooccur.New()
	if err := scan(src, store, co); err != nil {
		log.Error.Printf("ptfmine: %v", err)
		return nil, err
	}
	log.Debug.Printf("ptfmine: scanned %d transactions, %d distinct items", store.NumTransactions(), len(store.Items()))

	if store.NumTransactions() == 0 || len(store.Items()) == 0 {
		// No transactions or no items: an empty result, not an error.
		return nil, nil
	}

	global := topk.New(cfg.K)
	bootstrap(co, global)
	rmsupBootstrap := global.MinSupport()
	log.Debug.Printf("ptfmine: bootstrap rmsup=%d", rmsupBootstrap)

	frequent := frequentItems(store, rmsupBootstrap)
	builder := &partition.Builder{Store: store, CO: co}

	partitions := make([]partition.Partition, 0, len(frequent))
	for _, it := range frequent {
		p := builder.Build(it, rmsupBootstrap)
		if len(p.AR) < 2 {
			// No promising co-occurrence above rmsup: this partition can
			// produce no 2-itemset, and hence by anti-monotonicity no
			// larger itemset, exceeding rmsup.
			continue
		}
		partitions = append(partitions, p)
	}
	log.Debug.Printf("ptfmine: %d frequent items, %d partitions survive filtering", len(frequent), len(partitions))

	// ctx.Err() stops both paths from dispatching new partitions, but never
	// turns what's already in global into an error: both return whatever
	// the heap holds so far as a partial success.
	var err error
	if cfg.Parallel {
		err = runParallel(ctx, partitions, global, cfg.Workers)
	} else {
		runSequential(ctx, partitions, global)
	}
	if err != nil {
		log.Error.Printf("ptfmine: %v", err)
		return nil, err
	}

	return toResults(global.DrainSorted()), nil
}

// bootstrap seeds mh with the top-k 2-itemsets drawn directly from the
// co-occurrence matrix.
func bootstrap(co *cooccur.Matrix, mh *topk.Heap) {
	for _, pair := range co.AllPairs() {
		mh.Insert(pair.Count, []item.Item{pair.I, pair.J})
	}
}

// frequentItems returns every item whose singleton support exceeds rmsup,
// in ascending order.
func frequentItems(store *tidset.Store, rmsup int) []item.Item {
	var out []item.Item
	for _, it := range store.Items() {
		if store.Support(it) > rmsup {
			out = append(out, it)
		}
	}
	return out
}

// runSequential processes every surviving partition directly against the
// live global heap: in sequential mode there is no concurrency hazard, so
// there is no need to snapshot and merge.
func runSequential(ctx context.Context, partitions []partition.Partition, global *topk.Heap) {
	for _, p := range partitions {
		if ctx.Err() != nil {
			log.Debug.Printf("ptfmine: context done, stopping sequential processing early")
			return
		}
		expand.Process(p, global)
	}
}
