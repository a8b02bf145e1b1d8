package ptfmine

import (
	"context"
	"sync"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	pkgerrors "github.com/pkg/errors"

	"github.com/trailbase-oss/ptfmine/expand"
	"github.com/trailbase-oss/ptfmine/partition"
	"github.com/trailbase-oss/ptfmine/topk"
)

// runParallel fans partitions out across a fixed pool of workers goroutines,
// each mining against its own heap snapshot, then folds every worker's
// surviving entries back into global. Mirrors the shard-channel worker pool
// of markduplicates.generatePAM: a closed, pre-filled jobs channel, a
// sync.WaitGroup, and a single errors.Once capturing the first failure.
//
// Context cancellation is not itself an error: workers stop taking new
// partitions once ctx is done, but whatever they already found is still
// merged into global and returned as a partial result, matching the sequential
// path. Only a real worker failure (captured by once) is returned as an
// error.
func runParallel(ctx context.Context, partitions []partition.Partition, global *topk.Heap, workers int) (err error) {
	if len(partitions) == 0 {
		return nil
	}

	jobs := make(chan partition.Partition, len(partitions))
	for _, p := range partitions {
		jobs <- p
	}
	close(jobs)

	results := make(chan *topk.Heap, workers)
	once := errors.Once{}
	var wg sync.WaitGroup

	for wi := 0; wi < workers; wi++ {
		wg.Add(1)
		// Snapshot before the goroutine starts: the merge loop below mutates
		// global as soon as the first worker finishes.
		local := global.Snapshot()
		go func(worker int, local *topk.Heap) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					once.Set(pkgerrors.Wrapf(ErrResourceExhausted, "worker %d panicked: %v", worker, r))
				}
			}()
			for p := range jobs {
				if ctx.Err() != nil {
					log.Debug.Printf("ptfmine: worker %d stopping early: %v", worker, ctx.Err())
					break
				}
				if once.Err() != nil {
					break
				}
				expand.Process(p, local)
			}
			results <- local
		}(wi, local)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for local := range results {
		for _, e := range local.DrainSorted() {
			global.Insert(e.Support, e.Items)
		}
	}

	return once.Err()
}
