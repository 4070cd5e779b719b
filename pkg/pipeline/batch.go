package pipeline

import (
	"context"
	"errors"
	"sync"

	"github.com/matzehuels/moodart/pkg/art"
)

// DefaultBatchWorkers is the number of concurrent renders in a batch.
const DefaultBatchWorkers = 4

// BatchItem is the outcome of one batch entry. Exactly one of Result and
// Err is set.
type BatchItem struct {
	Index   int
	Options Options
	Result  *Result
	Err     error
}

// Combinations expands moods × styles into options that share base's
// prompt, seed, size and refresh settings. Moods vary slowest.
func Combinations(moods []art.Mood, styles []art.Style, base Options) []Options {
	out := make([]Options, 0, len(moods)*len(styles))
	for _, m := range moods {
		for _, s := range styles {
			o := base
			o.Mood, o.Style = m, s
			out = append(out, o)
		}
	}
	return out
}

// Batch renders every entry of opts on a pool of workers.
//
// onDone is called exactly once per entry from a single goroutine, in
// completion order, so it may update shared state without locking. A failed
// entry does not stop the batch. Entries not yet rendered when ctx ends are
// reported with ctx.Err(), and Batch then returns ctx.Err().
func (r *Runner) Batch(ctx context.Context, opts []Options, workers int, onDone func(BatchItem)) error {
	if workers <= 0 {
		workers = DefaultBatchWorkers
	}
	workers = min(workers, max(len(opts), 1))

	jobs := make(chan int)
	results := make(chan BatchItem, workers)
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				item := BatchItem{Index: i, Options: opts[i]}
				if err := ctx.Err(); err != nil {
					item.Err = err
				} else {
					item.Result, item.Err = r.Generate(ctx, opts[i])
				}
				results <- item
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(jobs)
		for i := range opts {
			select {
			case jobs <- i:
			case <-ctx.Done():
				for j := i; j < len(opts); j++ {
					results <- BatchItem{Index: j, Options: opts[j], Err: ctx.Err()}
				}
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	interrupted := 0
	for item := range results {
		if item.Err != nil && ctx.Err() != nil && errors.Is(item.Err, ctx.Err()) {
			interrupted++
		}
		if onDone != nil {
			onDone(item)
		}
	}
	r.Logger.Debug("batch finished", "requested", len(opts), "interrupted", interrupted)

	if interrupted > 0 {
		return ctx.Err()
	}
	return nil
}
