package robotevents

import (
	"context"
	"sync"
	"time"
)

// per-team fan-out (matches, season awards) runs in fixed-size batches
// with a short pause between batches, which keeps bursts under the
// upstream rate limit on top of the token bucket.
const (
	BatchSize  = 5
	BatchDelay = time.Millisecond * 500
)

// RunBatched calls fn for every item, BatchSize at a time. a batch's
// calls run concurrently and all complete before the next batch starts.
// fn is responsible for its own failure handling; one item failing must
// not affect the rest.
func RunBatched[T any](ctx context.Context, items []T, fn func(T)) {
	for start := 0; start < len(items); start += BatchSize {
		end := min(start+BatchSize, len(items))

		wg := sync.WaitGroup{}
		for _, item := range items[start:end] {
			wg.Add(1)
			go func(item T) {
				defer wg.Done()
				fn(item)
			}(item)
		}
		wg.Wait()

		if end >= len(items) {
			return
		}
		select {
		case <-time.After(BatchDelay):
		case <-ctx.Done():
			return
		}
	}
}
