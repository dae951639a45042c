package async

import (
	"context"
	"sync"
)

// Pool runs fn over items with at most concurrency goroutines and returns the
// results in input order. Cancelling ctx stops new items from being
// dispatched; items already running receive an uncancellable context and
// finish, so each item's work stays whole. Results for undispatched items are
// the zero value of R.
func Pool[T, R any](ctx context.Context, concurrency int, items []T, fn func(context.Context, T) R) []R {
	if concurrency < 1 {
		concurrency = 1
	}

	sem := make(chan struct{}, concurrency)
	results := make([]R, len(items))

	itemCtx := context.WithoutCancel(ctx)

	var wg sync.WaitGroup
dispatch:
	for i, item := range items {
		select {
		case <-ctx.Done():
			break dispatch
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, item T) {
			defer wg.Done()
			defer func() { <-sem }()

			results[i] = fn(itemCtx, item)
		}(i, item)
	}
	wg.Wait()

	return results
}
