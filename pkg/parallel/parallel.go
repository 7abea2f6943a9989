// Package parallel provides a one-shot bounded parallel map.
package parallel

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Task is one unit of work. It must honor ctx cancellation.
type Task[T any] func(ctx context.Context) (T, error)

// Run executes tasks with at most limit of them in flight and returns their
// results in input order, regardless of completion order.
//
// Exactly min(limit, len(tasks)) workers are started; each claims the next
// unclaimed index from an atomic counter until none remain. A limit below 1
// is treated as 1.
//
// Run does not absorb task errors: the first error cancels the context passed
// to the remaining tasks and is returned. Tasks that must not fail the batch
// should swallow their own errors.
func Run[T any](ctx context.Context, tasks []Task[T], limit int) ([]T, error) {
	results := make([]T, len(tasks))
	if len(tasks) == 0 {
		return results, nil
	}

	workers := min(max(limit, 1), len(tasks))

	var next atomic.Int64
	g, gctx := errgroup.WithContext(ctx)

	for range workers {
		g.Go(func() error {
			for {
				idx := int(next.Add(1) - 1)
				if idx >= len(tasks) {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				res, err := tasks[idx](gctx)
				if err != nil {
					return err
				}
				results[idx] = res
			}
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
