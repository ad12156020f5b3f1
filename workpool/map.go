package workpool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Map applies fn to every element of items, bounded by runtime.GOMAXPROCS(0)
// concurrent workers, and returns the results in input order. Each worker
// writes to its own output slot so there is no contention on the result
// slice. If fn returns an error for any item, the group's context is
// cancelled, the first error is returned, and already-scheduled workers are
// still allowed to finish before Map returns (errgroup semantics).
//
// Used by the OvertureMaps importer's parallel island BFS.
func Map[T, R any](ctx context.Context, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			r, err := fn(gctx, item)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
