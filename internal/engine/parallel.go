package engine

import (
	"golang.org/x/sync/errgroup"
)

// chunkFunc processes the half-open index range [start, end) as worker w.
type chunkFunc func(w, start, end int)

// parallelChunks splits [0, n) into contiguous chunks, one per worker, and
// blocks until every chunk is done. A panicking worker is reported as a
// *StepError instead of crashing the process.
func parallelChunks(n, workers, frame int, fn chunkFunc) error {
	if n <= 0 {
		return nil
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		if start >= n {
			break
		}
		end := min(start+chunkSize, n)

		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &StepError{Frame: frame, Worker: w, Cause: r}
				}
			}()
			fn(w, start, end)
			return nil
		})
	}

	return g.Wait()
}
