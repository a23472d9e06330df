// Package parallel runs independent index ranges on a bounded set of goroutines.
//
// It is the parallel-for primitive behind the separable distance transform: a
// pass over one axis is split into contiguous ranges of line indices, every
// range is processed by one goroutine, and For returns only after all of them
// finished (the per-pass barrier).
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ChunksPerWorker is the number of ranges created per worker. Over-splitting
// lets fast workers pick up more ranges when line costs are uneven.
const ChunksPerWorker = 4

// Range is a half-open interval [Lo, Hi) of work-item indices.
type Range struct {
	Lo, Hi int
}

// Len returns Hi - Lo.
func (r Range) Len() int { return r.Hi - r.Lo }

// Workers resolves a requested worker count: n <= 0 means GOMAXPROCS.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return n
}

// Split partitions [0,n) into at most parts contiguous, disjoint, non-empty
// ranges whose lengths differ by at most one. It returns nil when n <= 0.
func Split(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	if parts <= 0 {
		parts = 1
	}
	if parts > n {
		parts = n
	}
	out := make([]Range, parts)
	base, extra := n/parts, n%parts
	lo := 0
	for i := range out {
		size := base
		if i < extra {
			size++
		}
		out[i] = Range{Lo: lo, Hi: lo + size}
		lo += size
	}

	return out
}

// For calls body over disjoint ranges covering [0,n) and waits for all of them.
// At most Workers(workers) bodies run at once. With a single worker, or a
// single item, body runs inline on the calling goroutine as body(0, n).
//
// body must only touch state owned by its range; For adds no synchronization
// beyond the final barrier.
func For(n, workers int, body func(lo, hi int)) {
	if n <= 0 {
		return
	}
	workers = Workers(workers)
	if workers == 1 || n == 1 {
		body(0, n)

		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, r := range Split(n, workers*ChunksPerWorker) {
		g.Go(func() error {
			body(r.Lo, r.Hi)

			return nil
		})
	}
	_ = g.Wait()
}
