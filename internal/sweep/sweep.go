// Package sweep evaluates the reactor pipeline over many enrichment
// points. Evaluations share no state, so they fan out across goroutines
// and the results are collected in input order.
package sweep

import (
	"context"
	"sync"

	"github.com/nlebedev/sfrcalc/internal/reactor"
	"github.com/nlebedev/sfrcalc/internal/xs"
)

// Point is one sweep evaluation.
type Point struct {
	Enrichment float64
	KEff       float64
	Flux       xs.Vector
}

// Range returns n evenly spaced enrichment points over [lo, hi] inclusive.
func Range(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// Run evaluates the core at every enrichment in parallel. The first
// evaluation error wins; a canceled context aborts the sweep.
func Run(ctx context.Context, core reactor.Core, enrichments []float64) ([]Point, error) {
	points := make([]Point, len(enrichments))
	errs := make([]error, len(enrichments))

	var wg sync.WaitGroup
	for i, x := range enrichments {
		wg.Add(1)
		go func(idx int, enr float64) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			default:
			}

			sol, err := core.Solve(enr)
			if err != nil {
				errs[idx] = err
				return
			}
			points[idx] = Point{Enrichment: enr, KEff: sol.KEff, Flux: sol.Flux}
		}(i, x)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}
