package sweep

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/nlebedev/sfrcalc/internal/cell"
	"github.com/nlebedev/sfrcalc/internal/reactor"
)

func TestRange(t *testing.T) {
	pts := Range(0.1, 0.9, 5)
	want := []float64{0.1, 0.3, 0.5, 0.7, 0.9}
	if len(pts) != len(want) {
		t.Fatalf("got %d points, want %d", len(pts), len(want))
	}
	for i := range want {
		if math.Abs(pts[i]-want[i]) > 1e-12 {
			t.Errorf("point %d = %v, want %v", i, pts[i], want[i])
		}
	}

	if pts := Range(0.2, 0.8, 1); len(pts) != 1 || pts[0] != 0.2 {
		t.Errorf("single-point range = %v", pts)
	}
}

// The parallel sweep must agree point-for-point with serial evaluation.
func TestRunMatchesSerial(t *testing.T) {
	core := reactor.Reference()
	enrichments := Range(0.05, 0.95, 16)

	points, err := Run(context.Background(), core, enrichments)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != len(enrichments) {
		t.Fatalf("got %d points, want %d", len(points), len(enrichments))
	}

	for i, x := range enrichments {
		sol, err := core.Solve(x)
		if err != nil {
			t.Fatal(err)
		}
		if points[i].Enrichment != x {
			t.Errorf("point %d enrichment = %v, want %v (order lost)", i, points[i].Enrichment, x)
		}
		if points[i].KEff != sol.KEff {
			t.Errorf("point %d k_eff = %v, serial %v", i, points[i].KEff, sol.KEff)
		}
	}
}

func TestRunPropagatesDomainError(t *testing.T) {
	_, err := Run(context.Background(), reactor.Reference(), []float64{0.2, 1.4, 0.6})
	if !errors.Is(err, cell.ErrEnrichmentRange) {
		t.Errorf("got %v, want ErrEnrichmentRange", err)
	}
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, reactor.Reference(), Range(0, 1, 32))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
