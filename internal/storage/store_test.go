package storage

import (
	"testing"

	"github.com/nlebedev/sfrcalc/internal/cell"
	"github.com/nlebedev/sfrcalc/internal/sweep"
	"github.com/nlebedev/sfrcalc/internal/xs"
)

func samplePoints() []sweep.Point {
	pts := []sweep.Point{
		{Enrichment: 0.1, KEff: 0.42},
		{Enrichment: 0.5, KEff: 0.97},
		{Enrichment: 0.9, KEff: 1.12},
	}
	for i := range pts {
		for g := 0; g < xs.Groups; g++ {
			pts[i].Flux[g] = float64(i+1) * float64(g+1) * 0.125
		}
	}
	return pts
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	pts := samplePoints()
	summary := map[string]float64{"k_min": 0.42, "k_max": 1.12}

	runID, err := store.Save("sweep", cell.Reference(), summary, pts)
	if err != nil {
		t.Fatal(err)
	}
	if runID == "" {
		t.Fatal("empty run ID")
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Label != "sweep" {
		t.Errorf("label = %q, want sweep", meta.Label)
	}
	if meta.Points != len(pts) {
		t.Errorf("points = %d, want %d", meta.Points, len(pts))
	}
	if meta.CoreDiameter != 100.0 {
		t.Errorf("core diameter = %v, want 100", meta.CoreDiameter)
	}
	if meta.Summary["k_max"] != 1.12 {
		t.Errorf("summary k_max = %v, want 1.12", meta.Summary["k_max"])
	}

	got, err := store.LoadPoints(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(pts) {
		t.Fatalf("loaded %d points, want %d", len(got), len(pts))
	}
	for i := range pts {
		if got[i] != pts[i] {
			t.Errorf("point %d = %+v, want %+v", i, got[i], pts[i])
		}
	}
}

func TestListEmptyStore(t *testing.T) {
	store := New(t.TempDir() + "/missing")
	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestListFindsSavedRuns(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Save("first", cell.Reference(), nil, samplePoints()); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Save("second", cell.Reference(), nil, nil); err != nil {
		t.Fatal(err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestLoadMissingRun(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Load("no_such_run"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, err := store.LoadPoints("no_such_run"); err == nil {
		t.Error("expected error for missing run")
	}
}

func TestLoadPointsEmptyRun(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := store.Save("empty", cell.Reference(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	pts, err := store.LoadPoints(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 0 {
		t.Errorf("expected no points, got %d", len(pts))
	}
}
