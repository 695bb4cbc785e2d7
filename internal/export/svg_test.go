package export

import (
	"strings"
	"testing"

	"github.com/nlebedev/sfrcalc/internal/sweep"
	"github.com/nlebedev/sfrcalc/internal/xs"
)

func TestSweepToSVG(t *testing.T) {
	points := []sweep.Point{
		{Enrichment: 0.1, KEff: 0.5},
		{Enrichment: 0.5, KEff: 0.9},
		{Enrichment: 0.9, KEff: 1.2},
	}

	svg := SweepToSVG(points, 400, 300, "#00ff00")
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, `<path fill="none" stroke="#00ff00"`) {
		t.Error("missing curve path")
	}
	// Curve crosses k=1, so the guide line must be drawn.
	if !strings.Contains(svg, "stroke-dasharray") {
		t.Error("missing critical guide line")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated SVG")
	}
}

func TestSweepToSVG_NoGuideBelowCritical(t *testing.T) {
	points := []sweep.Point{
		{Enrichment: 0.1, KEff: 0.3},
		{Enrichment: 0.3, KEff: 0.5},
	}
	svg := SweepToSVG(points, 400, 300, "#00ff00")
	if strings.Contains(svg, "stroke-dasharray") {
		t.Error("guide line drawn for subcritical curve")
	}
}

func TestSweepToSVG_TooFewPoints(t *testing.T) {
	if svg := SweepToSVG([]sweep.Point{{Enrichment: 0.5, KEff: 1.0}}, 400, 300, "#fff"); svg != "" {
		t.Error("expected empty output for a single point")
	}
	if svg := SweepToSVG(nil, 400, 300, "#fff"); svg != "" {
		t.Error("expected empty output for no points")
	}
}

func TestSpectrumToSVG(t *testing.T) {
	flux := xs.Vector{3.6, 7.9, 9.7, 6.4, 3.0, 1.2, 0.4, 0.2}
	svg := SpectrumToSVG(flux, 400, 300, "#ffaa00")

	if count := strings.Count(svg, "<rect"); count != xs.Groups+1 {
		t.Errorf("got %d rects, want %d bars plus background", count, xs.Groups+1)
	}
	if !strings.Contains(svg, `<g fill="#ffaa00">`) {
		t.Error("missing fill group")
	}
}

func TestSpectrumToSVG_ZeroFlux(t *testing.T) {
	if svg := SpectrumToSVG(xs.Vector{}, 400, 300, "#fff"); svg != "" {
		t.Error("expected empty output for zero flux")
	}
}
