package export

import (
	"fmt"
	"strings"

	"github.com/nlebedev/sfrcalc/internal/sweep"
	"github.com/nlebedev/sfrcalc/internal/xs"
)

// SweepToSVG renders a k_eff versus enrichment curve as an SVG path,
// with a dashed guide line at k = 1 when the curve crosses it.
func SweepToSVG(points []sweep.Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].Enrichment, points[0].Enrichment
	minY, maxY := points[0].KEff, points[0].KEff
	for _, p := range points {
		if p.Enrichment < minX {
			minX = p.Enrichment
		}
		if p.Enrichment > maxX {
			maxX = p.Enrichment
		}
		if p.KEff < minY {
			minY = p.KEff
		}
		if p.KEff > maxY {
			maxY = p.KEff
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if minY < 1 && maxY > 1 {
		yc := float64(height) - (1-minY)/rangeY*float64(height)
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#555555" stroke-dasharray="4 4"/>
`, yc, width, yc))
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))

	for i, p := range points {
		x := (p.Enrichment - minX) / rangeX * float64(width)
		y := float64(height) - (p.KEff-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// SpectrumToSVG renders the group fluxes as a bar chart, one bar per
// energy group from fastest to slowest.
func SpectrumToSVG(flux xs.Vector, width, height int, fillColor string) string {
	maxPhi := 0.0
	for _, phi := range flux {
		if phi > maxPhi {
			maxPhi = phi
		}
	}
	if maxPhi <= 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="%s">
`, width, height, width, height, fillColor))

	barW := float64(width) / float64(xs.Groups)
	for g, phi := range flux {
		h := phi / maxPhi * float64(height) * 0.9
		x := float64(g)*barW + barW*0.1
		y := float64(height) - h
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, x, y, barW*0.8, h))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
