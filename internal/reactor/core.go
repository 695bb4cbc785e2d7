// Package reactor composes the material library, cell homogenizer and
// group-diffusion solver into the evaluation pipeline used by the
// criticality search, the sensitivity analysis and the CLI drivers.
//
// A Core is a plain value: every evaluation re-derives the homogenized
// cross sections and flux from its inputs, so repeated evaluations at
// different enrichments or geometries never share state.
package reactor

import (
	"github.com/nlebedev/sfrcalc/internal/cell"
	"github.com/nlebedev/sfrcalc/internal/diffusion"
	"github.com/nlebedev/sfrcalc/internal/xs"
)

// Core binds a geometry and a material library with solver options.
type Core struct {
	Geometry cell.Geometry
	Library  xs.Library
	Options  diffusion.Options
}

// New returns a core over the given geometry and library.
func New(geom cell.Geometry, lib xs.Library) Core {
	return Core{Geometry: geom, Library: lib}
}

// Reference returns the reference design core with the built-in library.
func Reference() Core {
	return New(cell.Reference(), xs.Fast8())
}

// MacroXS homogenizes the unit cell at the given enrichment.
func (c Core) MacroXS(enrichment float64) (xs.MacroSet, error) {
	return cell.Homogenize(enrichment, c.Geometry, c.Library)
}

// Solve runs the full homogenize-and-solve pipeline at the given
// enrichment and returns the flux solution.
func (c Core) Solve(enrichment float64) (diffusion.Solution, error) {
	hom, err := c.MacroXS(enrichment)
	if err != nil {
		return diffusion.Solution{}, err
	}
	b2 := diffusion.Buckling(c.Geometry, c.Options)
	return diffusion.Solve(hom, b2, c.Library.Groups)
}

// KEff returns the multiplication factor at the given enrichment.
func (c Core) KEff(enrichment float64) (float64, error) {
	sol, err := c.Solve(enrichment)
	if err != nil {
		return 0, err
	}
	return sol.KEff, nil
}

// WithGeometry returns a copy of the core over a different geometry.
// The original core is left untouched.
func (c Core) WithGeometry(geom cell.Geometry) Core {
	c.Geometry = geom
	return c
}
