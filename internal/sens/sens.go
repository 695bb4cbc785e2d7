// Package sens estimates the response of k_eff to perturbations of the
// fuel enrichment and of the core dimensions. Every perturbed case runs
// the whole homogenize-and-solve pipeline from scratch; only the base-case
// k_eff is shared, as the denominator of the relative change.
package sens

import (
	"errors"
	"fmt"

	"github.com/nlebedev/sfrcalc/internal/reactor"
)

// ErrBadStep indicates a non-positive finite-difference step.
var ErrBadStep = errors.New("sens: relative step must be positive")

// Enrichment returns the centered-difference relative change of k_eff for
// a relative enrichment step: (k(x+dx) - k(x-dx)) / k(x) with dx = rel*x.
func Enrichment(core reactor.Core, x, relStep float64) (float64, error) {
	if relStep <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrBadStep, relStep)
	}
	dx := relStep * x

	base, err := core.KEff(x)
	if err != nil {
		return 0, err
	}
	up, err := core.KEff(x + dx)
	if err != nil {
		return 0, err
	}
	down, err := core.KEff(x - dx)
	if err != nil {
		return 0, err
	}
	return (up - down) / base, nil
}

// Dimensions perturbs the core diameter and active height by delta (cm)
// and returns the relative k_eff change against the unperturbed base case.
// Every derived quantity — volume fractions, element count, buckling —
// is recomputed from the perturbed geometry.
func Dimensions(core reactor.Core, x, delta float64) (float64, error) {
	base, err := core.KEff(x)
	if err != nil {
		return 0, err
	}

	geom := core.Geometry
	geom.CoreDiameter += delta
	geom.ActiveHeight += delta

	perturbed, err := core.WithGeometry(geom).KEff(x)
	if err != nil {
		return 0, err
	}
	return (perturbed - base) / base, nil
}
