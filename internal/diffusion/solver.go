package diffusion

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/nlebedev/sfrcalc/internal/cell"
	"github.com/nlebedev/sfrcalc/internal/xs"
)

// BesselJ01 is the first zero of the order-0 Bessel function, the radial
// eigenvalue of a bare cylinder.
const BesselJ01 = 2.404825557695773

// condLimit is the condition-number ceiling beyond which the removal
// matrix is treated as numerically singular.
const condLimit = 1e12

// Options selects solver policy.
type Options struct {
	// UseExtrapolated switches the buckling to the extrapolated core
	// dimensions. The studied design calculation computes the extrapolated
	// radius but forms buckling from the bare dimensions; that remains the
	// default here.
	UseExtrapolated bool
}

// Solution is the outcome of one diffusion solve: the group flux vector
// (normalized to one fission source neutron), the multiplication factor,
// and the buckling that produced them.
type Solution struct {
	Flux     xs.Vector
	KEff     float64
	Buckling float64
}

// Buckling returns the geometric buckling of the cylindrical core,
// (j01/R)^2 + (pi/H)^2.
func Buckling(geom cell.Geometry, opts Options) float64 {
	r := geom.CoreRadius()
	h := geom.ActiveHeight
	if opts.UseExtrapolated {
		r = geom.ExtrapolatedRadius()
		h = geom.ExtrapolatedHeight()
	}
	radial := BesselJ01 / r
	axial := math.Pi / h
	return radial*radial + axial*axial
}

// Solve assembles the group-coupled removal matrix and solves it against
// the fission spectrum for the flux vector, then forms k_eff from the
// fission production summed over groups.
//
// Diagonal entries are D_g*B^2 + removal with D_g = 1/(3*transport).
// In-scatter couples group h to every higher-energy group g < h through the
// transposed scattering matrix; down-scatter only, so the system is lower
// triangular plus the diagonal and always solvable for physical input.
func Solve(hom xs.MacroSet, buckling float64, spectrum xs.GroupSet) (Solution, error) {
	n := xs.Groups
	a := mat.NewDense(n, n, nil)
	for g := 0; g < n; g++ {
		d := 1.0 / (3.0 * hom.Transport[g])
		a.Set(g, g, d*buckling+hom.Removal[g])
	}
	for g := 0; g < n; g++ {
		for h := g + 1; h < n; h++ {
			// Group h gains what group g scatters down into it.
			a.Set(h, g, a.At(h, g)-hom.Scatter[g][h])
		}
	}

	b := mat.NewVecDense(n, nil)
	for g := 0; g < n; g++ {
		b.SetVec(g, spectrum.Chi[g])
	}

	var lu mat.LU
	lu.Factorize(a)
	if c := lu.Cond(); math.IsInf(c, 1) || c > condLimit {
		return Solution{}, fmt.Errorf("%w: condition number %.3g", ErrSingular, c)
	}

	var phi mat.VecDense
	if err := lu.SolveVecTo(&phi, false, b); err != nil {
		return Solution{}, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	var sol Solution
	sol.Buckling = buckling
	for g := 0; g < n; g++ {
		v := phi.AtVec(g)
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return Solution{}, fmt.Errorf("%w: flux[%d] = %g", ErrInvalidFlux, g, v)
		}
		sol.Flux[g] = v
	}

	for g := 0; g < n; g++ {
		sol.KEff += hom.NuFission[g] * sol.Flux[g]
	}
	return sol, nil
}
