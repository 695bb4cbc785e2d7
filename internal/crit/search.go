// Package crit finds the fuel enrichment that yields a target
// multiplication factor.
package crit

import (
	"errors"
	"fmt"
	"math"

	"github.com/nlebedev/sfrcalc/internal/reactor"
)

// Search errors.
var (
	// ErrUnreachable indicates the target k_eff is not bracketed by
	// enrichments 0 and 1.
	ErrUnreachable = errors.New("crit: target k_eff unreachable within enrichment [0, 1]")

	// ErrNoConvergence indicates the iteration budget ran out.
	ErrNoConvergence = errors.New("crit: no convergence within iteration budget")
)

// Search configures the root finder. The zero value is not usable; start
// from DefaultSearch.
type Search struct {
	Target  float64 // k_eff to hit
	TolF    float64 // |k_eff(x) - target| acceptance
	TolX    float64 // bracket width acceptance
	MaxIter int
}

// DefaultSearch returns the standard tolerances for a criticality search.
func DefaultSearch(target float64) Search {
	return Search{Target: target, TolF: 1e-10, TolX: 1e-12, MaxIter: 100}
}

// FindCritical locates the enrichment x in [0, 1] with k_eff(x) = target
// using Brent's method. The pipeline is re-evaluated from scratch at every
// trial point; no intermediate state is reused across iterations.
func FindCritical(core reactor.Core, s Search) (float64, error) {
	f := func(x float64) (float64, error) {
		k, err := core.KEff(x)
		if err != nil {
			return 0, err
		}
		return k - s.Target, nil
	}

	a, b := 0.0, 1.0
	fa, err := f(a)
	if err != nil {
		return 0, err
	}
	fb, err := f(b)
	if err != nil {
		return 0, err
	}
	if fa*fb > 0 {
		return 0, fmt.Errorf("%w: k(0) = %.6f, k(1) = %.6f, target %.6f",
			ErrUnreachable, fa+s.Target, fb+s.Target, s.Target)
	}

	if math.Abs(fa) < math.Abs(fb) {
		a, b, fa, fb = b, a, fb, fa
	}
	c, fc := a, fa
	d := a
	mflag := true

	for i := 0; i < s.MaxIter; i++ {
		if math.Abs(fb) <= s.TolF || math.Abs(b-a) < s.TolX {
			return b, nil
		}

		var sPt float64
		if fa != fc && fb != fc {
			// Inverse quadratic interpolation.
			sPt = a*fb*fc/((fa-fb)*(fa-fc)) +
				b*fa*fc/((fb-fa)*(fb-fc)) +
				c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			// Secant step.
			sPt = b - fb*(b-a)/(fb-fa)
		}

		lo, hi := (3*a+b)/4, b
		if lo > hi {
			lo, hi = hi, lo
		}
		bisect := sPt <= lo || sPt >= hi ||
			(mflag && math.Abs(sPt-b) >= math.Abs(b-c)/2) ||
			(!mflag && math.Abs(sPt-b) >= math.Abs(c-d)/2)
		if bisect {
			sPt = (a + b) / 2
			mflag = true
		} else {
			mflag = false
		}

		fs, err := f(sPt)
		if err != nil {
			return 0, err
		}

		d, c, fc = c, b, fb
		if fa*fs < 0 {
			b, fb = sPt, fs
		} else {
			a, fa = sPt, fs
		}
		if math.Abs(fa) < math.Abs(fb) {
			a, b, fa, fb = b, a, fb, fa
		}
	}
	return 0, fmt.Errorf("%w: %d iterations", ErrNoConvergence, s.MaxIter)
}
