// Package thermal holds the closed-form collaborators downstream of the
// diffusion solve: flux normalization to thermal power, power density,
// fuel loading, and the hot-channel axial temperature profiles.
package thermal

import (
	"errors"
	"fmt"

	"github.com/nlebedev/sfrcalc/internal/cell"
	"github.com/nlebedev/sfrcalc/internal/diffusion"
	"github.com/nlebedev/sfrcalc/internal/xs"
)

// EnergyPerFissionJ is the recoverable energy per fission, 200 MeV.
const EnergyPerFissionJ = 3.204e-11

// ErrNoFissionPower indicates a flux/cross-section pair with zero fission
// rate, which cannot be normalized to a finite power.
var ErrNoFissionPower = errors.New("thermal: zero fission rate, cannot normalize flux")

// NormalizeFlux scales the solver's unit-source flux so that the core
// fission rate matches the given thermal power. Returns the physical
// group fluxes in n/(cm2 s).
func NormalizeFlux(powerW float64, hom xs.MacroSet, sol diffusion.Solution, geom cell.Geometry) (xs.Vector, error) {
	rate := 0.0
	for g := 0; g < xs.Groups; g++ {
		rate += hom.Fission[g] * sol.Flux[g]
	}
	rate *= geom.CoreVolume()
	if rate <= 0 {
		return xs.Vector{}, fmt.Errorf("%w: power %g W", ErrNoFissionPower, powerW)
	}

	scale := powerW / (EnergyPerFissionJ * rate)
	var out xs.Vector
	for g := 0; g < xs.Groups; g++ {
		out[g] = scale * sol.Flux[g]
	}
	return out, nil
}

// AveragePowerDensity returns the core-average power density in W/cm3.
func AveragePowerDensity(powerW float64, geom cell.Geometry) float64 {
	return powerW / geom.CoreVolume()
}

// PeakPowerDensity applies the total peaking factor to the core average.
func PeakPowerDensity(powerW, peakingFactor float64, geom cell.Geometry) float64 {
	return peakingFactor * AveragePowerDensity(powerW, geom)
}

// FuelLoading returns the heavy-metal mass over all fuel elements, in kg.
func FuelLoading(geom cell.Geometry, fuelDensity float64) float64 {
	return geom.FuelVolume() * fuelDensity / 1000
}
