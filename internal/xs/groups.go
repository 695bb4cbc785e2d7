package xs

import (
	"fmt"
	"math"
)

// Groups is the number of energy groups in the condensed fast-spectrum
// structure. Group 0 is the highest-energy group.
const Groups = 8

// TopEnergyMeV is the upper bound of group 0.
const TopEnergyMeV = 10.5

// Vector holds one value per energy group.
type Vector [Groups]float64

// Matrix is a group-to-group transfer table. Row is the origin group,
// column the destination group. Only the strictly upper triangle may be
// populated: neutrons slow down, they never gain energy.
type Matrix [Groups][Groups]float64

// GroupSet describes the energy-group structure: lower bounds in MeV
// (descending) and the fission spectrum fraction emitted into each group.
type GroupSet struct {
	LowerMeV Vector `yaml:"lower_mev"`
	Chi      Vector `yaml:"chi"`
}

// FastGroups returns the built-in 8-group fast-spectrum structure.
func FastGroups() GroupSet {
	return GroupSet{
		LowerMeV: Vector{2.23, 1.35, 0.498, 0.183, 0.0674, 0.0248, 0.00912, 0.00149},
		Chi:      Vector{0.203, 0.341, 0.301, 0.115, 0.0285, 0.0097, 0.0012, 0.0006},
	}
}

// UpperMeV returns the upper energy bound of group g.
func (s GroupSet) UpperMeV(g int) float64 {
	if g == 0 {
		return TopEnergyMeV
	}
	return s.LowerMeV[g-1]
}

// Lethargy returns the lethargy width ln(E_upper/E_lower) of group g.
func (s GroupSet) Lethargy(g int) float64 {
	return math.Log(s.UpperMeV(g) / s.LowerMeV[g])
}

// Validate checks the invariants of the group structure: bounds strictly
// descending and positive, chi non-negative and normalized to 1.
func (s GroupSet) Validate() error {
	prev := TopEnergyMeV
	for g := 0; g < Groups; g++ {
		if s.LowerMeV[g] <= 0 {
			return fmt.Errorf("%w: group %d lower bound %g", ErrBadGroupBounds, g, s.LowerMeV[g])
		}
		if s.LowerMeV[g] >= prev {
			return fmt.Errorf("%w: group %d bound %g not below %g", ErrBadGroupBounds, g, s.LowerMeV[g], prev)
		}
		prev = s.LowerMeV[g]
	}
	sum := 0.0
	for g := 0; g < Groups; g++ {
		if s.Chi[g] < 0 {
			return fmt.Errorf("%w: chi[%d] = %g", ErrChiNormalization, g, s.Chi[g])
		}
		sum += s.Chi[g]
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("%w: sum = %.12f", ErrChiNormalization, sum)
	}
	return nil
}
