package cell

import (
	"errors"
	"fmt"

	"github.com/nlebedev/sfrcalc/internal/xs"
)

// ErrEnrichmentRange indicates an enrichment outside [0, 1].
var ErrEnrichmentRange = errors.New("cell: enrichment must lie in [0, 1]")

// Homogenize collapses the heterogeneous unit cell into one macroscopic
// cross-section set. Cladding and coolant are blended at their volume
// fractions; the fuel fraction blends the fissile and fertile isotopes at
// the given enrichment. Fission data comes from the fuel alone.
//
// The returned set is a fresh value bound to this (enrichment, geometry)
// pair; nothing is cached or mutated across calls.
func Homogenize(enrichment float64, geom Geometry, lib xs.Library) (xs.MacroSet, error) {
	if enrichment < 0 || enrichment > 1 {
		return xs.MacroSet{}, fmt.Errorf("%w: got %g", ErrEnrichmentRange, enrichment)
	}
	if err := geom.Validate(); err != nil {
		return xs.MacroSet{}, err
	}

	f := geom.VolumeFractions()

	var hom xs.MacroSet
	hom.AddScaled(f.Fuel*enrichment, lib.Fissile.Macro())
	hom.AddScaled(f.Fuel*(1-enrichment), lib.Fertile.Macro())
	hom.AddScaled(f.Clad, lib.Structure.Macro())
	hom.AddScaled(f.Coolant, lib.Coolant.Macro())
	return hom, nil
}
