package xs

import "errors"

// Validation errors for cross-section data. All data problems are caught
// here at the loading boundary; the solver assumes clean input.
var (
	// ErrBadGroupBounds indicates non-positive or non-descending energy bounds.
	ErrBadGroupBounds = errors.New("xs: energy group bounds not strictly descending")

	// ErrChiNormalization indicates a fission spectrum that does not sum to 1.
	ErrChiNormalization = errors.New("xs: fission spectrum fractions do not sum to 1")

	// ErrNegativeXS indicates a negative cross section in a material table.
	ErrNegativeXS = errors.New("xs: negative cross section")

	// ErrUpScatter indicates a scattering entry at or below the diagonal.
	ErrUpScatter = errors.New("xs: scattering matrix has up-scatter or in-group entries")

	// ErrRemovalInconsistent indicates a removal vector that does not match
	// capture + fission + out-scatter.
	ErrRemovalInconsistent = errors.New("xs: removal inconsistent with capture, fission and out-scatter")

	// ErrBadMaterial indicates a material with non-positive density or molar mass.
	ErrBadMaterial = errors.New("xs: material density and molar mass must be positive")
)
