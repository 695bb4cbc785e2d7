package cell

import (
	"errors"
	"fmt"
	"math"
)

// Domain errors for core and lattice geometry.
var (
	// ErrBadDimension indicates a non-positive core or element dimension.
	ErrBadDimension = errors.New("cell: geometry dimensions must be positive")

	// ErrBadPitch indicates a pitch-to-diameter ratio below 1 (overlapping elements).
	ErrBadPitch = errors.New("cell: pitch-to-diameter ratio must be at least 1")

	// ErrBadClad indicates cladding consuming the whole element cross section.
	ErrBadClad = errors.New("cell: cladding thickness leaves no fuel")
)

// Geometry describes the cylindrical core and the square unit cell of a
// single fuel element. All lengths are in cm.
type Geometry struct {
	CoreDiameter  float64 `yaml:"core_diameter"`
	ActiveHeight  float64 `yaml:"active_height"`
	ElementOD     float64 `yaml:"element_od"`
	CladThickness float64 `yaml:"clad_thickness"`
	PitchRatio    float64 `yaml:"pitch_ratio"`
	Extrapolation float64 `yaml:"extrapolation"`
}

// Reference returns the reference design geometry.
func Reference() Geometry {
	return Geometry{
		CoreDiameter:  100.0,
		ActiveHeight:  50.0,
		ElementOD:     0.90,
		CladThickness: 0.05,
		PitchRatio:    1.4,
		Extrapolation: 1.2,
	}
}

// Validate fails fast on degenerate geometry so that downstream volume
// ratios can never silently produce NaN or Inf.
func (g Geometry) Validate() error {
	if g.CoreDiameter <= 0 || g.ActiveHeight <= 0 || g.ElementOD <= 0 {
		return fmt.Errorf("%w: core %g x %g cm, element OD %g cm",
			ErrBadDimension, g.CoreDiameter, g.ActiveHeight, g.ElementOD)
	}
	if g.CladThickness < 0 || g.Extrapolation < 0 {
		return fmt.Errorf("%w: clad %g cm, extrapolation %g cm",
			ErrBadDimension, g.CladThickness, g.Extrapolation)
	}
	if g.PitchRatio < 1 {
		return fmt.Errorf("%w: got %g", ErrBadPitch, g.PitchRatio)
	}
	if g.FuelDiameter() <= 0 {
		return fmt.Errorf("%w: OD %g cm, clad %g cm", ErrBadClad, g.ElementOD, g.CladThickness)
	}
	return nil
}

// CoreRadius returns the core radius.
func (g Geometry) CoreRadius() float64 { return g.CoreDiameter / 2 }

// FuelDiameter returns the fuel slug diameter: element OD minus two
// cladding thicknesses.
func (g Geometry) FuelDiameter() float64 { return g.ElementOD - 2*g.CladThickness }

// Pitch returns the lattice pitch.
func (g Geometry) Pitch() float64 { return g.PitchRatio * g.ElementOD }

// CellArea returns the cross-sectional area of one square unit cell.
func (g Geometry) CellArea() float64 { return g.Pitch() * g.Pitch() }

// CoolantArea returns the coolant cross-sectional area within one cell.
func (g Geometry) CoolantArea() float64 {
	od := g.ElementOD / 2
	return g.CellArea() - math.Pi*od*od
}

// ExtrapolatedRadius returns the core radius plus the extrapolation length.
func (g Geometry) ExtrapolatedRadius() float64 { return g.CoreRadius() + g.Extrapolation }

// ExtrapolatedHeight returns the active height plus one extrapolation
// length at each end.
func (g Geometry) ExtrapolatedHeight() float64 { return g.ActiveHeight + 2*g.Extrapolation }

// CoreVolume returns the active core volume.
func (g Geometry) CoreVolume() float64 {
	r := g.CoreRadius()
	return math.Pi * r * r * g.ActiveHeight
}

// ElementCount returns the number of fuel elements from equivalent-square
// packing of the circular core cross section at the lattice pitch.
func (g Geometry) ElementCount() int {
	r := g.CoreRadius()
	return int(math.Pi * r * r / g.CellArea())
}

// FuelVolume returns the total fuel volume over all elements.
func (g Geometry) FuelVolume() float64 {
	rf := g.FuelDiameter() / 2
	return math.Pi * rf * rf * g.ActiveHeight * float64(g.ElementCount())
}

// Fractions holds the unit-cell volume fractions. They sum to 1.
type Fractions struct {
	Fuel    float64
	Clad    float64
	Coolant float64
}

// VolumeFractions computes the unit-cell volume fractions from the element
// and lattice dimensions. Disadvantage factors are approximated as pure
// volume ratios.
func (g Geometry) VolumeFractions() Fractions {
	cell := g.CellArea()
	rf := g.FuelDiameter() / 2
	ro := g.ElementOD / 2
	fuel := math.Pi * rf * rf
	clad := math.Pi*ro*ro - fuel
	return Fractions{
		Fuel:    fuel / cell,
		Clad:    clad / cell,
		Coolant: (cell - fuel - clad) / cell,
	}
}
