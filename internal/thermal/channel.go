package thermal

import (
	"math"

	"github.com/nlebedev/sfrcalc/internal/cell"
)

// CoolantProps holds the thermophysical properties of the coolant in
// cm-g-s-W units: density g/cm3, specific heat J/(g K), conductivity
// W/(cm K), dynamic viscosity g/(cm s).
type CoolantProps struct {
	Density      float64 `yaml:"density"`
	SpecificHeat float64 `yaml:"specific_heat"`
	Conductivity float64 `yaml:"conductivity"`
	Viscosity    float64 `yaml:"viscosity"`
}

// Sodium returns liquid sodium properties near 700 K.
func Sodium() CoolantProps {
	return CoolantProps{
		Density:      0.85,
		SpecificHeat: 1.269,
		Conductivity: 0.68,
		Viscosity:    2.8e-3,
	}
}

// Channel models the hottest coolant channel: one fuel element and its
// associated coolant area, carrying the peak-to-average power. The axial
// coordinate z runs from -H/2 to +H/2 with the chopped-cosine line power
// q'(z) = q0 * cos(pi z / H).
type Channel struct {
	Geometry cell.Geometry
	Coolant  CoolantProps

	InletTemp     float64 // K
	Velocity      float64 // cm/s
	Power         float64 // total core thermal power, W
	PeakingFactor float64

	CladConductivity float64 // W/(cm K)
	FuelConductivity float64 // W/(cm K)
}

// ReferenceChannel returns the hot channel of the reference design at
// 30 MW thermal.
func ReferenceChannel() Channel {
	return Channel{
		Geometry:         cell.Reference(),
		Coolant:          Sodium(),
		InletTemp:        628.0,
		Velocity:         500.0,
		Power:            30e6,
		PeakingFactor:    1.3,
		CladConductivity: 0.20,
		FuelConductivity: 0.35,
	}
}

// PeakLinearPower returns q0, the midplane line power of the hot channel,
// such that the channel integral equals the peaking factor times the
// per-element average power.
func (c Channel) PeakLinearPower() float64 {
	n := float64(c.Geometry.ElementCount())
	return math.Pi * c.PeakingFactor * c.Power / (2 * n * c.Geometry.ActiveHeight)
}

// LinearPower returns q'(z) in W/cm.
func (c Channel) LinearPower(z float64) float64 {
	return c.PeakLinearPower() * math.Cos(math.Pi*z/c.Geometry.ActiveHeight)
}

// MassFlow returns the channel coolant mass flow in g/s.
func (c Channel) MassFlow() float64 {
	return c.Coolant.Density * c.Velocity * c.Geometry.CoolantArea()
}

// Reynolds returns the channel Reynolds number on the hydraulic diameter.
func (c Channel) Reynolds() float64 {
	return c.Coolant.Density * c.Velocity * c.HydraulicDiameter() / c.Coolant.Viscosity
}

// Prandtl returns the coolant Prandtl number.
func (c Channel) Prandtl() float64 {
	return c.Coolant.SpecificHeat * c.Coolant.Viscosity / c.Coolant.Conductivity
}

// HydraulicDiameter returns 4 A / P_wetted for the rod-in-cell channel.
func (c Channel) HydraulicDiameter() float64 {
	return 4 * c.Geometry.CoolantArea() / (math.Pi * c.Geometry.ElementOD)
}

// Nusselt evaluates the Dittus-Boelter correlation.
func Nusselt(re, pr float64) float64 {
	return 0.023 * math.Pow(re, 0.8) * math.Pow(pr, 0.4)
}

// FilmCoefficient returns the convective film coefficient in W/(cm2 K).
func (c Channel) FilmCoefficient() float64 {
	return Nusselt(c.Reynolds(), c.Prandtl()) * c.Coolant.Conductivity / c.HydraulicDiameter()
}

// CoolantTemp returns the bulk coolant temperature at height z, from the
// enthalpy balance up the channel:
//
//	T(z) = T_in + q0 H / (pi m cp) * (sin(pi z / H) + 1)
func (c Channel) CoolantTemp(z float64) float64 {
	h := c.Geometry.ActiveHeight
	rise := c.PeakLinearPower() * h / (math.Pi * c.MassFlow() * c.Coolant.SpecificHeat)
	return c.InletTemp + rise*(math.Sin(math.Pi*z/h)+1)
}

// OutletTemp returns the channel exit temperature.
func (c Channel) OutletTemp() float64 {
	return c.CoolantTemp(c.Geometry.ActiveHeight / 2)
}

// CladSurfaceTemp returns the outer clad surface temperature at z: bulk
// coolant plus the film rise q''/h over the rod surface.
func (c Channel) CladSurfaceTemp(z float64) float64 {
	flux := c.LinearPower(z) / (math.Pi * c.Geometry.ElementOD)
	return c.CoolantTemp(z) + flux/c.FilmCoefficient()
}

// FuelCenterlineTemp returns the fuel centerline temperature at z,
// stacking the clad conduction and fuel conduction drops on the surface
// temperature.
func (c Channel) FuelCenterlineTemp(z float64) float64 {
	ro := c.Geometry.ElementOD / 2
	ri := c.Geometry.FuelDiameter() / 2
	q := c.LinearPower(z)
	cladDrop := q * math.Log(ro/ri) / (2 * math.Pi * c.CladConductivity)
	fuelDrop := q / (4 * math.Pi * c.FuelConductivity)
	return c.CladSurfaceTemp(z) + cladDrop + fuelDrop
}

// AxialPoint is one row of a channel temperature profile.
type AxialPoint struct {
	Z           float64
	Coolant     float64
	CladSurface float64
	FuelCenter  float64
}

// Profile samples the channel temperatures at n evenly spaced heights.
func (c Channel) Profile(n int) []AxialPoint {
	h := c.Geometry.ActiveHeight
	out := make([]AxialPoint, n)
	for i := 0; i < n; i++ {
		z := -h/2 + h*float64(i)/float64(n-1)
		out[i] = AxialPoint{
			Z:           z,
			Coolant:     c.CoolantTemp(z),
			CladSurface: c.CladSurfaceTemp(z),
			FuelCenter:  c.FuelCenterlineTemp(z),
		}
	}
	return out
}
