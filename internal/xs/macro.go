package xs

// Avogadro is the Avogadro constant in 1/mol.
const Avogadro = 6.02214076e23

// barnCm2 converts barns to cm2.
const barnCm2 = 1e-24

// MacroSet holds macroscopic cross sections in 1/cm. This is the only
// representation the diffusion solver sees; the barns-to-cm2 conversion
// happens here and nowhere else.
type MacroSet struct {
	Transport Vector
	Capture   Vector
	Removal   Vector
	Fission   Vector
	NuFission Vector
	Scatter   Matrix
}

// NumberDensity returns atoms per cm3 scaled by the barn conversion, so
// that multiplying by a cross section in barns yields 1/cm directly.
func (m Material) NumberDensity() float64 {
	return m.Density * Avogadro / m.MolarMass * barnCm2
}

// Macro converts the material's microscopic table to macroscopic values
// for the pure material at its nominal density.
func (m Material) Macro() MacroSet {
	n := m.NumberDensity()
	var out MacroSet
	for g := 0; g < Groups; g++ {
		out.Transport[g] = n * m.Transport[g]
		out.Capture[g] = n * m.Capture[g]
		out.Removal[g] = n * m.Removal[g]
		if m.Fission != nil {
			out.Fission[g] = n * m.Fission[g]
			out.NuFission[g] = m.Nu * n * m.Fission[g]
		}
		for h := 0; h < Groups; h++ {
			out.Scatter[g][h] = n * m.Scatter[g][h]
		}
	}
	return out
}

// AddScaled accumulates w times other into the set. Used by the cell
// homogenizer to blend materials at their volume fractions.
func (s *MacroSet) AddScaled(w float64, other MacroSet) {
	for g := 0; g < Groups; g++ {
		s.Transport[g] += w * other.Transport[g]
		s.Capture[g] += w * other.Capture[g]
		s.Removal[g] += w * other.Removal[g]
		s.Fission[g] += w * other.Fission[g]
		s.NuFission[g] += w * other.NuFission[g]
		for h := 0; h < Groups; h++ {
			s.Scatter[g][h] += w * other.Scatter[g][h]
		}
	}
}
