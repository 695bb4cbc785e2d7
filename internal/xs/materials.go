package xs

import (
	"fmt"
	"math"
)

// Material holds the 8-group microscopic cross sections of one isotope or
// element, in barns, together with the physical data needed to convert them
// to macroscopic values. Fission and Nu are present only for fissionable
// nuclides; structural and coolant materials leave Fission nil.
type Material struct {
	Name      string  `yaml:"name"`
	Density   float64 `yaml:"density_g_cm3"`
	MolarMass float64 `yaml:"molar_mass_g_mol"`
	Nu        float64 `yaml:"nu,omitempty"`

	Transport Vector  `yaml:"transport_b"`
	Capture   Vector  `yaml:"capture_b"`
	Fission   *Vector `yaml:"fission_b,omitempty"`
	Removal   Vector  `yaml:"removal_b"`
	Scatter   Matrix  `yaml:"scatter_b"`
}

// Fissionable reports whether the material carries fission data.
func (m Material) Fissionable() bool { return m.Fission != nil }

// Validate checks the per-material data invariants.
func (m Material) Validate() error {
	if m.Density <= 0 || m.MolarMass <= 0 {
		return fmt.Errorf("%w: %s", ErrBadMaterial, m.Name)
	}
	for g := 0; g < Groups; g++ {
		if m.Transport[g] <= 0 {
			return fmt.Errorf("%w: %s transport[%d]", ErrNegativeXS, m.Name, g)
		}
		if m.Capture[g] < 0 || m.Removal[g] < 0 {
			return fmt.Errorf("%w: %s group %d", ErrNegativeXS, m.Name, g)
		}
		if m.Fission != nil && m.Fission[g] < 0 {
			return fmt.Errorf("%w: %s fission[%d]", ErrNegativeXS, m.Name, g)
		}
	}
	for g := 0; g < Groups; g++ {
		for h := 0; h < Groups; h++ {
			if m.Scatter[g][h] < 0 {
				return fmt.Errorf("%w: %s scatter[%d][%d]", ErrNegativeXS, m.Name, g, h)
			}
			if h <= g && m.Scatter[g][h] != 0 {
				return fmt.Errorf("%w: %s scatter[%d][%d] = %g", ErrUpScatter, m.Name, g, h, m.Scatter[g][h])
			}
		}
	}
	// Removal must account for absorption plus every out-scatter path.
	for g := 0; g < Groups; g++ {
		want := m.Capture[g]
		if m.Fission != nil {
			want += m.Fission[g]
		}
		for h := 0; h < Groups; h++ {
			want += m.Scatter[g][h]
		}
		if math.Abs(m.Removal[g]-want) > 1e-9 {
			return fmt.Errorf("%w: %s group %d: removal %g, expected %g",
				ErrRemovalInconsistent, m.Name, g, m.Removal[g], want)
		}
	}
	return nil
}

// Library bundles the group structure with the four unit-cell materials.
type Library struct {
	Groups    GroupSet `yaml:"groups"`
	Coolant   Material `yaml:"coolant"`
	Structure Material `yaml:"structure"`
	Fissile   Material `yaml:"fissile"`
	Fertile   Material `yaml:"fertile"`
}

// Validate checks the whole library, including the requirement that the
// fuel isotopes carry fission data and the others do not.
func (l Library) Validate() error {
	if err := l.Groups.Validate(); err != nil {
		return err
	}
	for _, m := range []Material{l.Coolant, l.Structure, l.Fissile, l.Fertile} {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	if !l.Fissile.Fissionable() || !l.Fertile.Fissionable() {
		return fmt.Errorf("%w: fuel isotopes must carry fission data", ErrBadMaterial)
	}
	if l.Coolant.Fissionable() || l.Structure.Fissionable() {
		return fmt.Errorf("%w: coolant and structure must not carry fission data", ErrBadMaterial)
	}
	return nil
}

// downscatter builds a matrix with single-group elastic slowing-down
// transfers g -> g+1.
func downscatter(next [Groups - 1]float64) Matrix {
	var s Matrix
	for g := 0; g < Groups-1; g++ {
		s[g][g+1] = next[g]
	}
	return s
}

// Fast8 returns the built-in fast-spectrum library: sodium coolant, iron
// structure, uranium metal fuel at 17.0 g/cm3. Removal vectors are
// consistent with capture + fission + out-scatter by construction.
func Fast8() Library {
	u235Fission := Vector{1.15, 1.10, 1.04, 1.12, 1.30, 1.62, 2.15, 2.96}
	u238Fission := Vector{0.55, 0.30, 0.02, 0, 0, 0, 0, 0}
	return Library{
		Groups: FastGroups(),
		Coolant: Material{
			Name:      "sodium",
			Density:   0.85,
			MolarMass: 22.98977,
			Transport: Vector{2.00, 2.42, 3.05, 3.55, 3.95, 4.70, 6.10, 7.60},
			Capture:   Vector{0.0006, 0.0004, 0.0009, 0.0016, 0.0024, 0.0045, 0.0085, 0.0150},
			Removal:   Vector{0.4506, 0.5504, 0.7009, 0.8516, 1.0024, 1.2545, 1.6085, 0.0150},
			Scatter:   downscatter([Groups - 1]float64{0.45, 0.55, 0.70, 0.85, 1.00, 1.25, 1.60}),
		},
		Structure: Material{
			Name:      "iron",
			Density:   7.87,
			MolarMass: 55.845,
			Transport: Vector{2.10, 2.30, 2.65, 3.05, 3.55, 4.40, 5.70, 6.90},
			Capture:   Vector{0.0030, 0.0042, 0.0060, 0.0110, 0.0220, 0.0380, 0.0700, 0.1400},
			Removal:   Vector{0.1830, 0.2242, 0.2860, 0.3510, 0.4420, 0.5880, 0.8200, 0.1400},
			Scatter:   downscatter([Groups - 1]float64{0.18, 0.22, 0.28, 0.34, 0.42, 0.55, 0.75}),
		},
		Fissile: Material{
			Name:      "u235",
			Density:   17.0,
			MolarMass: 235.0439,
			Nu:        2.45,
			Transport: Vector{4.30, 4.70, 5.50, 6.60, 7.90, 9.60, 11.60, 13.20},
			Capture:   Vector{0.040, 0.062, 0.100, 0.180, 0.330, 0.600, 1.100, 2.000},
			Fission:   &u235Fission,
			Removal:   Vector{2.140, 1.962, 1.690, 1.700, 1.950, 2.500, 3.500, 4.960},
			Scatter:   downscatter([Groups - 1]float64{0.95, 0.80, 0.55, 0.40, 0.32, 0.28, 0.25}),
		},
		Fertile: Material{
			Name:      "u238",
			Density:   17.0,
			MolarMass: 238.0508,
			Nu:        2.80,
			Transport: Vector{4.50, 4.80, 5.70, 6.90, 8.30, 10.10, 12.10, 13.60},
			Capture:   Vector{0.04, 0.08, 0.17, 0.29, 0.49, 0.85, 1.43, 2.34},
			Fission:   &u238Fission,
			Removal:   Vector{1.940, 1.480, 0.890, 0.740, 0.840, 1.150, 1.690, 2.340},
			Scatter:   downscatter([Groups - 1]float64{1.35, 1.10, 0.70, 0.45, 0.35, 0.30, 0.26}),
		},
	}
}
