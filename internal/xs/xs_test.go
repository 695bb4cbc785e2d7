package xs

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
)

func TestFastGroupsValid(t *testing.T) {
	g := FastGroups()
	if err := g.Validate(); err != nil {
		t.Fatalf("built-in group structure invalid: %v", err)
	}

	sum := 0.0
	for i := 0; i < Groups; i++ {
		sum += g.Chi[i]
	}
	if math.Abs(sum-1.0) > 1e-12 {
		t.Errorf("chi sum = %.15f, want 1", sum)
	}
}

func TestLethargyWidths(t *testing.T) {
	g := FastGroups()
	if got := g.Lethargy(0); math.Abs(got-1.5493736716914503) > 1e-12 {
		t.Errorf("group 0 lethargy = %v", got)
	}
	for i := 0; i < Groups; i++ {
		if g.Lethargy(i) <= 0 {
			t.Errorf("group %d lethargy not positive", i)
		}
	}
}

func TestChiNormalizationRejected(t *testing.T) {
	g := FastGroups()
	g.Chi[0] += 0.01
	if err := g.Validate(); !errors.Is(err, ErrChiNormalization) {
		t.Errorf("expected ErrChiNormalization, got %v", err)
	}
}

func TestFast8Valid(t *testing.T) {
	if err := Fast8().Validate(); err != nil {
		t.Fatalf("built-in library invalid: %v", err)
	}
}

func TestFissionDataPresence(t *testing.T) {
	lib := Fast8()
	if !lib.Fissile.Fissionable() || !lib.Fertile.Fissionable() {
		t.Error("fuel isotopes must be fissionable")
	}
	if lib.Coolant.Fissionable() || lib.Structure.Fissionable() {
		t.Error("sodium and iron must not carry fission data")
	}
}

func TestNegativeXSRejected(t *testing.T) {
	lib := Fast8()
	lib.Coolant.Capture[3] = -0.1
	lib.Coolant.Removal[3] -= 0.1 // keep the removal sum consistent
	if err := lib.Coolant.Validate(); !errors.Is(err, ErrNegativeXS) {
		t.Errorf("expected ErrNegativeXS, got %v", err)
	}
}

func TestUpScatterRejected(t *testing.T) {
	lib := Fast8()
	lib.Coolant.Scatter[4][2] = 0.3
	lib.Coolant.Removal[4] += 0.3
	if err := lib.Coolant.Validate(); !errors.Is(err, ErrUpScatter) {
		t.Errorf("expected ErrUpScatter, got %v", err)
	}
}

func TestRemovalConsistency(t *testing.T) {
	lib := Fast8()
	lib.Fertile.Removal[0] += 0.05
	if err := lib.Fertile.Validate(); !errors.Is(err, ErrRemovalInconsistent) {
		t.Errorf("expected ErrRemovalInconsistent, got %v", err)
	}
}

func TestNumberDensity(t *testing.T) {
	lib := Fast8()
	tests := []struct {
		name string
		mat  Material
		want float64 // 1/(barn cm)
	}{
		{"u238", lib.Fertile, 0.04300611168708527},
		{"u235", lib.Fissile, 0.04355628583426329},
		{"sodium", lib.Coolant, 0.022265640961175334},
		{"iron", lib.Structure, 0.08486748640200555},
	}
	for _, tt := range tests {
		if got := tt.mat.NumberDensity(); math.Abs(got-tt.want) > 1e-15 {
			t.Errorf("%s number density = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMacroConversion(t *testing.T) {
	na := Fast8().Coolant
	m := na.Macro()
	n := na.NumberDensity()

	if got, want := m.Transport[0], n*2.00; math.Abs(got-want) > 1e-15 {
		t.Errorf("macro transport[0] = %v, want %v", got, want)
	}
	for g := 0; g < Groups; g++ {
		if m.Fission[g] != 0 || m.NuFission[g] != 0 {
			t.Errorf("sodium macro fission group %d not zero", g)
		}
	}
}

func TestLibraryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fast8.yaml")
	if err := SaveLibrary(path, Fast8()); err != nil {
		t.Fatalf("save: %v", err)
	}
	lib, err := LoadLibrary(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Fast8()
	if lib.Fissile.Nu != want.Fissile.Nu {
		t.Errorf("nu = %v, want %v", lib.Fissile.Nu, want.Fissile.Nu)
	}
	for g := 0; g < Groups; g++ {
		if math.Abs(lib.Fertile.Capture[g]-want.Fertile.Capture[g]) > 1e-12 {
			t.Errorf("u238 capture[%d] = %v, want %v", g, lib.Fertile.Capture[g], want.Fertile.Capture[g])
		}
	}
}
