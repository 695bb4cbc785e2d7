package config

import (
	"math"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Geometry.CoreDiameter != 100.0 {
		t.Errorf("expected core diameter 100, got %v", cfg.Geometry.CoreDiameter)
	}
	if cfg.Fuel.Enrichment <= 0 || cfg.Fuel.Enrichment >= 1 {
		t.Errorf("default enrichment out of range: %v", cfg.Fuel.Enrichment)
	}
	if cfg.Target.KEff != 1.035 {
		t.Errorf("expected target k_eff 1.035, got %v", cfg.Target.KEff)
	}
	if err := cfg.CellGeometry().Validate(); err != nil {
		t.Errorf("default geometry invalid: %v", err)
	}
}

func TestCoreAppliesFuelDensity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fuel.Density = 15.5

	core := cfg.Core()
	if core.Library.Fissile.Density != 15.5 {
		t.Errorf("fissile density = %v, want 15.5", core.Library.Fissile.Density)
	}
	if core.Library.Fertile.Density != 15.5 {
		t.Errorf("fertile density = %v, want 15.5", core.Library.Fertile.Density)
	}
	// Coolant and structure densities are never overridden.
	if core.Library.Coolant.Density != 0.85 {
		t.Errorf("coolant density = %v, want 0.85", core.Library.Coolant.Density)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("compact")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Geometry.CoreDiameter != 80.0 {
		t.Errorf("expected core diameter 80, got %v", cfg.Geometry.CoreDiameter)
	}
	// Fields the preset does not touch keep their defaults.
	if cfg.Geometry.ElementOD != 0.90 {
		t.Errorf("expected element OD 0.90, got %v", cfg.Geometry.ElementOD)
	}
	if cfg.Thermal.Power != DefaultPower {
		t.Errorf("expected default power, got %v", cfg.Thermal.Power)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	found := false
	for _, n := range names {
		if n == "reference" {
			found = true
		}
	}
	if !found {
		t.Error("expected reference preset in list")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := GetPreset("stretched")
	cfg.Thermal.InletTemp = 640.0

	path := filepath.Join(t.TempDir(), "design.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if got.Geometry.CoreDiameter != cfg.Geometry.CoreDiameter {
		t.Errorf("core diameter = %v, want %v", got.Geometry.CoreDiameter, cfg.Geometry.CoreDiameter)
	}
	if got.Thermal.InletTemp != 640.0 {
		t.Errorf("inlet temp = %v, want 640", got.Thermal.InletTemp)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestChannelMatchesThermalSection(t *testing.T) {
	cfg := DefaultConfig()
	ch := cfg.Channel()

	if math.Abs(ch.InletTemp-cfg.Thermal.InletTemp) > 1e-12 {
		t.Errorf("inlet temp = %v, want %v", ch.InletTemp, cfg.Thermal.InletTemp)
	}
	if ch.Power != cfg.Thermal.Power {
		t.Errorf("power = %v, want %v", ch.Power, cfg.Thermal.Power)
	}
	if ch.Geometry.CoreDiameter != cfg.Geometry.CoreDiameter {
		t.Errorf("geometry not carried into channel")
	}
}
