package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nlebedev/sfrcalc/internal/cell"
	"github.com/nlebedev/sfrcalc/internal/diffusion"
	"github.com/nlebedev/sfrcalc/internal/reactor"
	"github.com/nlebedev/sfrcalc/internal/thermal"
	"github.com/nlebedev/sfrcalc/internal/xs"
)

const (
	DefaultEnrichment    = 0.15
	DefaultFuelDensity   = 17.0
	DefaultTargetKEff    = 1.035
	DefaultTargetBand    = 0.005
	DefaultPower         = 30e6
	DefaultPeakingFactor = 1.3
	DefaultInletTemp     = 628.0
	DefaultVelocity      = 500.0
)

type Config struct {
	Geometry        GeometryConfig `yaml:"geometry"`
	Fuel            FuelConfig     `yaml:"fuel"`
	Target          TargetConfig   `yaml:"target"`
	Thermal         ThermalConfig  `yaml:"thermal"`
	UseExtrapolated bool           `yaml:"use_extrapolated"`
}

type GeometryConfig struct {
	CoreDiameter  float64 `yaml:"core_diameter"`
	ActiveHeight  float64 `yaml:"active_height"`
	ElementOD     float64 `yaml:"element_od"`
	CladThickness float64 `yaml:"clad_thickness"`
	PitchRatio    float64 `yaml:"pitch_ratio"`
	Extrapolation float64 `yaml:"extrapolation"`
}

type FuelConfig struct {
	Enrichment float64 `yaml:"enrichment"`
	Density    float64 `yaml:"density"`
}

type TargetConfig struct {
	KEff float64 `yaml:"k_eff"`
	Band float64 `yaml:"band"`
}

type ThermalConfig struct {
	Power           float64 `yaml:"power"`
	PeakingFactor   float64 `yaml:"peaking_factor"`
	InletTemp       float64 `yaml:"inlet_temp"`
	CoolantVelocity float64 `yaml:"coolant_velocity"`
}

func DefaultConfig() *Config {
	ref := cell.Reference()
	return &Config{
		Geometry: GeometryConfig{
			CoreDiameter:  ref.CoreDiameter,
			ActiveHeight:  ref.ActiveHeight,
			ElementOD:     ref.ElementOD,
			CladThickness: ref.CladThickness,
			PitchRatio:    ref.PitchRatio,
			Extrapolation: ref.Extrapolation,
		},
		Fuel: FuelConfig{
			Enrichment: DefaultEnrichment,
			Density:    DefaultFuelDensity,
		},
		Target: TargetConfig{
			KEff: DefaultTargetKEff,
			Band: DefaultTargetBand,
		},
		Thermal: ThermalConfig{
			Power:           DefaultPower,
			PeakingFactor:   DefaultPeakingFactor,
			InletTemp:       DefaultInletTemp,
			CoolantVelocity: DefaultVelocity,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CellGeometry maps the geometry section onto the cell model.
func (c *Config) CellGeometry() cell.Geometry {
	return cell.Geometry{
		CoreDiameter:  c.Geometry.CoreDiameter,
		ActiveHeight:  c.Geometry.ActiveHeight,
		ElementOD:     c.Geometry.ElementOD,
		CladThickness: c.Geometry.CladThickness,
		PitchRatio:    c.Geometry.PitchRatio,
		Extrapolation: c.Geometry.Extrapolation,
	}
}

// Core assembles the reactor model: configured geometry, the built-in
// fast library with the fuel density override applied to both uranium
// isotopes, and the buckling policy.
func (c *Config) Core() reactor.Core {
	lib := xs.Fast8()
	if c.Fuel.Density > 0 {
		lib.Fissile.Density = c.Fuel.Density
		lib.Fertile.Density = c.Fuel.Density
	}
	core := reactor.New(c.CellGeometry(), lib)
	core.Options = diffusion.Options{UseExtrapolated: c.UseExtrapolated}
	return core
}

// Channel assembles the hot channel from the thermal section.
func (c *Config) Channel() thermal.Channel {
	return thermal.Channel{
		Geometry:         c.CellGeometry(),
		Coolant:          thermal.Sodium(),
		InletTemp:        c.Thermal.InletTemp,
		Velocity:         c.Thermal.CoolantVelocity,
		Power:            c.Thermal.Power,
		PeakingFactor:    c.Thermal.PeakingFactor,
		CladConductivity: 0.20,
		FuelConductivity: 0.35,
	}
}
