package config

// Presets are named design variants used by the CLI --preset flag. Each
// entry only lists the fields it changes; loading merges it over the
// defaults.
var Presets = map[string]*Config{
	"reference": {},
	"compact": {
		Geometry: GeometryConfig{
			CoreDiameter: 80.0,
			ActiveHeight: 40.0,
		},
		Fuel: FuelConfig{Enrichment: 0.25},
	},
	"stretched": {
		Geometry: GeometryConfig{
			CoreDiameter: 120.0,
			ActiveHeight: 70.0,
		},
		Fuel: FuelConfig{Enrichment: 0.12},
	},
	"extrapolated": {
		UseExtrapolated: true,
	},
}

// GetPreset returns the named preset merged over the defaults, or nil if
// no such preset exists.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	if p.Geometry.CoreDiameter > 0 {
		cfg.Geometry.CoreDiameter = p.Geometry.CoreDiameter
	}
	if p.Geometry.ActiveHeight > 0 {
		cfg.Geometry.ActiveHeight = p.Geometry.ActiveHeight
	}
	if p.Geometry.ElementOD > 0 {
		cfg.Geometry.ElementOD = p.Geometry.ElementOD
	}
	if p.Geometry.PitchRatio > 0 {
		cfg.Geometry.PitchRatio = p.Geometry.PitchRatio
	}
	if p.Fuel.Enrichment > 0 {
		cfg.Fuel.Enrichment = p.Fuel.Enrichment
	}
	if p.Fuel.Density > 0 {
		cfg.Fuel.Density = p.Fuel.Density
	}
	if p.Thermal.Power > 0 {
		cfg.Thermal.Power = p.Thermal.Power
	}
	if p.UseExtrapolated {
		cfg.UseExtrapolated = true
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
