package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"scenario_a": {
		Length: 1000, Spacing: 100, TimeStep: 600,
		Upstream:   BoundaryConfig{Depth: 1.0, Discharge: 10.0},
		Downstream: BoundaryConfig{Depth: 0.5, Discharge: 0.0},
	},
	"single_cell": {
		Length: 100, Spacing: 100, TimeStep: 600,
		Upstream:   BoundaryConfig{Depth: 1.0, Discharge: 10.0},
		Downstream: BoundaryConfig{Depth: 0.5, Discharge: 0.0},
	},
	"gentle": {
		Length: 1000, Spacing: 100, TimeStep: 10,
		Upstream:   BoundaryConfig{Depth: 1.0, Discharge: 10.0},
		Downstream: BoundaryConfig{Depth: 0.5, Discharge: 0.0},
	},
	"dry_bed": {
		Length: 5000, Spacing: 100, TimeStep: 600,
		Upstream:   BoundaryConfig{Depth: 0.0, Discharge: 10.0},
		Downstream: BoundaryConfig{Depth: 0.5, Discharge: 0.0},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
