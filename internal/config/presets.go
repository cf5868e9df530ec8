package config

import "sort"

// Presets are named starting points for the adjustment factors.
var Presets = map[string]*Config{
	"raked": {
		Displacement: 0.3, Rotation: 0.2,
	},
	"default": {
		Displacement: 1.0, Rotation: 1.0,
	},
	"scattered": {
		Displacement: 2.0, Rotation: 1.5,
	},
	"spun": {
		Displacement: 0.5, Rotation: 4.0,
	},
	"avalanche": {
		Displacement: 4.0, Rotation: 3.0,
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset copies the preset's adjustment factors into c.
func (c *Config) ApplyPreset(name string) bool {
	p := GetPreset(name)
	if p == nil {
		return false
	}
	c.Displacement = p.Displacement
	c.Rotation = p.Rotation
	return true
}
