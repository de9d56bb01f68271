package config

import "sort"

var Presets = map[string]*Config{
	"tiny": {
		Algorithm: "bubble", Size: 8, Speed: 40, FPS: DefaultFPS,
	},
	"classroom": {
		Algorithm: "insertion", Size: 25, Speed: 80, FPS: DefaultFPS,
	},
	"divide": {
		Algorithm: "merge", Size: 64, Speed: 150, FPS: DefaultFPS,
	},
	"partition": {
		Algorithm: "quick", Size: 64, Speed: 150, FPS: DefaultFPS,
	},
	"stress": {
		Algorithm: "quick", Size: MaxSize, Speed: MaxSpeed, FPS: 60,
	},
}

// GetPreset returns a copy of the named preset with unset fields defaulted,
// or nil if no such preset exists.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Algorithm = p.Algorithm
	cfg.Size = p.Size
	cfg.Speed = p.Speed
	if p.FPS != 0 {
		cfg.FPS = p.FPS
	}
	return cfg
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
