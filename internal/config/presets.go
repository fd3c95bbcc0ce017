package config

import "sort"

// Presets are small built-in systems for demonstration and regression runs.
var Presets = map[string]*Config{
	// Rocksalt unit cell, eight unit charges, lattice constant 2.
	"rocksalt": {
		Name: "rocksalt",
		Cell: [][]float64{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}},
		Positions: [][]float64{
			{0, 0, 0}, {0, 1, 1}, {1, 0, 1}, {1, 1, 0},
			{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1},
		},
		Charges:  []float64{1, 1, 1, 1, -1, -1, -1, -1},
		RCut:     3.0,
		Alpha:    1.5,
		GCut:     4.0,
		MaxImage: 2,
		Kernels:  []Kernel{{Type: "coulomb"}},
	},

	// FCC cell of four Lennard-Jones atoms at reduced density 1.
	"argon": {
		Name: "argon",
		Cell: [][]float64{{1.5874, 0, 0}, {0, 1.5874, 0}, {0, 0, 1.5874}},
		Positions: [][]float64{
			{0, 0, 0},
			{0, 0.7937, 0.7937},
			{0.7937, 0, 0.7937},
			{0.7937, 0.7937, 0},
		},
		RCut:     2.5,
		Smooth:   true,
		MaxImage: 2,
		Kernels: []Kernel{{
			Type:    "lj",
			Sigma:   []float64{1, 1, 1, 1},
			Epsilon: []float64{1, 1, 1, 1},
		}},
	},

	// One unit charge in a unit box with neutralizing background.
	"wigner": {
		Name:      "wigner",
		Cell:      [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		Positions: [][]float64{{0, 0, 0}},
		Charges:   []float64{1},
		RCut:      2.0,
		Alpha:     2.0,
		GCut:      6.0,
		MaxImage:  2,
		Kernels:   []Kernel{{Type: "coulomb"}},
	},
}

// GetPreset returns a copy of the named preset, or nil when it is unknown.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	return &cp
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
