// Package config loads and saves system descriptions for the mdforce CLI:
// the periodic cell, atom positions and charges, the nonbonded kernels with
// their per-atom parameter arrays, exclusion scalings, and the Ewald and
// cutoff settings. Parsing force-field parameter tables into these arrays is
// an upstream concern; this package only consumes the resulting flat arrays.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRCut     = 2.5
	DefaultAlpha    = 1.5
	DefaultGCut     = 2.0
	DefaultMaxImage = 2
)

type Config struct {
	Name string `yaml:"name"`

	// Cell holds the three lattice vectors as rows.
	Cell      [][]float64 `yaml:"cell"`
	Positions [][]float64 `yaml:"positions"`
	Charges   []float64   `yaml:"charges"`

	RCut     float64 `yaml:"rcut"`
	Smooth   bool    `yaml:"smooth"`
	Alpha    float64 `yaml:"alpha"`
	GCut     float64 `yaml:"gcut"`
	MaxImage int     `yaml:"max_image"`
	Workers  int     `yaml:"workers"`

	Kernels  []Kernel  `yaml:"kernels"`
	Scalings []Scaling `yaml:"scalings"`
}

// Kernel selects one pair-potential model and carries its per-atom parameter
// arrays. Only the fields of the selected type are read.
type Kernel struct {
	Type string `yaml:"type"` // lj | mm3 | grimme | exprep | coulomb

	Sigma     []float64 `yaml:"sigma,omitempty"`
	Epsilon   []float64 `yaml:"epsilon,omitempty"`
	OnlyPauli []bool    `yaml:"only_pauli,omitempty"`

	R0 []float64 `yaml:"r0,omitempty"`
	C6 []float64 `yaml:"c6,omitempty"`

	Amp         []float64 `yaml:"amp,omitempty"`
	AmpMix      string    `yaml:"amp_mix,omitempty"` // geometric | geometric_corr
	AmpMixCoeff float64   `yaml:"amp_mix_coeff,omitempty"`
	B           []float64 `yaml:"b,omitempty"`
	BMix        string    `yaml:"b_mix,omitempty"` // arithmetic | arithmetic_corr
	BMixCoeff   float64   `yaml:"b_mix_coeff,omitempty"`
}

// Scaling attenuates the nonbonded interaction of one atom pair, applied to
// every pair term and to the Ewald exclusion correction.
type Scaling struct {
	I     int     `yaml:"i"`
	J     int     `yaml:"j"`
	Scale float64 `yaml:"scale"`
}

func DefaultConfig() *Config {
	return &Config{
		RCut:     DefaultRCut,
		Alpha:    DefaultAlpha,
		GCut:     DefaultGCut,
		MaxImage: DefaultMaxImage,
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

// NumAtoms returns the number of atoms in the configured system.
func (c *Config) NumAtoms() int {
	return len(c.Positions)
}
