package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/mdforce/internal/forcefield"
)

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.yaml")
	cfg := GetPreset("rocksalt")
	cfg.Scalings = []Scaling{{I: 0, J: 4, Scale: 0.5}}
	cfg.Workers = 3

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if got.Name != "rocksalt" || got.NumAtoms() != 8 {
		t.Errorf("roundtrip lost system identity: name %q, %d atoms", got.Name, got.NumAtoms())
	}
	if got.RCut != 3.0 || got.Alpha != 1.5 || got.GCut != 4.0 || got.MaxImage != 2 {
		t.Errorf("roundtrip lost cutoff settings: %+v", got)
	}
	if got.Workers != 3 {
		t.Errorf("workers %d, want 3", got.Workers)
	}
	if len(got.Kernels) != 1 || got.Kernels[0].Type != "coulomb" {
		t.Errorf("roundtrip lost kernels: %+v", got.Kernels)
	}
	if len(got.Scalings) != 1 || got.Scalings[0] != (Scaling{I: 0, J: 4, Scale: 0.5}) {
		t.Errorf("roundtrip lost scalings: %+v", got.Scalings)
	}
	if got.Charges[0] != 1 || got.Charges[7] != -1 {
		t.Errorf("roundtrip lost charges: %v", got.Charges)
	}
}

func TestLoadDefaults(t *testing.T) {
	// A minimal hand-written file must pick up the cutoff defaults.
	path := filepath.Join(t.TempDir(), "minimal.yaml")
	data := []byte("cell:\n  - [4, 0, 0]\n  - [0, 4, 0]\n  - [0, 0, 4]\npositions:\n  - [0, 0, 0]\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.RCut != DefaultRCut || got.Alpha != DefaultAlpha || got.GCut != DefaultGCut || got.MaxImage != DefaultMaxImage {
		t.Errorf("defaults not applied: %+v", got)
	}
	if got.NumAtoms() != 1 {
		t.Errorf("want 1 atom, got %d", got.NumAtoms())
	}
}

func TestGetPresetCopies(t *testing.T) {
	a := GetPreset("argon")
	if a == nil {
		t.Fatal("argon preset missing")
	}
	a.RCut = 99
	if Presets["argon"].RCut == 99 {
		t.Error("GetPreset must return a copy, not the shared preset")
	}

	if GetPreset("nope") != nil {
		t.Error("unknown preset must return nil")
	}

	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("ListPresets returned %d names for %d presets", len(names), len(Presets))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("preset names not sorted: %v", names)
		}
	}
}

func TestBuildCellErrors(t *testing.T) {
	cfg := &Config{Cell: [][]float64{{1, 0, 0}, {0, 1, 0}}}
	if _, err := cfg.BuildCell(); err == nil {
		t.Error("two cell vectors must be rejected")
	}

	cfg.Cell = [][]float64{{1, 0, 0}, {0, 1}, {0, 0, 1}}
	if _, err := cfg.BuildCell(); err == nil {
		t.Error("short cell vector must be rejected")
	}
}

func TestScaleRows(t *testing.T) {
	cfg := &Config{
		Positions: [][]float64{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}},
		Scalings:  []Scaling{{I: 2, J: 0, Scale: 0.5}, {I: 1, J: 2, Scale: 0}},
	}
	rows := cfg.ScaleRows()
	if len(rows) != 4 {
		t.Fatalf("want one row per atom, got %d", len(rows))
	}

	// Each pair must appear on both sides, sorted by the other atom's index.
	if len(rows[2]) != 2 || rows[2][0].Other != 0 || rows[2][1].Other != 1 {
		t.Errorf("row 2 = %v, want sorted entries for atoms 0 and 1", rows[2])
	}
	if len(rows[0]) != 1 || rows[0][0].Other != 2 || rows[0][0].Scale != 0.5 {
		t.Errorf("row 0 = %v, want {2 0.5}", rows[0])
	}
	if len(rows[3]) != 0 {
		t.Errorf("atom without scalings must get an empty row, got %v", rows[3])
	}

	if (&Config{Positions: cfg.Positions}).ScaleRows() != nil {
		t.Error("no scalings must yield a nil table")
	}
}

func TestBuildKernelErrors(t *testing.T) {
	cfg := &Config{
		Positions: [][]float64{{0, 0, 0}, {1, 0, 0}},
		Charges:   []float64{1, -1},
		Alpha:     1.0,
	}

	tests := []struct {
		name   string
		kernel Kernel
	}{
		{"lj short sigma", Kernel{Type: "lj", Sigma: []float64{1}, Epsilon: []float64{1, 1}}},
		{"mm3 short pauli", Kernel{Type: "mm3", Sigma: []float64{1, 1}, Epsilon: []float64{1, 1}, OnlyPauli: []bool{true}}},
		{"grimme short c6", Kernel{Type: "grimme", R0: []float64{1, 1}, C6: []float64{1}}},
		{"exprep short b", Kernel{Type: "exprep", Amp: []float64{1, 1}, B: []float64{1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cfg.BuildKernel(tt.kernel)
			if !errors.Is(err, forcefield.ErrDimensionMismatch) {
				t.Errorf("want dimension mismatch, got %v", err)
			}
		})
	}

	if _, err := cfg.BuildKernel(Kernel{Type: "buckingham"}); err == nil {
		t.Error("unknown kernel type must be rejected")
	}
	bad := Kernel{Type: "exprep", Amp: []float64{1, 1}, B: []float64{1, 1}, AmpMix: "harmonic"}
	if _, err := cfg.BuildKernel(bad); err == nil {
		t.Error("unknown amp_mix must be rejected")
	}
}

func TestBuildKernelVariants(t *testing.T) {
	cfg := &Config{
		Positions: [][]float64{{0, 0, 0}, {1, 0, 0}},
		Charges:   []float64{1, -1},
		Alpha:     1.0,
	}
	kernels := []Kernel{
		{Type: "lj", Sigma: []float64{1, 1}, Epsilon: []float64{1, 1}},
		{Type: "mm3", Sigma: []float64{1, 1}, Epsilon: []float64{1, 1}},
		{Type: "grimme", R0: []float64{1, 1}, C6: []float64{1, 1}},
		{Type: "exprep", Amp: []float64{1, 1}, B: []float64{2, 2}, AmpMix: "geometric_corr", AmpMixCoeff: 0.1, BMix: "arithmetic_corr", BMixCoeff: 0.2},
		{Type: "coulomb"},
	}
	for _, k := range kernels {
		kernel, err := cfg.BuildKernel(k)
		if err != nil {
			t.Fatalf("%s: %v", k.Type, err)
		}
		e, g := kernel.Energy(0, 1, 1.3)
		if math.IsNaN(e) || math.IsNaN(g) {
			t.Errorf("%s: kernel produced NaN at d=1.3", k.Type)
		}
	}
}

func TestBuildForceFieldPresets(t *testing.T) {
	// Every preset must assemble; the coulomb ones carry the three long-range
	// terms on top of the pair term.
	wantTerms := map[string]int{"rocksalt": 4, "argon": 1, "wigner": 4}

	for name, n := range wantTerms {
		t.Run(name, func(t *testing.T) {
			cfg := GetPreset(name)
			ff, err := cfg.BuildForceField()
			if err != nil {
				t.Fatal(err)
			}
			acc := forcefield.NewAccumulator(cfg.NumAtoms(), true, true)
			res, err := ff.Compute(acc)
			if err != nil {
				t.Fatal(err)
			}
			if len(res.Terms) != n {
				t.Errorf("want %d terms, got %v", n, res.Terms)
			}
			if math.IsNaN(res.Total) {
				t.Error("total energy is NaN")
			}
		})
	}
}

func TestBuildForceFieldRocksaltEnergy(t *testing.T) {
	// End-to-end check against the Madelung constant: four ion pairs at unit
	// separation give E = -4*1.7475646.
	cfg := GetPreset("rocksalt")
	cfg.GCut = 5.0
	cfg.Alpha = 2.0
	ff, err := cfg.BuildForceField()
	if err != nil {
		t.Fatal(err)
	}

	acc := forcefield.NewAccumulator(cfg.NumAtoms(), false, false)
	res, err := ff.Compute(acc)
	if err != nil {
		t.Fatal(err)
	}
	want := -4 * 1.7475646
	if math.Abs(res.Total-want) > 1e-4 {
		t.Errorf("rocksalt total %.7f, want %.7f", res.Total, want)
	}
}
