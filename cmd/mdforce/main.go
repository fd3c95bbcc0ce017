package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mdforce/internal/config"
	"github.com/san-kum/mdforce/internal/forcefield"
	"github.com/san-kum/mdforce/internal/nblist"
	"github.com/san-kum/mdforce/internal/pair"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	gradient   bool
	virial     bool
	workers    int
	asJSON     bool
	// profile options
	profI      int
	profJ      int
	rmin       float64
	rmax       float64
	points     int
	derivative bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mdforce",
		Short: "nonbonded force-field kernel for periodic systems",
	}

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "single-point energy, gradient and virial evaluation",
		RunE:  runCompute,
	}
	computeCmd.Flags().StringVar(&configFile, "config", "", "system file (yaml)")
	computeCmd.Flags().StringVar(&preset, "preset", "", "built-in system preset")
	computeCmd.Flags().BoolVar(&gradient, "gradient", true, "accumulate per-atom gradients")
	computeCmd.Flags().BoolVar(&virial, "virial", true, "accumulate the virial tensor")
	computeCmd.Flags().IntVar(&workers, "workers", 1, "parallel workers over center atoms")
	computeCmd.Flags().BoolVar(&asJSON, "json", false, "emit the result as JSON")

	profileCmd := &cobra.Command{
		Use:   "profile [kernel]",
		Short: "radial energy profile of one pair kernel",
		Args:  cobra.ExactArgs(1),
		RunE:  runProfile,
	}
	profileCmd.Flags().StringVar(&configFile, "config", "", "system file (yaml)")
	profileCmd.Flags().StringVar(&preset, "preset", "", "built-in system preset")
	profileCmd.Flags().IntVar(&profI, "i", 0, "first atom index")
	profileCmd.Flags().IntVar(&profJ, "j", 1, "second atom index")
	profileCmd.Flags().Float64Var(&rmin, "rmin", 0.5, "smallest distance")
	profileCmd.Flags().Float64Var(&rmax, "rmax", 0, "largest distance (default rcut)")
	profileCmd.Flags().IntVar(&points, "points", 80, "sample count")
	profileCmd.Flags().BoolVar(&derivative, "derivative", false, "plot dE/dr instead of E")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in system presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("%-10s %d atoms, %d kernel(s)\n", name, cfg.NumAtoms(), len(cfg.Kernels))
			}
			return nil
		},
	}

	rootCmd.AddCommand(computeCmd, profileCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return cfg, nil
	}
	return nil, fmt.Errorf("either --config or --preset is required")
}

type computeResult struct {
	Name     string             `json:"name"`
	Energy   float64            `json:"energy"`
	Terms    map[string]float64 `json:"terms"`
	Gradient []float64          `json:"gradient,omitempty"`
	Virial   []float64          `json:"virial,omitempty"`
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Workers = workers

	ff, err := cfg.BuildForceField()
	if err != nil {
		return err
	}

	acc := forcefield.NewAccumulator(cfg.NumAtoms(), gradient, virial)
	start := time.Now()
	res, err := ff.Compute(acc)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(&computeResult{
			Name:     cfg.Name,
			Energy:   res.Total,
			Terms:    res.Terms,
			Gradient: acc.Gradient,
			Virial:   acc.Virial,
		})
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("mdforce: %s (%d atoms)", cfg.Name, cfg.NumAtoms())))
	fmt.Printf("evaluated in %v\n\n", elapsed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TERM\tENERGY")
	names := make([]string, 0, len(res.Terms))
	for name := range res.Terms {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.10f\n", name, res.Terms[name])
	}
	fmt.Fprintf(w, "total\t%.10f\n", res.Total)
	if err := w.Flush(); err != nil {
		return err
	}

	if gradient {
		fmt.Printf("\n%s %.6e (rms), %.6e (max)\n",
			labelStyle.Render("gradient:"), gradientRMS(acc.Gradient), gradientMax(acc.Gradient))
	}
	if virial {
		fmt.Printf("\n%s\n", labelStyle.Render("virial:"))
		for r := 0; r < 3; r++ {
			fmt.Printf("  %12.6f %12.6f %12.6f\n", acc.Virial[3*r], acc.Virial[3*r+1], acc.Virial[3*r+2])
		}
	}
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var kc *config.Kernel
	for i := range cfg.Kernels {
		if cfg.Kernels[i].Type == args[0] {
			kc = &cfg.Kernels[i]
			break
		}
	}
	if kc == nil {
		return fmt.Errorf("no %q kernel in this system", args[0])
	}
	kernel, err := cfg.BuildKernel(*kc)
	if err != nil {
		return err
	}
	engine := pair.NewEngine(kernel, cfg.RCut, cfg.Smooth)

	hi := rmax
	if hi <= 0 {
		hi = cfg.RCut
	}
	if points < 2 {
		points = 2
	}

	data := make([]float64, points)
	for n := 0; n < points; n++ {
		r := rmin + (hi-rmin)*float64(n)/float64(points-1)
		row := []nblist.Row{{Other: profJ, Distance: r, Delta: [3]float64{r, 0, 0}}}
		if derivative {
			acc := forcefield.NewAccumulator(maxInt(profI, profJ)+1, true, false)
			if _, err := engine.Compute(profI, row, nil, acc); err != nil {
				return err
			}
			// dE/dr is the gradient projection on the x axis.
			data[n] = acc.Gradient[3*profJ]
		} else {
			acc := forcefield.NewAccumulator(0, false, false)
			e, err := engine.Compute(profI, row, nil, acc)
			if err != nil {
				return err
			}
			data[n] = e
		}
	}

	caption := fmt.Sprintf("%s: E(r), r in [%.2f, %.2f], pair (%d,%d)", args[0], rmin, hi, profI, profJ)
	if derivative {
		caption = fmt.Sprintf("%s: dE/dr, r in [%.2f, %.2f], pair (%d,%d)", args[0], rmin, hi, profI, profJ)
	}
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	))
	return nil
}

func gradientRMS(g []float64) float64 {
	if len(g) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range g {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(g)))
}

func gradientMax(g []float64) float64 {
	m := 0.0
	for _, v := range g {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
