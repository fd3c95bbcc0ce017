package nblist

import (
	"math"
	"testing"

	"github.com/san-kum/mdforce/internal/cell"
)

func TestLookup(t *testing.T) {
	scales := []Scale{{Other: 2, Scale: 0}, {Other: 5, Scale: 0.5}, {Other: 9, Scale: 0.25}}

	tests := []struct {
		other int
		want  float64
	}{
		{0, 1.0},
		{2, 0.0},
		{3, 1.0},
		{5, 0.5},
		{9, 0.25},
		{10, 1.0},
	}
	for _, tt := range tests {
		if got := Lookup(scales, tt.other); got != tt.want {
			t.Errorf("Lookup(%d) = %g, want %g", tt.other, got, tt.want)
		}
	}

	if got := Lookup(nil, 3); got != 1.0 {
		t.Errorf("empty scaling list must default to 1, got %g", got)
	}
}

func countPairs(rows [][]Row) int {
	n := 0
	for _, r := range rows {
		n += len(r)
	}
	return n
}

func TestBuildSingleCounting(t *testing.T) {
	c, err := cell.Cubic(10)
	if err != nil {
		t.Fatal(err)
	}
	// Two atoms well inside a large box: exactly one pair, no image pairs.
	pos := []float64{1, 1, 1, 2.5, 1, 1}
	rows := Build(pos, c, 3.0, 1)

	if got := countPairs(rows); got != 1 {
		t.Fatalf("want exactly 1 pair, got %d", got)
	}
	row := rows[1][0]
	if row.Other != 0 {
		t.Errorf("pair must appear once under the larger center index, got center 1 other %d", row.Other)
	}
	if math.Abs(row.Distance-1.5) > 1e-12 {
		t.Errorf("distance %g, want 1.5", row.Distance)
	}
	// Delta points from the center atom (1) to the other atom (0).
	if math.Abs(row.Delta[0]+1.5) > 1e-12 {
		t.Errorf("delta %v, want {-1.5 0 0}", row.Delta)
	}
}

func TestBuildSelfImages(t *testing.T) {
	// One atom in a unit box with cutoff 1: six nearest self-images, each
	// unordered image pair counted once, so three rows.
	c, err := cell.Cubic(1)
	if err != nil {
		t.Fatal(err)
	}
	rows := Build([]float64{0.5, 0.5, 0.5}, c, 1.0, 1)

	if got := countPairs(rows); got != 3 {
		t.Fatalf("want 3 self-image pairs, got %d", got)
	}
	for _, row := range rows[0] {
		if row.Other != 0 {
			t.Errorf("self image must reference the same atom, got %d", row.Other)
		}
		if math.Abs(row.Distance-1.0) > 1e-12 {
			t.Errorf("self-image distance %g, want 1", row.Distance)
		}
	}
}

func TestBuildCutoff(t *testing.T) {
	c, err := cell.Cubic(20)
	if err != nil {
		t.Fatal(err)
	}
	pos := []float64{0, 0, 0, 3, 0, 0, 0, 7, 0}

	rows := Build(pos, c, 5.0, 0)
	if got := countPairs(rows); got != 1 {
		t.Errorf("only the pair within the cutoff must appear, got %d rows", got)
	}

	rows = Build(pos, c, 8.0, 0)
	// 0-1 (3), 0-2 (7), 1-2 (sqrt(58) ~ 7.6): all inside.
	if got := countPairs(rows); got != 3 {
		t.Errorf("want 3 pairs within cutoff 8, got %d", got)
	}
}

func TestBuildMatchesBruteForceEnergy(t *testing.T) {
	// Summing 1/d over the list must match a brute-force double loop over
	// all image shifts with half counting.
	l := 3.0
	c, err := cell.Cubic(l)
	if err != nil {
		t.Fatal(err)
	}
	pos := []float64{0.3, 0.2, 0.1, 1.7, 2.5, 0.9, 2.2, 0.4, 1.8}
	rcut := 4.0

	rows := Build(pos, c, rcut, 2)
	got := 0.0
	for _, rs := range rows {
		for _, r := range rs {
			got += 1 / r.Distance
		}
	}

	want := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for n0 := -2; n0 <= 2; n0++ {
				for n1 := -2; n1 <= 2; n1++ {
					for n2 := -2; n2 <= 2; n2++ {
						dx := pos[3*j] - pos[3*i] + float64(n0)*l
						dy := pos[3*j+1] - pos[3*i+1] + float64(n1)*l
						dz := pos[3*j+2] - pos[3*i+2] + float64(n2)*l
						d := math.Sqrt(dx*dx + dy*dy + dz*dz)
						if d == 0 || d > rcut {
							continue
						}
						want += 0.5 / d
					}
				}
			}
		}
	}

	if math.Abs(got-want) > 1e-10 {
		t.Errorf("list sum %.12f, brute force %.12f", got, want)
	}
}
