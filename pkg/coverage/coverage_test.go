package coverage

import (
	"testing"

	"github.com/fyerfyer/podem-atpg/pkg/circuit"
	"github.com/fyerfyer/podem-atpg/pkg/utils"
)

func loadS27(t *testing.T) *circuit.Circuit {
	t.Helper()
	c, err := utils.ParseNetlistFile("../../circuits/s27.net")
	if err != nil {
		t.Fatalf("loading s27: %v", err)
	}
	return c
}

// TestRunProgress pins the start of the seeded run: the first pattern of
// seed 1 detects 10 of the 34 faults.
func TestRunProgress(t *testing.T) {
	points, err := Run(loadS27(t), Config{Seed: 1, Target: 1.0, MaxVectors: 10}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 10 {
		t.Fatalf("got %d points, want 10", len(points))
	}
	if points[0].Vector != "0000110" || points[0].Detected != 10 {
		t.Errorf("first point = %+v, want vector 0000110 detecting 10", points[0])
	}
	if points[9].Detected != 24 {
		t.Errorf("after 10 vectors detected = %d, want 24", points[9].Detected)
	}

	for i := 1; i < len(points); i++ {
		if points[i].Detected < points[i-1].Detected {
			t.Fatalf("cumulative coverage shrank at vector %d", i+1)
		}
		if points[i].Applied != i+1 {
			t.Errorf("point %d has Applied=%d", i, points[i].Applied)
		}
	}
}

// TestRunReproducible: the same seed always yields the same run.
func TestRunReproducible(t *testing.T) {
	c := loadS27(t)
	first, err := Run(c, Config{Seed: 99, MaxVectors: 20}, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Run(c, Config{Seed: 99, MaxVectors: 20}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("runs diverge at point %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// TestRunStopsAtTarget: the run ends as soon as the target fraction is
// reached. The first vector of seed 1 already covers 10/34.
func TestRunStopsAtTarget(t *testing.T) {
	points, err := Run(loadS27(t), Config{Seed: 1, Target: 0.25, MaxVectors: 100}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 1 {
		t.Fatalf("expected the run to stop after 1 vector, got %d", len(points))
	}
	if points[0].Coverage < 0.25 {
		t.Errorf("final coverage %.3f below target", points[0].Coverage)
	}
}

// TestRunVectorBudget: MaxVectors bounds the run even far from the target.
func TestRunVectorBudget(t *testing.T) {
	points, err := Run(loadS27(t), Config{Seed: 5, Target: 1.0, MaxVectors: 3}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 3 {
		t.Errorf("got %d points, want 3", len(points))
	}
}
