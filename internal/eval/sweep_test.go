package eval

import "testing"

func TestSweepThresholds(t *testing.T) {
	got := SweepThresholds(0.25, 0.75, 0.25)
	if len(got) != 3 {
		t.Fatalf("got %d thresholds (%v), want 3", len(got), got)
	}
	if got[0] != 0.25 {
		t.Errorf("first threshold = %v, want 0.25", got[0])
	}

	if got := SweepThresholds(0.5, 2.0, 0.5); len(got) != 2 {
		t.Errorf("thresholds above 1 must be dropped, got %v", got)
	}
}

func TestSweep(t *testing.T) {
	gt := []int{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0}
	cmp := []int{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0}

	// The single overlap has IoU 4/7: a hit at 0.5, a miss at 0.9. The
	// lenient threshold must sort first.
	results, err := Sweep(gt, cmp, []float64{0.9, 0.5})
	if err != nil {
		t.Fatalf("Sweep() failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Threshold != 0.5 {
		t.Errorf("best threshold = %v, want 0.5", results[0].Threshold)
	}
	if results[0].Result.Overall.F1 <= results[1].Result.Overall.F1 {
		t.Errorf("results not sorted by overall F1: %v then %v",
			results[0].Result.Overall.F1, results[1].Result.Overall.F1)
	}
}

func TestSweep_PropagatesScoreError(t *testing.T) {
	if _, err := Sweep([]int{0, 1}, []int{0}, []float64{0.5}); err == nil {
		t.Fatal("expected error from mismatched sequence lengths")
	}
}
