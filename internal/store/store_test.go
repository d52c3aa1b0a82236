package store

import (
	"path/filepath"
	"testing"

	eventmatch "github.com/jamesainslie/go-eventmatch"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "runs.sqlite3")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func scoreFixture(t *testing.T) *eventmatch.Result {
	t.Helper()

	gt := []int{0, 0, 1, 1, 1, 0, 2, 2}
	cmp := []int{0, 0, 1, 1, 0, 0, 2, 2}
	res, err := eventmatch.Score(gt, cmp)
	if err != nil {
		t.Fatalf("Score() failed: %v", err)
	}
	return res
}

func TestSaveRun(t *testing.T) {
	s := setupTestStore(t)
	res := scoreFixture(t)

	id, err := s.SaveRun("gt.labels", "cmp.labels", res)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty run ID")
	}

	var run Run
	if err := s.DB.Preload("Metrics").First(&run, "id = ?", id).Error; err != nil {
		t.Fatalf("loading saved run: %v", err)
	}

	if run.GroundTruth != "gt.labels" {
		t.Errorf("GroundTruth = %q, want %q", run.GroundTruth, "gt.labels")
	}
	if run.Samples != res.N {
		t.Errorf("Samples = %d, want %d", run.Samples, res.N)
	}

	// One row per event type plus the overall row.
	if want := len(res.Keys) + 1; len(run.Metrics) != want {
		t.Fatalf("got %d metric rows, want %d", len(run.Metrics), want)
	}

	var overall *TypeMetrics
	for i := range run.Metrics {
		if run.Metrics[i].Overall {
			overall = &run.Metrics[i]
		}
	}
	if overall == nil {
		t.Fatal("expected an overall metrics row")
	}
	if overall.F1 != res.Overall.F1 {
		t.Errorf("overall F1 = %v, want %v", overall.F1, res.Overall.F1)
	}
}

func TestListRuns(t *testing.T) {
	s := setupTestStore(t)
	res := scoreFixture(t)

	for range 3 {
		if _, err := s.SaveRun("gt.labels", "cmp.labels", res); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := s.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	for _, run := range runs {
		if len(run.Metrics) == 0 {
			t.Errorf("run %s has no metrics preloaded", run.ID)
		}
	}
}

func TestListRuns_Empty(t *testing.T) {
	s := setupTestStore(t)

	runs, err := s.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs, want 0", len(runs))
	}
}
