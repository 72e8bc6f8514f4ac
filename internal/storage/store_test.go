package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/particles/internal/engine"
	"github.com/san-kum/particles/internal/sim"
)

func testResult() *sim.Result {
	return &sim.Result{
		Seed:    42,
		Frames:  3,
		Elapsed: 30 * time.Millisecond,
		Series: map[string][]float64{
			"active":     {10, 9, 7},
			"total_mass": {55.5, 55.5, 55.5},
		},
		Metrics: map[string]float64{
			"active":     7,
			"total_mass": 55.5,
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(RunMetadata{Preset: "cluster", Size: 10, Workers: 2, Physics: engine.DefaultParams()}, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Preset != "cluster" || meta.Size != 10 || meta.Workers != 2 {
		t.Errorf("caller fields not kept: %+v", meta)
	}
	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}
	if meta.Frames != 3 {
		t.Errorf("expected 3 frames, got %d", meta.Frames)
	}
	if meta.FrameRate != 100 {
		t.Errorf("expected 100 fps, got %v", meta.FrameRate)
	}
	if meta.Metrics["active"] != 7 {
		t.Errorf("expected active 7, got %v", meta.Metrics["active"])
	}
	if meta.Physics != engine.DefaultParams() {
		t.Errorf("physics not kept: %+v", meta.Physics)
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}

	want := testResult().Series
	for name, values := range want {
		got := series[name]
		if len(got) != len(values) {
			t.Fatalf("series %s: expected %d values, got %d", name, len(values), len(got))
		}
		for i := range values {
			if got[i] != values[i] {
				t.Errorf("series %s[%d] = %v, want %v", name, i, got[i], values[i])
			}
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	first, err := st.Save(RunMetadata{}, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	second, err := st.Save(RunMetadata{}, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != first || runs[1].ID != second {
		t.Errorf("runs out of order: %s, %s", runs[0].ID, runs[1].ID)
	}
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(RunMetadata{}, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"metadata.json", "series.csv"} {
		if _, err := os.Stat(filepath.Join(tmpDir, runID, name)); err != nil {
			t.Errorf("%s not created: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, runID, "series.csv"))
	if err != nil {
		t.Fatal(err)
	}
	want := "frame,active,total_mass\n0,10,55.5\n1,9,55.5\n2,7,55.5\n"
	if string(data) != want {
		t.Errorf("unexpected csv:\n%s", data)
	}
}

func TestLoad_Missing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, err := st.LoadSeries("nope"); err == nil {
		t.Error("expected error for missing series")
	}
}
