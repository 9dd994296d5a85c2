package telemetry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/spotlight/config"
)

func TestOutputManager_Disabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// Nil manager methods are no-ops
	if err := om.WritePerf(PerfStats{}, 1); err != nil {
		t.Errorf("WritePerf on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("expected empty dir, got %q", om.Dir())
	}
}

func TestOutputManager_WritePerf(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	for i := int64(1); i <= 3; i++ {
		stats := PerfStats{
			AvgFrameDuration: time.Duration(i) * time.Millisecond,
			PhasePct:         map[string]float64{PhaseRender: 80},
		}
		if err := om.WritePerf(stats, i*60); err != nil {
			t.Fatalf("WritePerf: %v", err)
		}
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "perf.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var rows []PerfStatsCSV
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		t.Fatalf("reading perf.csv: %v", err)
	}

	// A single header followed by three rows
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[2].Frame != 180 || rows[2].AvgFrameUS != 3000 || rows[2].RenderPct != 80 {
		t.Errorf("unexpected last row: %+v", rows[2])
	}
}

func TestOutputManager_WriteConfig(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	config.MustInit("")
	if err := om.WriteConfig(config.Cfg()); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}

	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot does not load back: %v", err)
	}
}
