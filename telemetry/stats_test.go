package telemetry

import (
	"math"
	"testing"
	"time"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1.9},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestFrameTimePercentiles(t *testing.T) {
	// Unsorted input with one slow frame
	durations := []time.Duration{
		3 * time.Millisecond,
		1 * time.Millisecond,
		2 * time.Millisecond,
		21 * time.Millisecond,
		2 * time.Millisecond,
	}

	p50, p95 := FrameTimePercentiles(durations)

	if p50 != 2*time.Millisecond {
		t.Errorf("p50 = %v, want 2ms", p50)
	}
	// idx = 0.95*4 = 3.8 between 3ms and 21ms
	want := time.Duration(float64(3*time.Millisecond)*0.2 + float64(21*time.Millisecond)*0.8)
	if diff := p95 - want; diff < -time.Microsecond || diff > time.Microsecond {
		t.Errorf("p95 = %v, want %v", p95, want)
	}
	if durations[0] != 3*time.Millisecond {
		t.Error("input slice was reordered")
	}
}

func TestFrameTimePercentilesEmpty(t *testing.T) {
	p50, p95 := FrameTimePercentiles(nil)
	if p50 != 0 || p95 != 0 {
		t.Errorf("expected zeros for empty input, got %v %v", p50, p95)
	}
}
