package scene

import (
	"log/slog"
	"time"
)

// flushTelemetry reports frame timing once per configured interval.
func (s *Scene) flushTelemetry() {
	interval := time.Duration(s.cfg.Telemetry.LogInterval * float64(time.Second))
	if interval <= 0 || time.Since(s.lastFlush) < interval {
		return
	}
	s.lastFlush = time.Now()

	frame := s.perfCollector.Frames()
	stats := s.perfCollector.Stats()

	if s.logStats {
		slog.Info("perf", "frame", frame, "stats", stats)
	}

	if err := s.outputManager.WritePerf(stats, frame); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
