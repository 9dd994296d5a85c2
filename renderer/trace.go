package renderer

import (
	"context"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxRecent bounds how many warning lines TraceLog keeps.
const maxRecent = 32

// TraceLog forwards raylib's trace output to slog and keeps the most recent
// warnings so startup failures can report the GL compiler diagnostic.
type TraceLog struct {
	logger *slog.Logger
	recent []string
}

// InstallTraceLog routes raylib logging through logger. Call it before
// rl.InitWindow to capture context creation messages.
func InstallTraceLog(logger *slog.Logger, level rl.TraceLogLevel) *TraceLog {
	t := &TraceLog{logger: logger}
	rl.SetTraceLogLevel(level)
	rl.SetTraceLogCallback(t.handle)
	return t
}

func (t *TraceLog) handle(level int, text string) {
	slevel := slogLevel(level)
	if slevel >= slog.LevelWarn {
		t.recent = append(t.recent, text)
		if len(t.recent) > maxRecent {
			t.recent = t.recent[len(t.recent)-maxRecent:]
		}
	}
	t.logger.Log(context.Background(), slevel, text, "source", "raylib")
}

// Recent returns warning and error lines since the last Reset.
func (t *TraceLog) Recent() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.recent...)
}

// Reset forgets collected lines.
func (t *TraceLog) Reset() {
	if t == nil {
		return
	}
	t.recent = t.recent[:0]
}

func slogLevel(level int) slog.Level {
	switch {
	case level >= int(rl.LogError):
		return slog.LevelError
	case level >= int(rl.LogWarning):
		return slog.LevelWarn
	case level >= int(rl.LogInfo):
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
