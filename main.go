package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spotlight/config"
	"github.com/pthm-cable/spotlight/renderer"
	"github.com/pthm-cable/spotlight/scene"
)

func init() {
	// raylib must be driven from the main OS thread
	runtime.LockOSThread()
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	logStats := flag.Bool("log-stats", false, "Output frame timing via slog")
	outputDir := flag.String("output-dir", "", "Output directory for perf CSV and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed for surface displacement (0 = time-based)")
	maxFrames := flag.Int64("max-frames", 0, "Stop after N frames (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Route raylib logging before the window exists so GL setup is captured
	trace := renderer.InstallTraceLog(logger, rl.LogWarning)

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	s, err := scene.New(cfg, scene.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
		Trace:     trace,
	})
	if err != nil {
		slog.Error("failed to build scene", "error", err)
		rl.CloseWindow()
		os.Exit(1)
	}
	defer s.Unload()

	slog.Info("starting", "seed", rngSeed, "max_frames", *maxFrames)

	for !rl.WindowShouldClose() {
		s.Update()
		s.Draw()

		if *maxFrames > 0 && s.Frames() >= *maxFrames {
			slog.Info("max frames reached", "frames", s.Frames())
			break
		}
	}
}
