// Package scene wires the surface, spotlight shader, camera and GUI together
// and drives them once per frame.
package scene

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"

	"github.com/pthm-cable/spotlight/camera"
	"github.com/pthm-cable/spotlight/config"
	"github.com/pthm-cable/spotlight/feed"
	"github.com/pthm-cable/spotlight/pattern"
	"github.com/pthm-cable/spotlight/renderer"
	"github.com/pthm-cable/spotlight/surface"
	"github.com/pthm-cable/spotlight/telemetry"
	"github.com/pthm-cable/spotlight/ui"
)

const panelWidth = 280

// Options configures a scene.
type Options struct {
	Seed      int64
	LogStats  bool
	OutputDir string
	// Trace carries raylib's log lines into startup errors. May be nil.
	Trace *renderer.TraceLog
}

// Scene holds the state of the running demo.
type Scene struct {
	cfg *config.Config

	// Shared uniform block, written by the feed and the controls panel
	params *pattern.Params

	orbit   *camera.Orbit
	camera  rl.Camera3D
	feed    *feed.Feed
	shader  *renderer.PatternShader
	surface *renderer.Surface

	controls *ui.ControlsPanel
	hud      *ui.HUD

	// Window size used for NDC conversion and picking
	screenWidth  float32
	screenHeight float32

	// Camera drag state
	dragging bool

	background rl.Color

	// Telemetry
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	lastFlush     time.Time
}

// New builds the scene. The raylib window must already be open.
func New(cfg *config.Config, opts Options) (*Scene, error) {
	rng := rand.New(rand.NewSource(opts.Seed))

	mesh, err := surface.Generate(surface.Options{
		Width:        cfg.Surface.Width,
		Height:       cfg.Surface.Height,
		SegmentsX:    cfg.Surface.SegmentsX,
		SegmentsY:    cfg.Surface.SegmentsY,
		Displacement: cfg.Surface.Displacement,
	}, rng)
	if err != nil {
		return nil, fmt.Errorf("generating surface: %w", err)
	}

	params := pattern.NewParams(
		ms2.Vec{X: float32(cfg.Pattern.Size[0]), Y: float32(cfg.Pattern.Size[1])},
		float32(cfg.Pattern.LineHalfWidth),
		pattern.Range{Min: float32(cfg.Pattern.SizeRange[0]), Max: float32(cfg.Pattern.SizeRange[1])},
		pattern.Range{Min: float32(cfg.Pattern.LineRange[0]), Max: float32(cfg.Pattern.LineRange[1])},
	)

	shader := renderer.NewPatternShader(params)
	if err := shader.Init(opts.Trace); err != nil {
		return nil, fmt.Errorf("compiling pattern shader: %w", err)
	}

	surf := renderer.NewSurface(mesh, vec3(cfg.Surface.Position), rgb(cfg.Surface.WireColor))
	surf.Init(shader.Shader())

	orbit := camera.New(
		vec3(cfg.Camera.Position),
		vec3(cfg.Camera.Target),
		float32(cfg.Controls.MinDistance),
		float32(cfg.Controls.MaxDistance),
	)
	orbit.RotateSpeed = float32(cfg.Controls.RotateSpeed)
	orbit.ZoomSpeed = float32(cfg.Controls.ZoomSpeed)
	orbit.Damping = float32(cfg.Controls.Damping)

	outputManager, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		shader.Unload()
		surf.Unload()
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	s := &Scene{
		cfg:           cfg,
		params:        params,
		orbit:         orbit,
		shader:        shader,
		surface:       surf,
		controls:      ui.NewControlsPanel(int32(cfg.Screen.Width)-panelWidth-10, 10, panelWidth),
		hud:           ui.NewHUD(),
		screenWidth:   cfg.Derived.ScreenW32,
		screenHeight:  cfg.Derived.ScreenH32,
		background:    rgb(cfg.Screen.Background),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		outputManager: outputManager,
		logStats:      opts.LogStats,
		lastFlush:     time.Now(),
	}
	s.controls.SetVisible(cfg.Screen.ShowPanel)
	s.feed = feed.New(params, rayPicker{s})
	s.refreshProjection()

	slog.Info("scene ready",
		"seed", opts.Seed,
		"vertices", mesh.VertexCount(),
		"triangles", mesh.TriangleCount(),
		"output_dir", outputManager.Dir(),
	)

	return s, nil
}

// Update advances input, camera controls and derived shader parameters by
// one frame.
func (s *Scene) Update() {
	s.perfCollector.StartFrame()

	s.perfCollector.StartPhase(telemetry.PhaseInput)
	s.handleInput()

	s.perfCollector.StartPhase(telemetry.PhaseControls)
	advanceControls(s.orbit, rl.GetFrameTime(), s.refreshProjection, s.feed, s.surface.Position())
}

// refreshProjection copies the orbit state into the raylib camera used for
// drawing and picking and returns the new eye position.
func (s *Scene) refreshProjection() ms3.Vec {
	pos, target := s.orbit.Position(), s.orbit.Target
	s.camera = rl.Camera3D{
		Position:   rl.NewVector3(pos.X, pos.Y, pos.Z),
		Target:     rl.NewVector3(target.X, target.Y, target.Z),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       float32(s.cfg.Camera.Fovy),
		Projection: rl.CameraPerspective,
	}
	return pos
}

// Frames returns the number of completed frames.
func (s *Scene) Frames() int64 {
	return s.perfCollector.Frames()
}

// Unload releases GPU resources and closes output files.
func (s *Scene) Unload() {
	s.surface.Unload()
	s.shader.Unload()
	if err := s.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

func vec3(v [3]float64) ms3.Vec {
	return ms3.Vec{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}
}

func rgb(c [3]uint8) rl.Color {
	return rl.Color{R: c[0], G: c[1], B: c[2], A: 255}
}
