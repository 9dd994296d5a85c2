package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spotlight/telemetry"
	"github.com/pthm-cable/spotlight/ui"
)

const controlsLegend = "Drag: orbit | Wheel: zoom | G: panel | Home: reset view | F11: fullscreen"

// Draw renders the scene.
func (s *Scene) Draw() {
	s.perfCollector.StartPhase(telemetry.PhaseUniforms)
	s.shader.Upload()

	s.perfCollector.StartPhase(telemetry.PhaseRender)
	rl.BeginDrawing()
	rl.ClearBackground(s.background)

	rl.BeginMode3D(s.camera)
	rl.DrawGrid(int32(s.cfg.Grid.Divisions), s.cfg.Derived.GridSpacing)
	s.surface.Draw()
	rl.EndMode3D()

	// Slider edits land in params and reach the shader on the next frame
	s.controls.Draw(s.params)

	hits, misses := s.feed.Stats()
	s.hud.Draw(ui.HUDData{
		Title:    s.cfg.Screen.Title,
		FPS:      rl.GetFPS(),
		ThetaDeg: s.feed.ThetaDegrees(),
		Center:   s.params.Center,
		Pointer:  s.feed.LastNDC(),
		Hits:     hits,
		Misses:   misses,
	})
	s.hud.DrawControls(int32(s.screenWidth), int32(s.screenHeight), controlsLegend)

	// Swap and frame pacing happen in EndDrawing, outside the frame's work
	s.perfCollector.EndFrame()
	rl.EndDrawing()

	s.flushTelemetry()
}
