package scene

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard, pointer and camera input.
func (s *Scene) handleInput() {
	s.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyG) {
		s.controls.Toggle()
	}

	// Pointer motion moves the spotlight center
	mouse := rl.GetMousePosition()
	delta := rl.GetMouseDelta()
	if delta.X != 0 || delta.Y != 0 {
		s.feed.PointerMoved(mouse.X, mouse.Y, s.screenWidth, s.screenHeight)
	}

	s.handleCameraInput(mouse, delta)
}

// handleResize checks for window resize and propagates new dimensions.
func (s *Scene) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == s.screenWidth && h == s.screenHeight {
		return
	}
	s.screenWidth = w
	s.screenHeight = h
	s.controls.SetPosition(int32(w)-panelWidth-10, 10)
}

// handleCameraInput processes orbit drag and zoom.
func (s *Scene) handleCameraInput(mouse, delta rl.Vector2) {
	// Drags that start on the panel belong to its sliders
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		s.dragging = !s.controls.Contains(mouse)
	}
	if !rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		s.dragging = false
	}
	if s.dragging {
		s.orbit.Rotate(delta.X, delta.Y)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !s.controls.Contains(mouse) {
		s.orbit.Zoom(wheel)
	}

	// Home key to reset camera
	if rl.IsKeyPressed(rl.KeyHome) {
		s.orbit.Reset()
	}
}
