package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

// HUDData holds all the data needed to render the HUD.
type HUDData struct {
	Title    string
	FPS      int32
	ThetaDeg float32
	Center   ms3.Vec
	Pointer  ms2.Vec // Last pointer position in NDC
	Hits     int
	Misses   int
}

// HUD renders the heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	t := h.renderer.Theme

	rl.DrawText(data.Title, 10, 10, 20, t.HUDText)
	rl.DrawText(
		fmt.Sprintf("FPS: %d | theta: %.1f deg", data.FPS, data.ThetaDeg),
		10, 35, 16, t.HUDDim,
	)
	rl.DrawText(
		fmt.Sprintf("center: (%.2f, %.2f, %.2f) | hits: %d  misses: %d",
			data.Center.X, data.Center.Y, data.Center.Z, data.Hits, data.Misses),
		10, 55, 16, t.HUDDim,
	)

	rl.DrawRectangle(6, 76, 190, 20, rl.Color{R: 20, G: 25, B: 30, A: 160})
	h.renderer.DrawLabelValue(10, 80, "pointer", fmt.Sprintf("(%+.2f, %+.2f)", data.Pointer.X, data.Pointer.Y))
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, h.renderer.Theme.HUDDim)
}
