package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spotlight/pattern"
)

const controlsSliders = 3

// ControlsPanel renders the slider panel bound to the spotlight parameters.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// SetPosition moves the panel's top-left corner.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// SetVisible shows or hides the panel.
func (c *ControlsPanel) SetVisible(visible bool) {
	c.visible = visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Bounds returns the screen rectangle the panel occupies.
func (c *ControlsPanel) Bounds() rl.Rectangle {
	return rl.Rectangle{
		X:      float32(c.x),
		Y:      float32(c.y),
		Width:  float32(c.width),
		Height: float32(c.height()),
	}
}

// Contains reports whether the screen point lies on the visible panel.
// Pointer drags that start here belong to the sliders, not the camera.
func (c *ControlsPanel) Contains(p rl.Vector2) bool {
	return c.visible && rl.CheckCollisionPointRec(p, c.Bounds())
}

func (c *ControlsPanel) height() int32 {
	t := c.renderer.Theme
	return t.Padding*2 + t.LineHeight + 4 + controlsSliders*(t.SliderHeight+8)
}

// Draw renders the panel and applies slider edits to params through its
// clamping setters. Returns true if any value changed.
func (c *ControlsPanel) Draw(params *pattern.Params) bool {
	if !c.visible {
		return false
	}

	r := c.renderer
	padding := r.Theme.Padding
	inner := c.width - padding*2

	r.DrawPanel(c.x, c.y, c.width, c.height())

	x := c.x + padding
	y := r.DrawSectionHeader(x, c.y+padding, "Spotlight")

	changed := false
	v, y := r.DrawSlider(x, y, inner, "size.x", params.Size.X, params.SizeRange)
	if v != params.Size.X {
		params.SetSizeX(v)
		changed = true
	}
	v, y = r.DrawSlider(x, y, inner, "size.y", params.Size.Y, params.SizeRange)
	if v != params.Size.Y {
		params.SetSizeY(v)
		changed = true
	}
	v, _ = r.DrawSlider(x, y, inner, "lineHalfWidth", params.LineHalfWidth, params.LineRange)
	if v != params.LineHalfWidth {
		params.SetLineHalfWidth(v)
		changed = true
	}

	return changed
}
