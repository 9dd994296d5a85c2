package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spotlight/pattern"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight + 4
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawSlider draws a labelled slider over rng and returns the new value and
// the next Y position. The value is shown to the right of the bar.
func (r *Renderer) DrawSlider(x, y, width int32, label string, value float32, rng pattern.Range) (float32, int32) {
	t := r.Theme
	rl.DrawText(label, x, y+2, t.FontSize, t.LabelColor)

	barX := x + t.LabelWidth
	barWidth := width - t.LabelWidth - t.ValueWidth
	next := gui.SliderBar(
		rl.Rectangle{X: float32(barX), Y: float32(y), Width: float32(barWidth), Height: float32(t.SliderHeight)},
		"", "",
		value, rng.Min, rng.Max,
	)
	rl.DrawText(fmt.Sprintf("%.2f", next), barX+barWidth+6, y+2, t.FontSize, t.ValueColor)

	return next, y + t.SliderHeight + 8
}
