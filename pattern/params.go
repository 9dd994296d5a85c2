// Package pattern holds the spotlight shader's parameter block and a CPU
// mirror of its fragment stage.
//
// The GPU shader in renderer/shaders/pattern.fs and the functions in this
// package compute the same values in float32; keep them in sync.
package pattern

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

// Range is a closed interval a slider may move a value in.
type Range struct {
	Min, Max float32
}

// Clamp restricts v to the range.
func (r Range) Clamp(v float32) float32 {
	return math32.Max(r.Min, math32.Min(r.Max, v))
}

// Params is the uniform block shared by the GUI, the interaction feed, the
// frame driver and the shader. It is owned by the scene and passed around by
// pointer; all access happens on the main thread.
type Params struct {
	// Center is the spotlight center in the surface's local frame. Only X
	// and Z are used by the shader.
	Center ms3.Vec
	// Size is the rectangle width and depth.
	Size ms2.Vec
	// LineHalfWidth is the half-thickness of the highlighted border.
	LineHalfWidth float32
	// Theta is the rectangle rotation in radians. It is derived from the
	// camera azimuth every frame and should not be set from anywhere else.
	Theta float32

	SizeRange Range
	LineRange Range
}

// NewParams returns parameters with the given initial values clamped to the
// slider ranges.
func NewParams(size ms2.Vec, lineHalfWidth float32, sizeRange, lineRange Range) *Params {
	p := &Params{SizeRange: sizeRange, LineRange: lineRange}
	p.SetSizeX(size.X)
	p.SetSizeY(size.Y)
	p.SetLineHalfWidth(lineHalfWidth)
	return p
}

// SetSizeX sets the rectangle width within SizeRange.
func (p *Params) SetSizeX(v float32) {
	p.Size.X = p.SizeRange.Clamp(v)
}

// SetSizeY sets the rectangle depth within SizeRange.
func (p *Params) SetSizeY(v float32) {
	p.Size.Y = p.SizeRange.Clamp(v)
}

// SetLineHalfWidth sets the border half-width within LineRange.
func (p *Params) SetLineHalfWidth(v float32) {
	p.LineHalfWidth = p.LineRange.Clamp(v)
}

// CenterXZ returns the center projected on the surface plane, which is the
// space the fragment stage works in.
func (p *Params) CenterXZ() ms2.Vec {
	return ms2.Vec{X: p.Center.X, Y: p.Center.Z}
}
