package pattern

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

// tau matches the TAU constant in pattern.fs.
const tau float32 = 6.28318530718

// Highlight is the border color.
var Highlight = ms3.Vec{X: 0, Y: 1, Z: 1}

// Rotation is a 2x2 matrix stored column-major like a GLSL mat2.
type Rotation [4]float32

// NewRotation returns mat2(cos θ, -sin θ, sin θ, cos θ).
func NewRotation(theta float32) Rotation {
	s, c := math32.Sincos(theta)
	return Rotation{c, -s, s, c}
}

// At returns the element at row i, column j.
func (m Rotation) At(i, j int) float32 {
	return m[j*2+i]
}

// Apply returns v*m, the row-vector product GLSL evaluates for `v * m`.
func (m Rotation) Apply(v ms2.Vec) ms2.Vec {
	return ms2.Vec{
		X: v.X*m[0] + v.Y*m[1],
		Y: v.X*m[2] + v.Y*m[3],
	}
}

// Transpose returns the transposed matrix.
func (m Rotation) Transpose() Rotation {
	return Rotation{m[0], m[2], m[1], m[3]}
}

// Mul returns the matrix product m*n.
func (m Rotation) Mul(n Rotation) Rotation {
	var r Rotation
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			r[j*2+i] = m.At(i, 0)*n.At(0, j) + m.At(i, 1)*n.At(1, j)
		}
	}
	return r
}

// Distance returns abs(rotate(p - center)) - size/2: per-axis distance of p
// from the rotated rectangle's edges, negative inside.
func Distance(p ms2.Vec, params *Params) ms2.Vec {
	local := NewRotation(params.Theta).Apply(ms2.Sub(p, params.CenterXZ()))
	return ms2.Sub(ms2.AbsElem(local), ms2.Scale(0.5, params.Size))
}

// IsBorder reports whether p lies on the highlighted ring.
//
// The test is |max(d.x, d.y)| < lineHalfWidth rather than a true box
// distance, so the ring also lights up along the extensions of the longer
// axis past the corners.
func IsBorder(p ms2.Vec, params *Params) bool {
	d := Distance(p, params)
	return math32.Abs(math32.Max(d.X, d.Y)) < params.LineHalfWidth
}

// BaseColor returns the grayscale checker intensity at p in [0, 1].
func BaseColor(p ms2.Vec) float32 {
	return (math32.Sin(p.X*tau)*0.5 + 0.5) * (math32.Cos(p.Y*tau)*0.5 + 0.5)
}

// Shade returns the RGB color the fragment stage writes at p.
func Shade(p ms2.Vec, params *Params) ms3.Vec {
	if IsBorder(p, params) {
		return Highlight
	}
	c := BaseColor(p)
	return ms3.Vec{X: c, Y: c, Z: c}
}

// RGBA converts a shaded color to an opaque 8-bit color.
func RGBA(c ms3.Vec) color.RGBA {
	to8 := func(v float32) uint8 {
		return uint8(math32.Max(0, math32.Min(1, v))*255 + 0.5)
	}
	return color.RGBA{R: to8(c.X), G: to8(c.Y), B: to8(c.Z), A: 255}
}
