package pattern

import (
	"math"
	"math/rand"
	"testing"

	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-5

func scenarioParams() *Params {
	return NewParams(ms2.Vec{X: 4, Y: 3}, 0.1, Range{Min: 0.5, Max: 5}, Range{Min: 0.05, Max: 2})
}

func toDense(m Rotation) *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		float64(m.At(0, 0)), float64(m.At(0, 1)),
		float64(m.At(1, 0)), float64(m.At(1, 1)),
	})
}

func TestRotationOrthogonal(t *testing.T) {
	identity := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	rng := rand.New(rand.NewSource(1))

	thetas := []float32{0, math.Pi / 2, math.Pi, -math.Pi / 3, 10}
	for i := 0; i < 50; i++ {
		thetas = append(thetas, (rng.Float32()-0.5)*40)
	}

	for _, theta := range thetas {
		m := NewRotation(theta)
		d := toDense(m)

		var prod mat.Dense
		prod.Mul(d, d.T())
		if !mat.EqualApprox(&prod, identity, tol) {
			t.Errorf("theta=%v: m*m^T = %v, want identity", theta, mat.Formatted(&prod))
		}

		// The package's own product agrees with gonum
		own := toDense(m.Mul(m.Transpose()))
		if !mat.EqualApprox(own, identity, tol) {
			t.Errorf("theta=%v: Rotation.Mul(Transpose) = %v, want identity", theta, mat.Formatted(own))
		}
	}
}

func TestRotationMatchesGLSLRowVectorProduct(t *testing.T) {
	// vec2(1,0) * mat2(c,-s,s,c) = (c, s)
	theta := float32(math.Pi / 6)
	got := NewRotation(theta).Apply(ms2.Vec{X: 1, Y: 0})
	want := ms2.Vec{X: float32(math.Cos(math.Pi / 6)), Y: float32(math.Sin(math.Pi / 6))}
	if math.Abs(float64(got.X-want.X)) > tol || math.Abs(float64(got.Y-want.Y)) > tol {
		t.Errorf("Apply = %v, want %v", got, want)
	}

	// Rotation preserves length
	v := ms2.Vec{X: 3, Y: -4}
	r := NewRotation(1.234).Apply(v)
	if l := ms2.Norm(r); math.Abs(float64(l-5)) > tol {
		t.Errorf("rotated length = %v, want 5", l)
	}
}

func TestZeroWidthRemovesRing(t *testing.T) {
	params := scenarioParams()
	params.LineRange = Range{Min: 0, Max: 2}
	params.SetLineHalfWidth(0)

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		params.Theta = (rng.Float32() - 0.5) * 2 * math.Pi
		params.Center = ms3.Vec{X: (rng.Float32() - 0.5) * 10, Z: (rng.Float32() - 0.5) * 10}
		p := ms2.Vec{X: (rng.Float32() - 0.5) * 20, Y: (rng.Float32() - 0.5) * 20}
		if IsBorder(p, params) {
			t.Fatalf("point %v flagged as border with zero width (params %+v)", p, params)
		}
	}

	// Points exactly on the edge are the measure-zero exception, and still
	// fail the strict comparison.
	params.Theta = 0
	params.Center = ms3.Vec{}
	if IsBorder(ms2.Vec{X: 2, Y: 0}, params) {
		t.Error("edge point flagged as border with zero width")
	}
}

func TestIsBorderIdempotent(t *testing.T) {
	params := scenarioParams()
	params.Theta = 0.7
	params.Center = ms3.Vec{X: 1, Y: 0.3, Z: -2}

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		p := ms2.Vec{X: (rng.Float32() - 0.5) * 20, Y: (rng.Float32() - 0.5) * 20}
		first := IsBorder(p, params)
		second := IsBorder(p, params)
		if first != second {
			t.Fatalf("IsBorder(%v) not stable: %v then %v", p, first, second)
		}
		if Shade(p, params) != Shade(p, params) {
			t.Fatalf("Shade(%v) not stable", p)
		}
	}
}

func TestCenterIsInterior(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		params := NewParams(
			ms2.Vec{X: 0.5 + rng.Float32()*4.5, Y: 0.5 + rng.Float32()*4.5},
			0, Range{Min: 0.5, Max: 5}, Range{Min: 0, Max: 2},
		)
		minHalf := params.Size.X / 2
		if params.Size.Y/2 < minHalf {
			minHalf = params.Size.Y / 2
		}
		params.SetLineHalfWidth(rng.Float32() * minHalf * 0.999)
		params.Theta = (rng.Float32() - 0.5) * 4 * math.Pi
		params.Center = ms3.Vec{X: (rng.Float32() - 0.5) * 20, Y: rng.Float32(), Z: (rng.Float32() - 0.5) * 20}

		if IsBorder(params.CenterXZ(), params) {
			t.Fatalf("center flagged as border: %+v", params)
		}
	}
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name       string
		p          ms2.Vec
		wantBorder bool
		wantColor  ms3.Vec
	}{
		{"edge of width", ms2.Vec{X: 2, Y: 0}, true, Highlight},
		{"deep interior", ms2.Vec{X: 0, Y: 0}, false, ms3.Vec{X: 0.5, Y: 0.5, Z: 0.5}},
		{"edge of depth", ms2.Vec{X: 0, Y: 1.55}, true, Highlight},
		{"outside", ms2.Vec{X: 5, Y: 0}, false, ms3.Vec{X: 0.5, Y: 0.5, Z: 0.5}},
	}

	params := scenarioParams()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBorder(tc.p, params); got != tc.wantBorder {
				t.Errorf("IsBorder(%v) = %v, want %v (d=%v)", tc.p, got, tc.wantBorder, Distance(tc.p, params))
			}
			got := Shade(tc.p, params)
			if math.Abs(float64(got.X-tc.wantColor.X)) > tol ||
				math.Abs(float64(got.Y-tc.wantColor.Y)) > tol ||
				math.Abs(float64(got.Z-tc.wantColor.Z)) > tol {
				t.Errorf("Shade(%v) = %v, want %v", tc.p, got, tc.wantColor)
			}
		})
	}
}

func TestBorderFollowsRotation(t *testing.T) {
	params := scenarioParams()
	params.Theta = math.Pi / 2

	// A quarter turn swaps the axes: the width edge now lies along Y.
	if !IsBorder(ms2.Vec{X: 0, Y: 2}, params) {
		t.Errorf("expected (0,2) on border after quarter turn, d=%v", Distance(ms2.Vec{X: 0, Y: 2}, params))
	}
	if IsBorder(ms2.Vec{X: 2, Y: 0}, params) {
		t.Errorf("expected (2,0) off border after quarter turn, d=%v", Distance(ms2.Vec{X: 2, Y: 0}, params))
	}
}

func TestBorderFollowsCenter(t *testing.T) {
	params := scenarioParams()
	params.Center = ms3.Vec{X: 3, Y: 0.8, Z: -1}

	// Center.Y is height above the plane and does not move the ring.
	if !IsBorder(ms2.Vec{X: 5, Y: -1}, params) {
		t.Error("expected right edge of translated rectangle on border")
	}
	if IsBorder(ms2.Vec{X: 3, Y: -1}, params) {
		t.Error("expected translated center off border")
	}
}

func TestBaseColorRange(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		p := ms2.Vec{X: (rng.Float32() - 0.5) * 40, Y: (rng.Float32() - 0.5) * 40}
		c := BaseColor(p)
		if c < 0 || c > 1 {
			t.Fatalf("BaseColor(%v) = %v outside [0, 1]", p, c)
		}
	}
	// Peak at x = 1/4, y = 0: (sin(pi/2)*.5+.5) * (cos(0)*.5+.5) = 1
	if c := BaseColor(ms2.Vec{X: 0.25, Y: 0}); math.Abs(float64(c-1)) > tol {
		t.Errorf("BaseColor peak = %v, want 1", c)
	}
}

func TestSettersClamp(t *testing.T) {
	params := scenarioParams()

	params.SetSizeX(10)
	params.SetSizeY(0.1)
	params.SetLineHalfWidth(-1)

	if params.Size.X != 5 {
		t.Errorf("expected size.x clamped to 5, got %v", params.Size.X)
	}
	if params.Size.Y != 0.5 {
		t.Errorf("expected size.y clamped to 0.5, got %v", params.Size.Y)
	}
	if params.LineHalfWidth != 0.05 {
		t.Errorf("expected line half-width clamped to 0.05, got %v", params.LineHalfWidth)
	}
}

func TestRGBA(t *testing.T) {
	c := RGBA(ms3.Vec{X: 0, Y: 1, Z: 0.5})
	if c.R != 0 || c.G != 255 || c.B != 128 || c.A != 255 {
		t.Errorf("RGBA = %+v, want {0 255 128 255}", c)
	}
}
