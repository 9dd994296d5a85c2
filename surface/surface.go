// Package surface generates the randomly deformed grid the spotlight pattern
// is painted on.
package surface

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// maxVertices is the largest vertex count addressable with 16-bit indices.
const maxVertices = math.MaxUint16 + 1

// Options describes the plane before deformation.
type Options struct {
	Width        float64 // Extent along X
	Height       float64 // Extent along the in-plane Y axis (Z after reorientation)
	SegmentsX    int
	SegmentsY    int
	Displacement float64 // Out-of-plane offsets are drawn from [-Displacement, Displacement]
}

// Mesh is an indexed triangle mesh with per-vertex normals.
type Mesh struct {
	Positions []r3.Vec
	Normals   []r3.Vec
	Indices   []uint16 // Three per triangle, CCW when seen from +Y

	// Grid dimensions in vertices
	Cols, Rows int
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Generate builds a (SegmentsX+1)x(SegmentsY+1) vertex grid on the XY plane,
// displaces every vertex along Z by an independent uniform sample, rotates the
// mesh so that Z becomes +Y, and computes vertex normals.
func Generate(opts Options, rng *rand.Rand) (*Mesh, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	cols := opts.SegmentsX + 1
	rows := opts.SegmentsY + 1
	m := &Mesh{
		Positions: make([]r3.Vec, 0, cols*rows),
		Normals:   make([]r3.Vec, cols*rows),
		Indices:   make([]uint16, 0, opts.SegmentsX*opts.SegmentsY*6),
		Cols:      cols,
		Rows:      rows,
	}

	// Row-major from the top edge (+Y) down, left to right.
	cellW := opts.Width / float64(opts.SegmentsX)
	cellH := opts.Height / float64(opts.SegmentsY)
	for iy := 0; iy < rows; iy++ {
		y := opts.Height/2 - float64(iy)*cellH
		for ix := 0; ix < cols; ix++ {
			x := float64(ix)*cellW - opts.Width/2
			z := (rng.Float64()*2 - 1) * opts.Displacement
			m.Positions = append(m.Positions, r3.Vec{X: x, Y: y, Z: z})
		}
	}

	for iy := 0; iy < opts.SegmentsY; iy++ {
		for ix := 0; ix < opts.SegmentsX; ix++ {
			a := uint16(iy*cols + ix)
			b := uint16((iy+1)*cols + ix)
			c := uint16((iy+1)*cols + ix + 1)
			d := uint16(iy*cols + ix + 1)
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}

	// Lay the plane flat: out-of-plane Z becomes up.
	toYUp := r3.NewRotation(-math.Pi/2, r3.Vec{X: 1})
	for i, p := range m.Positions {
		m.Positions[i] = toYUp.Rotate(p)
	}

	m.computeNormals()
	return m, nil
}

// computeNormals sets each vertex normal to the normalized sum of the unit
// normals of its adjacent faces.
func (m *Mesh) computeNormals() {
	for i := range m.Normals {
		m.Normals[i] = r3.Vec{}
	}
	for _, face := range m.FaceNormals() {
		for _, idx := range face.Vertices {
			m.Normals[idx] = r3.Add(m.Normals[idx], face.Normal)
		}
	}
	for i, n := range m.Normals {
		if r3.Norm(n) == 0 {
			m.Normals[i] = r3.Vec{Y: 1}
			continue
		}
		m.Normals[i] = r3.Unit(n)
	}
}

// Face is a triangle with its unit normal.
type Face struct {
	Vertices [3]uint16
	Normal   r3.Vec
}

// FaceNormals returns the unit normal of every triangle.
func (m *Mesh) FaceNormals() []Face {
	faces := make([]Face, 0, m.TriangleCount())
	for i := 0; i+2 < len(m.Indices); i += 3 {
		ia, ib, ic := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		a, b, c := m.Positions[ia], m.Positions[ib], m.Positions[ic]
		n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		if l := r3.Norm(n); l > 0 {
			n = r3.Scale(1/l, n)
		}
		faces = append(faces, Face{Vertices: [3]uint16{ia, ib, ic}, Normal: n})
	}
	return faces
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max r3.Vec) {
	if len(m.Positions) == 0 {
		return min, max
	}
	min, max = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		min = r3.Vec{X: math.Min(min.X, p.X), Y: math.Min(min.Y, p.Y), Z: math.Min(min.Z, p.Z)}
		max = r3.Vec{X: math.Max(max.X, p.X), Y: math.Max(max.Y, p.Y), Z: math.Max(max.Z, p.Z)}
	}
	return min, max
}

var errEmptyGrid = errors.New("grid must have positive extent and at least one segment per axis")

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 || o.SegmentsX < 1 || o.SegmentsY < 1 {
		return fmt.Errorf("surface %vx%v with %dx%d segments: %w", o.Width, o.Height, o.SegmentsX, o.SegmentsY, errEmptyGrid)
	}
	if n := (o.SegmentsX + 1) * (o.SegmentsY + 1); n > maxVertices {
		return fmt.Errorf("surface needs %d vertices, at most %d fit 16-bit indices", n, maxVertices)
	}
	if o.Displacement < 0 {
		return fmt.Errorf("surface displacement %v must be non-negative", o.Displacement)
	}
	return nil
}
