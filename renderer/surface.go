package renderer

import (
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/soypat/glgl/math/ms3"

	"github.com/pthm-cable/spotlight/feed"
	"github.com/pthm-cable/spotlight/surface"
)

// Surface is the deformed grid uploaded to the GPU and drawn twice: once
// with the pattern shader and once as a wireframe overlay.
type Surface struct {
	// CPU copies referenced by the mesh; raylib reads them for picking.
	vertices  []float32
	normals   []float32
	texcoords []float32
	indices   []uint16
	pinner    runtime.Pinner

	mesh      rl.Mesh
	pattern   rl.Model
	wire      rl.Model
	position  rl.Vector3
	transform rl.Matrix
	inverse   rl.Matrix
	wireColor rl.Color

	initialized bool
}

// NewSurface converts m to raylib vertex arrays placed at position.
func NewSurface(m *surface.Mesh, position ms3.Vec, wireColor rl.Color) *Surface {
	s := &Surface{
		vertices:  make([]float32, 0, m.VertexCount()*3),
		normals:   make([]float32, 0, m.VertexCount()*3),
		texcoords: make([]float32, 0, m.VertexCount()*2),
		indices:   append([]uint16(nil), m.Indices...),
		position:  rl.NewVector3(position.X, position.Y, position.Z),
		wireColor: wireColor,
	}

	minB, maxB := m.Bounds()
	spanX, spanZ := maxB.X-minB.X, maxB.Z-minB.Z
	for i, p := range m.Positions {
		n := m.Normals[i]
		s.vertices = append(s.vertices, float32(p.X), float32(p.Y), float32(p.Z))
		s.normals = append(s.normals, float32(n.X), float32(n.Y), float32(n.Z))
		s.texcoords = append(s.texcoords, float32((p.X-minB.X)/spanX), float32((p.Z-minB.Z)/spanZ))
	}

	s.transform = rl.MatrixTranslate(s.position.X, s.position.Y, s.position.Z)
	s.inverse = rl.MatrixInvert(s.transform)
	return s
}

// Init uploads the mesh and binds the pattern shader (must be called after
// raylib window is created).
func (s *Surface) Init(shader rl.Shader) {
	if s.initialized {
		return
	}

	// The mesh points into Go memory that C keeps referencing.
	s.pinner.Pin(&s.vertices[0])
	s.pinner.Pin(&s.normals[0])
	s.pinner.Pin(&s.texcoords[0])
	s.pinner.Pin(&s.indices[0])

	s.mesh = rl.Mesh{
		VertexCount:   int32(len(s.vertices) / 3),
		TriangleCount: int32(len(s.indices) / 3),
		Vertices:      &s.vertices[0],
		Normals:       &s.normals[0],
		Texcoords:     &s.texcoords[0],
		Indices:       &s.indices[0],
	}
	rl.UploadMesh(&s.mesh, false)

	s.pattern = rl.LoadModelFromMesh(s.mesh)
	s.pattern.Materials.Shader = shader

	s.wire = rl.LoadModelFromMesh(s.mesh)

	s.initialized = true
}

// Draw renders the patterned surface and its wireframe. A transparent wire
// color disables the wireframe.
func (s *Surface) Draw() {
	if !s.initialized {
		return
	}
	rl.DrawModel(s.pattern, s.position, 1, rl.White)
	if s.wireColor.A > 0 {
		rl.DrawModelWires(s.wire, s.position, 1, s.wireColor)
	}
}

// Pick intersects ray with the surface and returns the nearest hit in the
// surface's local frame.
func (s *Surface) Pick(ray rl.Ray) (feed.Hit, bool) {
	if !s.initialized {
		return feed.Hit{}, false
	}
	col := rl.GetRayCollisionMesh(ray, s.mesh, s.transform)
	if !col.Hit {
		return feed.Hit{}, false
	}
	local := rl.Vector3Transform(col.Point, s.inverse)
	return feed.Hit{
		Point:    ms3.Vec{X: local.X, Y: local.Y, Z: local.Z},
		Distance: col.Distance,
	}, true
}

// Position returns the world position of the surface.
func (s *Surface) Position() ms3.Vec {
	return ms3.Vec{X: s.position.X, Y: s.position.Y, Z: s.position.Z}
}

// Unload frees GPU resources.
func (s *Surface) Unload() {
	if !s.initialized {
		return
	}
	m := detachArrays(s.mesh)
	rl.UnloadMesh(&m)

	// Frees each model's mesh table and default material. raylib leaves
	// material shaders to their owner, so the pattern shader survives.
	rl.UnloadModel(detachMeshes(s.pattern))
	rl.UnloadModel(detachMeshes(s.wire))

	s.pinner.Unpin()
	s.initialized = false
}

// detachArrays returns m without its Go-owned vertex arrays, so unloading
// it releases only the GPU buffers raylib allocated.
func detachArrays(m rl.Mesh) rl.Mesh {
	m.Vertices, m.Normals, m.Texcoords, m.Indices = nil, nil, nil, nil
	return m
}

// detachMeshes returns model with a zero mesh count. Both models share one
// mesh, which is released separately.
func detachMeshes(model rl.Model) rl.Model {
	model.MeshCount = 0
	return model
}
