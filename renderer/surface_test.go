package renderer

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestDetachArrays(t *testing.T) {
	verts := []float32{0, 0, 0}
	idx := []uint16{0}
	vbo := uint32(7)
	m := rl.Mesh{
		VertexCount: 1,
		Vertices:    &verts[0],
		Normals:     &verts[0],
		Texcoords:   &verts[0],
		Indices:     &idx[0],
		VaoID:       3,
		VboID:       &vbo,
	}

	got := detachArrays(m)

	if got.Vertices != nil || got.Normals != nil || got.Texcoords != nil || got.Indices != nil {
		t.Errorf("expected Go-owned arrays detached, got %+v", got)
	}
	if got.VaoID != 3 || got.VboID != &vbo {
		t.Error("expected GPU handles kept for unloading")
	}
	if m.Vertices == nil {
		t.Error("detachArrays modified the surface's own mesh")
	}
}

func TestDetachMeshes(t *testing.T) {
	mesh := rl.Mesh{VertexCount: 1}
	mat := rl.Material{}
	model := rl.Model{MeshCount: 1, MaterialCount: 1, Meshes: &mesh, Materials: &mat}

	got := detachMeshes(model)

	if got.MeshCount != 0 {
		t.Errorf("expected mesh count 0, got %d", got.MeshCount)
	}
	if got.MaterialCount != 1 || got.Materials != &mat || got.Meshes != &mesh {
		t.Error("expected materials and mesh table kept so they are freed")
	}
}
