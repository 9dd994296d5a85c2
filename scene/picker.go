package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/soypat/glgl/math/ms2"

	"github.com/pthm-cable/spotlight/feed"
)

// rayPicker casts rays from the scene camera against the surface mesh.
type rayPicker struct {
	s *Scene
}

// Pick implements feed.Picker.
func (p rayPicker) Pick(ndc ms2.Vec) (feed.Hit, bool) {
	w, h := p.s.screenWidth, p.s.screenHeight
	screen := rl.Vector2{
		X: (ndc.X + 1) * 0.5 * w,
		Y: (1 - ndc.Y) * 0.5 * h,
	}
	ray := rl.GetScreenToWorldRayEx(screen, p.s.camera, int32(w), int32(h))
	return p.s.surface.Pick(ray)
}
