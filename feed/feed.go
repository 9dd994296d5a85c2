// Package feed turns pointer motion and camera movement into spotlight
// shader parameters.
//
// Both entry points mutate the shared *pattern.Params and must be called
// from the thread that owns it; the scene calls them sequentially from its
// frame loop, so they never overlap.
package feed

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"

	"github.com/pthm-cable/spotlight/camera"
	"github.com/pthm-cable/spotlight/pattern"
)

// Hit is the nearest intersection of a pick ray with the surface.
type Hit struct {
	// Point is the hit position in the surface's local frame.
	Point    ms3.Vec
	Distance float32
}

// Picker casts a ray from the camera through a point in normalized device
// coordinates and reports the nearest hit on the surface.
type Picker interface {
	Pick(ndc ms2.Vec) (Hit, bool)
}

// Feed writes pointer and camera derived values into Params.
type Feed struct {
	params *pattern.Params
	picker Picker

	// Last pointer position in NDC, kept for the HUD
	lastNDC ms2.Vec
	hits    int
	misses  int
}

// New creates a feed writing into params.
func New(params *pattern.Params, picker Picker) *Feed {
	return &Feed{params: params, picker: picker}
}

// ToNDC converts window coordinates to normalized device coordinates with
// +Y up and the window spanning [-1, 1] on both axes.
func ToNDC(x, y, width, height float32) ms2.Vec {
	if width <= 0 || height <= 0 {
		return ms2.Vec{}
	}
	return ms2.Vec{
		X: x/width*2 - 1,
		Y: -(y/height)*2 + 1,
	}
}

// PointerMoved handles a pointer move to window position (x, y) in a window
// of the given size. If the ray through the pointer hits the surface, the
// hit point becomes the spotlight center. A miss leaves the center
// unchanged. A window with no area, such as a minimized one, is ignored.
// Reports whether the center was written.
func (f *Feed) PointerMoved(x, y, width, height float32) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	f.lastNDC = ToNDC(x, y, width, height)
	hit, ok := f.picker.Pick(f.lastNDC)
	if !ok {
		f.misses++
		return false
	}
	f.hits++
	f.params.Center = hit.Point
	return true
}

// Frame recomputes theta as the azimuth of the camera around the surface.
// It runs once per rendered frame, before drawing, and writes nothing else.
func (f *Feed) Frame(cameraPos, objectPos ms3.Vec) {
	f.params.Theta = Azimuth(cameraPos, objectPos)
}

// Azimuth returns the spherical azimuth of cameraPos relative to objectPos:
// atan2(dx, dz) of the offset, measured around +Y.
func Azimuth(cameraPos, objectPos ms3.Vec) float32 {
	az, _, _ := camera.Spherical(ms3.Sub(cameraPos, objectPos))
	return az
}

// Stats reports how many pointer moves hit and missed the surface.
func (f *Feed) Stats() (hits, misses int) {
	return f.hits, f.misses
}

// LastNDC returns the most recent pointer position in NDC.
func (f *Feed) LastNDC() ms2.Vec {
	return f.lastNDC
}

// ThetaDegrees returns the current theta in degrees, for display.
func (f *Feed) ThetaDegrees() float32 {
	return f.params.Theta * 180 / math32.Pi
}
