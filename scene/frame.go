package scene

import (
	"github.com/soypat/glgl/math/ms3"

	"github.com/pthm-cable/spotlight/camera"
	"github.com/pthm-cable/spotlight/feed"
)

// advanceControls runs the per-frame steps that precede drawing: damped
// camera motion, projection refresh, then theta from the refreshed eye
// position. refresh returns the eye position the projection now uses.
func advanceControls(orbit *camera.Orbit, dt float32, refresh func() ms3.Vec, f *feed.Feed, objectPos ms3.Vec) {
	orbit.Update(dt)
	eye := refresh()
	f.Frame(eye, objectPos)
}
