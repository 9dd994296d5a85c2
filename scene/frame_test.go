package scene

import (
	"math"
	"testing"

	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"

	"github.com/pthm-cable/spotlight/camera"
	"github.com/pthm-cable/spotlight/feed"
	"github.com/pthm-cable/spotlight/pattern"
)

type missPicker struct{}

func (missPicker) Pick(ms2.Vec) (feed.Hit, bool) { return feed.Hit{}, false }

func newFrameParams() *pattern.Params {
	return pattern.NewParams(ms2.Vec{X: 4, Y: 3}, 0.1,
		pattern.Range{Min: 0.5, Max: 5}, pattern.Range{Min: 0.05, Max: 2})
}

func near(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func TestAdvanceControlsOrder(t *testing.T) {
	params := newFrameParams()
	f := feed.New(params, missPicker{})

	orbit := camera.New(ms3.Vec{Z: 100}, ms3.Vec{}, 10, 400)
	orbit.AzimuthVel = 6
	before := orbit.Position()

	var refreshed []ms3.Vec
	refresh := func() ms3.Vec {
		// Theta must not be written before the projection refresh
		if params.Theta != 0 {
			t.Errorf("theta written before refresh: %v", params.Theta)
		}
		refreshed = append(refreshed, orbit.Position())
		return orbit.Position()
	}

	advanceControls(orbit, 0.1, refresh, f, ms3.Vec{})

	if len(refreshed) != 1 {
		t.Fatalf("expected one projection refresh, got %d", len(refreshed))
	}
	if refreshed[0] == before {
		t.Error("projection refreshed before the camera moved")
	}
	want := feed.Azimuth(refreshed[0], ms3.Vec{})
	if !near(params.Theta, want, 1e-5) {
		t.Errorf("theta = %v, want azimuth of refreshed eye %v", params.Theta, want)
	}
	if near(params.Theta, feed.Azimuth(before, ms3.Vec{}), 1e-3) {
		t.Error("theta computed from the stale camera position")
	}
}

func TestAdvanceControlsUsesRefreshedEye(t *testing.T) {
	params := newFrameParams()
	f := feed.New(params, missPicker{})
	orbit := camera.New(ms3.Vec{Z: 100}, ms3.Vec{}, 10, 400)

	// The eye comes from the refreshed projection, not from the orbit
	advanceControls(orbit, 1.0/60, func() ms3.Vec { return ms3.Vec{X: 5, Y: 3, Z: 0} }, f, ms3.Vec{})

	if !near(params.Theta, math.Pi/2, 1e-5) {
		t.Errorf("theta = %v, want pi/2", params.Theta)
	}
}
