// Package camera provides an orbit camera with damping for viewing the
// surface. Up stays +Y, so the azimuth is always well defined.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// polarMargin keeps the polar angle away from the poles where the view
// direction becomes parallel to the up vector.
const polarMargin = 0.01

// restVelocity is the angular speed below which inertia stops.
const restVelocity = 1e-4

// Orbit controls a camera orbiting a target point.
// Angles follow the spherical convention used for the shader's theta:
// azimuth is measured around +Y from +Z toward +X, polar from +Y.
type Orbit struct {
	// Target is the point the camera looks at
	Target ms3.Vec

	// Spherical position relative to Target
	Azimuth, Polar, Distance float32

	// Angular velocity in radians per second, decayed by Damping
	AzimuthVel, PolarVel float32

	// Tuning
	RotateSpeed float32 // Radians per pixel of drag
	ZoomSpeed   float32 // Distance fraction per wheel step
	Damping     float32 // Fraction of velocity kept per 1/60 s
	MinDistance float32
	MaxDistance float32

	home Pose
}

// Pose is a camera placement.
type Pose struct {
	Position ms3.Vec
	Target   ms3.Vec
}

// New creates an orbit camera at position looking at target.
func New(position, target ms3.Vec, minDistance, maxDistance float32) *Orbit {
	o := &Orbit{
		RotateSpeed: 0.005,
		ZoomSpeed:   0.1,
		Damping:     0.8,
		MinDistance: minDistance,
		MaxDistance: maxDistance,
		home:        Pose{Position: position, Target: target},
	}
	o.SetPose(o.home)
	return o
}

// SetPose places the camera at position looking at target and stops any motion.
func (o *Orbit) SetPose(p Pose) {
	o.Target = p.Target
	o.Azimuth, o.Polar, o.Distance = Spherical(ms3.Sub(p.Position, p.Target))
	o.Polar = clamp(o.Polar, polarMargin, math32.Pi-polarMargin)
	o.Distance = clamp(o.Distance, o.MinDistance, o.MaxDistance)
	o.AzimuthVel, o.PolarVel = 0, 0
}

// Position returns the camera eye point in world coordinates.
func (o *Orbit) Position() ms3.Vec {
	sp, cp := math32.Sincos(o.Polar)
	sa, ca := math32.Sincos(o.Azimuth)
	offset := ms3.Vec{
		X: o.Distance * sp * sa,
		Y: o.Distance * cp,
		Z: o.Distance * sp * ca,
	}
	return ms3.Add(o.Target, offset)
}

// Rotate adds angular velocity from a drag of dx, dy pixels.
// Dragging right moves the camera left around the target, like grabbing
// the scene.
func (o *Orbit) Rotate(dx, dy float32) {
	o.AzimuthVel -= dx * o.RotateSpeed * 60
	o.PolarVel -= dy * o.RotateSpeed * 60
}

// Zoom moves the camera toward (positive steps) or away from the target.
func (o *Orbit) Zoom(steps float32) {
	if steps == 0 {
		return
	}
	o.Distance = clamp(o.Distance*(1-steps*o.ZoomSpeed), o.MinDistance, o.MaxDistance)
}

// Update integrates angular velocity over dt seconds and applies damping.
func (o *Orbit) Update(dt float32) {
	if dt <= 0 {
		return
	}
	o.Azimuth = wrapAngle(o.Azimuth + o.AzimuthVel*dt)
	o.Polar = clamp(o.Polar+o.PolarVel*dt, polarMargin, math32.Pi-polarMargin)

	// Damping is specified per 60 Hz frame; scale it to the real step.
	keep := math32.Pow(clamp(o.Damping, 0, 1), dt*60)
	o.AzimuthVel *= keep
	o.PolarVel *= keep
	if math32.Abs(o.AzimuthVel) < restVelocity {
		o.AzimuthVel = 0
	}
	if math32.Abs(o.PolarVel) < restVelocity {
		o.PolarVel = 0
	}
}

// Moving reports whether the camera still has inertia.
func (o *Orbit) Moving() bool {
	return o.AzimuthVel != 0 || o.PolarVel != 0
}

// Reset returns the camera to the pose it was created with.
func (o *Orbit) Reset() {
	o.SetPose(o.home)
}

// Spherical converts v to (azimuth, polar, radius). Azimuth is atan2(x, z)
// in (-π, π], polar is the angle from +Y in [0, π].
func Spherical(v ms3.Vec) (azimuth, polar, radius float32) {
	radius = ms3.Norm(v)
	if radius == 0 {
		return 0, 0, 0
	}
	azimuth = math32.Atan2(v.X, v.Z)
	polar = math32.Acos(clamp(v.Y/radius, -1, 1))
	return azimuth, polar, radius
}

// wrapAngle wraps a to [-π, π].
func wrapAngle(a float32) float32 {
	for a > math32.Pi {
		a -= 2 * math32.Pi
	}
	for a < -math32.Pi {
		a += 2 * math32.Pi
	}
	return a
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
