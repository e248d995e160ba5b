package player

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the first-person eye: a position plus yaw/pitch angles in
// degrees, with the derived forward/right/up basis kept in sync by
// UpdateRotation.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32

	Forward mgl32.Vec3
	Right   mgl32.Vec3
	Up      mgl32.Vec3
}

var worldUp = mgl32.Vec3{0, 1, 0}

func NewCamera() *Camera {
	c := &Camera{}
	c.UpdateRotation()
	return c
}

// UpdateRotation recomputes the basis vectors from yaw and pitch, clamping
// pitch away from the poles.
func (c *Camera) UpdateRotation() {
	c.Pitch = math32.Max(-89, math32.Min(89, c.Pitch))

	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	c.Forward = mgl32.Vec3{
		math32.Sin(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		-math32.Cos(yaw) * math32.Cos(pitch),
	}.Normalize()

	c.Right = c.Forward.Cross(worldUp).Normalize()
	c.Up = c.Right.Cross(c.Forward).Normalize()
}

// ViewMatrix returns the look-at matrix for the renderer.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward), c.Up)
}

// ProjectionMatrix returns a perspective projection with the given vertical
// field of view in degrees.
func (c *Camera) ProjectionMatrix(fovDegrees, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, near, far)
}
