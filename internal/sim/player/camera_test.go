package player

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func approxVec(a, b mgl32.Vec3) bool {
	const eps = 1e-5
	d := a.Sub(b)
	return d.Len() < eps
}

func TestCamera_ForwardFromYaw(t *testing.T) {
	c := NewCamera()

	cases := []struct {
		yaw  float32
		want mgl32.Vec3
	}{
		{0, mgl32.Vec3{0, 0, -1}},
		{90, mgl32.Vec3{1, 0, 0}},
		{180, mgl32.Vec3{0, 0, 1}},
		{-90, mgl32.Vec3{-1, 0, 0}},
	}
	for _, tc := range cases {
		c.Yaw, c.Pitch = tc.yaw, 0
		c.UpdateRotation()
		if !approxVec(c.Forward, tc.want) {
			t.Fatalf("yaw %v: forward=%v want %v", tc.yaw, c.Forward, tc.want)
		}
	}
}

func TestCamera_PitchTiltsForward(t *testing.T) {
	c := NewCamera()
	c.Yaw, c.Pitch = 0, -45
	c.UpdateRotation()
	if c.Forward.Y() >= 0 {
		t.Fatalf("looking down but forward.y=%v", c.Forward.Y())
	}
	if !approxVec(c.Right, mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("right=%v must stay horizontal under pitch", c.Right)
	}
}

func TestCamera_PitchClamp(t *testing.T) {
	c := NewCamera()
	c.Pitch = 170
	c.UpdateRotation()
	if c.Pitch != 89 {
		t.Fatalf("pitch=%v want clamp at 89", c.Pitch)
	}
	c.Pitch = -170
	c.UpdateRotation()
	if c.Pitch != -89 {
		t.Fatalf("pitch=%v want clamp at -89", c.Pitch)
	}
}
