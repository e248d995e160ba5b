package geom

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3i is an integer cell or chunk coordinate.
type Vec3i struct {
	X, Y, Z int
}

func V3i(x, y, z int) Vec3i {
	return Vec3i{X: x, Y: y, Z: z}
}

func (v Vec3i) Add(o Vec3i) Vec3i {
	return Vec3i{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3i) Sub(o Vec3i) Vec3i {
	return Vec3i{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3i) Mul(s int) Vec3i {
	return Vec3i{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// FloorDiv divides every component by s, rounding toward negative infinity.
func (v Vec3i) FloorDiv(s int) Vec3i {
	return Vec3i{X: FloorDiv(v.X, s), Y: FloorDiv(v.Y, s), Z: FloorDiv(v.Z, s)}
}

// Mod reduces every component modulo s into [0, s).
func (v Vec3i) Mod(s int) Vec3i {
	return Vec3i{X: Mod(v.X, s), Y: Mod(v.Y, s), Z: Mod(v.Z, s)}
}

func (v Vec3i) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func (v Vec3i) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}

// Floor maps a world-space position to the cell that contains it.
func Floor(v mgl32.Vec3) Vec3i {
	return Vec3i{
		X: int(math32.Floor(v.X())),
		Y: int(math32.Floor(v.Y())),
		Z: int(math32.Floor(v.Z())),
	}
}

func FloorDiv(a, b int) int {
	// b > 0
	q := a / b
	r := a % b
	if r < 0 {
		q--
	}
	return q
}

func Mod(a, b int) int {
	// b > 0
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func AbsInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
