package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Axis selects one component of a vector. Axes iterates X, Y, Z; that order
// is a contract relied on by the collision and raycast code.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// OnAxis isolates the component of v along a, zeroing the other two.
func OnAxis(v mgl32.Vec3, a Axis) mgl32.Vec3 {
	switch a {
	case AxisX:
		return mgl32.Vec3{v.X(), 0, 0}
	case AxisY:
		return mgl32.Vec3{0, v.Y(), 0}
	default:
		return mgl32.Vec3{0, 0, v.Z()}
	}
}

// Direction names the six axis-aligned unit steps in a right-handed
// coordinate system. Directions iterates in declaration order; the greedy
// mesher grows boxes in exactly this order, so changing it changes which
// decomposition is produced.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
	DirForward
	DirBackward
)

var Directions = [6]Direction{DirRight, DirLeft, DirUp, DirDown, DirForward, DirBackward}

func (d Direction) Step() Vec3i {
	switch d {
	case DirRight:
		return Vec3i{X: 1}
	case DirLeft:
		return Vec3i{X: -1}
	case DirUp:
		return Vec3i{Y: 1}
	case DirDown:
		return Vec3i{Y: -1}
	case DirForward:
		return Vec3i{Z: -1}
	default:
		return Vec3i{Z: 1}
	}
}

// Normal is the same six unit vectors named from the point of view of a
// stationary cuboid face rather than a direction of travel.
type Normal int

const (
	NormalRight Normal = iota
	NormalLeft
	NormalTop
	NormalBottom
	NormalFront
	NormalBack
)

var Normals = [6]Normal{NormalRight, NormalLeft, NormalTop, NormalBottom, NormalFront, NormalBack}

func (n Normal) Vec() Vec3i {
	switch n {
	case NormalRight:
		return Vec3i{X: 1}
	case NormalLeft:
		return Vec3i{X: -1}
	case NormalTop:
		return Vec3i{Y: 1}
	case NormalBottom:
		return Vec3i{Y: -1}
	case NormalFront:
		return Vec3i{Z: -1}
	default:
		return Vec3i{Z: 1}
	}
}

func (n Normal) String() string {
	switch n {
	case NormalRight:
		return "right"
	case NormalLeft:
		return "left"
	case NormalTop:
		return "top"
	case NormalBottom:
		return "bottom"
	case NormalFront:
		return "front"
	default:
		return "back"
	}
}

func ParseNormal(s string) (Normal, error) {
	for _, n := range Normals {
		if n.String() == s {
			return n, nil
		}
	}
	return 0, fmt.Errorf("unknown face %q", s)
}

// NormalFromStep maps a unit cell step to the face normal pointing the same
// way. Returns false for anything that is not one of the six unit steps.
func NormalFromStep(step Vec3i) (Normal, bool) {
	for _, n := range Normals {
		if n.Vec() == step {
			return n, true
		}
	}
	return 0, false
}
