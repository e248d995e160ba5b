package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"gocraft/internal/sim/geom"
)

// scaleComp selects which component of the cuboid scale a coordinate takes,
// with compZero meaning a literal 0.
type scaleComp uint8

const (
	compZero scaleComp = iota
	compX
	compY
	compZ
)

func (s scaleComp) of(scale mgl32.Vec3) float32 {
	switch s {
	case compX:
		return scale.X()
	case compY:
		return scale.Y()
	case compZ:
		return scale.Z()
	default:
		return 0
	}
}

// corner names one of the eight cuboid corners: each axis is either at the
// origin or extended to the scale (right = +x, top = +y, back = +z).
type corner struct {
	right, top, back bool
}

type quadVertex struct {
	c    corner
	u, v scaleComp
}

// cuboidFaces lists the two triangles of each face, wound counter-clockwise
// when seen from outside. Faces are emitted in this order.
var cuboidFaces = [6]struct {
	n     geom.Normal
	verts [6]quadVertex
}{
	{geom.NormalBack, [6]quadVertex{
		{corner{false, false, true}, compZero, compY},
		{corner{true, false, true}, compX, compY},
		{corner{true, true, true}, compX, compZero},

		{corner{false, false, true}, compZero, compY},
		{corner{true, true, true}, compX, compZero},
		{corner{false, true, true}, compZero, compZero},
	}},
	{geom.NormalFront, [6]quadVertex{
		{corner{true, true, false}, compZero, compZero},
		{corner{true, false, false}, compZero, compY},
		{corner{false, false, false}, compX, compY},

		{corner{false, true, false}, compX, compZero},
		{corner{true, true, false}, compZero, compZero},
		{corner{false, false, false}, compX, compY},
	}},
	{geom.NormalRight, [6]quadVertex{
		{corner{true, false, true}, compZero, compY},
		{corner{true, true, false}, compZ, compZero},
		{corner{true, true, true}, compZero, compZero},

		{corner{true, false, true}, compZero, compY},
		{corner{true, false, false}, compZ, compY},
		{corner{true, true, false}, compZ, compZero},
	}},
	{geom.NormalLeft, [6]quadVertex{
		{corner{false, true, true}, compZ, compZero},
		{corner{false, true, false}, compZero, compZero},
		{corner{false, false, true}, compZ, compY},

		{corner{false, true, false}, compZero, compZero},
		{corner{false, false, false}, compZero, compY},
		{corner{false, false, true}, compZ, compY},
	}},
	{geom.NormalTop, [6]quadVertex{
		{corner{false, true, true}, compZero, compZero},
		{corner{true, true, false}, compX, compZ},
		{corner{false, true, false}, compZero, compZ},

		{corner{false, true, true}, compZero, compZero},
		{corner{true, true, true}, compX, compZero},
		{corner{true, true, false}, compX, compZ},
	}},
	{geom.NormalBottom, [6]quadVertex{
		{corner{false, false, false}, compZero, compZ},
		{corner{true, false, false}, compX, compZ},
		{corner{false, false, true}, compZero, compZero},

		{corner{true, false, false}, compX, compZ},
		{corner{true, false, true}, compX, compZero},
		{corner{false, false, true}, compZero, compZero},
	}},
}

// GenerateCuboid builds the flat vertex buffer for an axis-aligned cuboid of
// the given scale. layers maps each face normal to the texture layer sampled
// for that face; faces listed in exclude are not emitted at all (used for
// open overlay geometry such as the selection box).
func GenerateCuboid(scale mgl32.Vec3, layers map[geom.Normal]int, exclude ...geom.Normal) []float32 {
	skip := map[geom.Normal]bool{}
	for _, n := range exclude {
		skip[n] = true
	}

	data := make([]float32, 0, 6*6*6)
	for _, face := range cuboidFaces {
		if skip[face.n] {
			continue
		}
		layer := float32(layers[face.n])
		for _, vert := range face.verts {
			var x, y, z float32
			if vert.c.right {
				x = scale.X()
			}
			if vert.c.top {
				y = scale.Y()
			}
			if vert.c.back {
				z = scale.Z()
			}
			data = append(data, x, y, z, vert.u.of(scale), vert.v.of(scale), layer)
		}
	}
	return data
}
