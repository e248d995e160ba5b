package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"gocraft/internal/sim/geom"
)

// AABB is an axis-aligned bounding box: a world-space anchor position plus
// local min/max corners. It is built transiently for collision queries, not
// persisted.
type AABB struct {
	Position mgl32.Vec3
	Min, Max mgl32.Vec3
}

// OccupiedCells enumerates every integer cell the box overlaps, including
// cells only partially covered at the boundary.
func (b AABB) OccupiedCells() []geom.Vec3i {
	min := b.Position.Add(b.Min)
	max := b.Position.Add(b.Max)

	lo := geom.Floor(min)
	hi := geom.Floor(max)

	cells := make([]geom.Vec3i, 0, (hi.X-lo.X+1)*(hi.Y-lo.Y+1)*(hi.Z-lo.Z+1))
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				cells = append(cells, geom.V3i(x, y, z))
			}
		}
	}
	return cells
}

// normalize returns the unit vector for v, or the zero vector when v has no
// length (mgl32's Normalize would produce NaNs there).
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	mag := math32.Sqrt(v.X()*v.X() + v.Y()*v.Y() + v.Z()*v.Z())
	if mag == 0 {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{v.X() / mag, v.Y() / mag, v.Z() / mag}
}
