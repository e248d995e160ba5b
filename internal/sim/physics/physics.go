// Package physics resolves entity motion against the voxel grid: axis
// separated collision response and the block-targeting raycast. It is
// stateless and operates on any BlockSource.
package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"gocraft/internal/sim/catalogs"
	"gocraft/internal/sim/geom"
)

// BlockSource answers cell occupancy queries. Cells in unloaded chunks read
// as empty.
type BlockSource interface {
	BlockAt(cell geom.Vec3i) catalogs.BlockID
}

// CollisionNormal translates the box by force and tests every cell the
// moved box overlaps; if any is occupied it returns the unit negation of
// the force.
//
// That shortcut is only correct because every caller isolates force to a
// single axis first: for an axis-aligned force against an axis-aligned
// grid, the separating direction is always the reversed force. The returned
// vector is not a true surface normal and must not be used with a diagonal
// force.
func CollisionNormal(src BlockSource, box AABB, force mgl32.Vec3) (mgl32.Vec3, bool) {
	moved := AABB{
		Position: box.Position,
		Min:      box.Min.Add(force),
		Max:      box.Max.Add(force),
	}
	for _, cell := range moved.OccupiedCells() {
		if src.BlockAt(cell) != 0 {
			return normalize(force).Mul(-1), true
		}
	}
	return mgl32.Vec3{}, false
}

// ApplyForce resolves force against the world and returns the adjusted
// displacement. The force is decomposed into its three axis components in
// fixed X, Y, Z order; each component is tested independently and, on
// contact, has its projection onto the separating normal removed. Motion
// tangent to the obstacle is preserved, so entities slide along walls
// instead of sticking.
//
// Splitting per axis prevents diagonal movement from tunnelling through
// corners, but there is no sub-stepping: a per-tick displacement wider than
// one cell along an axis can still pass through a one-cell obstacle. Known
// limitation.
func ApplyForce(src BlockSource, box AABB, force mgl32.Vec3) mgl32.Vec3 {
	var final mgl32.Vec3
	for _, axis := range geom.Axes {
		onAxis := geom.OnAxis(force, axis)
		if normal, hit := CollisionNormal(src, box, onAxis); hit {
			onAxis = onAxis.Sub(normal.Mul(onAxis.Dot(normal)))
		}
		final = final.Add(onAxis)
	}
	return final
}

// Raycast marches from origin along dir in fixed step increments up to
// reach. Within each step the three axes advance one at a time in X, Y, Z
// order; when advancing one axis alone crosses into an occupied cell, that
// cell and the face normal (the unit step from new cell back to old cell)
// are returned.
//
// A step that crosses two cell boundaries at once (grazing a corner or
// edge) reports whichever axis is evaluated first, which can pick the
// wrong face. The axis order is pinned by tests as part of the contract
// rather than guessed around.
func Raycast(src BlockSource, origin, dir mgl32.Vec3, reach, step float32) (geom.Vec3i, geom.Normal, bool) {
	current := origin
	for distance := float32(0); distance <= reach; distance += step {
		target := origin.Add(dir.Mul(distance))
		for _, axis := range geom.Axes {
			change := geom.OnAxis(target, axis).Sub(geom.OnAxis(current, axis))
			next := current.Add(change)

			oldCell := geom.Floor(current)
			newCell := geom.Floor(next)
			if newCell != oldCell && src.BlockAt(newCell) != 0 {
				if normal, ok := geom.NormalFromStep(oldCell.Sub(newCell)); ok {
					return newCell, normal, true
				}
			}
			current = next
		}
	}
	return geom.Vec3i{}, 0, false
}
