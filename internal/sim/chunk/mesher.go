package chunk

import (
	"gocraft/internal/render"
	"gocraft/internal/sim/catalogs"
	"gocraft/internal/sim/geom"
)

// GenMeshes recomputes the chunk's mesh descriptors from the grid. It is
// idempotent for unchanged contents and always releases the previous
// descriptors before producing new ones, so GPU buffers are never held
// twice for the same chunk.
//
// The algorithm is a greedy run-length merge into cuboids: a seed cell
// "eats" neighbours in each of the six directions until it cannot grow,
// then solidifies into one mesh. Growth directions are tried in
// geom.Directions order with no backtracking; the result is always an exact
// cover of the non-empty cells but not necessarily the fewest cuboids.
func (c *Chunk) GenMeshes() {
	c.Unload()

	consumed := make(map[geom.Vec3i]bool)

	// The full-grid range is always valid.
	whole, _ := c.Area(geom.Vec3i{}, geom.V3i(Size, Size, Size))

	for _, cell := range whole {
		if consumed[cell.Pos] || cell.ID == 0 {
			continue
		}

		pos := cell.Pos
		size := geom.V3i(1, 1, 1)
		for _, dir := range geom.Directions {
			for c.canGrow(pos, size, dir, cell.ID, consumed) {
				pos, size = grow(pos, size, dir)
			}
		}

		box, _ := c.Area(pos, pos.Add(size))
		for _, b := range box {
			consumed[b.Pos] = true
		}

		c.meshes = append(c.meshes, c.cuboidMesh(pos, size, cell.ID))
	}
}

// grow extends the box described by pos and size one unit along dir,
// shifting the origin for the negative directions.
func grow(pos, size geom.Vec3i, dir geom.Direction) (geom.Vec3i, geom.Vec3i) {
	step := dir.Step()
	switch {
	case step.X < 0 || step.Y < 0 || step.Z < 0:
		pos = pos.Add(step)
		size = size.Sub(step)
	default:
		size = size.Add(step)
	}
	return pos, size
}

func (c *Chunk) canGrow(pos, size geom.Vec3i, dir geom.Direction, id catalogs.BlockID, consumed map[geom.Vec3i]bool) bool {
	grownPos, grownSize := grow(pos, size, dir)

	if !c.InBounds(grownPos) {
		return false
	}
	if !c.InBounds(grownPos.Add(grownSize).Sub(geom.V3i(1, 1, 1))) {
		return false
	}

	cells, err := c.Area(grownPos, grownPos.Add(grownSize))
	if err != nil {
		return false
	}
	for _, cell := range cells {
		if cell.ID != id {
			return false
		}
		if consumed[cell.Pos] {
			return false
		}
	}
	return true
}

func (c *Chunk) cuboidMesh(pos, size geom.Vec3i, id catalogs.BlockID) *render.Mesh {
	def := c.cat.Blocks.Def(id)
	layers := make(map[geom.Normal]int, len(geom.Normals))
	for _, n := range geom.Normals {
		layers[n] = def.Textures[n]
	}

	offset := c.Coord.Mul(Size).Add(pos)
	return render.NewMesh(
		offset.Vec3(),
		render.GenerateCuboid(size.Vec3(), layers),
		c.cat.Blocks.Textures,
		render.CullBack,
	)
}
