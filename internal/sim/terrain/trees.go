package terrain

import (
	"math/rand"

	"gocraft/internal/sim/catalogs"
	"gocraft/internal/sim/chunk"
	"gocraft/internal/sim/geom"
)

// neighbourOffsets are the horizontal neighbours checked before a tree may
// grow, diagonals last.
var neighbourOffsets = []geom.Vec3i{
	{X: 1}, {X: -1}, {Z: -1}, {Z: 1},
	{X: 1, Z: -1}, {X: 1, Z: 1}, {X: -1, Z: -1}, {X: -1, Z: 1},
}

var diagonalOffsets = []geom.Vec3i{
	{X: 1, Z: -1}, {X: 1, Z: 1}, {X: -1, Z: -1}, {X: -1, Z: 1},
}

// placeTree grows a tree at pos with the given percent chance: a 3-4 cell
// trunk capped by a 3×3×3 leaf cube, with two leaf cells knocked out at
// random so the canopies do not look stamped.
func placeTree(ch *chunk.Chunk, pos geom.Vec3i, tree Tree, chance int, rng *rand.Rand) {
	if rng.Intn(99)+1 >= chance {
		return
	}

	// Require clear air around the cell above the surface; trees against a
	// chunk border are skipped rather than truncated.
	for _, off := range neighbourOffsets {
		check := pos.Add(geom.V3i(0, 1, 0)).Add(off)
		if !ch.InBounds(check) {
			return
		}
		if id, _ := ch.Block(check); id != 0 {
			return
		}
	}

	trunkHeight := rng.Intn(2) + 3
	fillArea(ch, pos, pos.Add(geom.V3i(0, trunkHeight-1, 0)), tree.Trunk)
	fillArea(ch,
		pos.Add(geom.V3i(-1, trunkHeight-1, -1)),
		pos.Add(geom.V3i(1, trunkHeight+1, 1)),
		tree.Leaf)

	top := pos.Add(geom.V3i(0, trunkHeight+1, 0))
	mid := pos.Add(geom.V3i(0, trunkHeight-1, 0))
	ch.SetBlock(top.Add(diagonalOffsets[rng.Intn(len(diagonalOffsets))]), 0, false)
	ch.SetBlock(mid.Add(diagonalOffsets[rng.Intn(len(diagonalOffsets))]), 0, false)
}

// fillArea writes the inclusive box [min, max], skipping out-of-bounds
// cells.
func fillArea(ch *chunk.Chunk, min, max geom.Vec3i, id catalogs.BlockID) {
	for x := min.X; x <= max.X; x++ {
		for y := min.Y; y <= max.Y; y++ {
			for z := min.Z; z <= max.Z; z++ {
				ch.SetBlock(geom.V3i(x, y, z), id, false)
			}
		}
	}
}
