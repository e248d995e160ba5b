package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"gocraft/internal/sim/catalogs"
	"gocraft/internal/sim/geom"
)

// gridSource is a sparse set of solid cells.
type gridSource map[geom.Vec3i]bool

func (g gridSource) BlockAt(cell geom.Vec3i) catalogs.BlockID {
	if g[cell] {
		return 1
	}
	return 0
}

// floorAt fills a horizontal slab of solid cells at the given y.
func floorAt(y int) gridSource {
	g := gridSource{}
	for x := -4; x <= 4; x++ {
		for z := -4; z <= 4; z++ {
			g[geom.V3i(x, y, z)] = true
		}
	}
	return g
}

func playerBox(pos mgl32.Vec3) AABB {
	return AABB{
		Position: pos,
		Min:      mgl32.Vec3{-0.3, 0.2, -0.3},
		Max:      mgl32.Vec3{0.3, 1.6, 0.3},
	}
}

func TestOccupiedCells(t *testing.T) {
	box := playerBox(mgl32.Vec3{0.5, 0, 0.5})
	cells := box.OccupiedCells()
	if len(cells) != 2 {
		t.Fatalf("cells=%v want the two cells the standing box spans", cells)
	}
	want := map[geom.Vec3i]bool{geom.V3i(0, 0, 0): true, geom.V3i(0, 1, 0): true}
	for _, c := range cells {
		if !want[c] {
			t.Fatalf("unexpected cell %v", c)
		}
	}

	// A box straddling a cell boundary overlaps cells on both sides.
	box = playerBox(mgl32.Vec3{1.0, 0, 0.5})
	if got := len(box.OccupiedCells()); got != 4 {
		t.Fatalf("straddling box spans %d cells, want 4", got)
	}
}

func TestCollisionNormal_Floor(t *testing.T) {
	src := floorAt(-1)
	box := playerBox(mgl32.Vec3{0.5, 0, 0.5})

	n, hit := CollisionNormal(src, box, mgl32.Vec3{0, -0.25, 0})
	if !hit {
		t.Fatalf("downward probe over a floor must collide")
	}
	if n != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("normal=%v want (0,1,0)", n)
	}

	if _, hit := CollisionNormal(src, box, mgl32.Vec3{0, 0.25, 0}); hit {
		t.Fatalf("upward probe found the floor")
	}
	if _, hit := CollisionNormal(gridSource{}, box, mgl32.Vec3{0, -0.25, 0}); hit {
		t.Fatalf("empty world collided")
	}
}

func TestApplyForce_FallHaltsOnGround(t *testing.T) {
	src := floorAt(-1)
	box := playerBox(mgl32.Vec3{0.5, 0, 0.5})

	got := ApplyForce(src, box, mgl32.Vec3{0, -1, 0})
	if got != (mgl32.Vec3{}) {
		t.Fatalf("displacement %v, want zero on solid ground", got)
	}
}

func TestApplyForce_SlidesAlongGround(t *testing.T) {
	src := floorAt(-1)
	box := playerBox(mgl32.Vec3{0.5, 0, 0.5})

	got := ApplyForce(src, box, mgl32.Vec3{0.5, -1, 0.25})
	if got != (mgl32.Vec3{0.5, 0, 0.25}) {
		t.Fatalf("displacement %v, want the horizontal motion preserved", got)
	}
}

func TestApplyForce_SlidesAlongWall(t *testing.T) {
	// Wall filling x=1 next to the box; pushing diagonally into it keeps
	// only the tangent component.
	src := gridSource{}
	for y := -1; y <= 3; y++ {
		for z := -4; z <= 4; z++ {
			src[geom.V3i(1, y, z)] = true
		}
	}
	box := playerBox(mgl32.Vec3{0.5, 0, 0.5})

	got := ApplyForce(src, box, mgl32.Vec3{0.5, 0, 0.5})
	if got != (mgl32.Vec3{0, 0, 0.5}) {
		t.Fatalf("displacement %v, want (0,0,0.5)", got)
	}
}

func TestRaycast_HitsFirstSolidCell(t *testing.T) {
	src := gridSource{geom.V3i(3, 0, 0): true, geom.V3i(4, 0, 0): true}
	origin := mgl32.Vec3{0.5, 0.5, 0.5}

	cell, normal, ok := Raycast(src, origin, mgl32.Vec3{1, 0, 0}, 6, 0.1)
	if !ok {
		t.Fatalf("ray missed")
	}
	if cell != geom.V3i(3, 0, 0) {
		t.Fatalf("cell=%v want (3,0,0)", cell)
	}
	if normal != geom.NormalLeft {
		t.Fatalf("normal=%v want left (the face toward the origin)", normal)
	}
}

func TestRaycast_DownwardNormalIsTop(t *testing.T) {
	src := gridSource{geom.V3i(0, -2, 0): true}
	cell, normal, ok := Raycast(src, mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{0, -1, 0}, 6, 0.1)
	if !ok || cell != geom.V3i(0, -2, 0) || normal != geom.NormalTop {
		t.Fatalf("got (%v,%v,%v) want ((0,-2,0), top, true)", cell, normal, ok)
	}
}

func TestRaycast_RespectsReach(t *testing.T) {
	src := gridSource{geom.V3i(10, 0, 0): true}
	if _, _, ok := Raycast(src, mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}, 6, 0.1); ok {
		t.Fatalf("hit a cell beyond reach")
	}
}

func TestRaycast_CornerGrazePicksXFirst(t *testing.T) {
	// One marching step crosses both the x and the y cell boundary. The
	// x axis is evaluated first, so the x-adjacent cell wins. That order
	// is part of the function's contract.
	src := gridSource{
		geom.V3i(1, 0, 0): true,
		geom.V3i(0, 1, 0): true,
		geom.V3i(1, 1, 0): true,
	}
	dir := mgl32.Vec3{1, 1, 0}.Normalize()
	cell, normal, ok := Raycast(src, mgl32.Vec3{0.95, 0.95, 0.5}, dir, 2, 0.1)
	if !ok {
		t.Fatalf("ray missed")
	}
	if cell != geom.V3i(1, 0, 0) || normal != geom.NormalLeft {
		t.Fatalf("got (%v,%v) want ((1,0,0), left)", cell, normal)
	}
}

func TestRaycast_StartsInsideSolidDoesNotHitOrigin(t *testing.T) {
	// The march only reports transitions between cells; the origin cell
	// itself is never a hit even when solid.
	src := gridSource{geom.V3i(0, 0, 0): true}
	if cell, _, ok := Raycast(src, mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}, 0.3, 0.1); ok {
		t.Fatalf("reported origin cell %v as a hit", cell)
	}
}
