package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"gocraft/internal/sim/geom"
)

const floatsPerVertex = 6

func TestGenerateCuboid_FullBox(t *testing.T) {
	data := GenerateCuboid(mgl32.Vec3{1, 1, 1}, UniformLayers(3))

	if want := 6 * 6 * floatsPerVertex; len(data) != want {
		t.Fatalf("len=%d want %d", len(data), want)
	}

	// Every vertex of a unit cuboid sits on a corner, and every layer is 3.
	for i := 0; i < len(data); i += floatsPerVertex {
		for _, c := range data[i : i+3] {
			if c != 0 && c != 1 {
				t.Fatalf("vertex %d: coordinate %v not on the unit cube", i/floatsPerVertex, c)
			}
		}
		if data[i+5] != 3 {
			t.Fatalf("vertex %d: layer %v want 3", i/floatsPerVertex, data[i+5])
		}
	}
}

func TestGenerateCuboid_Scale(t *testing.T) {
	scale := mgl32.Vec3{2, 3, 4}
	data := GenerateCuboid(scale, UniformLayers(0))

	var maxX, maxY, maxZ float32
	for i := 0; i < len(data); i += floatsPerVertex {
		if data[i] > maxX {
			maxX = data[i]
		}
		if data[i+1] > maxY {
			maxY = data[i+1]
		}
		if data[i+2] > maxZ {
			maxZ = data[i+2]
		}
	}
	if maxX != 2 || maxY != 3 || maxZ != 4 {
		t.Fatalf("extents (%v,%v,%v) want (2,3,4)", maxX, maxY, maxZ)
	}

	// UVs stretch with the box so textures tile instead of smearing.
	var maxU float32
	for i := 0; i < len(data); i += floatsPerVertex {
		if data[i+3] > maxU {
			maxU = data[i+3]
		}
	}
	if maxU != 4 {
		t.Fatalf("max U %v want 4 (deepest face dimension)", maxU)
	}
}

func TestGenerateCuboid_ExcludeFaces(t *testing.T) {
	keep := geom.NormalTop
	var exclude []geom.Normal
	for _, n := range geom.Normals {
		if n != keep {
			exclude = append(exclude, n)
		}
	}

	data := GenerateCuboid(mgl32.Vec3{1, 1, 1}, UniformLayers(0), exclude...)
	if want := 6 * floatsPerVertex; len(data) != want {
		t.Fatalf("len=%d want %d (one face)", len(data), want)
	}
	// A top face has all vertices at y == scale.y.
	for i := 0; i < len(data); i += floatsPerVertex {
		if data[i+1] != 1 {
			t.Fatalf("vertex %d: y=%v, not on the top face", i/floatsPerVertex, data[i+1])
		}
	}
}

func TestGenerateCuboid_PerFaceLayers(t *testing.T) {
	layers := map[geom.Normal]int{}
	for i, n := range geom.Normals {
		layers[n] = i + 10
	}
	data := GenerateCuboid(mgl32.Vec3{1, 1, 1}, layers)

	seen := map[float32]int{}
	for i := 0; i < len(data); i += floatsPerVertex {
		seen[data[i+5]]++
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 distinct layers, got %d", len(seen))
	}
	for layer, count := range seen {
		if count != 6 {
			t.Fatalf("layer %v used by %d vertices, want 6", layer, count)
		}
	}
}

type fakeResource struct{ released bool }

func (r *fakeResource) Release() { r.released = true }

func TestMesh_Discard(t *testing.T) {
	m := NewMesh(mgl32.Vec3{}, []float32{0, 0, 0, 0, 0, 0}, nil, CullBack)
	if m.Resource() != nil {
		t.Fatalf("fresh mesh must not own a resource")
	}

	res := &fakeResource{}
	m.Attach(res)
	m.Discard()

	if !res.released {
		t.Fatalf("Discard must release the attached resource")
	}
	if m.Resource() != nil {
		t.Fatalf("resource still attached after Discard")
	}
	if m.Data != nil {
		t.Fatalf("vertex data kept alive after Discard")
	}

	// Discard is idempotent.
	m.Discard()
}
