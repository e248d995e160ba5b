package terrain

import (
	"path/filepath"
	"strings"
	"testing"

	"gocraft/internal/sim/catalogs"
	"gocraft/internal/sim/chunk"
	"gocraft/internal/sim/geom"
)

func loadCatalogs(t *testing.T) *catalogs.Catalogs {
	t.Helper()
	cats, err := catalogs.Load(filepath.Join("..", "..", "..", "configs"))
	if err != nil {
		t.Fatalf("load configs: %v", err)
	}
	return cats
}

func TestNewGenerator_MissingBlock(t *testing.T) {
	empty := &catalogs.Catalogs{Blocks: catalogs.BlockCatalog{
		Defs:  map[catalogs.BlockID]*catalogs.BlockDef{},
		Index: map[string]catalogs.BlockID{},
	}}
	_, err := NewGenerator(empty, 1)
	if err == nil || !strings.Contains(err.Error(), "missing block") {
		t.Fatalf("want missing-block error, got %v", err)
	}
}

func TestGenChunk_Deterministic(t *testing.T) {
	cats := loadCatalogs(t)
	a, err := NewGenerator(cats, 1337)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	b, err := NewGenerator(cats, 1337)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	for _, coord := range []geom.Vec3i{{X: 0, Y: 0, Z: 0}, {X: 3, Y: 0, Z: -2}, {X: -1, Y: 0, Z: 4}} {
		if a.GenChunk(coord).Digest() != b.GenChunk(coord).Digest() {
			t.Fatalf("chunk %v differs across generators with the same seed", coord)
		}
	}

	other, err := NewGenerator(cats, 42)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	if a.GenChunk(geom.V3i(0, 0, 0)).Digest() == other.GenChunk(geom.V3i(0, 0, 0)).Digest() {
		t.Fatalf("different seeds produced identical terrain")
	}
}

func TestGenChunk_BelowZeroIsSolidStone(t *testing.T) {
	cats := loadCatalogs(t)
	g, err := NewGenerator(cats, 7)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	stone, _ := cats.Blocks.ByName("stone")

	ch := g.GenChunk(geom.V3i(0, -1, 0))
	for x := 0; x < chunk.Size; x++ {
		for y := 0; y < chunk.Size; y++ {
			for z := 0; z < chunk.Size; z++ {
				if id, _ := ch.Block(geom.V3i(x, y, z)); id != stone {
					t.Fatalf("cell (%d,%d,%d)=%d want stone", x, y, z, id)
				}
			}
		}
	}
	if len(ch.Meshes()) != 1 {
		t.Fatalf("solid chunk meshes=%d want 1", len(ch.Meshes()))
	}
}

func TestGenChunk_SurfaceRowNeverEmpty(t *testing.T) {
	// The elevation floor is at least one block above world zero, so the
	// bottom row of every ground-level chunk is solid. Falling through the
	// world should be impossible on fresh terrain.
	cats := loadCatalogs(t)
	g, err := NewGenerator(cats, 99)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	for _, coord := range []geom.Vec3i{{X: 0, Y: 0, Z: 0}, {X: 5, Y: 0, Z: 5}, {X: -3, Y: 0, Z: 2}} {
		ch := g.GenChunk(coord)
		for x := 0; x < chunk.Size; x++ {
			for z := 0; z < chunk.Size; z++ {
				if id, _ := ch.Block(geom.V3i(x, 0, z)); id == 0 {
					t.Fatalf("chunk %v: hole in bottom row at (%d,0,%d)", coord, x, z)
				}
			}
		}
		if len(ch.Meshes()) == 0 {
			t.Fatalf("chunk %v generated no meshes", coord)
		}
	}
}
