// Package terrain is the chunk generator: given the world seed and a chunk
// coordinate it deterministically produces a populated chunk. The world
// treats it as a black box behind the streaming pipe; everything in here is
// content heuristics (biomes, heightmap, trees).
package terrain

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"gocraft/internal/sim/catalogs"
	"gocraft/internal/sim/chunk"
	"gocraft/internal/sim/geom"
)

type Tree struct {
	Trunk catalogs.BlockID
	Leaf  catalogs.BlockID
}

// Biome assigns blocks by depth below the surface: Layers[0] is the surface
// block, deeper cells past the last layer repeat it.
type Biome struct {
	Layers     []catalogs.BlockID
	Trees      []Tree
	TreeChance int // percent per surface cell
}

type Generator struct {
	seed   int64
	cat    *catalogs.Catalogs
	noise  *perlin.Perlin
	biomes []Biome
	stone  catalogs.BlockID
}

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// NewGenerator resolves the biome block names against the catalog and seeds
// the noise source. The same (catalog, seed) pair always yields the same
// generator output.
func NewGenerator(cat *catalogs.Catalogs, seed int64) (*Generator, error) {
	need := func(name string) (catalogs.BlockID, error) {
		id, ok := cat.Blocks.ByName(name)
		if !ok {
			return 0, fmt.Errorf("terrain: catalog is missing block %q", name)
		}
		return id, nil
	}

	var (
		g   = &Generator{seed: seed, cat: cat}
		err error
	)
	if g.stone, err = need("stone"); err != nil {
		return nil, err
	}

	type biomeSpec struct {
		layers     []string
		trunk, lf  string
		treeChance int
	}
	specs := []biomeSpec{
		{layers: []string{"grass", "dirt", "stone"}, trunk: "log", lf: "leaves", treeChance: 20},
		{layers: []string{"dark_grass", "dirt", "stone"}, trunk: "spruce_log", lf: "spruce_leaves", treeChance: 20},
		{layers: []string{"snow", "stone"}, trunk: "snow_log", lf: "snow_leaves", treeChance: 10},
	}
	for _, spec := range specs {
		var b Biome
		for _, name := range spec.layers {
			id, err := need(name)
			if err != nil {
				return nil, err
			}
			b.Layers = append(b.Layers, id)
		}
		trunk, err := need(spec.trunk)
		if err != nil {
			return nil, err
		}
		leaf, err := need(spec.lf)
		if err != nil {
			return nil, err
		}
		b.Trees = []Tree{{Trunk: trunk, Leaf: leaf}}
		b.TreeChance = spec.treeChance
		g.biomes = append(g.biomes, b)
	}

	g.noise = perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	return g, nil
}

// GenChunk produces the chunk at coord with its meshes already generated.
func (g *Generator) GenChunk(coord geom.Vec3i) *chunk.Chunk {
	ch := chunk.New(g.cat, coord)

	// Everything below chunk row zero is solid stone.
	if coord.Y < 0 {
		for x := 0; x < chunk.Size; x++ {
			for y := 0; y < chunk.Size; y++ {
				for z := 0; z < chunk.Size; z++ {
					ch.SetBlock(geom.V3i(x, y, z), g.stone, false)
				}
			}
		}
		ch.GenMeshes()
		return ch
	}

	// Per-chunk rng keeps tree placement deterministic for (seed, coord).
	chunkSeed := g.seed + int64(coord.X)*31 + int64(coord.Y)*17 + int64(coord.Z)*13
	rng := rand.New(rand.NewSource(chunkSeed))

	for x := 0; x < chunk.Size; x++ {
		for z := 0; z < chunk.Size; z++ {
			sample := g.columnNoise(coord, x, z, 0.05)
			biome := g.biomeAt(coord, x, z)

			elevation := int(math.Floor(sample*3)) + 4
			raised := g.columnNoise(coord, x, z, 0.02)
			if raised > 0.3 {
				elevation += int(math.Floor(raised * 15))
			}
			inTrees := sample > 0

			for y := 0; y < chunk.Size; y++ {
				globalY := y + coord.Y*chunk.Size
				if globalY >= elevation {
					continue
				}
				depth := elevation - globalY - 1
				layer := depth
				if layer >= len(biome.Layers) {
					layer = len(biome.Layers) - 1
				}
				ch.SetBlock(geom.V3i(x, y, z), biome.Layers[layer], false)

				if depth == 0 && inTrees && y < 9 && len(biome.Trees) > 0 {
					placeTree(ch, geom.V3i(x, y, z), biome.Trees[0], biome.TreeChance, rng)
				}
			}
		}
	}

	ch.GenMeshes()
	return ch
}

// columnNoise samples the 2D noise for a column at the given frequency,
// offset so neighbouring chunks line up seamlessly.
func (g *Generator) columnNoise(coord geom.Vec3i, x, z int, freq float64) float64 {
	wx := float64(x)*freq + freq*float64(chunk.Size*coord.X)
	wz := float64(z)*freq + freq*float64(chunk.Size*coord.Z)
	return g.noise.Noise2D(wx, wz)
}

func (g *Generator) biomeAt(coord geom.Vec3i, x, z int) Biome {
	n := (g.columnNoise(coord, x, z, 0.005) + 1) / 2
	i := int(n * float64(len(g.biomes)))
	if i >= len(g.biomes) {
		i = len(g.biomes) - 1
	}
	if i < 0 {
		i = 0
	}
	return g.biomes[i]
}
