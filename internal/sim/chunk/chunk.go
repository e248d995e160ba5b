// Package chunk implements the fixed-size cubic block grid the world is
// partitioned into, and the greedy mesher that turns a grid into render
// geometry.
package chunk

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"gocraft/internal/render"
	"gocraft/internal/sim/catalogs"
	"gocraft/internal/sim/geom"
)

// Size is the chunk edge length in cells.
const Size = 16

// ErrOutOfRange reports an area query that leaves the chunk grid.
var ErrOutOfRange = errors.New("cell out of chunk range")

// Chunk owns a Size³ grid of block ids (zero = empty), its chunk coordinate
// (one unit = one chunk edge), and the mesh descriptors for its current
// contents.
type Chunk struct {
	Coord geom.Vec3i

	// LoadedAt is stamped by the world when the chunk becomes resident and
	// drives eviction hysteresis.
	LoadedAt time.Time

	cat    *catalogs.Catalogs
	blocks [Size][Size][Size]catalogs.BlockID
	meshes []*render.Mesh
}

func New(cat *catalogs.Catalogs, coord geom.Vec3i) *Chunk {
	return &Chunk{Coord: coord, cat: cat}
}

// InBounds reports whether a local cell coordinate is inside the grid.
// Negative coordinates are out of range, never wrapped to the far side.
func (c *Chunk) InBounds(p geom.Vec3i) bool {
	return p.X >= 0 && p.Y >= 0 && p.Z >= 0 && p.X < Size && p.Y < Size && p.Z < Size
}

// Block returns the id at a local cell, with ok=false for an out-of-range
// coordinate. An in-range empty cell returns (0, true).
func (c *Chunk) Block(p geom.Vec3i) (catalogs.BlockID, bool) {
	if !c.InBounds(p) {
		return 0, false
	}
	return c.blocks[p.X][p.Y][p.Z], true
}

// SetBlock writes one cell (id 0 clears it) and optionally regenerates the
// meshes. Out-of-range writes and ids missing from the catalog are a no-op
// and report false: the mesher resolves textures through the catalog, so an
// unregistered id must never reach the grid.
func (c *Chunk) SetBlock(p geom.Vec3i, id catalogs.BlockID, regen bool) bool {
	if !c.InBounds(p) {
		return false
	}
	if id != 0 && c.cat.Blocks.Def(id) == nil {
		return false
	}
	c.blocks[p.X][p.Y][p.Z] = id
	if regen {
		c.GenMeshes()
	}
	return true
}

// Cell is one grid position and its block id as returned by Area.
type Cell struct {
	Pos geom.Vec3i
	ID  catalogs.BlockID
}

// Area returns every cell in the half-open box [min, max). An inverted or
// degenerate range holds no cells and yields an empty result. Unlike the
// single-cell accessors, a range that exits the grid is an error: multi-cell
// queries are issued by code that is supposed to know the grid shape.
func (c *Chunk) Area(min, max geom.Vec3i) ([]Cell, error) {
	ext := max.Sub(min)
	if ext.X <= 0 || ext.Y <= 0 || ext.Z <= 0 {
		return nil, nil
	}
	cells := make([]Cell, 0, ext.X*ext.Y*ext.Z)
	for x := min.X; x < max.X; x++ {
		for y := min.Y; y < max.Y; y++ {
			for z := min.Z; z < max.Z; z++ {
				p := geom.V3i(x, y, z)
				if !c.InBounds(p) {
					return nil, fmt.Errorf("area %v..%v: %w", min, max, ErrOutOfRange)
				}
				cells = append(cells, Cell{Pos: p, ID: c.blocks[x][y][z]})
			}
		}
	}
	return cells, nil
}

// Meshes returns the current mesh descriptors. The slice is owned by the
// chunk and replaced wholesale by GenMeshes.
func (c *Chunk) Meshes() []*render.Mesh {
	return c.meshes
}

// Unload releases every mesh's GPU resources and drops the descriptors.
func (c *Chunk) Unload() {
	for _, m := range c.meshes {
		m.Discard()
	}
	c.meshes = nil
}

// Digest hashes the grid contents; equal grids have equal digests.
func (c *Chunk) Digest() [32]byte {
	h := sha256.New()
	var tmp [4]byte
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			for z := 0; z < Size; z++ {
				binary.LittleEndian.PutUint32(tmp[:], uint32(c.blocks[x][y][z]))
				h.Write(tmp[:])
			}
		}
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// BlockIDs flattens the grid in x, y, z scan order, for RLE export and
// tests.
func (c *Chunk) BlockIDs() []uint32 {
	out := make([]uint32, 0, Size*Size*Size)
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			for z := 0; z < Size; z++ {
				out = append(out, uint32(c.blocks[x][y][z]))
			}
		}
	}
	return out
}
