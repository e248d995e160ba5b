// Package world maintains the registry of resident chunks, streams chunks
// in and out around the observer through the generator pipe, and exposes
// world-space block access for physics and gameplay edits.
package world

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"gocraft/internal/render"
	"gocraft/internal/sim/catalogs"
	"gocraft/internal/sim/chunk"
	"gocraft/internal/sim/geom"
)

// EventLogger receives streaming telemetry events. May be nil.
type EventLogger interface {
	Write(v any) error
}

type Config struct {
	Seed int64

	// RadiusY is the vertical half-extent of the desired chunk set: rows
	// cy-RadiusY through cy are kept resident. The horizontal radius is a
	// per-call argument to LoadChunks.
	RadiusY int

	// Dwell is the minimum residency before an out-of-range chunk may be
	// evicted.
	Dwell time.Duration

	// Pipe overrides the generator transport; required.
	Pipe GenPipe

	// Now overrides the clock for tests.
	Now func() time.Time

	// Events receives chunk load/evict telemetry; may be nil.
	Events EventLogger
}

func (c *Config) applyDefaults() {
	if c.RadiusY <= 0 {
		c.RadiusY = 1
	}
	if c.Dwell <= 0 {
		c.Dwell = 10 * time.Second
	}
	if c.Now == nil {
		c.Now = time.Now
	}
}

// World is single-threaded: all methods must be called from the simulation
// loop goroutine. The only concurrency is the generator worker behind the
// pipe, which shares no memory with the world.
type World struct {
	cat *catalogs.Catalogs
	cfg Config

	chunks  map[geom.Vec3i]*chunk.Chunk
	pending map[geom.Vec3i]struct{}

	lastObserver geom.Vec3i
	hasObserver  bool

	// overlays holds transient UI geometry (selection box, breaking
	// progress) owned by gameplay code but rendered with the world.
	overlays []*render.Mesh

	genErr error
}

func New(cat *catalogs.Catalogs, cfg Config) *World {
	cfg.applyDefaults()
	return &World{
		cat:     cat,
		cfg:     cfg,
		chunks:  map[geom.Vec3i]*chunk.Chunk{},
		pending: map[geom.Vec3i]struct{}{},
	}
}

// ChunkAt returns the resident chunk at a chunk coordinate, or nil.
func (w *World) ChunkAt(cc geom.Vec3i) *chunk.Chunk {
	return w.chunks[cc]
}

// Resident reports how many chunks are currently loaded.
func (w *World) Resident() int {
	return len(w.chunks)
}

// Pending reports how many generation requests are in flight.
func (w *World) Pending() int {
	return len(w.pending)
}

// BlockAt returns the block id at an integer cell, 0 when the cell is empty
// or its chunk is not resident.
func (w *World) BlockAt(cell geom.Vec3i) catalogs.BlockID {
	cc := cell.FloorDiv(chunk.Size)
	ch := w.chunks[cc]
	if ch == nil {
		return 0
	}
	id, _ := ch.Block(cell.Sub(cc.Mul(chunk.Size)))
	return id
}

// Block returns the block id at a world-space position, 0 when empty or
// unloaded.
func (w *World) Block(pos mgl32.Vec3) catalogs.BlockID {
	return w.BlockAt(geom.Floor(pos))
}

// SetBlock writes the block at a world-space position (id 0 clears it) and
// regenerates the owning chunk's meshes. If no chunk is resident there the
// write is silently dropped, not queued for later application.
func (w *World) SetBlock(pos mgl32.Vec3, id catalogs.BlockID) {
	cell := geom.Floor(pos)
	cc := cell.FloorDiv(chunk.Size)
	ch := w.chunks[cc]
	if ch == nil {
		return
	}
	ch.SetBlock(cell.Sub(cc.Mul(chunk.Size)), id, true)
}

// Overlays returns the transient overlay meshes, drawn after the chunks.
func (w *World) Overlays() []*render.Mesh {
	return w.overlays
}

func (w *World) AddOverlay(m *render.Mesh) {
	w.overlays = append(w.overlays, m)
}

func (w *World) RemoveOverlay(m *render.Mesh) {
	for i, o := range w.overlays {
		if o == m {
			w.overlays = append(w.overlays[:i], w.overlays[i+1:]...)
			return
		}
	}
}

// Err reports a generator failure, if one happened. Once the worker is dead
// requested chunks never arrive: the observer sees holes in the world, so
// the condition is surfaced here as a distinguishable fatal state instead
// of a silent hang.
func (w *World) Err() error {
	return w.genErr
}

// Close pushes the stop sentinel to the generator. Results still in flight
// are not drained; chunks already resident keep their meshes until Unload.
func (w *World) Close() {
	w.cfg.Pipe.Stop()
}
