package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"gocraft/internal/sim/chunk"
	"gocraft/internal/sim/encoding"
	"gocraft/internal/sim/geom"
)

// LoadChunks is the per-tick streaming entry point: it drains finished
// chunks from the generator and keeps residency synchronized with the
// observer. radius is the horizontal load distance in chunks.
//
// The drain step always runs; residency is only recomputed when the
// observer's floored position changed since the last call, so sub-cell
// movement costs nothing.
func (w *World) LoadChunks(observer mgl32.Vec3, radius int) {
	w.drain()

	cell := geom.Floor(observer)
	if w.hasObserver && cell == w.lastObserver {
		return
	}

	desired := w.desiredSet(cell.FloorDiv(chunk.Size), radius)
	w.evict(desired)
	w.request(desired)

	w.lastObserver = cell
	w.hasObserver = true
}

// drain pops every finished chunk currently available, without blocking.
func (w *World) drain() {
	if w.genErr == nil {
		select {
		case err := <-w.cfg.Pipe.Failed():
			w.genErr = err
		default:
		}
	}

	for {
		ch, ok := w.cfg.Pipe.Poll()
		if !ok {
			return
		}
		ch.LoadedAt = w.cfg.Now()
		w.chunks[ch.Coord] = ch
		delete(w.pending, ch.Coord)

		if w.cfg.Events != nil {
			_ = w.cfg.Events.Write(chunkEvent{
				Type:   "chunk_loaded",
				Coord:  [3]int{ch.Coord.X, ch.Coord.Y, ch.Coord.Z},
				Blocks: encoding.EncodeRLE(ch.BlockIDs()),
			})
		}
	}
}

// desiredSet is the cuboid of chunk coordinates that should be resident
// around the observer's chunk: ±radius horizontally, rows cy-RadiusY..cy
// vertically.
func (w *World) desiredSet(cc geom.Vec3i, radius int) map[geom.Vec3i]struct{} {
	desired := make(map[geom.Vec3i]struct{}, (2*radius+1)*(2*radius+1)*(w.cfg.RadiusY+1))
	for x := cc.X - radius; x <= cc.X+radius; x++ {
		for z := cc.Z - radius; z <= cc.Z+radius; z++ {
			for y := cc.Y - w.cfg.RadiusY; y <= cc.Y; y++ {
				desired[geom.V3i(x, y, z)] = struct{}{}
			}
		}
	}
	return desired
}

// evict unloads resident chunks outside the desired set, but only once they
// have been resident for the dwell time. The hysteresis stops load/unload
// thrash when the observer oscillates across a chunk boundary.
func (w *World) evict(desired map[geom.Vec3i]struct{}) {
	now := w.cfg.Now()
	for coord, ch := range w.chunks {
		if _, keep := desired[coord]; keep {
			continue
		}
		if now.Sub(ch.LoadedAt) < w.cfg.Dwell {
			continue
		}
		ch.Unload()
		delete(w.chunks, coord)

		if w.cfg.Events != nil {
			_ = w.cfg.Events.Write(chunkEvent{
				Type:  "chunk_evicted",
				Coord: [3]int{coord.X, coord.Y, coord.Z},
			})
		}
	}
}

// request issues generation requests for desired coordinates that are
// neither resident nor pending, keeping at most one in-flight request per
// coordinate.
func (w *World) request(desired map[geom.Vec3i]struct{}) {
	for coord := range desired {
		if _, resident := w.chunks[coord]; resident {
			continue
		}
		if _, inflight := w.pending[coord]; inflight {
			continue
		}
		w.pending[coord] = struct{}{}
		w.cfg.Pipe.Request(coord)
	}
}

type chunkEvent struct {
	Type   string `json:"type"`
	Coord  [3]int `json:"coord"`
	Blocks string `json:"blocks,omitempty"`
}
