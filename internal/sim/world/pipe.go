package world

import (
	"fmt"

	"gocraft/internal/sim/chunk"
	"gocraft/internal/sim/geom"
)

// GenFunc produces the chunk for a coordinate. Implementations must be
// deterministic for a fixed world seed.
type GenFunc func(coord geom.Vec3i) *chunk.Chunk

// GenPipe is the world's view of the generator: a request side, a
// non-blocking result side, and a stop control. The in-process
// implementation below runs the generator on one goroutine; swapping in a
// true out-of-process transport only needs another implementation of this
// interface, the world's logic does not change.
type GenPipe interface {
	// Request asks for one chunk. It never blocks the caller.
	Request(coord geom.Vec3i)
	// Poll returns one finished chunk if any is ready, without waiting.
	Poll() (*chunk.Chunk, bool)
	// Failed yields at most one error if the generator died. After that no
	// further results will ever arrive.
	Failed() <-chan error
	// Stop sends the stop sentinel. Results still in flight may be lost;
	// that is acceptable during teardown.
	Stop()
}

type genMsg struct {
	coord geom.Vec3i
	stop  bool
}

// ChannelPipe couples the world to a single generator worker through two
// unbounded FIFO queues. The queues are the only shared state: chunks cross
// the boundary by value-copying the pointer graph built on the worker side,
// and the worker never touches render resources.
type ChannelPipe struct {
	requests *unbounded[genMsg]
	results  *unbounded[*chunk.Chunk]
	failed   chan error
}

func NewChannelPipe(gen GenFunc) *ChannelPipe {
	p := &ChannelPipe{
		requests: newUnbounded[genMsg](),
		results:  newUnbounded[*chunk.Chunk](),
		failed:   make(chan error, 1),
	}
	go p.work(gen)
	return p
}

func (p *ChannelPipe) work(gen GenFunc) {
	defer func() {
		if r := recover(); r != nil {
			p.failed <- fmt.Errorf("generator worker: %v", r)
		}
		// No more results will be produced. Shut the result queue and soak
		// up whatever is still buffered on either side so both pump
		// goroutines can terminate once Stop closes the request queue.
		p.results.Close()
		go discard(p.requests.out)
		go discard(p.results.out)
	}()
	for msg := range p.requests.out {
		if msg.stop {
			return
		}
		p.results.in <- gen(msg.coord)
	}
}

func (p *ChannelPipe) Request(coord geom.Vec3i) {
	p.requests.in <- genMsg{coord: coord}
}

func (p *ChannelPipe) Poll() (*chunk.Chunk, bool) {
	select {
	case ch, ok := <-p.results.out:
		if !ok {
			return nil, false
		}
		return ch, true
	default:
		return nil, false
	}
}

func (p *ChannelPipe) Failed() <-chan error {
	return p.failed
}

// Stop sends the stop sentinel and closes the request queue so the worker
// and both queue pumps wind down. Stop must be called at most once, and no
// Request may follow it.
func (p *ChannelPipe) Stop() {
	p.requests.in <- genMsg{stop: true}
	p.requests.Close()
}

func discard[T any](ch <-chan T) {
	for range ch {
	}
}
