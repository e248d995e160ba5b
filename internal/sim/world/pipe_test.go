package world

import (
	"testing"
	"time"

	"gocraft/internal/sim/chunk"
	"gocraft/internal/sim/geom"
)

func TestChannelPipe_DeliversResults(t *testing.T) {
	cats, _ := testCatalogs(t)
	pipe := NewChannelPipe(func(coord geom.Vec3i) *chunk.Chunk {
		return chunk.New(cats, coord)
	})
	defer pipe.Stop()

	want := map[geom.Vec3i]bool{
		geom.V3i(0, 0, 0):  true,
		geom.V3i(-1, 2, 5): true,
		geom.V3i(7, -3, 1): true,
	}
	for coord := range want {
		pipe.Request(coord)
	}

	got := map[geom.Vec3i]bool{}
	deadline := time.Now().Add(5 * time.Second)
	for len(got) < len(want) {
		if time.Now().After(deadline) {
			t.Fatalf("timed out, received %d of %d chunks", len(got), len(want))
		}
		ch, ok := pipe.Poll()
		if !ok {
			time.Sleep(time.Millisecond)
			continue
		}
		if !want[ch.Coord] {
			t.Fatalf("unrequested chunk %v", ch.Coord)
		}
		got[ch.Coord] = true
	}
}

func TestChannelPipe_PollNeverBlocks(t *testing.T) {
	cats, _ := testCatalogs(t)
	pipe := NewChannelPipe(func(coord geom.Vec3i) *chunk.Chunk {
		return chunk.New(cats, coord)
	})
	defer pipe.Stop()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			pipe.Poll()
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Poll blocked on an empty pipe")
	}
}

func TestChannelPipe_StopShutsDownQueues(t *testing.T) {
	cats, _ := testCatalogs(t)
	pipe := NewChannelPipe(func(coord geom.Vec3i) *chunk.Chunk {
		return chunk.New(cats, coord)
	})

	pipe.Request(geom.V3i(0, 0, 0))
	pipe.Request(geom.V3i(1, 0, 0))
	pipe.Stop()

	// Once the worker has seen the sentinel it closes the result queue, so
	// a closed result channel is the observable end of the teardown.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-pipe.results.out:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("result queue never closed after Stop")
		}
	}
}

func TestChannelPipe_PanicSurfacesOnFailed(t *testing.T) {
	pipe := NewChannelPipe(func(coord geom.Vec3i) *chunk.Chunk {
		panic("boom")
	})
	pipe.Request(geom.V3i(0, 0, 0))

	select {
	case err := <-pipe.Failed():
		if err == nil {
			t.Fatalf("nil error from Failed")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("worker death never surfaced")
	}
}
