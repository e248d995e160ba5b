package world

// unbounded is a FIFO queue with channel endpoints and no capacity bound: a
// send on In never blocks for long, receives on Out see values in send
// order. It backs both sides of the generator pipe, which carries no
// backpressure: sustained fast observer movement can grow the buffer without
// limit. That is a documented scaling risk rather than something this type
// caps silently.
type unbounded[T any] struct {
	in  chan T
	out chan T
}

func newUnbounded[T any]() *unbounded[T] {
	q := &unbounded[T]{
		in:  make(chan T),
		out: make(chan T),
	}
	go q.pump()
	return q
}

func (q *unbounded[T]) pump() {
	var buf []T
	for {
		var out chan T
		var next T
		if len(buf) > 0 {
			out = q.out
			next = buf[0]
		}
		select {
		case v, ok := <-q.in:
			if !ok {
				for _, v := range buf {
					q.out <- v
				}
				close(q.out)
				return
			}
			buf = append(buf, v)
		case out <- next:
			buf = buf[1:]
		}
	}
}

// Close stops accepting sends; buffered values remain receivable until Out
// is drained and closed.
func (q *unbounded[T]) Close() {
	close(q.in)
}
