package render

import "github.com/vovakirdan/tui-invaders/internal/core"

// queue is an unbounded FIFO channel of frames.
//
// A pump goroutine moves frames from in to out, buffering them in a slice
// while the consumer is busy, so a send on in never waits for rendering.
// Closing in drains the backlog to out and then closes out.
type queue struct {
	in  chan core.Frame
	out chan core.Frame
}

func newQueue() *queue {
	q := &queue{
		in:  make(chan core.Frame),
		out: make(chan core.Frame),
	}
	go q.pump()
	return q
}

func (q *queue) pump() {
	defer close(q.out)

	var backlog []core.Frame
	in := q.in
	for in != nil || len(backlog) > 0 {
		// out stays nil (never ready) while there is nothing to deliver
		var out chan core.Frame
		var next core.Frame
		if len(backlog) > 0 {
			out = q.out
			next = backlog[0]
		}

		select {
		case f, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			backlog = append(backlog, f)
		case out <- next:
			backlog[0] = core.Frame{}
			backlog = backlog[1:]
		}
	}
}
