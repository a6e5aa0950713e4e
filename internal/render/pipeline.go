// Package render runs the terminal output side of the game on its own
// goroutine, writing only the cells that changed between frames.
package render

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Output is a character-cell device the pipeline draws on.
type Output interface {
	// SetCell writes one cell at (col, row).
	SetCell(col, row int, c core.Cell)
	// Flush makes all writes since the previous flush visible.
	Flush()
}

// Stats summarizes the work done by a pipeline.
type Stats struct {
	Frames int // Frames received and diffed
	Writes int // Cell writes issued for those frames, excluding the initial full draw
}

// Pipeline receives frames over an unbounded FIFO and renders each one as a
// diff against the previously rendered frame.
//
// Send and Close must be called from a single goroutine (the game loop).
type Pipeline struct {
	queue  *queue
	done   chan struct{}
	closed bool
	stats  Stats
	logger *log.Logger
}

// Start launches the render goroutine. It draws a blank frame of the given
// size in full before consuming any frame.
func Start(out Output, width, height int, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p := &Pipeline{
		queue:  newQueue(),
		done:   make(chan struct{}),
		logger: logger,
	}
	go p.run(out, core.NewFrame(width, height))
	return p
}

// Send hands a frame over to the renderer without waiting for it to be drawn.
// The caller must not modify the frame afterwards. Returns false once the
// pipeline has been closed.
func (p *Pipeline) Send(f core.Frame) bool {
	if p.closed {
		return false
	}
	p.queue.in <- f
	return true
}

// Close stops accepting frames, waits until every queued frame has been
// rendered, and returns the pipeline stats. Close is idempotent.
func (p *Pipeline) Close() Stats {
	if !p.closed {
		p.closed = true
		close(p.queue.in)
	}
	<-p.done
	return p.stats
}

func (p *Pipeline) run(out Output, last core.Frame) {
	defer close(p.done)

	for _, c := range core.Cells(&last) {
		out.SetCell(c.Col, c.Row, c.Cell)
	}
	out.Flush()

	for frame := range p.queue.out {
		changes := core.Diff(&last, &frame)
		for _, c := range changes {
			out.SetCell(c.Col, c.Row, c.Cell)
		}
		out.Flush()

		p.stats.Frames++
		p.stats.Writes += len(changes)
		last = frame
	}

	p.logger.Debug("render pipeline drained", "frames", p.stats.Frames, "writes", p.stats.Writes)
}
