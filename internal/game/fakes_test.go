package game

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// fakeTerminal records everything the loop and the renderer do to it.
type fakeTerminal struct {
	mu       sync.Mutex
	pending  []core.Key
	readErr  error
	enterErr error
	events   []string
	grid     map[[2]int]core.Cell
	flushes  int
}

func newFakeTerminal(keys ...core.Key) *fakeTerminal {
	return &fakeTerminal{pending: keys, grid: make(map[[2]int]core.Cell)}
}

func (f *fakeTerminal) push(keys ...core.Key) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = append(f.pending, keys...)
}

func (f *fakeTerminal) Enter() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.enterErr != nil {
		return f.enterErr
	}
	f.events = append(f.events, "enter")
	return nil
}

func (f *fakeTerminal) Leave() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, "leave")
}

func (f *fakeTerminal) Ready() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending) > 0 || f.readErr != nil
}

func (f *fakeTerminal) Read() (core.Key, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return core.Key{}, f.readErr
	}
	k := f.pending[0]
	f.pending = f.pending[1:]
	return k, nil
}

func (f *fakeTerminal) SetCell(col, row int, c core.Cell) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.grid[[2]int{col, row}] = c
}

func (f *fakeTerminal) Flush() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushes++
	f.events = append(f.events, "flush")
}

func (f *fakeTerminal) glyphAt(col, row int) rune {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.grid[[2]int{col, row}].Glyph
}

func (f *fakeTerminal) lastEvent() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.events) == 0 {
		return ""
	}
	return f.events[len(f.events)-1]
}

func (f *fakeTerminal) count(event string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.events {
		if e == event {
			n++
		}
	}
	return n
}

// fakeAudio records played sounds in order.
type fakeAudio struct {
	played []audio.Sound
}

func (a *fakeAudio) Play(s audio.Sound) {
	a.played = append(a.played, s)
}

func (a *fakeAudio) count(s audio.Sound) int {
	n := 0
	for _, p := range a.played {
		if p == s {
			n++
		}
	}
	return n
}

// stepClock advances by step on every reading.
func stepClock(step time.Duration) func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}
