// Package terminal adapts a tcell screen to the game's input and output
// collaborators.
package terminal

import (
	"errors"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrClosed is returned by Read once the screen has been finalized.
var ErrClosed = errors.New("terminal: closed")

// ErrHangup is returned by Read when the remote client closed its input.
var ErrHangup = fmt.Errorf("terminal: client hung up: %w", io.EOF)

// palette maps frame colors to terminal styles.
var palette = map[core.Color]tcell.Style{
	core.ColorDefault:      tcell.StyleDefault,
	core.ColorRed:          tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	core.ColorGreen:        tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:       tcell.StyleDefault.Foreground(tcell.ColorOlive),
	core.ColorBlue:         tcell.StyleDefault.Foreground(tcell.ColorNavy),
	core.ColorMagenta:      tcell.StyleDefault.Foreground(tcell.ColorPurple),
	core.ColorCyan:         tcell.StyleDefault.Foreground(tcell.ColorTeal),
	core.ColorWhite:        tcell.StyleDefault.Foreground(tcell.ColorSilver),
	core.ColorBrightRed:    tcell.StyleDefault.Foreground(tcell.ColorRed),
	core.ColorBrightGreen:  tcell.StyleDefault.Foreground(tcell.ColorLime),
	core.ColorBrightYellow: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorOrange:       tcell.StyleDefault.Foreground(tcell.ColorOrange),
	core.ColorGray:         tcell.StyleDefault.Foreground(tcell.ColorGray),
}

// StyleFor returns the terminal style used for a frame color.
func StyleFor(c core.Color) tcell.Style {
	if s, ok := palette[c]; ok {
		return s
	}
	return tcell.StyleDefault
}

// Terminal is a character-cell terminal backed by tcell.
//
// Read and Ready are used by the game loop, SetCell and Flush by the render
// goroutine. tcell serializes access to the screen internally.
type Terminal struct {
	screen tcell.Screen
	hungUp func() bool
}

// New creates a terminal on the process's controlling tty.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: cannot create screen: %w", err)
	}
	return Wrap(screen), nil
}

// Wrap uses an existing screen, such as a simulation screen in tests.
func Wrap(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Enter switches the terminal into raw full-screen mode.
func (t *Terminal) Enter() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal: cannot initialize screen: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

// Leave restores the terminal to its original mode.
func (t *Terminal) Leave() {
	t.screen.Fini()
}

// Ready reports whether Read would return without blocking.
func (t *Terminal) Ready() bool {
	return t.screen.HasPendingEvent()
}

// Read blocks until the next event and returns it as a key press.
// Events that are not key presses are returned as a KeyNone key.
func (t *Terminal) Read() (core.Key, error) {
	ev := t.screen.PollEvent()
	switch ev := ev.(type) {
	case nil:
		return core.Key{}, ErrClosed
	case *tcell.EventKey:
		return keyFromEvent(ev), nil
	case *tcell.EventResize:
		t.screen.Sync()
		return core.Key{Code: core.KeyNone}, nil
	case *tcell.EventError:
		if t.hungUp != nil && t.hungUp() {
			return core.Key{}, ErrHangup
		}
		return core.Key{}, fmt.Errorf("terminal: read: %w", ev)
	default:
		return core.Key{Code: core.KeyNone}, nil
	}
}

// SetCell writes one cell into the back buffer.
func (t *Terminal) SetCell(col, row int, c core.Cell) {
	t.screen.SetContent(col, row, c.Glyph, nil, StyleFor(c.Color))
}

// Flush makes all pending writes visible.
func (t *Terminal) Flush() {
	t.screen.Show()
}
