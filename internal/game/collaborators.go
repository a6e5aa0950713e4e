package game

import (
	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/render"
)

// Input reports key presses without blocking when none are pending.
type Input interface {
	// Ready reports whether Read would return immediately.
	Ready() bool
	// Read returns the next pending key press.
	Read() (core.Key, error)
}

// Terminal is the device the game runs on.
type Terminal interface {
	// Enter switches to raw mode and the alternate screen and hides the cursor.
	Enter() error
	// Leave undoes Enter.
	Leave()
	Input
	render.Output
}

// Audio plays named sounds without blocking.
type Audio interface {
	Play(s audio.Sound)
}
