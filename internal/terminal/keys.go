package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

var keyCodes = map[tcell.Key]core.KeyCode{
	tcell.KeyLeft:   core.KeyLeft,
	tcell.KeyRight:  core.KeyRight,
	tcell.KeyUp:     core.KeyUp,
	tcell.KeyDown:   core.KeyDown,
	tcell.KeyEnter:  core.KeyEnter,
	tcell.KeyEscape: core.KeyEscape,
	tcell.KeyCtrlC:  core.KeyCtrlC,
}

func keyFromEvent(ev *tcell.EventKey) core.Key {
	if ev.Key() == tcell.KeyRune {
		return core.RuneKey(ev.Rune())
	}
	if code, ok := keyCodes[ev.Key()]; ok {
		return core.Key{Code: code}
	}
	return core.Key{Code: core.KeyOther}
}
