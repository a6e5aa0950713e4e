package game

import "github.com/vovakirdan/tui-invaders/internal/core"

// KeyMapper translates key presses to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key press to an action.
// Returns ActionNone for keys the game ignores.
func (km *KeyMapper) MapKey(k core.Key) core.Action {
	switch k.Code {
	case core.KeyLeft:
		return core.ActionLeft
	case core.KeyRight:
		return core.ActionRight
	case core.KeyEnter:
		return core.ActionShoot
	case core.KeyEscape, core.KeyCtrlC:
		return core.ActionQuit
	case core.KeyRune:
		return km.mapRune(k.Rune)
	}
	return core.ActionNone
}

func (km *KeyMapper) mapRune(r rune) core.Action {
	switch r {
	case 'h', 'a':
		return core.ActionLeft
	case 'l', 'd':
		return core.ActionRight
	case ' ':
		return core.ActionShoot
	case 'q':
		return core.ActionQuit
	}
	return core.ActionNone
}
