package core

// KeyCode identifies a key reported by the input collaborator.
type KeyCode int

const (
	KeyNone KeyCode = iota // Non-key event (resize, focus, ...)
	KeyRune                // Printable character, see Key.Rune
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeyEscape
	KeyCtrlC
	KeyOther // Any other named key
)

// Key is a single key press read from the terminal.
type Key struct {
	Code KeyCode
	Rune rune // Set only when Code is KeyRune
}

// RuneKey is a shorthand for a printable key press.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, h, a
	ActionRight        // Right arrow, l, d
	ActionShoot        // Space, Enter
	ActionQuit         // Esc, q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionShoot:
		return "Shoot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
