package game

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Outcome is the reason a game ended.
type Outcome int

const (
	OutcomeQuit Outcome = iota // Player quit or the session went away
	OutcomeWon                 // Every invader was destroyed
	OutcomeLost                // The swarm reached the player's row
)

// String returns the name stored with scores.
func (o Outcome) String() string {
	switch o {
	case OutcomeQuit:
		return "quit"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// ParseOutcome is the inverse of Outcome.String.
func ParseOutcome(s string) (Outcome, bool) {
	for _, o := range []Outcome{OutcomeQuit, OutcomeWon, OutcomeLost} {
		if o.String() == s {
			return o, true
		}
	}
	return OutcomeQuit, false
}

// Result summarizes a finished game.
type Result struct {
	Outcome Outcome
	Score   int
	Killed  int
	Ticks   int
	Elapsed time.Duration
	Board   core.Frame // Field and HUD as they stood when the game ended
}
