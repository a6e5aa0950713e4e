package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/game"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// RecordResult saves a finished game and returns the high score as it was
// before this game. Games that never ticked are not saved. Store errors are
// logged and otherwise ignored; a nil store records nothing.
func RecordResult(store *storage.Store, player string, res game.Result, logger *log.Logger) int {
	if store == nil {
		return 0
	}

	best, err := store.HighScore()
	if err != nil {
		logger.Warn("cannot read high score", "error", err)
	}

	if res.Ticks == 0 {
		return best
	}

	_, err = store.SaveScore(storage.ScoreEntry{
		Player:   player,
		Score:    res.Score,
		Killed:   res.Killed,
		Outcome:  res.Outcome.String(),
		Duration: res.Elapsed,
	})
	if err != nil {
		logger.Warn("cannot save score", "player", player, "error", err)
	}
	return best
}
