package invaders

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// HUD draws the status line below the field.
type HUD struct {
	row     int
	player  *Player
	swarm   *Swarm
	elapsed time.Duration
}

// NewHUD creates a status line drawn on the given row.
func NewHUD(row int, player *Player, swarm *Swarm) *HUD {
	return &HUD{row: row, player: player, swarm: swarm}
}

// Update advances the game clock shown on the status line.
func (h *HUD) Update(delta time.Duration) {
	h.elapsed += delta
}

// Draw paints score, remaining invaders and elapsed time.
func (h *HUD) Draw(f *core.Frame) {
	secs := int(h.elapsed / time.Second)
	text := fmt.Sprintf("SCORE %05d  LEFT %3d  %02d:%02d",
		h.player.Score(), h.swarm.Len(), secs/60, secs%60)
	f.DrawText(0, h.row, text, core.ColorGray)
}
