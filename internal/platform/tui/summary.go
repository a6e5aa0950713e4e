package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/game"
)

// outcomeBanners are the headlines printed after a game.
var outcomeBanners = map[game.Outcome]string{
	game.OutcomeWon:  "THE SWARM IS DESTROYED",
	game.OutcomeLost: "THE SWARM HAS LANDED",
	game.OutcomeQuit: "GAME ABANDONED",
}

// RenderSummary formats the end-of-game report: the final board and the
// result, with best being the high score before this game.
func RenderSummary(res game.Result, best int) string {
	theme := DefaultTheme()

	banner := theme.OutcomeStyle(res.Outcome.String()).Render(outcomeBanners[res.Outcome])

	rows := []struct{ label, value string }{
		{"Score", fmt.Sprintf("%d", res.Score)},
		{"Invaders", fmt.Sprintf("%d", res.Killed)},
		{"Time", formatDuration(res.Elapsed)},
		{"Best", fmt.Sprintf("%d", max(best, res.Score))},
	}

	var stats strings.Builder
	for i, r := range rows {
		if i > 0 {
			stats.WriteString("\n")
		}
		stats.WriteString(theme.Label.Render(fmt.Sprintf("%-9s", r.label)))
		stats.WriteString(theme.Value.Render(r.value))
	}
	if res.Score > best && res.Score > 0 {
		stats.WriteString("\n\n")
		stats.WriteString(theme.Highlight.Render("New high score!"))
	}

	parts := []string{banner, ""}
	if res.Board.Width() > 0 {
		parts = append(parts, theme.Box.Render(RenderFrame(&res.Board)), "")
	}
	parts = append(parts, theme.Box.Render(stats.String()))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// formatDuration renders a duration as m:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
