package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles used outside the game screen.
type Theme struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Won       lipgloss.Style
	Lost      lipgloss.Style
	Quit      lipgloss.Style
	Highlight lipgloss.Style
	Muted     lipgloss.Style
	Box       lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Won:       lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),  // Lime green
		Lost:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red
		Quit:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")),            // Yellow
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true), // Hot pink
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
	}
}

// OutcomeStyle returns the style for an outcome name stored with scores.
func (t Theme) OutcomeStyle(outcome string) lipgloss.Style {
	switch outcome {
	case "won":
		return t.Won
	case "lost":
		return t.Lost
	default:
		return t.Quit
	}
}

// centerText pads text on the left so it is centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
