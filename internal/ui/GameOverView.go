package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// GameOverState renders the banner shown under the washed board until the
// game restarts on its own.
type GameOverState struct {
	Theme Theme
}

var (
	gameOverTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 2)

	gameOverHintStyle = lipgloss.NewStyle().
				Faint(true)
)

// RenderBanner draws the death message with its cause.
func (g GameOverState) RenderBanner(cause string) string {
	title := gameOverTitleStyle.
		Foreground(lipgloss.Color(g.Theme.Wash)).
		Render("G A M E   O V E R")

	lines := []string{title}
	if cause != "" {
		lines = append(lines, "Cause: "+cause)
	}
	lines = append(lines, gameOverHintStyle.Render("restarting..."))

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
