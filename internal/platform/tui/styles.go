package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/game"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			MarginBottom(1)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			MarginTop(1)

	winStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	loseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))

	// tileEmpty renders an untyped board cell.
	tileEmpty = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	// tilePending renders a typed but unsubmitted letter.
	tilePending = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)
)

// tileStyles maps a letter state to its scored-tile style.
var tileStyles = map[game.LetterState]lipgloss.Style{
	game.Correct: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("10")).
		Padding(0, 1),
	game.Present: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("11")).
		Padding(0, 1),
	game.Absent: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("240")).
		Padding(0, 1),
	game.Unused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")).
		Padding(0, 1),
}

// keyStyles maps a letter state to its keyboard-key style. Unused keys
// stay plain so hinted keys stand out.
var keyStyles = map[game.LetterState]lipgloss.Style{
	game.Correct: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("10")),
	game.Present: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("11")),
	game.Absent: lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")),
	game.Unused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")),
}
