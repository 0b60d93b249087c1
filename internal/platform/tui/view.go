package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/game"
)

// qwertyRows is the keyboard layout colored from the session hints.
var qwertyRows = []string{
	"QWERTYUIOP",
	"ASDFGHJKL",
	"ZXCVBNM",
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("W O R D L E"),
		m.viewMessage(),
		m.viewBoard(),
		"",
		m.viewKeyboard(),
	}

	if m.session.State().Terminal() {
		sections = append(sections, m.viewPopup())
	}

	sections = append(sections, "", m.help.View(m.keys))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// viewMessage shows the last validation error, or the round counter.
func (m Model) viewMessage() string {
	if m.errMsg != "" {
		return errStyle.Render(m.errMsg)
	}
	if m.session.State() == game.StatePlaying {
		return subtleStyle.Render(fmt.Sprintf("round %d of %d", m.session.Round(), m.session.MaxRounds()))
	}
	return " "
}

// viewBoard renders past guesses, the typing row, and empty rows up to
// the round limit.
func (m Model) viewBoard() string {
	history := m.session.History()
	rows := make([]string, 0, m.session.MaxRounds())

	for _, scored := range history {
		rows = append(rows, renderScoredRow(scored))
	}

	remaining := m.session.MaxRounds() - len(history)
	if m.session.State() == game.StatePlaying && remaining > 0 {
		rows = append(rows, renderInputRow(m.input, m.session.WordLength()))
		remaining--
	}
	for i := 0; i < remaining; i++ {
		rows = append(rows, renderInputRow("", m.session.WordLength()))
	}

	return strings.Join(rows, "\n")
}

func renderScoredRow(scored game.ScoredWord) string {
	cells := make([]string, len(scored))
	for i, t := range scored {
		cells[i] = tileStyles[t.State].Render(string(t.Letter))
	}
	return strings.Join(cells, " ")
}

func renderInputRow(input string, wordLen int) string {
	cells := make([]string, wordLen)
	for i := 0; i < wordLen; i++ {
		if i < len(input) {
			cells[i] = tilePending.Render(string(input[i]))
		} else {
			cells[i] = tileEmpty.Render("_")
		}
	}
	return strings.Join(cells, " ")
}

// viewKeyboard renders the QWERTY rows colored by the best state seen
// for each letter.
func (m Model) viewKeyboard() string {
	kb := m.session.Keyboard()
	lines := make([]string, len(qwertyRows))

	for i, row := range qwertyRows {
		keys := make([]string, len(row))
		for j := 0; j < len(row); j++ {
			letter := row[j]
			keys[j] = keyStyles[kb.State(letter)].Render(" " + string(letter) + " ")
		}
		lines[i] = strings.Join(keys, "")
	}

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// viewPopup renders the end-of-game box with the revealed answer and,
// when the lookup succeeded, its definition.
func (m Model) viewPopup() string {
	answer, _ := m.session.Answer()

	var headline string
	if m.session.State() == game.StateWon {
		headline = winStyle.Render(fmt.Sprintf("You won in %d! The answer is %s", len(m.session.History()), answer))
	} else {
		headline = loseStyle.Render("You lost! The answer is " + answer)
	}

	lines := []string{headline}
	if m.definition != nil {
		def := m.definition.Meaning
		if m.definition.PartOfSpeech != "" {
			def = fmt.Sprintf("(%s) %s", m.definition.PartOfSpeech, def)
		}
		lines = append(lines, subtleStyle.Render(wrapText(def, 44)))
	}
	lines = append(lines, "New game? <tab>")

	return popupStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// wordLengthMessage phrases the length validation error.
func wordLengthMessage(wordLen int) string {
	return fmt.Sprintf("word must be %d letters", wordLen)
}

// wrapText folds a string at word boundaries to the given width.
func wrapText(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if i > 0 {
			if lineLen+1+len(w) > width {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
