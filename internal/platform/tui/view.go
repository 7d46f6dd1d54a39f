package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memory/internal/assets"
	"github.com/vovakirdan/tui-memory/internal/flow"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2)
	activeButtonStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Padding(0, 2)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
	loseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	cardBase = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(cardInnerW).
			Align(lipgloss.Center)
	cardHiddenStyle   = cardBase.BorderForeground(lipgloss.Color("240")).Foreground(lipgloss.Color("240"))
	cardRevealedStyle = cardBase.BorderForeground(lipgloss.Color("11")).Foreground(lipgloss.Color("15")).Bold(true)
	cardMatchedStyle  = cardBase.BorderForeground(lipgloss.Color("2")).Foreground(lipgloss.Color("2")).Faint(true)
	cardCursorColor   = lipgloss.Color("212")
)

// View renders the current mode.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch mode := m.machine.Mode(); mode {
	case flow.ModeMainMenu:
		body = m.viewMenu("M E M O R Y", "Match every pair of cards")
	case flow.ModeEnterName:
		body = m.viewEnterName()
	case flow.ModeSetup:
		body = m.viewMenu("NEW GAME", m.playerLine())
	case flow.ModePlaying:
		return m.viewBoard() + "\n" + m.viewHelp()
	case flow.ModePaused:
		body = m.viewMenu("PAUSED", m.statsLine())
	case flow.ModeGameOverWin, flow.ModeGameOverLose:
		body = m.viewGameOver(mode == flow.ModeGameOverWin)
	case flow.ModeLeaderboard:
		body = m.viewLeaderboard()
	case flow.ModeSettings:
		body = m.viewMenu("SETTINGS", "")
	case flow.ModeContactForm:
		body = m.viewContact()
	}

	return m.center(body) + "\n\n" + m.viewHelp()
}

func (m Model) center(s string) string {
	if m.width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
}

func (m Model) viewHelp() string {
	return subtleStyle.Render(m.help.View(m.keys.helpFor(m.machine.Mode())))
}

// buttonLabel returns the text of a button, including current values.
func (m Model) buttonLabel(a flow.Action) string {
	switch a {
	case flow.ActionCycleDifficulty:
		d := m.machine.Difficulty()
		l := d.Layout()
		return fmt.Sprintf("Difficulty: %s (%dx%d)", d, l.Rows, l.Cols)
	case flow.ActionCycleTheme:
		return fmt.Sprintf("Theme: %s", m.machine.Theme())
	case flow.ActionToggleSound:
		if m.machine.SoundEnabled() {
			return "Sound: on"
		}
		return "Sound: off"
	default:
		return a.String()
	}
}

func (m Model) viewButtons(actions []flow.Action) string {
	lines := make([]string, len(actions))
	for i, a := range actions {
		style := buttonStyle
		if i == m.cursor {
			style = activeButtonStyle
		}
		lines[i] = style.Render(m.buttonLabel(a))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m Model) viewMenu(title, subtitle string) string {
	parts := []string{"", titleStyle.Render(title)}
	if subtitle != "" {
		parts = append(parts, subtleStyle.Render(subtitle))
	}
	parts = append(parts, "", m.viewButtons(m.machine.Mode().Actions()))
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m Model) playerLine() string {
	if p, ok := m.machine.Player(); ok {
		return "Player: " + p.Name
	}
	return ""
}

func (m Model) statsLine() string {
	s := m.machine.Session()
	return fmt.Sprintf("Time %s  Moves %d  Pairs %d/%d  Score %d",
		memory.FormatElapsed(s.Elapsed()), s.Moves(), s.MatchedPairs(), s.Layout().Pairs, s.Score())
}

func (m Model) viewEnterName() string {
	name := m.machine.NameInput()
	input := panelStyle.
		Width(m.machine.NameMaxLen() + 2).
		Render(name + "_")
	counter := subtleStyle.Render(fmt.Sprintf("%d/%d", len(name), m.machine.NameMaxLen()))

	return lipgloss.JoinVertical(lipgloss.Center,
		"",
		titleStyle.Render("ENTER YOUR NAME"),
		"",
		input,
		counter,
		"",
		subtleStyle.Render("enter to confirm, esc to go back"),
	)
}

// truncate cuts s to at most w terminal cells.
func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if lipgloss.Width(b.String()+string(r)) > w {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

func cardFace(c memory.Card) string {
	label := assets.Label(c.Face)
	if c.Variant == 0 {
		return truncate(label, cardInnerW)
	}
	suffix := fmt.Sprintf("#%d", c.Variant+1)
	return truncate(label, cardInnerW-len(suffix)) + suffix
}

func (m Model) viewCard(c memory.Card, selected bool) string {
	var style lipgloss.Style
	text := "?"
	switch c.State {
	case memory.CardHidden:
		style = cardHiddenStyle
		text = strings.Repeat("░", cardInnerW)
	case memory.CardRevealed:
		style = cardRevealedStyle
		text = cardFace(c)
	case memory.CardMatched:
		style = cardMatchedStyle
		text = cardFace(c)
	}
	if selected {
		style = style.BorderForeground(cardCursorColor)
	}
	return style.Render(text)
}

// viewBoard renders the title line, a blank line and the card grid with the
// stats panel beside it. Card positions must agree with cardRect.
func (m Model) viewBoard() string {
	s := m.machine.Session()
	l := s.Layout()
	cards := s.Cards()

	rows := make([]string, 0, l.Rows)
	for r := 0; r < l.Rows; r++ {
		cells := make([]string, 0, 2*l.Cols)
		for c := 0; c < l.Cols; c++ {
			i := r*l.Cols + c
			if i >= len(cards) {
				break
			}
			if c > 0 {
				cells = append(cells, strings.Repeat(" ", cardGap))
			}
			cells = append(cells, m.viewCard(cards[i], i == m.card))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	board := lipgloss.NewStyle().
		PaddingLeft(boardX).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	title := titleStyle.Render("M E M O R Y") + subtleStyle.Render("  "+m.playerLine())
	return title + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, board, "   ", m.viewStats())
}

func (m Model) viewStats() string {
	s := m.machine.Session()
	l := s.Layout()

	const barW = 16
	filled := int(s.Progress() * barW)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barW-filled)

	status := ""
	if s.Phase() == memory.PhaseResolving {
		status = subtleStyle.Render("checking...")
	}

	lines := []string{
		titleStyle.Render("STATS"),
		fmt.Sprintf("Level  %s", s.Difficulty()),
		fmt.Sprintf("Theme  %s", s.Theme()),
		fmt.Sprintf("Time   %s", memory.FormatElapsed(s.Elapsed())),
		fmt.Sprintf("Moves  %d", s.Moves()),
		fmt.Sprintf("Pairs  %d/%d", s.MatchedPairs(), l.Pairs),
		fmt.Sprintf("Score  %d", s.Score()),
		"",
		fmt.Sprintf("%s %3.0f%%", bar, s.Progress()*100),
		status,
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) viewGameOver(won bool) string {
	rec, _, ok := m.machine.LastRecord()

	heading := loseStyle.Render("YOU SURRENDERED")
	note := "Half of your score was kept."
	if won {
		heading = winStyle.Render("YOU WIN!")
		note = "You found every pair."
	}

	summary := ""
	if ok {
		summary = panelStyle.Render(strings.Join([]string{
			fmt.Sprintf("Player  %s", rec.PlayerName),
			fmt.Sprintf("Level   %s", rec.Difficulty),
			fmt.Sprintf("Score   %d", rec.Score),
			fmt.Sprintf("Moves   %d", rec.Moves),
			fmt.Sprintf("Pairs   %d", rec.Pairs),
			fmt.Sprintf("Time    %s", memory.FormatElapsed(rec.Elapsed)),
		}, "\n"))
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		"",
		heading,
		subtleStyle.Render(note),
		"",
		summary,
		"",
		titleStyle.Render("YOUR BEST GAMES"),
		renderRecords(m.history, "No saved games for this player."),
		"",
		m.viewButtons(m.machine.Mode().Actions()),
	)
}

func (m Model) viewLeaderboard() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		"",
		titleStyle.Render("LEADERBOARD"),
		"",
		renderRecords(m.leaderboard, "No records yet.\nPlay a game to set a high score!"),
	)
}

func (m Model) viewContact() string {
	lines := m.opts.Contact
	if len(lines) == 0 {
		lines = []string{"No contact details configured."}
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		"",
		titleStyle.Render("CONTACT"),
		"",
		panelStyle.Render(strings.Join(lines, "\n")),
		"",
		subtleStyle.Render("esc to go back"),
	)
}
