package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores      = 100 // Max records to load for the leaderboard
	tableMinHeight = 5
)

// recordColumns returns the columns for a list of game records.
// The player column is dropped for single-player history.
func recordColumns(withPlayer bool) []table.Column {
	cols := []table.Column{{Title: "Rank", Width: 5}}
	if withPlayer {
		cols = append(cols, table.Column{Title: "Player", Width: 20})
	}
	return append(cols,
		table.Column{Title: "Score", Width: 7},
		table.Column{Title: "Moves", Width: 6},
		table.Column{Title: "Pairs", Width: 6},
		table.Column{Title: "Time", Width: 6},
		table.Column{Title: "Level", Width: 7},
		table.Column{Title: "Date", Width: 12},
	)
}

// recordRows converts records to table rows in the given order.
func recordRows(recs []storage.GameRecord, withPlayer bool) []table.Row {
	rows := make([]table.Row, len(recs))
	for i, r := range recs {
		row := table.Row{fmt.Sprintf("#%d", i+1)}
		if withPlayer {
			row = append(row, r.PlayerName)
		}
		rows[i] = append(row,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Moves),
			strconv.Itoa(r.Pairs),
			memory.FormatElapsed(r.Elapsed),
			r.Difficulty,
			r.Date.Format("Jan 02 15:04"),
		)
	}
	return rows
}

// newRecordTable creates a styled table for game records.
func newRecordTable(recs []storage.GameRecord, withPlayer bool, height int) table.Model {
	t := table.New(
		table.WithColumns(recordColumns(withPlayer)),
		table.WithRows(recordRows(recs, withPlayer)),
		table.WithFocused(true),
		table.WithHeight(max(height, tableMinHeight)),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// renderRecords renders a record table or the empty message.
func renderRecords(t table.Model, empty string) string {
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(t.Rows()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return tableStyle.Render(emptyStyle.Render(empty))
	}

	return tableStyle.Render(t.View())
}
