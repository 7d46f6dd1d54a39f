package tui

import (
	"bytes"
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-memory/internal/flow"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

func newTestModel(t *testing.T, bell *bytes.Buffer) Model {
	t.Helper()
	machine := flow.New(flow.Options{
		Rules:      memory.DefaultRules(),
		Difficulty: memory.DifficultyEasy,
		Theme:      memory.ThemeFruits,
		Sound:      true,
		Rand:       rand.New(rand.NewSource(1)),
	})
	opts := Options{Width: 100, Height: 30}
	if bell != nil {
		opts.Bell = bell
	}
	return NewModel(machine, opts)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func keyType(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func toBoard(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, keyType(tea.KeyEnter)) // New Game
	require.Equal(t, flow.ModeEnterName, m.machine.Mode())

	m, _ = send(t, m, runes("ann"))
	m, _ = send(t, m, keyType(tea.KeyEnter))
	require.Equal(t, flow.ModeSetup, m.machine.Mode())

	m, _ = send(t, m, keyType(tea.KeyDown))
	m, _ = send(t, m, keyType(tea.KeyDown))
	m, _ = send(t, m, keyType(tea.KeyEnter)) // Start
	require.Equal(t, flow.ModePlaying, m.machine.Mode())
	return m
}

func TestModelMenuToBoard(t *testing.T) {
	m := toBoard(t, newTestModel(t, nil))

	p, ok := m.machine.Player()
	require.True(t, ok)
	assert.Equal(t, "ann", p.Name)

	view := m.View()
	assert.Contains(t, view, "STATS")
	assert.Contains(t, view, "Pairs  0/6")
}

func TestModelSetupKeysCycle(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, keyType(tea.KeyEnter))
	m, _ = send(t, m, runes("bo"))
	m, _ = send(t, m, keyType(tea.KeyEnter))
	require.Equal(t, flow.ModeSetup, m.machine.Mode())

	m, _ = send(t, m, runes("d"))
	assert.Equal(t, memory.DifficultyMedium, m.machine.Difficulty())
	m, _ = send(t, m, keyType(tea.KeyLeft))
	assert.Equal(t, memory.DifficultyEasy, m.machine.Difficulty())

	m, _ = send(t, m, runes("t"))
	assert.Equal(t, memory.ThemeFruits.Next(), m.machine.Theme())
}

func TestModelNameEntryKeys(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, keyType(tea.KeyEnter))

	m, _ = send(t, m, runes("jo"))
	m, _ = send(t, m, keyType(tea.KeySpace))
	m, _ = send(t, m, runes("q")) // typed, not quit
	m, _ = send(t, m, keyType(tea.KeyBackspace))
	assert.Equal(t, "jo ", m.machine.NameInput())
	assert.False(t, m.quitting)

	m, _ = send(t, m, keyType(tea.KeyEsc))
	assert.Equal(t, flow.ModeMainMenu, m.machine.Mode())
}

func TestModelMouseClickRevealsCard(t *testing.T) {
	m := toBoard(t, newTestModel(t, nil))

	r := cardRect(m.machine.Session().Layout(), 5)
	m, _ = send(t, m, tea.MouseMsg{
		X:      r.X + 1,
		Y:      r.Y + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	assert.Equal(t, 5, m.card)
	c, ok := m.machine.Session().Card(5)
	require.True(t, ok)
	assert.Equal(t, memory.CardRevealed, c.State)

	// clicks in the gap are ignored
	m, _ = send(t, m, tea.MouseMsg{
		X:      r.X + r.W,
		Y:      r.Y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	assert.Equal(t, memory.PhaseOneSelected, m.machine.Session().Phase())
}

func TestModelKeyboardSelect(t *testing.T) {
	m := toBoard(t, newTestModel(t, nil))

	m, _ = send(t, m, keyType(tea.KeyRight))
	m, _ = send(t, m, keyType(tea.KeyDown))
	assert.Equal(t, 5, m.card)

	m, _ = send(t, m, keyType(tea.KeyEnter))
	sel := m.machine.Session().Selection()
	require.Len(t, sel, 1)
	assert.Equal(t, 5, sel[0])

	m, _ = send(t, m, runes("p"))
	assert.Equal(t, flow.ModePaused, m.machine.Mode())
	m, _ = send(t, m, keyType(tea.KeyEsc))
	assert.Equal(t, flow.ModePlaying, m.machine.Mode())
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := send(t, m, runes("q"))
	assert.True(t, m.quitting)
	assert.Equal(t, flow.ModeExit, m.machine.Mode())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	m = newTestModel(t, nil)
	m, cmd = send(t, m, keyType(tea.KeyCtrlC))
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestCueRingsBell(t *testing.T) {
	var bell bytes.Buffer
	m := newTestModel(t, &bell)

	assert.Nil(t, m.cueCmd())

	m.cues.pending = 3
	cmd := m.cueCmd()
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, "\a", bell.String())
	assert.Zero(t, m.cues.pending)
}

func TestCardFace(t *testing.T) {
	assert.Equal(t, "cat", cardFace(memory.Card{Face: "assets/images/animals/cat.png"}))
	assert.Equal(t, "cat#2", cardFace(memory.Card{Face: "cat", Variant: 1}))
	assert.Equal(t, "hippop#3", cardFace(memory.Card{Face: "hippopotamus", Variant: 2}))
}
