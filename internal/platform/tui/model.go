package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/flow"
)

// Options configures the terminal front end.
type Options struct {
	TickInterval time.Duration
	Width        int
	Height       int
	Contact      []string  // lines shown on the contact screen
	Bell         io.Writer // receives a terminal bell on sound cues; nil mutes
	Logger       *log.Logger
}

// cueQueue counts sound cues raised by the machine between two updates.
type cueQueue struct {
	pending int
}

// Model is the Bubble Tea model driving one state machine.
type Model struct {
	machine *flow.Machine
	opts    Options
	keys    KeyMap
	help    help.Model

	width  int
	height int

	mode   flow.Mode // mode seen at the last sync
	cursor int       // selected button
	card   int       // board cursor

	leaderboard table.Model
	history     table.Model

	lastTick time.Time
	cues     *cueQueue
	quitting bool
}

// NewModel creates a model for machine. The machine must not be driven by
// anything else while the program runs.
func NewModel(machine *flow.Machine, opts Options) Model {
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second / 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	cues := &cueQueue{}
	machine.SubscribeAudio(func(s flow.Signal) {
		switch s.Kind {
		case flow.SignalCardMatch, flow.SignalCardMismatch, flow.SignalWin, flow.SignalLose:
			cues.pending++
		}
	})

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Width

	return Model{
		machine:     machine,
		opts:        opts,
		keys:        DefaultKeyMap(),
		help:        h,
		width:       opts.Width,
		height:      opts.Height,
		mode:        machine.Mode(),
		leaderboard: newRecordTable(nil, true, opts.Height-8),
		history:     newRecordTable(nil, false, 6),
		cues:        cues,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("Memory"), tickCmd(m.opts.TickInterval))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.leaderboard.SetHeight(max(m.height-8, tableMinHeight))
		return m, nil

	case TickMsg:
		now := time.Time(msg)
		m.machine.Advance(stepFor(m.lastTick, now, m.opts.TickInterval))
		m.lastTick = now
		m.sync()
		return m, tea.Batch(tickCmd(m.opts.TickInterval), m.cueCmd())

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		m.sync()
		if m.quitting {
			return m, tea.Quit
		}
		return m, tea.Batch(cmd, m.cueCmd())

	case tea.MouseMsg:
		m.handleMouse(msg)
		m.sync()
		return m, m.cueCmd()
	}

	return m, nil
}

// sync reacts to mode changes made by the machine.
func (m *Model) sync() {
	mode := m.machine.Mode()
	if mode.Terminal() {
		m.quitting = true
	}
	if mode == m.mode {
		return
	}
	m.opts.Logger.Debug("screen", "mode", mode)
	m.mode = mode
	m.cursor = 0

	switch mode {
	case flow.ModeLeaderboard:
		recs := m.machine.Leaderboard(maxScores)
		m.leaderboard.SetRows(recordRows(recs, true))
		m.leaderboard.GotoTop()
	case flow.ModeGameOverWin, flow.ModeGameOverLose:
		recs := m.machine.History()
		m.history.SetRows(recordRows(recs, false))
		m.history.GotoTop()
	case flow.ModePlaying:
		m.card = clamp(m.card, 0, max(len(m.machine.Session().Cards())-1, 0))
	}
}

// cueCmd rings the terminal bell once for any pending sound cues.
func (m Model) cueCmd() tea.Cmd {
	if m.cues.pending == 0 {
		return nil
	}
	m.cues.pending = 0
	w := m.opts.Bell
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		//nolint:errcheck // Best-effort cue
		fmt.Fprint(w, "\a")
		return nil
	}
}

// handleKey processes keyboard input for the current mode.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return nil
	}

	mode := m.machine.Mode()
	if mode != flow.ModeEnterName && key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	switch mode {
	case flow.ModeEnterName:
		m.handleNameKey(msg)
	case flow.ModePlaying:
		m.handlePlayKey(msg)
	case flow.ModeLeaderboard:
		if key.Matches(msg, m.keys.Back) {
			m.machine.Back()
			return nil
		}
		var cmd tea.Cmd
		m.leaderboard, cmd = m.leaderboard.Update(msg)
		return cmd
	case flow.ModeContactForm:
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Select) {
			m.machine.Back()
		}
	default:
		m.handleMenuKey(mode, msg)
	}
	return nil
}

func (m *Model) handleNameKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEnter:
		m.machine.Confirm()
	case tea.KeyBackspace:
		m.machine.Backspace()
	case tea.KeyEsc:
		m.machine.Back()
	case tea.KeySpace:
		m.machine.TypeRune(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.machine.TypeRune(r)
		}
	}
}

func (m *Model) handlePlayKey(msg tea.KeyMsg) {
	l := m.machine.Session().Layout()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.card = moveCursor(l, m.card, 0, -1)
	case key.Matches(msg, m.keys.Down):
		m.card = moveCursor(l, m.card, 0, 1)
	case key.Matches(msg, m.keys.Left):
		m.card = moveCursor(l, m.card, -1, 0)
	case key.Matches(msg, m.keys.Right):
		m.card = moveCursor(l, m.card, 1, 0)
	case key.Matches(msg, m.keys.Select):
		m.machine.ClickCard(m.card)
	case key.Matches(msg, m.keys.Pause):
		m.machine.Activate(flow.ActionPause)
	case key.Matches(msg, m.keys.Restart):
		m.machine.Activate(flow.ActionRestart)
	case key.Matches(msg, m.keys.Surrender):
		m.machine.Activate(flow.ActionSurrender)
	case key.Matches(msg, m.keys.Menu):
		m.machine.Activate(flow.ActionMenu)
	}
}

func (m *Model) handleMenuKey(mode flow.Mode, msg tea.KeyMsg) {
	actions := mode.Actions()
	if len(actions) == 0 {
		return
	}
	m.cursor = clamp(m.cursor, 0, len(actions)-1)
	current := actions[m.cursor]

	switch {
	case mode == flow.ModeMainMenu && key.Matches(msg, m.keys.Quit):
		m.machine.Activate(flow.ActionExit)
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor - 1 + len(actions)) % len(actions)
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(actions)
	case key.Matches(msg, m.keys.Select):
		m.machine.Activate(current)
	case key.Matches(msg, m.keys.Back):
		m.machine.Back()
	case mode == flow.ModeSetup && key.Matches(msg, m.keys.Difficulty):
		m.machine.Activate(flow.ActionCycleDifficulty)
	case mode == flow.ModeSetup && key.Matches(msg, m.keys.Theme):
		m.machine.Activate(flow.ActionCycleTheme)
	case mode == flow.ModeSetup && key.Matches(msg, m.keys.Left):
		switch current {
		case flow.ActionCycleDifficulty:
			m.machine.Activate(flow.ActionPrevDifficulty)
		case flow.ActionCycleTheme:
			m.machine.Activate(flow.ActionPrevTheme)
		}
	case mode == flow.ModeSetup && key.Matches(msg, m.keys.Right):
		if current == flow.ActionCycleDifficulty || current == flow.ActionCycleTheme {
			m.machine.Activate(current)
		}
	}
}

// handleMouse maps a left click on the board to a card click.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if m.machine.Mode() != flow.ModePlaying {
		return
	}
	if i := cardAt(m.machine.Session().Layout(), msg.X, msg.Y); i >= 0 {
		m.card = i
		m.machine.ClickCard(i)
	}
}

// Run starts the Bubble Tea program for machine and blocks until it exits.
func Run(machine *flow.Machine, opts Options) error {
	model := NewModel(machine, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Card clicks
	)

	_, err := p.Run()
	return err
}
