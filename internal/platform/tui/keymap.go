package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-memory/internal/flow"
)

// KeyMap defines the key bindings for every screen.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	Back       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Surrender  key.Binding
	Menu       key.Binding
	Difficulty key.Binding
	Theme      key.Binding
	Erase      key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Surrender: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "surrender"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "main menu"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "difficulty"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "erase"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// modeHelp is the help.KeyMap shown for one mode.
type modeHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (h modeHelp) ShortHelp() []key.Binding  { return h.short }
func (h modeHelp) FullHelp() [][]key.Binding { return h.full }

// helpFor returns the bindings relevant to a mode.
func (k KeyMap) helpFor(mode flow.Mode) modeHelp {
	switch mode {
	case flow.ModePlaying:
		return modeHelp{
			short: []key.Binding{k.Select, k.Pause, k.Restart, k.Surrender, k.Help},
			full: [][]key.Binding{
				{k.Up, k.Down, k.Left, k.Right, k.Select},
				{k.Pause, k.Restart, k.Surrender, k.Menu},
				{k.ForceQuit},
			},
		}
	case flow.ModeEnterName:
		return modeHelp{
			short: []key.Binding{k.Select, k.Erase, k.Back},
			full:  [][]key.Binding{{k.Select, k.Erase, k.Back, k.ForceQuit}},
		}
	case flow.ModeSetup:
		return modeHelp{
			short: []key.Binding{k.Up, k.Down, k.Select, k.Difficulty, k.Theme, k.Back},
			full: [][]key.Binding{
				{k.Up, k.Down, k.Left, k.Right, k.Select},
				{k.Difficulty, k.Theme, k.Back, k.ForceQuit},
			},
		}
	case flow.ModeLeaderboard:
		return modeHelp{
			short: []key.Binding{k.Up, k.Down, k.Back},
			full:  [][]key.Binding{{k.Up, k.Down, k.Back, k.ForceQuit}},
		}
	case flow.ModeMainMenu:
		return modeHelp{
			short: []key.Binding{k.Up, k.Down, k.Select, k.Quit},
			full:  [][]key.Binding{{k.Up, k.Down, k.Select, k.Quit, k.ForceQuit}},
		}
	default:
		return modeHelp{
			short: []key.Binding{k.Up, k.Down, k.Select, k.Back},
			full:  [][]key.Binding{{k.Up, k.Down, k.Select, k.Back, k.ForceQuit}},
		}
	}
}
