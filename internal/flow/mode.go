// Package flow implements the top-level game mode controller: it routes
// menu actions, name entry and card clicks to the match session, finalizes
// results and hands them to the persistence gateway.
package flow

// Mode is the active screen of the game.
type Mode int

const (
	ModeMainMenu Mode = iota
	ModeEnterName
	ModeSetup
	ModePlaying
	ModePaused
	ModeGameOverWin
	ModeGameOverLose
	ModeLeaderboard
	ModeSettings
	ModeContactForm
	ModeExit
)

func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "MainMenu"
	case ModeEnterName:
		return "EnterName"
	case ModeSetup:
		return "Setup"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	case ModeGameOverWin:
		return "GameOverWin"
	case ModeGameOverLose:
		return "GameOverLose"
	case ModeLeaderboard:
		return "Leaderboard"
	case ModeSettings:
		return "Settings"
	case ModeContactForm:
		return "ContactForm"
	case ModeExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Actions returns the buttons offered in a mode, in display order.
func (m Mode) Actions() []Action {
	switch m {
	case ModeMainMenu:
		return []Action{ActionNewGame, ActionLeaderboard, ActionSettings, ActionExit}
	case ModeEnterName:
		return []Action{ActionConfirm, ActionBack}
	case ModeSetup:
		return []Action{ActionCycleDifficulty, ActionCycleTheme, ActionStart, ActionBack}
	case ModePlaying:
		return []Action{ActionPause, ActionRestart, ActionSurrender, ActionMenu}
	case ModePaused:
		return []Action{ActionResume, ActionRestart, ActionMenu}
	case ModeGameOverWin, ModeGameOverLose:
		return []Action{ActionContinue}
	case ModeLeaderboard, ModeContactForm:
		return []Action{ActionBack}
	case ModeSettings:
		return []Action{ActionToggleSound, ActionContact, ActionBack}
	default:
		return nil
	}
}

// Terminal reports whether the application should close.
func (m Mode) Terminal() bool {
	return m == ModeExit
}
