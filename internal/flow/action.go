package flow

// Action identifies a button or key command reported by the presentation.
type Action int

const (
	ActionNone Action = iota
	ActionNewGame
	ActionLeaderboard
	ActionSettings
	ActionExit
	ActionConfirm
	ActionCycleDifficulty
	ActionPrevDifficulty
	ActionCycleTheme
	ActionPrevTheme
	ActionStart
	ActionBack
	ActionPause
	ActionResume
	ActionMenu
	ActionRestart
	ActionSurrender
	ActionContinue
	ActionContact
	ActionToggleSound
)

var actionNames = map[Action]string{
	ActionNone:            "None",
	ActionNewGame:         "New Game",
	ActionLeaderboard:     "Leaderboard",
	ActionSettings:        "Settings",
	ActionExit:            "Exit",
	ActionConfirm:         "Confirm",
	ActionCycleDifficulty: "Difficulty",
	ActionPrevDifficulty:  "Previous Difficulty",
	ActionCycleTheme:      "Theme",
	ActionPrevTheme:       "Previous Theme",
	ActionStart:           "Start",
	ActionBack:            "Back",
	ActionPause:           "Pause",
	ActionResume:          "Resume",
	ActionMenu:            "Main Menu",
	ActionRestart:         "Restart",
	ActionSurrender:       "Surrender",
	ActionContinue:        "Continue",
	ActionContact:         "Contact",
	ActionToggleSound:     "Sound",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "Unknown"
}
