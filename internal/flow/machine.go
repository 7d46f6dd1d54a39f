package flow

import (
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// DefaultNameMaxLen bounds the player name when Options leaves it unset.
const DefaultNameMaxLen = 20

// Options configures a Machine.
type Options struct {
	Rules      memory.Rules
	Difficulty memory.Difficulty
	Theme      memory.Theme
	NameMaxLen int
	Sound      bool

	// DefaultName pre-fills name entry until a player has been registered.
	DefaultName string

	Symbols SymbolSource // nil means placeholder faces
	Gateway Gateway      // nil disables persistence
	Logger  *log.Logger  // nil discards
	Rand    *rand.Rand   // nil uses a time-seeded source
	Now     func() time.Time
}

// Machine is the game mode controller. It is not safe for concurrent use;
// drive it from a single goroutine.
type Machine struct {
	mode     Mode
	previous Mode

	difficulty memory.Difficulty
	theme      memory.Theme
	sound      bool

	nameBuf     []byte
	nameMaxLen  int
	defaultName string
	player      *Player

	session *memory.Session
	rules   memory.Rules

	symbols SymbolSource
	gateway Gateway
	logger  *log.Logger
	rng     *rand.Rand
	now     func() time.Time

	listeners      []Listener
	audioListeners []Listener

	lastRecord *storage.GameRecord
	lastSaveID int64
}

// New creates a machine in MainMenu.
func New(opts Options) *Machine {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NameMaxLen <= 0 {
		opts.NameMaxLen = DefaultNameMaxLen
	}
	if opts.Symbols == nil {
		opts.Symbols = SymbolFunc(func(memory.Theme) []string { return nil })
	}

	m := &Machine{
		mode:        ModeMainMenu,
		previous:    ModeMainMenu,
		difficulty:  opts.Difficulty,
		theme:       opts.Theme,
		sound:       opts.Sound,
		nameMaxLen:  opts.NameMaxLen,
		defaultName: sanitizeName(opts.DefaultName, opts.NameMaxLen),
		session:     memory.NewSession(opts.Rules),
		rules:       opts.Rules,
		symbols:     opts.Symbols,
		gateway:     opts.Gateway,
		logger:      opts.Logger,
		rng:         opts.Rand,
		now:         opts.Now,
	}
	m.probe()
	return m
}

// probe checks that the gateway answers and logs whether it holds records.
func (m *Machine) probe() {
	if m.gateway == nil {
		m.logger.Warn("persistence unavailable, results will not be saved")
		return
	}
	top, err := m.gateway.TopScores(1)
	switch {
	case err != nil:
		m.logger.Warn("leaderboard probe failed", "err", err)
	case len(top) == 0:
		m.logger.Info("leaderboard is empty")
	default:
		m.logger.Info("leaderboard ready", "best", top[0].Score, "player", top[0].PlayerName)
	}
}

// Subscribe registers a listener for every signal.
func (m *Machine) Subscribe(l Listener) {
	m.listeners = append(m.listeners, l)
}

// SubscribeAudio registers a listener for game signals that only fires
// while sound is enabled. Mode changes are not delivered.
func (m *Machine) SubscribeAudio(l Listener) {
	m.audioListeners = append(m.audioListeners, l)
}

func (m *Machine) emit(s Signal) {
	m.logger.Debug("signal", "kind", s.Kind, "mode", m.mode, "cards", s.Cards)
	for _, l := range m.listeners {
		l(s)
	}
	if m.sound && s.Kind != SignalModeChanged {
		for _, l := range m.audioListeners {
			l(s)
		}
	}
}

func (m *Machine) setMode(next Mode) {
	if next == m.mode {
		return
	}
	prev := m.mode
	m.mode = next
	m.logger.Debug("mode changed", "from", prev, "to", next)
	m.emit(Signal{Kind: SignalModeChanged, Mode: next, Previous: prev})
}

// Activate handles a button or key command. Actions not offered by the
// current mode are rejected and return false.
func (m *Machine) Activate(a Action) bool {
	switch m.mode {
	case ModeMainMenu:
		switch a {
		case ActionNewGame:
			m.nameBuf = m.nameBuf[:0]
			if m.player != nil {
				m.nameBuf = append(m.nameBuf, m.player.Name...)
			} else {
				m.nameBuf = append(m.nameBuf, m.defaultName...)
			}
			m.setMode(ModeEnterName)
			return true
		case ActionLeaderboard:
			m.setMode(ModeLeaderboard)
			return true
		case ActionSettings:
			m.setMode(ModeSettings)
			return true
		case ActionExit:
			m.setMode(ModeExit)
			return true
		}

	case ModeEnterName:
		switch a {
		case ActionConfirm:
			return m.Confirm()
		case ActionBack:
			m.setMode(ModeMainMenu)
			return true
		}

	case ModeSetup:
		switch a {
		case ActionCycleDifficulty:
			m.difficulty = m.difficulty.Next()
			return true
		case ActionPrevDifficulty:
			m.difficulty = m.difficulty.Previous()
			return true
		case ActionCycleTheme:
			m.theme = m.theme.Next()
			return true
		case ActionPrevTheme:
			m.theme = m.theme.Previous()
			return true
		case ActionStart:
			return m.startGame()
		case ActionBack:
			m.setMode(ModeMainMenu)
			return true
		}

	case ModePlaying:
		switch a {
		case ActionPause:
			if !m.session.Pause() {
				return false
			}
			m.setMode(ModePaused)
			return true
		case ActionMenu:
			m.abandon()
			return true
		case ActionRestart:
			return m.startGame()
		case ActionSurrender:
			if !m.session.Surrender() {
				return false
			}
			m.drain()
			return true
		}

	case ModePaused:
		switch a {
		case ActionResume:
			if !m.session.Start() {
				return false
			}
			m.setMode(ModePlaying)
			return true
		case ActionRestart:
			return m.startGame()
		case ActionMenu:
			m.abandon()
			return true
		}

	case ModeGameOverWin, ModeGameOverLose:
		if a == ActionContinue {
			m.setMode(ModeMainMenu)
			return true
		}

	case ModeLeaderboard:
		if a == ActionBack {
			m.setMode(ModeMainMenu)
			return true
		}

	case ModeSettings:
		switch a {
		case ActionToggleSound:
			m.sound = !m.sound
			return true
		case ActionContact:
			m.previous = m.mode
			m.setMode(ModeContactForm)
			return true
		case ActionBack:
			m.setMode(ModeMainMenu)
			return true
		}

	case ModeContactForm:
		if a == ActionBack {
			m.setMode(m.previous)
			return true
		}
	}
	return false
}

// Back is the generic cancel input. It maps to the action that leaves the
// current mode: pause while playing, resume while paused.
func (m *Machine) Back() bool {
	switch m.mode {
	case ModePlaying:
		return m.Activate(ActionPause)
	case ModePaused:
		return m.Activate(ActionResume)
	case ModeGameOverWin, ModeGameOverLose:
		return m.Activate(ActionContinue)
	case ModeMainMenu, ModeExit:
		return false
	default:
		return m.Activate(ActionBack)
	}
}

// TypeRune appends a character to the name being entered. Only printable
// ASCII is accepted, up to the configured length.
func (m *Machine) TypeRune(r rune) bool {
	if m.mode != ModeEnterName {
		return false
	}
	if r < 32 || r > 126 || len(m.nameBuf) >= m.nameMaxLen {
		return false
	}
	m.nameBuf = append(m.nameBuf, byte(r))
	return true
}

// sanitizeName keeps the printable ASCII prefix of s, bounded to n bytes.
func sanitizeName(s string, n int) string {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		if r < 32 || r > 126 || len(b) >= n {
			break
		}
		b = append(b, byte(r))
	}
	return string(b)
}

// Backspace erases the last character of the name being entered.
func (m *Machine) Backspace() bool {
	if m.mode != ModeEnterName || len(m.nameBuf) == 0 {
		return false
	}
	m.nameBuf = m.nameBuf[:len(m.nameBuf)-1]
	return true
}

// Confirm accepts the entered name and moves to Setup. A blank name is
// rejected. In the game-over screens it continues to the main menu.
func (m *Machine) Confirm() bool {
	switch m.mode {
	case ModeEnterName:
		name := strings.TrimSpace(string(m.nameBuf))
		if name == "" {
			return false
		}
		m.player = &Player{Name: name}
		m.logger.Info("player registered", "name", name)
		m.setMode(ModeSetup)
		return true
	case ModeGameOverWin, ModeGameOverLose:
		return m.Activate(ActionContinue)
	}
	return false
}

// ClickCard forwards a card click to the session while playing.
func (m *Machine) ClickCard(index int) bool {
	if m.mode != ModePlaying {
		return false
	}
	if !m.session.SelectCard(index) {
		return false
	}
	m.drain()
	return true
}

// Advance moves simulated time forward by dt. Only play time accrues.
func (m *Machine) Advance(dt time.Duration) {
	if m.mode != ModePlaying {
		return
	}
	m.session.Tick(dt)
	m.drain()
	if m.player != nil && !m.player.Finished {
		m.player.Moves = m.session.Moves()
		m.player.Pairs = m.session.MatchedPairs()
		m.player.Score = m.session.Score()
	}
}

// startGame deals a fresh deck for the current player and settings.
func (m *Machine) startGame() bool {
	if m.player == nil {
		return false
	}
	m.session.Reset(m.difficulty, m.theme, m.symbols.Symbols(m.theme), m.rng)
	if !m.session.Start() {
		return false
	}
	m.player = &Player{Name: m.player.Name}
	m.lastRecord = nil
	m.lastSaveID = 0
	m.logger.Info("game started",
		"session", m.session.ID(),
		"player", m.player.Name,
		"difficulty", m.difficulty,
		"theme", m.theme,
	)
	m.setMode(ModePlaying)
	return true
}

// abandon leaves the game without saving anything.
func (m *Machine) abandon() {
	m.session.Abandon()
	m.logger.Info("game abandoned", "session", m.session.ID())
	m.setMode(ModeMainMenu)
}

// drain converts session events to signals and finishes the game on a
// terminal event.
func (m *Machine) drain() {
	for _, e := range m.session.Events() {
		kind, ok := signalFor(e)
		if !ok {
			continue
		}
		m.emit(Signal{Kind: kind, Cards: e.Cards})
		switch kind {
		case SignalWin:
			m.finish(true)
		case SignalLose:
			m.finish(false)
		}
	}
}

// finish finalizes the player's score once and saves the result.
func (m *Machine) finish(won bool) {
	if m.player == nil || m.player.Finished {
		return
	}
	res := m.session.Result()
	m.player.Moves = res.Moves
	m.player.Pairs = res.Pairs
	m.player.Score = res.Score
	m.player.Finished = true

	rec := storage.GameRecord{
		PlayerName: m.player.Name,
		Score:      res.Score,
		Moves:      res.Moves,
		Pairs:      res.Pairs,
		Elapsed:    res.Elapsed,
		Date:       m.now(),
		Difficulty: m.session.Difficulty().String(),
	}
	m.lastRecord = &rec
	m.logger.Info("game finished",
		"session", m.session.ID(),
		"won", won,
		"score", res.Score,
		"moves", res.Moves,
		"time", memory.FormatElapsed(res.Elapsed),
	)
	m.save(rec)

	if won {
		m.setMode(ModeGameOverWin)
	} else {
		m.setMode(ModeGameOverLose)
	}
}

func (m *Machine) save(rec storage.GameRecord) {
	if m.gateway == nil {
		return
	}
	id, err := m.gateway.SaveGame(rec)
	if err != nil {
		m.logger.Warn("cannot save game result", "err", err)
		return
	}
	m.lastSaveID = id
}

// Leaderboard returns the best games. Failures yield an empty list.
func (m *Machine) Leaderboard(limit int) []storage.GameRecord {
	if m.gateway == nil {
		return nil
	}
	recs, err := m.gateway.TopScores(limit)
	if err != nil {
		m.logger.Warn("cannot load leaderboard", "err", err)
		return nil
	}
	return recs
}

// History returns the current player's best games. Failures yield an empty list.
func (m *Machine) History() []storage.GameRecord {
	if m.gateway == nil || m.player == nil {
		return nil
	}
	recs, err := m.gateway.PlayerHistory(m.player.Name)
	if err != nil {
		m.logger.Warn("cannot load player history", "player", m.player.Name, "err", err)
		return nil
	}
	return recs
}

// Mode returns the active mode.
func (m *Machine) Mode() Mode { return m.mode }

// Previous returns the mode ContactForm returns to.
func (m *Machine) Previous() Mode { return m.previous }

// Session exposes the current session for rendering. Callers must not
// mutate it directly.
func (m *Machine) Session() *memory.Session { return m.session }

// Player returns the registered player, if any.
func (m *Machine) Player() (Player, bool) {
	if m.player == nil {
		return Player{}, false
	}
	return *m.player, true
}

// NameInput returns the name being typed.
func (m *Machine) NameInput() string { return string(m.nameBuf) }

// NameMaxLen returns the maximum name length.
func (m *Machine) NameMaxLen() int { return m.nameMaxLen }

// Difficulty returns the selected difficulty.
func (m *Machine) Difficulty() memory.Difficulty { return m.difficulty }

// Theme returns the selected theme.
func (m *Machine) Theme() memory.Theme { return m.theme }

// SoundEnabled reports whether audio listeners receive signals.
func (m *Machine) SoundEnabled() bool { return m.sound }

// LastRecord returns the record built for the last finished game and the
// storage ID it was saved under (0 when it was not saved).
func (m *Machine) LastRecord() (storage.GameRecord, int64, bool) {
	if m.lastRecord == nil {
		return storage.GameRecord{}, 0, false
	}
	return *m.lastRecord, m.lastSaveID, true
}
