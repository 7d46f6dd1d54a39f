package memory

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Phase is the selection sub-state of a session.
type Phase int

const (
	PhaseIdle        Phase = iota // no card selected
	PhaseOneSelected              // first card face up
	PhaseResolving                // two cards face up, waiting to be compared or hidden
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseOneSelected:
		return "one-selected"
	case PhaseResolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// Rules configures session timing and scoring.
type Rules struct {
	FlipDelay   time.Duration // second card face up before comparison
	SettleDelay time.Duration // mismatched pair stays visible before hiding
	Score       ScoreRules
}

// DefaultRules returns the built-in timing and scoring.
func DefaultRules() Rules {
	return Rules{
		FlipDelay:   300 * time.Millisecond,
		SettleDelay: 800 * time.Millisecond,
		Score:       DefaultScoreRules(),
	}
}

// Result summarizes a finished session.
type Result struct {
	Score   int
	Moves   int
	Pairs   int
	Elapsed time.Duration
	Won     bool
}

// Session is the state of one play-through.
//
// Selection is held as deck indices only. Every mutation happens through
// SelectCard, ResolveSelection, Tick, Surrender and Reset; timers advance
// through Tick, never by sleeping.
type Session struct {
	id    string
	rules Rules

	difficulty Difficulty
	layout     Layout
	theme      Theme
	cards      []Card

	selection [2]int
	phase     Phase

	resolveTimer time.Duration
	settleTimer  time.Duration
	compared     bool
	mismatched   bool

	moves   int
	matched int

	active   bool
	won      bool
	finished bool

	score      int
	finalScore int
	clock      Clock

	events []Event
}

// NewSession creates an empty session; call Reset before playing.
func NewSession(rules Rules) *Session {
	return &Session{rules: rules}
}

// Reset discards the current game and deals a new deck. The session stays
// inactive until Start is called.
func (s *Session) Reset(d Difficulty, theme Theme, symbols []string, rng *rand.Rand) {
	s.id = uuid.NewString()
	s.difficulty = d
	s.layout = d.Layout()
	s.theme = theme
	s.cards = BuildDeck(s.layout, theme, symbols, rng)
	s.clearSelection()
	s.moves = 0
	s.matched = 0
	s.active = false
	s.won = false
	s.finished = false
	s.score = 0
	s.finalScore = 0
	s.clock.Reset()
	s.events = nil
}

// Start activates (or resumes) play. Returns false if there is nothing to
// play or the game already ended.
func (s *Session) Start() bool {
	if s.active || s.finished || len(s.cards) == 0 {
		return false
	}
	s.active = true
	s.clock.Start()
	return true
}

// Pause deactivates play without losing state. A pair that is still being
// resolved cannot be paused.
func (s *Session) Pause() bool {
	if !s.active || s.phase == PhaseResolving {
		return false
	}
	s.active = false
	s.clock.Stop()
	return true
}

// Abandon deactivates the session in any phase without ending the game.
// The clock stops and a pending selection is turned face down.
func (s *Session) Abandon() bool {
	if !s.active && s.phase == PhaseIdle {
		return false
	}
	for _, i := range s.Selection() {
		if s.cards[i].State == CardRevealed {
			s.cards[i].State = CardHidden
		}
	}
	s.clearSelection()
	s.active = false
	s.clock.Stop()
	return true
}

// SelectCard reveals the card at index. It is a no-op returning false when
// the session is inactive, a pair is being resolved, the index is out of
// range or the card is not face down.
func (s *Session) SelectCard(index int) bool {
	if !s.active || s.phase == PhaseResolving {
		return false
	}
	if index < 0 || index >= len(s.cards) {
		return false
	}
	if s.cards[index].State != CardHidden {
		return false
	}

	s.cards[index].State = CardRevealed
	s.emit(EventFlip, index)

	if s.phase == PhaseIdle {
		s.selection[0] = index
		s.phase = PhaseOneSelected
		return true
	}

	s.selection[1] = index
	s.phase = PhaseResolving
	s.resolveTimer = 0
	s.settleTimer = 0
	s.compared = false
	s.mismatched = false
	s.moves++
	s.rescore()
	return true
}

// ResolveSelection compares the two selected cards. A match is applied at
// once and may end the game; a mismatch leaves both cards face up until
// Tick has accumulated the settle delay. Calling it with no pending pair,
// or a second time for the same pair, does nothing.
func (s *Session) ResolveSelection() bool {
	if s.phase != PhaseResolving || s.compared || s.won {
		return false
	}
	s.compared = true

	a, b := s.selection[0], s.selection[1]
	if s.cards[a].Symbol != s.cards[b].Symbol {
		s.mismatched = true
		s.emit(EventMismatch, a, b)
		return true
	}

	s.cards[a].State = CardMatched
	s.cards[b].State = CardMatched
	s.matched++
	s.emit(EventMatch, a, b)
	s.clearSelection()
	s.rescore()

	if s.matched >= s.layout.Pairs && !s.won {
		s.won = true
		s.finish(s.score)
		s.emit(EventWin)
	}
	return true
}

// Surrender ends an active game as lost, keeping half the current score.
func (s *Session) Surrender() bool {
	if !s.active {
		return false
	}
	s.rescore()
	s.finish(SurrenderScore(s.score))
	s.emit(EventLose)
	return true
}

// Tick advances play time and the resolution timers by dt.
// Nothing happens while the session is inactive.
func (s *Session) Tick(dt time.Duration) {
	if !s.active {
		return
	}
	s.clock.Advance(dt)

	if s.phase == PhaseResolving {
		switch {
		case !s.compared:
			s.resolveTimer += dt
			if s.resolveTimer >= s.rules.FlipDelay {
				s.ResolveSelection()
			}
		case s.mismatched:
			s.settleTimer += dt
			if s.settleTimer >= s.rules.SettleDelay {
				s.settle()
			}
		}
	}

	if s.active {
		s.rescore()
	}
}

// settle turns a mismatched pair face down and makes both clickable again.
func (s *Session) settle() {
	a, b := s.selection[0], s.selection[1]
	for _, i := range []int{a, b} {
		if s.cards[i].State == CardRevealed {
			s.cards[i].State = CardHidden
		}
	}
	s.emit(EventHide, a, b)
	s.clearSelection()
}

func (s *Session) finish(final int) {
	s.active = false
	s.finished = true
	s.clock.Stop()
	s.finalScore = final
}

func (s *Session) clearSelection() {
	s.selection = [2]int{-1, -1}
	s.phase = PhaseIdle
	s.resolveTimer = 0
	s.settleTimer = 0
	s.compared = false
	s.mismatched = false
}

func (s *Session) rescore() {
	s.score = s.rules.Score.Score(s.matched, s.moves, s.layout.Pairs, s.difficulty)
}

func (s *Session) emit(kind EventKind, cards ...int) {
	s.events = append(s.events, Event{Kind: kind, Cards: cards})
}

// Events returns the events emitted since the last call and clears them.
func (s *Session) Events() []Event {
	evts := s.events
	s.events = nil
	return evts
}

// ID returns the identifier assigned at the last Reset.
func (s *Session) ID() string { return s.id }

// Difficulty returns the difficulty of the current deck.
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// Theme returns the theme of the current deck.
func (s *Session) Theme() Theme { return s.theme }

// Layout returns the board dimensions.
func (s *Session) Layout() Layout { return s.layout }

// Cards returns a copy of the deck in board order.
func (s *Session) Cards() []Card {
	out := make([]Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// Card returns the card at index.
func (s *Session) Card(index int) (Card, bool) {
	if index < 0 || index >= len(s.cards) {
		return Card{}, false
	}
	return s.cards[index], true
}

// Phase returns the selection sub-state.
func (s *Session) Phase() Phase { return s.phase }

// Selection returns the indices of the selected cards, in click order.
func (s *Session) Selection() []int {
	switch s.phase {
	case PhaseOneSelected:
		return []int{s.selection[0]}
	case PhaseResolving:
		return []int{s.selection[0], s.selection[1]}
	default:
		return nil
	}
}

// Moves returns the number of completed two-card turns.
func (s *Session) Moves() int { return s.moves }

// MatchedPairs returns the number of pairs found.
func (s *Session) MatchedPairs() int { return s.matched }

// Active reports whether play is running.
func (s *Session) Active() bool { return s.active }

// Won reports whether every pair was found.
func (s *Session) Won() bool { return s.won }

// Finished reports whether the game ended by win or surrender.
func (s *Session) Finished() bool { return s.finished }

// Score returns the live score, frozen once the game ends.
func (s *Session) Score() int { return s.score }

// Elapsed returns the accrued play time.
func (s *Session) Elapsed() time.Duration { return s.clock.Elapsed() }

// Progress returns the fraction of pairs found, in [0, 1].
func (s *Session) Progress() float64 {
	if s.layout.Pairs == 0 {
		return 0
	}
	return float64(s.matched) / float64(s.layout.Pairs)
}

// Result returns the final figures. Score is the finalized score once the
// game has ended and the live score otherwise.
func (s *Session) Result() Result {
	score := s.score
	if s.finished {
		score = s.finalScore
	}
	return Result{
		Score:   score,
		Moves:   s.moves,
		Pairs:   s.matched,
		Elapsed: s.clock.Elapsed(),
		Won:     s.won,
	}
}
