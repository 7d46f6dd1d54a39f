package flow

import "github.com/vovakirdan/tui-memory/internal/memory"

// SignalKind identifies a notification for presentation collaborators.
type SignalKind int

const (
	SignalCardFlip SignalKind = iota
	SignalCardMatch
	SignalCardMismatch
	SignalCardHide
	SignalWin
	SignalLose
	SignalModeChanged
)

func (k SignalKind) String() string {
	switch k {
	case SignalCardFlip:
		return "card-flip"
	case SignalCardMatch:
		return "card-match"
	case SignalCardMismatch:
		return "card-mismatch"
	case SignalCardHide:
		return "card-hide"
	case SignalWin:
		return "game-win"
	case SignalLose:
		return "game-lose"
	case SignalModeChanged:
		return "mode-changed"
	default:
		return "unknown"
	}
}

// Signal is emitted synchronously to every subscribed Listener.
type Signal struct {
	Kind SignalKind

	// Mode and Previous are set on mode changes.
	Mode     Mode
	Previous Mode

	// Cards holds the deck indices involved in card signals.
	Cards []int
}

// Listener receives signals. It is called on the goroutine driving the
// machine and must not call back into it.
type Listener func(Signal)

func signalFor(e memory.Event) (SignalKind, bool) {
	switch e.Kind {
	case memory.EventFlip:
		return SignalCardFlip, true
	case memory.EventMatch:
		return SignalCardMatch, true
	case memory.EventMismatch:
		return SignalCardMismatch, true
	case memory.EventHide:
		return SignalCardHide, true
	case memory.EventWin:
		return SignalWin, true
	case memory.EventLose:
		return SignalLose, true
	default:
		return 0, false
	}
}
