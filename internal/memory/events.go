package memory

// EventKind identifies something that happened in a session.
type EventKind int

const (
	EventFlip     EventKind = iota // a card was revealed
	EventMatch                     // the two selected cards matched
	EventMismatch                  // the two selected cards differ
	EventHide                      // mismatched cards were turned face down again
	EventWin                       // every pair was found
	EventLose                      // the player surrendered
)

func (k EventKind) String() string {
	switch k {
	case EventFlip:
		return "flip"
	case EventMatch:
		return "match"
	case EventMismatch:
		return "mismatch"
	case EventHide:
		return "hide"
	case EventWin:
		return "win"
	case EventLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Event is emitted by a Session and collected with Session.Events.
// Cards holds the deck indices involved, if any.
type Event struct {
	Kind  EventKind
	Cards []int
}
