package memory

// CardState is the reveal state of a card.
type CardState int

const (
	CardHidden CardState = iota
	CardRevealed
	CardMatched
)

func (s CardState) String() string {
	switch s {
	case CardHidden:
		return "hidden"
	case CardRevealed:
		return "revealed"
	case CardMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// Card is a single card on the board.
type Card struct {
	ID int

	// Symbol is the pair key: exactly two cards in a deck share it.
	Symbol string

	// Face is the theme entry (image path or glyph) drawn on the card.
	// When a theme has fewer entries than the board needs pairs, faces are
	// reused and Variant counts the reuse round (0 for the first).
	Face    string
	Variant int

	Theme Theme
	State CardState
}
