package memory

import (
	"fmt"
	"math/rand"
	"time"
)

// PlaceholderSymbols returns n synthetic faces for a theme with no assets.
func PlaceholderSymbols(theme Theme, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s-%02d", theme.Folder(), i+1)
	}
	return out
}

// BuildDeck creates a shuffled deck of layout.Cards() cards holding
// layout.Pairs pairs. Faces are taken from symbols in order, cycling through
// the list when it is shorter than the number of pairs; an empty list falls
// back to placeholder faces, so building never fails.
//
// A nil rng uses a time-seeded source.
func BuildDeck(layout Layout, theme Theme, symbols []string, rng *rand.Rand) []Card {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	faces := uniqueFaces(symbols)
	if len(faces) == 0 {
		faces = PlaceholderSymbols(theme, layout.Pairs)
	}

	cards := make([]Card, 0, layout.Cards())
	for i := 0; i < layout.Pairs; i++ {
		face := faces[i%len(faces)]
		variant := i / len(faces)
		key := face
		if variant > 0 {
			key = fmt.Sprintf("%s#%d", face, variant+1)
		}
		for range 2 {
			cards = append(cards, Card{
				ID:      len(cards),
				Symbol:  key,
				Face:    face,
				Variant: variant,
				Theme:   theme,
			})
		}
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return normalizeDeck(cards, layout.Cards())
}

// uniqueFaces drops empty and repeated entries, keeping first occurrences.
func uniqueFaces(symbols []string) []string {
	seen := make(map[string]bool, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// normalizeDeck forces the deck to exactly want cards, truncating or padding
// by cycling existing cards. BuildDeck emits the right count by
// construction, so this never changes a deck it produced.
func normalizeDeck(cards []Card, want int) []Card {
	if len(cards) == want {
		return cards
	}
	if len(cards) > want {
		return cards[:want]
	}
	if len(cards) == 0 {
		return cards
	}

	n := len(cards)
	nextID := 0
	for _, c := range cards {
		nextID = max(nextID, c.ID+1)
	}
	for len(cards) < want {
		src := cards[len(cards)%n]
		src.ID = nextID
		src.State = CardHidden
		nextID++
		cards = append(cards, src)
	}
	return cards
}
