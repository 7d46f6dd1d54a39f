package memory

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func symbolCounts(cards []Card) map[string]int {
	counts := make(map[string]int)
	for _, c := range cards {
		counts[c.Symbol]++
	}
	return counts
}

func TestBuildDeckPairsForAllDifficulties(t *testing.T) {
	themeSizes := map[string][]string{
		"empty":   nil,
		"short":   {"cat", "dog", "fox"},
		"single":  {"cat"},
		"plenty":  PlaceholderSymbols(ThemeAnimals, 30),
		"repeats": {"cat", "cat", "dog", "", "dog"},
	}

	for _, d := range Difficulties() {
		for name, symbols := range themeSizes {
			t.Run(d.String()+"/"+name, func(t *testing.T) {
				layout := d.Layout()
				cards := BuildDeck(layout, ThemeAnimals, symbols, rand.New(rand.NewSource(7)))

				require.Len(t, cards, layout.Rows*layout.Cols)
				counts := symbolCounts(cards)
				assert.Len(t, counts, layout.Pairs)
				for key, n := range counts {
					assert.Equalf(t, 2, n, "symbol %q", key)
				}
				for _, c := range cards {
					assert.Equal(t, CardHidden, c.State)
					assert.Equal(t, ThemeAnimals, c.Theme)
				}
			})
		}
	}
}

func TestBuildDeckIDsAreUnique(t *testing.T) {
	cards := BuildDeck(DifficultyExpert.Layout(), ThemeFruits, []string{"apple"}, rand.New(rand.NewSource(1)))

	seen := make(map[int]bool)
	for _, c := range cards {
		assert.Falsef(t, seen[c.ID], "duplicate id %d", c.ID)
		seen[c.ID] = true
	}
}

func TestBuildDeckReusedFacesCarryVariant(t *testing.T) {
	cards := BuildDeck(DifficultyEasy.Layout(), ThemeEmoji, []string{"a", "b"}, rand.New(rand.NewSource(3)))

	variants := make(map[string]map[int]bool)
	for _, c := range cards {
		if variants[c.Face] == nil {
			variants[c.Face] = make(map[int]bool)
		}
		variants[c.Face][c.Variant] = true
	}
	require.Len(t, variants, 2)
	// 6 pairs over 2 faces: three rounds each
	assert.Len(t, variants["a"], 3)
	assert.Len(t, variants["b"], 3)
}

func TestShuffleIsPermutation(t *testing.T) {
	symbols := PlaceholderSymbols(ThemeSymbols, 8)
	layout := DifficultyMedium.Layout()

	var want []string
	for _, s := range symbols {
		want = append(want, s, s)
	}
	sort.Strings(want)

	for seed := int64(0); seed < 20; seed++ {
		cards := BuildDeck(layout, ThemeSymbols, symbols, rand.New(rand.NewSource(seed)))
		got := make([]string, 0, len(cards))
		for _, c := range cards {
			got = append(got, c.Symbol)
		}
		sort.Strings(got)
		assert.Equal(t, want, got)
	}
}

func TestBuildDeckDeterministicWithSeed(t *testing.T) {
	layout := DifficultyHard.Layout()
	a := BuildDeck(layout, ThemeMemes, nil, rand.New(rand.NewSource(42)))
	b := BuildDeck(layout, ThemeMemes, nil, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestNormalizeDeck(t *testing.T) {
	base := []Card{{ID: 0, Symbol: "a"}, {ID: 1, Symbol: "a"}, {ID: 2, Symbol: "b"}}

	t.Run("truncate", func(t *testing.T) {
		out := normalizeDeck(append([]Card(nil), base...), 2)
		assert.Len(t, out, 2)
	})

	t.Run("pad", func(t *testing.T) {
		out := normalizeDeck(append([]Card(nil), base...), 5)
		require.Len(t, out, 5)
		assert.Equal(t, 3, out[3].ID)
		assert.Equal(t, 4, out[4].ID)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, normalizeDeck(nil, 4))
	})
}

func TestDifficultyAndThemeCycle(t *testing.T) {
	assert.Equal(t, DifficultyMedium, DifficultyEasy.Next())
	assert.Equal(t, DifficultyEasy, DifficultyExpert.Next())
	assert.Equal(t, DifficultyExpert, DifficultyEasy.Previous())

	assert.Equal(t, ThemeFruits, ThemeAnimals.Next())
	assert.Equal(t, ThemeAnimals, ThemeSymbols.Next())
	assert.Equal(t, ThemeSymbols, ThemeAnimals.Previous())

	for _, d := range Difficulties() {
		l := d.Layout()
		assert.Equal(t, 2*l.Pairs, l.Cards(), d.String())
	}
}

func TestParseDifficultyAndTheme(t *testing.T) {
	d, err := ParseDifficulty("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, d)

	_, err = ParseDifficulty("insane")
	assert.Error(t, err)

	th, err := ParseTheme("EMOJI")
	require.NoError(t, err)
	assert.Equal(t, ThemeEmoji, th)

	_, err = ParseTheme("cars")
	assert.Error(t, err)
}
