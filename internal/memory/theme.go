package memory

import (
	"fmt"
	"strings"
)

// Theme selects the set of symbols shown on card faces.
type Theme int

const (
	ThemeAnimals Theme = iota
	ThemeFruits
	ThemeEmoji
	ThemeMemes
	ThemeSymbols

	themeCount = 5
)

// Themes lists every theme in cycling order.
func Themes() []Theme {
	return []Theme{ThemeAnimals, ThemeFruits, ThemeEmoji, ThemeMemes, ThemeSymbols}
}

// Next returns the following theme, wrapping around.
func (t Theme) Next() Theme {
	return cycle(t, themeCount, 1)
}

// Previous returns the preceding theme, wrapping around.
func (t Theme) Previous() Theme {
	return cycle(t, themeCount, -1)
}

// String returns the display name.
func (t Theme) String() string {
	switch t {
	case ThemeAnimals:
		return "Animals"
	case ThemeFruits:
		return "Fruits"
	case ThemeEmoji:
		return "Emoji"
	case ThemeMemes:
		return "Memes"
	case ThemeSymbols:
		return "Symbols"
	default:
		return "Unknown"
	}
}

// Folder returns the asset folder name holding the theme's images.
func (t Theme) Folder() string {
	if t < 0 || t >= themeCount {
		return "animals"
	}
	return strings.ToLower(t.String())
}

// ParseTheme accepts a case-insensitive theme name.
func ParseTheme(s string) (Theme, error) {
	for _, t := range Themes() {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return ThemeAnimals, fmt.Errorf("memory: unknown theme %q", s)
}
