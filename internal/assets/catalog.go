// Package assets discovers the card faces available for each theme.
package assets

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-memory/internal/memory"
)

// Catalog resolves theme symbols from an image directory, falling back to
// configured glyphs.
type Catalog struct {
	dir    string
	exts   map[string]bool
	glyphs map[string][]string
	logger *log.Logger
}

// NewCatalog creates a catalog rooted at dir. Extensions are matched
// case-insensitively; glyphs are keyed by theme folder name.
// A nil logger discards output.
func NewCatalog(dir string, extensions []string, glyphs map[string][]string, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = true
	}
	return &Catalog{dir: dir, exts: exts, glyphs: glyphs, logger: logger}
}

// Source reports where a theme's symbols came from.
type Source int

const (
	SourceNone Source = iota
	SourceImages
	SourceGlyphs
)

func (s Source) String() string {
	switch s {
	case SourceImages:
		return "images"
	case SourceGlyphs:
		return "glyphs"
	default:
		return "placeholders"
	}
}

// Symbols returns the symbols for theme. It never fails: an empty result
// means the deck builder should use placeholders.
func (c *Catalog) Symbols(theme memory.Theme) []string {
	syms, _ := c.Lookup(theme)
	return syms
}

// Lookup is Symbols plus the source the symbols were taken from.
func (c *Catalog) Lookup(theme memory.Theme) ([]string, Source) {
	if images := c.scan(theme); len(images) > 0 {
		c.logger.Debug("loaded theme images", "theme", theme, "count", len(images))
		return images, SourceImages
	}
	if g := c.glyphs[theme.Folder()]; len(g) > 0 {
		c.logger.Debug("using glyph fallback", "theme", theme, "count", len(g))
		out := make([]string, len(g))
		copy(out, g)
		return out, SourceGlyphs
	}
	c.logger.Warn("no symbols for theme, using placeholders", "theme", theme)
	return nil, SourceNone
}

// scan lists image files in <dir>/<theme folder>, sorted by name.
func (c *Catalog) scan(theme memory.Theme) []string {
	if c.dir == "" {
		return nil
	}
	folder := filepath.Join(c.dir, theme.Folder())
	entries, err := os.ReadDir(folder)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Warn("cannot read theme folder", "path", folder, "err", err)
		}
		return nil
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !c.exts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		out = append(out, filepath.Join(folder, e.Name()))
	}
	sort.Strings(out)
	return out
}

// Label returns a short printable name for a symbol: the file name without
// extension for image paths, the symbol itself otherwise.
func Label(symbol string) string {
	if !strings.ContainsRune(symbol, filepath.Separator) && filepath.Ext(symbol) == "" {
		return symbol
	}
	base := filepath.Base(symbol)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
