package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/memory"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List card themes",
	Long: `Show every theme, where its card faces come from and how many there are.

Faces are read from <assets dir>/<theme>/ when the folder holds images.
Otherwise the configured glyphs are used, and failing that numbered
placeholders. Themes with fewer faces than a board needs repeat them.

Examples:
  memory themes
  memory themes --config ./memory.yaml`,
	Args: cobra.NoArgs,
	Run:  runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	catalog := newCatalog(cfg, log.New(io.Discard))

	fmt.Printf("Assets directory: %s\n", cfg.Assets.Dir)
	fmt.Println()

	fmt.Printf("  %-8s  %-12s  %-6s  %s\n", "Theme", "Source", "Faces", "Repeats from")
	fmt.Printf("  %-8s  %-12s  %-6s  %s\n", "-----", "------", "-----", "------------")

	for _, t := range memory.Themes() {
		symbols, src := catalog.Lookup(t)
		fmt.Printf("  %-8s  %-12s  %-6d  %s\n", t.Folder(), src, len(symbols), repeatsFrom(len(symbols)))
	}
}

// repeatsFrom names the easiest difficulty whose board needs more pairs
// than there are faces.
func repeatsFrom(faces int) string {
	if faces == 0 {
		return "-"
	}
	for _, d := range memory.Difficulties() {
		if d.Layout().Pairs > faces {
			return d.String()
		}
	}
	return "never"
}
