package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/flow"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Arrows/hjkl  - Move the card cursor
  Enter/Space  - Flip the card under the cursor (or click it)
  P/Esc        - Pause
  R            - Restart with a new deck
  S            - Surrender (keeps half the score)
  M            - Back to the main menu (the game is not saved)
  Ctrl+C       - Quit

Examples:
  memory play
  memory play --difficulty expert --theme emoji
  memory play --seed 42 --log-file ./memory.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	w, closeLog, err := playLogWriter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(w, cfg.Log.Level, "memory")

	// Open score storage
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("storage unavailable", "path", cfg.Storage.Path, "err", err)
		// Continue without storage - game still works
		store = nil
	}

	machine := flow.New(machineOptions(cfg, newCatalog(cfg, logger), gatewayOf(store), logger))

	width, height := 80, 24 // Defaults
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = tw
		height = th
	}

	runErr := tui.Run(machine, tui.Options{
		TickInterval: cfg.TickInterval(),
		Width:        width,
		Height:       height,
		Contact:      cfg.UI.Contact,
		Bell:         os.Stderr,
		Logger:       logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
