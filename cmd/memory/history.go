package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history <name>",
	Short: "Show a player's best games",
	Long: `Display the best games of one player. Names are matched exactly.

Examples:
  memory history alice
  memory history "Bob Smith"`,
	Args: cobra.ExactArgs(1),
	Run:  runHistory,
}

func runHistory(_ *cobra.Command, args []string) {
	name := args[0]
	cfg := mustLoadConfig()

	// Open score storage
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	records, err := store.PlayerHistory(name)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best games - %s\n", name)
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No saved games for this player.")
		return
	}

	printRecords(records, false)
}
