package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/memory"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	flagLimit int
	flagStats bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best games across all players.

Examples:
  memory scores
  memory scores --limit 25
  memory scores --stats`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of records to show")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Also show per-difficulty statistics")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	if flagLimit <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --limit must be positive")
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	records, err := store.TopScores(flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Leaderboard")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'memory' to set the first high score!")
		return
	}

	printRecords(records, true)

	if flagStats {
		stats, err := store.StatsByDifficulty()
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
		printStats(stats)
	}

	fmt.Println()
	if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %s\n", humanize.Comma(int64(best)))
	}
}

// printRecords prints a ranked record table. The player column is left out
// when every row belongs to the same player.
func printRecords(records []storage.GameRecord, withPlayer bool) {
	if withPlayer {
		fmt.Printf("  %-4s  %-20s  %-8s  %-6s  %-6s  %-7s  %s\n", "Rank", "Player", "Score", "Moves", "Time", "Level", "Played")
		fmt.Printf("  %-4s  %-20s  %-8s  %-6s  %-6s  %-7s  %s\n", "----", "------", "-----", "-----", "----", "-----", "------")
	} else {
		fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-7s  %s\n", "Rank", "Score", "Moves", "Time", "Level", "Played")
		fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-7s  %s\n", "----", "-----", "-----", "----", "-----", "------")
	}

	for i, r := range records {
		score := humanize.Comma(int64(r.Score))
		elapsed := memory.FormatElapsed(r.Elapsed)
		played := humanize.Time(r.Date)
		if withPlayer {
			fmt.Printf("  %-4d  %-20s  %-8s  %-6d  %-6s  %-7s  %s\n", i+1, r.PlayerName, score, r.Moves, elapsed, r.Difficulty, played)
		} else {
			fmt.Printf("  %-4d  %-8s  %-6d  %-6s  %-7s  %s\n", i+1, score, r.Moves, elapsed, r.Difficulty, played)
		}
	}
}

// printStats prints aggregates in difficulty order, skipping levels nobody played.
func printStats(stats map[string]*storage.DifficultyStats) {
	fmt.Printf("  %-7s  %-6s  %-8s  %-8s  %-6s  %s\n", "Level", "Games", "Best", "Average", "Fast", "Last played")
	fmt.Printf("  %-7s  %-6s  %-8s  %-8s  %-6s  %s\n", "-----", "-----", "----", "-------", "----", "-----------")

	for _, d := range memory.Difficulties() {
		s, ok := stats[d.String()]
		if !ok {
			continue
		}
		fmt.Printf("  %-7s  %-6s  %-8s  %-8s  %-6s  %s\n",
			s.Difficulty,
			humanize.Comma(int64(s.GamesCount)),
			humanize.Comma(int64(s.HighScore)),
			humanize.CommafWithDigits(s.AvgScore, 1),
			memory.FormatElapsed(s.BestTime),
			humanize.Time(s.LastPlayed),
		)
	}
}
