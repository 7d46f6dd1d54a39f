// memory is a terminal card-matching game: flip two cards at a time and find
// every pair with as few moves as possible.
//
// Usage:
//
//	memory                   - Play (same as "memory play")
//	memory play              - Play in this terminal
//	memory scores            - Show the leaderboard
//	memory history <name>    - Show one player's best games
//	memory themes            - List themes and where their faces come from
//	memory serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>       - Config file (default search: ~/.memory/config.yaml, ./configs/memory.yaml)
//	--db <path>           - Database path (default from config: ~/.memory/memory_game.db)
//	--difficulty <name>   - Default difficulty: easy, medium, hard, expert
//	--theme <name>        - Default theme: animals, fruits, emoji, memes, symbols
//	--fps <rate>          - Tick rate (default from config: 60)
//	--seed <value>        - RNG seed for reproducible decks
//	--log-file <path>     - Write logs to a file while playing
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDBPath     string
	flagDifficulty string
	flagTheme      string
	flagFPS        int
	flagSeed       int64
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory - a card-matching game for your terminal",
	Long: `Memory is a terminal card-matching game. Cards are dealt face down;
flip two at a time and find every pair. Fewer moves mean a higher score.

Available commands:
  play     - Play in this terminal (default)
  scores   - View the leaderboard
  history  - View one player's best games
  themes   - List card themes
  serve    - Start SSH server for remote play

Examples:
  memory
  memory --difficulty hard --theme fruits
  memory scores --limit 20
  memory history alice
  memory serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Default difficulty: easy, medium, hard, expert")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Default theme: animals, fruits, emoji, memes, symbols")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(serveCmd)
}
