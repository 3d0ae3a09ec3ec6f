package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nightshift/internal/registry"
	"github.com/vovakirdan/nightshift/internal/storage"
)

var (
	flagClear  bool
	flagRecent bool
	flagAll    bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game, the latest runs
with --recent, or every run with --all. --clear deletes the game's score
history. Without a game, a summary of every game is shown.

Examples:
  nightshift scores
  nightshift scores runner
  nightshift scores runner --recent --limit 5
  nightshift scores runner --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the game")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "List every run, highest first")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
}

func runScores(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fail("opening scores database: %v", err)
		}
		defer store.Close()

		stats, err := store.AllStats()
		if err != nil {
			fail("retrieving stats: %v", err)
		}
		writeSummary(os.Stdout, registry.List(), stats)
		return
	}

	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		fail("%v\nRun 'nightshift list' to see available games.", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		n, clearErr := store.ClearScores(gameID)
		if clearErr != nil {
			fail("clearing scores: %v", clearErr)
		}
		fmt.Printf("Cleared %d score(s) for %s.\n", n, game.Title())
		return
	}

	var scores []storage.ScoreEntry
	heading := "High Scores"
	switch {
	case flagAll:
		heading = "All Runs"
		scores, err = store.AllScores(gameID)
	case flagRecent:
		heading = "Recent Runs"
		scores, err = store.RecentScores(gameID, flagLimit)
	default:
		scores, err = store.TopScores(gameID, flagLimit)
	}
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("%s - %s\n", heading, game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'nightshift play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, statsErr := store.Stats(gameID); statsErr == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}

// writeSummary prints one line per registered game. Games without runs are
// listed with zero counts.
func writeSummary(w io.Writer, games []registry.GameInfo, stats map[string]*storage.GameStats) {
	fmt.Fprintf(w, "  %-20s  %-6s  %-8s  %s\n", "Game", "Runs", "Best", "Last played")
	fmt.Fprintf(w, "  %-20s  %-6s  %-8s  %s\n", "----", "----", "----", "-----------")
	for _, g := range games {
		st, ok := stats[g.ID]
		if !ok || st.GamesCount == 0 {
			fmt.Fprintf(w, "  %-20s  %-6d  %-8d  %s\n", g.Title, 0, 0, "never")
			continue
		}
		fmt.Fprintf(w, "  %-20s  %-6d  %-8d  %s\n", g.Title, st.GamesCount, st.HighScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
