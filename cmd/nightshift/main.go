// nightshift is a terminal arcade hosting the Night Shift Run endless runner
// and a media filter composer.
//
// Usage:
//
//	nightshift list              - List available games
//	nightshift play <game>       - Play a game
//	nightshift menu              - Start menu to pick games interactively
//	nightshift serve             - Start SSH server for remote play
//	nightshift scores <game>     - Show high scores for a game
//	nightshift filter            - Compose a CSS filter from sliders and presets
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/nightshift/internal/core"
	"github.com/vovakirdan/nightshift/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/nightshift/internal/games/runner"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

// logger reports non-fatal problems; fatal ones go through fail.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "nightshift"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nightshift",
	Short: "Night Shift - an endless runner and media lab in your terminal",
	Long: `Night Shift is a terminal arcade. Dodge barriers and gates in the
three-lane endless runner, or compose image and video filters in the lab.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  filter   - Build a CSS filter string

Examples:
  nightshift list
  nightshift play runner
  nightshift menu
  nightshift serve --ssh :2222
  nightshift scores runner
  nightshift filter --preset noir`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(filterCmd)
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// openStoreOrWarn opens the score database; failure only disables persistence.
func openStoreOrWarn() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
