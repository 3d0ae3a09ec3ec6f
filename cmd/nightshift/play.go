package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/nightshift/internal/config"
	"github.com/vovakirdan/nightshift/internal/games/runner"
	"github.com/vovakirdan/nightshift/internal/platform/tui"
	"github.com/vovakirdan/nightshift/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  A/D, Left/Right  - Switch lane
  W/Up/Space       - Jump (clears low barriers)
  S/Down           - Slide (passes under gates)
  P                - Pause
  Enter/R          - Run again (after game over)
  Esc/B            - Pause, or leave when paused or finished
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start, gentle speed-up
  normal - Default pace
  hard   - Faster start, steep speed-up
  fixed  - No speed-up at all

Examples:
  nightshift play runner
  nightshift play runner --difficulty hard
  nightshift play runner --config ./my-runner.yaml
  nightshift play runner --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// configureGames passes --config and --difficulty to the games that read them.
// A broken custom config is reported before the terminal switches screens.
func configureGames() {
	if flagDifficulty != "" && !config.IsKnownPreset(flagDifficulty) {
		fail("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadRunner(flagConfig); err != nil {
			fail("%v", err)
		}
	}
	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'nightshift list' to see available games.", gameID)
	}
	configureGames()

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	store := openStoreOrWarn()
	runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
