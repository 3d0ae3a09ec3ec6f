package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nightshift/internal/mediafx"
	"github.com/vovakirdan/nightshift/internal/platform/tui"
	"github.com/vovakirdan/nightshift/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game or the
Media Filter Lab. After a game ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  nightshift menu
  nightshift menu --fps 30
  nightshift menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	configureGames()

	store := openStoreOrWarn()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}
		cfg = menuResult.Config

		switch {
		case menuResult.Quit:
			return

		case menuResult.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if !goBack {
				return
			}

		case menuResult.Tool:
			seed := cfg.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			if _, labErr := tui.RunFilterLab(mediafx.ModeImage, seed, nil); labErr != nil {
				logger.Error("filter lab failed", "error", labErr)
			}

		default:
			game, createErr := registry.Create(menuResult.ID)
			if createErr != nil {
				logger.Error("cannot create game", "game", menuResult.ID, "error", createErr)
				continue
			}

			gameCfg := cfg
			if gameCfg.Seed == 0 {
				gameCfg.Seed = time.Now().UnixNano()
			}
			if runErr := tui.Run(game, store, gameCfg); runErr != nil {
				logger.Error("game failed", "game", menuResult.ID, "error", runErr)
			}
		}
	}
}
