package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/meteor-glider/internal/platform/tui"
	"github.com/vovakirdan/meteor-glider/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an interactive mode picker",
	Long: `Start Meteor Glider in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, press B or Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab/T        - Scoreboard
  Q            - Quit

Examples:
  glider menu
  glider menu --fps 30
  glider menu --difficulty easy
  glider menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	store := openStore(logger)
	applyGameFlags(logger)

	cfg := runtimeConfig()
	fixedSeed := cfg.Seed != 0

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// A --seed replays the same run every time; otherwise each game is fresh
		if !fixedSeed {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Debug("starting game", "mode", gameID, "seed", cfg.Seed)
		result, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			logger.Error("game failed", "mode", gameID, "error", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		cfg.ScreenW, cfg.ScreenH = result.Config.ScreenW, result.Config.ScreenH

		if !result.BackToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
