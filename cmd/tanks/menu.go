package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tanks/internal/platform/tui"
	"github.com/vovakirdan/tui-tanks/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

After a game ends, Esc returns you to the menu to play again.

Controls:
  Up/Down/j/k      - Choose mode
  Left/Right/h/l   - Choose difficulty
  Enter/Space      - Play
  Tab              - Scoreboard
  Q                - Quit

Examples:
  tanks menu
  tanks menu --fps 30
  tanks menu --db ./tanks.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog := newLogger(true)
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	difficulty := flagDifficulty

	for {
		result, err := tui.RunMenu(store, cfg, difficulty)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = result.Config
		difficulty = result.Difficulty

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}
			continue
		}

		if result.GameID == "" {
			return nil
		}

		game, err := registry.Create(result.GameID, gameOptions(logger, store, difficulty))
		if err != nil {
			logger.Error("cannot create game", "mode", result.GameID, "err", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		logger.Info("starting game", "mode", result.GameID, "difficulty", difficulty)

		backToMenu, err := tui.Run(game, store, logger, cfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
