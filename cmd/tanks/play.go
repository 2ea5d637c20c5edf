package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tanks/internal/core"
	"github.com/vovakirdan/tui-tanks/internal/platform/tui"
	"github.com/vovakirdan/tui-tanks/internal/registry"
	"github.com/vovakirdan/tui-tanks/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: tanks).

Modes:
  tanks           - Endless arcade rounds on generated arenas
  tanks_campaign  - Numbered levels, progress is saved
  tanks_classic   - Numbered levels with a base to defend

Controls:
  Arrows/WASD  - Drive
  Space/Enter  - Fire
  P            - Pause
  R            - Restart (after game over)
  Esc          - Back (when paused or over)
  Q/Ctrl+C     - Quit

Examples:
  tanks play
  tanks play tanks_campaign --difficulty easy
  tanks play tanks_classic --config ./my-tanks.yaml
  tanks play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "tanks"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'tanks list' to see available modes", gameID)
	}

	logger, closeLog := newLogger(true)
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game, err := registry.Create(gameID, gameOptions(logger, store, flagDifficulty))
	if err != nil {
		return err
	}

	logger.Info("starting game", "mode", gameID, "difficulty", flagDifficulty, "seed", flagSeed)
	if _, err := tui.Run(game, store, logger, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the database. Games still run without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, progress will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func gameOptions(logger *log.Logger, store *storage.Store, difficulty string) registry.Options {
	return registry.Options{
		ConfigPath: flagConfig,
		Difficulty: difficulty,
		LevelsDir:  flagLevelsDir,
		Logger:     logger,
		Store:      store,
	}
}
