package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tanks/internal/config"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks/core"
	"github.com/vovakirdan/tui-tanks/internal/games/tanks/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Inspect and validate level files",
	Long: `Level files are text grids, one row per line:

  .  empty     #  brick    @  steel
  ~  water     %  foliage

An optional roster line lists opponents in spawn order:

  ENEMIES:bbffas    (b basic, f fast, a armored, s sniper)

Files named <set>/level_<n>.txt under --levels-dir override built-in levels.`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List levels and whether they pass validation",
	Args:  cobra.NoArgs,
	RunE:  runLevelsList,
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check that level files parse and every spawn point has room",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLevelsValidate,
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsValidateCmd)
}

// arenaSetup returns the grid size and limits levels are checked against.
func arenaSetup() (cols, rows int, params core.ArenaParams, err error) {
	cfg, err := config.LoadTanks(flagConfig)
	if err != nil {
		return 0, 0, params, err
	}
	params = core.ArenaParams{
		GenAttempts:   cfg.Arena.GenAttempts,
		MinArea:       cfg.Arena.MinArea,
		MinExitRow:    cfg.Arena.MinExitRow,
		DefaultRoster: cfg.Arena.DefaultRoster,
	}
	return cfg.Arena.Cols, cfg.Arena.Rows, params, nil
}

func levelsDir() string {
	if flagLevelsDir != "" {
		return flagLevelsDir
	}
	cfg, err := config.LoadTanks(flagConfig)
	if err != nil {
		return ""
	}
	return cfg.Levels.Dir
}

func runLevelsList(_ *cobra.Command, _ []string) error {
	cols, rows, params, err := arenaSetup()
	if err != nil {
		return err
	}

	all, err := levels.NewLoader(levelsDir()).LoadAll()
	if err != nil {
		return err
	}

	fmt.Printf("  %-20s  %-7s  %-8s  %s\n", "Level", "Roster", "Source", "Status")
	fmt.Printf("  %-20s  %-7s  %-8s  %s\n", "-----", "------", "------", "------")
	for _, lvl := range all {
		source := "built-in"
		if lvl.FilePath != "" {
			source = "override"
		}
		d, err := levels.Check(lvl.Text, cols, rows, params)
		fmt.Printf("  %-20s  %-7d  %-8s  %s\n", lvl.ID, len(d.Roster), source, status(err))
	}
	return nil
}

func runLevelsValidate(_ *cobra.Command, args []string) error {
	cols, rows, params, err := arenaSetup()
	if err != nil {
		return err
	}

	loader := levels.NewLoader("")
	failed := 0
	for _, p := range args {
		lvl, err := loader.LoadFile(p)
		if err != nil {
			fmt.Printf("%s: %v\n", p, err)
			failed++
			continue
		}
		d, err := levels.Check(lvl.Text, cols, rows, params)
		if err != nil {
			failed++
		}
		fmt.Printf("%s: %s (%d rows, %d opponents", p, status(err), d.Rows, len(d.Roster))
		if d.RosterDefaulted {
			fmt.Print(", default roster")
		}
		fmt.Println(")")
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d level files failed validation", failed, len(args))
	}
	return nil
}

func status(err error) string {
	var ve core.ValidationError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &ve):
		return ve.Code + ": " + ve.Message
	default:
		return err.Error()
	}
}
