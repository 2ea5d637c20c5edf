// tanks is a tile-grid tank battle for the terminal.
//
// Usage:
//
//	tanks list                     - List game modes
//	tanks play <mode>              - Play a mode
//	tanks menu                     - Pick modes interactively
//	tanks serve                    - Start SSH server for remote play
//	tanks scores <mode>            - Show high scores for a mode
//	tanks stats [mode]             - Show session statistics
//	tanks levels list              - List built-in and override levels
//	tanks levels validate <file>   - Check a level file
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.tanks/tanks.db)
//	--config <path>        - Custom tanks.yaml
//	--difficulty <preset>  - easy, normal, hard, hardcore
//	--levels-dir <path>    - Directory overriding built-in levels
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register game modes
	_ "github.com/vovakirdan/tui-tanks/internal/games/tanks"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogPath    string
	flagVerbose    bool
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tanks",
	Short: "TUI Tanks - Grid tank battles in your terminal",
	Long: `TUI Tanks is a terminal tank battle on a tile grid. Destroy the
opponent quota to clear a level; in classic mode, keep your base alive.

Available commands:
  list     - Show game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  stats    - View session statistics
  levels   - Inspect and validate level files

Examples:
  tanks list
  tanks play tanks_campaign --difficulty hard
  tanks menu
  tanks serve --ssh :2222
  tanks levels validate ./my_level.txt`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.tanks/tanks.db", "Path to progress and scores database")
	pf.StringVar(&flagLogPath, "log", "~/.tanks/tanks.log", "Log file used while a game owns the terminal")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&flagConfig, "config", "", "Path to custom tanks YAML config")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, hardcore")
	pf.StringVar(&flagLevelsDir, "levels-dir", "", "Directory overriding built-in levels")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(levelsCmd)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(p string) string {
	if rest, ok := strings.CutPrefix(p, "~"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return p
}

// newLogger builds the process logger. The alt screen owns the terminal
// during play, so interactive commands log to a file instead of stderr.
// The returned closer releases the file, if one was opened.
func newLogger(toFile bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closer := func() {}

	if toFile {
		w = io.Discard
		p := expandHome(flagLogPath)
		if p != "" {
			if err := os.MkdirAll(filepath.Dir(p), 0o755); err == nil {
				f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err == nil {
					w = f
					closer = func() { f.Close() }
				}
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tanks",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer
}
