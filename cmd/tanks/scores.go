package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tanks/internal/registry"
	"github.com/vovakirdan/tui-tanks/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top high scores for a mode, or for every mode.

Examples:
  tanks scores
  tanks scores tanks_campaign --limit 20
  tanks scores tanks --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of the given mode")
}

func runScores(_ *cobra.Command, args []string) error {
	var modes []registry.GameInfo
	if len(args) > 0 {
		info, ok := registry.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown mode %q, run 'tanks list' to see available modes", args[0])
		}
		modes = append(modes, info)
	} else {
		if flagScoresClear {
			return fmt.Errorf("--clear needs a mode")
		}
		modes = registry.List()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(modes[0].ID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", modes[0].Title)
		return nil
	}

	for i, info := range modes {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, info); err != nil {
			return err
		}
	}
	return nil
}

func printScores(store *storage.Store, info registry.GameInfo) error {
	scores, err := store.TopScores(info.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'tanks play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-10s  %s\n", "Rank", "Score", "Level", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-10s  %s\n", "----", "-----", "-----", "----------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-5d  %-10s  %s\n",
			i+1, entry.Score, entry.Level, entry.Difficulty, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", scores[0].Score)
	return nil
}
