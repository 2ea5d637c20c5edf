package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tanks/internal/registry"
	"github.com/vovakirdan/tui-tanks/internal/storage"
)

var flagRecent int

var statsCmd = &cobra.Command{
	Use:   "stats [mode]",
	Short: "Show session statistics",
	Long: `Summarize recorded play sessions: games, kills, deaths and scores.
Without a mode, totals for every mode are shown.

Examples:
  tanks stats
  tanks stats tanks_classic
  tanks stats --recent 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 0, "Also list the most recent sessions")
}

func runStats(_ *cobra.Command, args []string) error {
	mode := ""
	if len(args) > 0 {
		mode = args[0]
		if !registry.Exists(mode) {
			return fmt.Errorf("unknown mode %q, run 'tanks list' to see available modes", mode)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if mode != "" {
		st, err := store.Stats(mode)
		if err != nil {
			return err
		}
		printStats(mode, st)
	} else {
		all, err := store.AllStats()
		if err != nil {
			return err
		}
		for _, info := range registry.List() {
			if st, ok := all[info.ID]; ok {
				printStats(info.ID, st)
				fmt.Println()
			}
		}
		total, err := store.Stats("")
		if err != nil {
			return err
		}
		printStats("all modes", total)
	}

	if flagRecent > 0 {
		sessions, err := store.RecentSessions(flagRecent)
		if err != nil {
			return err
		}
		fmt.Println()
		printSessions(sessions, mode)
	}
	return nil
}

func printStats(label string, st *storage.ModeStats) {
	fmt.Printf("%s\n", label)
	if st.Games == 0 {
		fmt.Println("  No sessions recorded yet.")
		return
	}
	fmt.Printf("  Games:       %d\n", st.Games)
	fmt.Printf("  Kills:       %d\n", st.Kills)
	fmt.Printf("  Deaths:      %d\n", st.Deaths)
	fmt.Printf("  High score:  %d\n", st.HighScore)
	fmt.Printf("  Avg score:   %.1f\n", st.AvgScore)
	fmt.Printf("  Best level:  %d\n", st.BestLevel)
	fmt.Printf("  Last played: %s\n", st.LastPlayed.Format("2006-01-02 15:04"))
}

func printSessions(sessions []storage.SessionRecord, mode string) {
	fmt.Println("Recent sessions:")
	fmt.Printf("  %-16s  %-10s  %-8s  %-5s  %-7s  %-20s  %s\n",
		"Mode", "Difficulty", "Score", "Level", "K/D", "Outcome", "Duration")
	for _, s := range sessions {
		if mode != "" && s.Mode != mode {
			continue
		}
		fmt.Printf("  %-16s  %-10s  %-8d  %-5d  %-7s  %-20s  %s\n",
			s.Mode, s.Difficulty, s.Score, s.Level,
			fmt.Sprintf("%d/%d", s.Kills, s.Deaths), s.Outcome,
			(time.Duration(s.Duration) * time.Second).String())
	}
}
