package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresRecent      bool
	flagScoresInteractive bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the session history",
	Long: `Display the best sessions (or the latest with --recent).

Score is the number of food items eaten in a run.

Examples:
  snake scores
  snake scores --recent --limit 5
  snake scores --interactive
  snake scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest sessions instead of the best")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse the history in a table view")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded sessions")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	switch {
	case flagScoresClear:
		n, err := store.ClearSessions(snake.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d sessions.\n", n)
		return nil

	case flagScoresInteractive:
		cfg := terminalConfig()
		_, err := tui.RunHistory(store, snake.ID, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	return printSessions(out, store, flagScoresRecent, flagScoresLimit)
}

// printSessions writes the session table and a stats summary.
func printSessions(out io.Writer, store *storage.Store, recent bool, limit int) error {
	var (
		sessions []storage.Session
		err      error
	)
	title := "Best Sessions"
	if recent {
		title = "Recent Sessions"
		sessions, err = store.RecentSessions(snake.ID, limit)
	} else {
		sessions, err = store.TopSessions(snake.ID, limit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s - Snake\n\n", title)

	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'snake play' to record the first one!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-6s  %-8s  %-12s  %s\n", "Rank", "Score", "Length", "Ticks", "Time", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-6s  %-8s  %-12s  %s\n", "----", "-----", "------", "-----", "----", "------", "----")
	for i, s := range sessions {
		fmt.Fprintf(out, "  %-4d  %-6d  %-6d  %-6d  %-8s  %-12s  %s\n",
			i+1, s.Score, s.Length, s.Ticks, s.Duration.Round(time.Second),
			s.Player, s.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(snake.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Sessions: %d  Average: %.1f  Longest: %d\n",
		stats.HighScore, stats.Sessions, stats.AvgScore, stats.LongestChain)
	return nil
}
