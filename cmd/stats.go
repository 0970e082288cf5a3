package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-section statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, cleanup, err := setup(cmd, storeAlways)
		defer cleanup()
		if err != nil {
			return err
		}

		stats, err := e.store.EventRepo().SectionStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(stats) == 0 {
			fmt.Fprintln(out, "No sessions recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "%-16s  %8s  %8s  %8s  %6s  %6s  %8s\n",
			"Section", "Sessions", "Answered", "Accuracy", "Best", "Streak", "Timeouts")
		fmt.Fprintln(out, strings.Repeat("─", 74))

		var sessions, answered, correct int
		for _, s := range stats {
			fmt.Fprintf(out, "%-16s  %8d  %8d  %7.0f%%  %6d  %6d  %8d\n",
				sectionTitle(s.Section), s.Sessions, s.Answered, s.Accuracy()*100,
				s.BestScore, s.BestStreak, s.Timeouts)
			sessions += s.Sessions
			answered += s.Answered
			correct += s.Correct
		}

		fmt.Fprintln(out, strings.Repeat("─", 74))
		acc := 0.0
		if answered > 0 {
			acc = float64(correct) / float64(answered) * 100
		}
		fmt.Fprintf(out, "%-16s  %8d  %8d  %7.0f%%\n", "TOTAL", sessions, answered, acc)
		return nil
	},
}
