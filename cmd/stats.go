package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-player statistics from the journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		stats, err := s.EventRepo().PlayerStats(ctx)
		if err != nil {
			return fmt.Errorf("query player stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No players recorded yet.")
			return nil
		}

		fmt.Printf("%-16s  %8s  %8s  %6s  %7s  %6s  %6s  %6s  %s\n",
			"Player", "Sessions", "Attempts", "Quests", "Perfect", "Points", "Best%", "Badges", "Last played")
		fmt.Println(strings.Repeat("─", 100))

		for _, p := range stats {
			fmt.Printf("%-16s  %8d  %8d  %6d  %7d  %6d  %6.0f  %6d  %s\n",
				truncate(p.PlayerName, 16),
				p.Sessions, p.Attempts, p.QuestsCompleted, p.PerfectAttempts,
				p.TotalPoints, p.BestPercentage, p.Achievements,
				p.LastPlayed.Local().Format("2006-01-02 15:04"),
			)
		}

		total, err := s.TotalEvents(ctx)
		if err != nil {
			return fmt.Errorf("count events: %w", err)
		}
		fmt.Printf("\n%d players, %d journal events\n", len(stats), total)
		return nil
	},
}
