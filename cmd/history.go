package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/questland/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent quest attempts from the journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		player, _ := cmd.Flags().GetString("player")

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryAttemptEvents(cmd.Context(), store.QueryOpts{Limit: limit, Player: player})
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-16s  %-28s  %5s  %5s  %6s  %s\n",
			"ID", "Timestamp", "Player", "Quest", "Score", "%", "Points", "Grade")
		fmt.Println(strings.Repeat("─", 110))

		for _, e := range events {
			fmt.Printf("%-5d  %-19s  %-16s  %-28s  %2d/%-2d  %5.0f  %6d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.PlayerName, 16),
				truncate(e.QuestTitle, 28),
				e.CorrectCount, e.TotalQuestions,
				e.Percentage,
				e.EarnedPoints,
				e.Grade,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
	historyCmd.Flags().StringP("player", "p", "", "Only show attempts by this player")
}
