package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var questsCmd = &cobra.Command{
	Use:   "quests",
	Short: "List the quest catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		verbose, _ := cmd.Flags().GetBool("questions")

		fmt.Printf("%-4s  %-32s  %-8s  %6s  %9s\n",
			"ID", "Title", "Level", "Points", "Questions")
		fmt.Println(strings.Repeat("─", 68))

		for _, q := range c.Quests() {
			fmt.Printf("%-4d  %-32s  %-8s  %6d  %9d\n",
				q.ID, q.Icon+" "+q.Title, q.Difficulty.DisplayName(), q.Points, len(q.Questions))
			if !verbose {
				continue
			}
			for _, qu := range q.Questions {
				fmt.Printf("        %d. [%s] %s\n", qu.ID, qu.Type, qu.Prompt)
			}
		}

		fmt.Printf("\n%d quests, %d achievements (catalog %s)\n",
			len(c.Quests()), len(c.Achievements()), c.Version())
		return nil
	},
}

func init() {
	questsCmd.Flags().BoolP("questions", "q", false, "Also list each quest's questions")
}
