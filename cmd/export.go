package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/questland/internal/report"
	"github.com/abhisek/questland/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal to an XLSX workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		player, _ := cmd.Flags().GetString("player")

		c, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		exp := report.NewExporter(s.EventRepo(), c)
		if err := exp.WriteFile(cmd.Context(), out, store.QueryOpts{Player: player}); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Println("Wrote", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("out", "o", "questland.xlsx", "Output file")
	exportCmd.Flags().StringP("player", "p", "", "Only export this player's events")
}
