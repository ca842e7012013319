// Package report exports the journal to an XLSX workbook.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/questland/internal/catalog"
	"github.com/abhisek/questland/internal/store"
)

// Sheet names of the exported workbook.
const (
	SheetAttempts     = "Attempts"
	SheetAchievements = "Achievements"
	SheetPlayers      = "Players"
)

const timeLayout = "2006-01-02 15:04:05"

var (
	attemptHeaders = []string{
		"Time", "Player", "Session", "Quest ID", "Quest", "Correct", "Total",
		"Percentage", "Points", "Grade", "First Completion", "Answers",
	}
	achievementHeaders = []string{"Time", "Player", "Session", "Achievement ID", "Achievement", "Quest ID"}
	playerHeaders      = []string{
		"Player", "Sessions", "Attempts", "Quests Completed", "Perfect Attempts",
		"Total Points", "Best Percentage", "Achievements", "Last Played",
	}
)

// Exporter builds workbooks from the journal.
type Exporter struct {
	repo    store.EventRepo
	catalog *catalog.Catalog
}

// NewExporter creates an Exporter. The catalog resolves achievement names.
func NewExporter(repo store.EventRepo, cat *catalog.Catalog) *Exporter {
	return &Exporter{repo: repo, catalog: cat}
}

// Build assembles the workbook. Rows are oldest first. The caller closes
// the returned file.
func (e *Exporter) Build(ctx context.Context, opts store.QueryOpts) (*excelize.File, error) {
	attempts, err := e.repo.QueryAttemptEvents(ctx, opts)
	if err != nil {
		return nil, err
	}
	achievements, err := e.repo.QueryAchievementEvents(ctx, opts)
	if err != nil {
		return nil, err
	}
	players, err := e.repo.PlayerStats(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetAttempts); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetAchievements, SheetPlayers} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	var rows [][]any
	for i := len(attempts) - 1; i >= 0; i-- {
		a := attempts[i]
		rows = append(rows, []any{
			a.Timestamp.Local().Format(timeLayout),
			a.PlayerName,
			a.SessionID,
			a.QuestID,
			a.QuestTitle,
			a.CorrectCount,
			a.TotalQuestions,
			round1(a.Percentage),
			a.EarnedPoints,
			a.Grade,
			yesNo(a.FirstCompletion),
			strings.Join(a.Answers, " | "),
		})
	}
	if err := writeSheet(f, SheetAttempts, attemptHeaders, rows); err != nil {
		f.Close()
		return nil, err
	}

	rows = rows[:0]
	for i := len(achievements) - 1; i >= 0; i-- {
		a := achievements[i]
		rows = append(rows, []any{
			a.Timestamp.Local().Format(timeLayout),
			a.PlayerName,
			a.SessionID,
			a.AchievementID,
			e.achievementName(a.AchievementID),
			a.QuestID,
		})
	}
	if err := writeSheet(f, SheetAchievements, achievementHeaders, rows); err != nil {
		f.Close()
		return nil, err
	}

	rows = rows[:0]
	for _, p := range players {
		rows = append(rows, []any{
			p.PlayerName,
			p.Sessions,
			p.Attempts,
			p.QuestsCompleted,
			p.PerfectAttempts,
			p.TotalPoints,
			round1(p.BestPercentage),
			p.Achievements,
			p.LastPlayed.Local().Format(timeLayout),
		})
	}
	if err := writeSheet(f, SheetPlayers, playerHeaders, rows); err != nil {
		f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// Write builds the workbook and writes it to w.
func (e *Exporter) Write(ctx context.Context, w io.Writer, opts store.QueryOpts) error {
	f, err := e.Build(ctx, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteFile builds the workbook and saves it at path.
func (e *Exporter) WriteFile(ctx context.Context, path string, opts store.QueryOpts) error {
	f, err := e.Build(ctx, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func (e *Exporter) achievementName(id string) string {
	if e.catalog != nil {
		if a, ok := e.catalog.Achievement(id); ok {
			return a.Name
		}
	}
	return id
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header of %s: %w", sheet, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
