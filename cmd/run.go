package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/questland/internal/app"
	"github.com/abhisek/questland/internal/quest"
)

// runApp opens the journal, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	c, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	st, dbPath, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	logger, closer, err := newLogger(dbPath)
	if err != nil {
		return err
	}
	defer closer.Close()

	eventRepo := st.EventRepo()
	game := quest.NewGame(c, quest.WithJournal(eventRepo), quest.WithLogger(logger))

	skipSplash, _ := cmd.Flags().GetBool("no-splash")
	opts := app.Options{
		Game:       game,
		EventRepo:  eventRepo,
		Logger:     logger,
		SkipSplash: skipSplash,
	}
	if svc := newTutor(ctx, eventRepo, logger); svc != nil {
		opts.Explainer = svc
	}

	return app.Run(opts)
}
