package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/questland/internal/catalog"
	"github.com/abhisek/questland/internal/config"
	"github.com/abhisek/questland/internal/llm"
	"github.com/abhisek/questland/internal/logging"
	"github.com/abhisek/questland/internal/store"
	"github.com/abhisek/questland/internal/tutor"
)

// cfg is loaded once before any command runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "questland",
	Short: "Quiz quests for kids",
	Long:  "QuestLand is a terminal quiz game: pick a quest, answer its questions, earn points and badges.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite journal (overrides QUESTLAND_DB)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a YAML quest catalog (overrides QUESTLAND_CATALOG)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the splash animation")

	rootCmd.AddCommand(questsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUESTLAND_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	if p == "" {
		p = cfg.DBPath
	}
	if p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the journal at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, string, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, "", fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, "", fmt.Errorf("open database: %w", err)
	}
	return s, dbPath, nil
}

// loadCatalog returns the quest catalog from --catalog, QUESTLAND_CATALOG
// or the built-in quests.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	p, _ := cmd.Flags().GetString("catalog")
	if p == "" {
		p = cfg.CatalogPath
	}
	c, err := catalog.Resolve(p)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return c, nil
}

// newLogger opens the log file configured by QUESTLAND_LOG_FILE, defaulting
// to a file next to the database.
func newLogger(dbPath string) (*slog.Logger, io.Closer, error) {
	path := cfg.LogFile
	if path == "" {
		path = logging.DefaultPath(dbPath)
	}
	return logging.New(path, cfg.LogLevel)
}

// newTutor builds the mistake explainer, or returns nil when no LLM
// provider is configured. A broken provider config is reported and the
// game runs without the tutor.
func newTutor(ctx context.Context, repo store.EventRepo, logger *slog.Logger) *tutor.Service {
	provider, err := llm.NewProvider(ctx, cfg.LLM, repo, logger)
	if errors.Is(err, llm.ErrDisabled) {
		return nil
	}
	if err != nil {
		logger.Warn("tutor disabled", "error", err)
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The tutor will be unavailable.")
		return nil
	}

	tc := tutor.DefaultConfig()
	tc.Timeout = cfg.LLM.Timeout
	logger.Info("tutor enabled", "provider", cfg.LLM.Provider, "model", provider.ModelID())
	return tutor.NewService(provider, tc)
}
