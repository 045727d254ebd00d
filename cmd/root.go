package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/abhisek/financelab/internal/config"
	"github.com/abhisek/financelab/internal/logging"
	"github.com/abhisek/financelab/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfg       config.Config
	logger    = slog.New(slog.DiscardHandler)
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "financelab",
	Short: "Finance self-study quizzes",
	Long:  "financelab: short finance practice sessions that track your progress in the terminal.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHome(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FINLAB_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Path to a content JSON file (overrides FINLAB_CONTENT env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Path to the JSON log file (overrides FINLAB_LOG env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup resolves configuration (flags over env over defaults) and opens the
// log file.
func setup(cmd *cobra.Command) error {
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		c.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("content"); p != "" {
		c.ContentPath = p
	}
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		c.LogFile = p
	}
	if c.LogFile == "" {
		dir, err := store.DataDir()
		if err != nil {
			return err
		}
		c.LogFile = filepath.Join(dir, "financelab.log")
	}
	if err := store.EnsureDir(c.LogFile); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	cfg = c
	logger, logCloser = logging.New(c.LogFile, c.LogLevel)
	logger.Debug("config resolved",
		"db", c.DBPath,
		"content", c.ContentPath,
		"session_min", c.SessionMin,
		"session_max", c.SessionMax,
	)
	return nil
}

// resolveDBPath returns the database path from --db or FINLAB_DB, then the
// default XDG path.
func resolveDBPath() (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
