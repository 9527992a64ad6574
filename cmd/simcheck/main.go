package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/liwenhao/simcheck/internal/config"
	"github.com/liwenhao/simcheck/internal/docio"
	"github.com/liwenhao/simcheck/internal/history"
	"github.com/liwenhao/simcheck/internal/logging"
	"github.com/liwenhao/simcheck/pkg/core"
	"github.com/liwenhao/simcheck/pkg/simcheck"
)

var (
	configPath string
	dbPath     string
	noHistory  bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "simcheck",
	Short: "TF-IDF similarity checker for document pairs",
	Long: `simcheck scores how similar two text documents are using TF-IDF
weighted cosine similarity. Scores range from 0.00 (no shared terms)
to 1.00 (identical term distribution).`,
	SilenceUsage: true,
}

var checkCmd = &cobra.Command{
	Use:   "check <original> <candidate> <output>",
	Short: "Score two documents and write the result",
	Long: `Reads the original and candidate documents, scores their similarity,
and writes the fixed-point score to the output file.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		checker, err := openChecker(cfg, logger)
		if err != nil {
			return err
		}
		defer checker.Close()

		res, err := checker.CheckFiles(context.Background(), args[0], args[1])
		if err != nil {
			return err
		}

		if err := docio.WriteResult(args[2], res.Score, cfg.Output.Precision); err != nil {
			return err
		}

		logger.Info("check complete", "similarity", fmt.Sprintf("%.2f%%", res.Score*100), "output", args[2])
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past checks",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent checks, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		store, cleanup, err := openHistory()
		if err != nil {
			return err
		}
		defer cleanup()

		records, err := store.List(context.Background(), limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No checks recorded")
			return nil
		}

		for _, rec := range records {
			fmt.Printf("%s  %.2f  %s  %s vs %s\n",
				rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				rec.Score, rec.ID, rec.OriginalPath, rec.CandidatePath)
		}
		return nil
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics over past checks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cleanup, err := openHistory()
		if err != nil {
			return err
		}
		defer cleanup()

		stats, err := store.Stats(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("Total checks: %d\n", stats.TotalChecks)
		fmt.Printf("Mean score:   %.2f\n", stats.MeanScore)
		fmt.Printf("Max score:    %.2f\n", stats.MaxScore)
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded checks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cleanup, err := openHistory()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := store.Clear(context.Background()); err != nil {
			return err
		}
		fmt.Println("History cleared")
		return nil
	},
}

func setup() (config.Config, core.Logger, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	return cfg, logging.New(level, os.Stderr), nil
}

func historyPath(cfg config.Config) string {
	if dbPath != "" {
		return dbPath
	}
	if cfg.History.Enabled && !noHistory {
		return cfg.History.Path
	}
	return ""
}

func openChecker(cfg config.Config, logger core.Logger) (*simcheck.Checker, error) {
	return simcheck.Open(
		simcheck.Config{HistoryPath: historyPath(cfg)},
		simcheck.WithLogger(logger),
	)
}

func openHistory() (store *history.Store, cleanup func(), err error) {
	cfg, logger, err := setup()
	if err != nil {
		return nil, nil, err
	}

	path := historyPath(cfg)
	if path == "" {
		return nil, nil, fmt.Errorf("history is disabled; enable it in the config or pass --db")
	}

	checker, err := simcheck.Open(simcheck.Config{HistoryPath: path}, simcheck.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	return checker.History(), func() { _ = checker.Close() }, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default ~/.simcheck/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Override history database path")
	rootCmd.PersistentFlags().BoolVar(&noHistory, "no-history", false, "Skip recording this run")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	historyListCmd.Flags().Int("limit", 20, "Maximum number of records to show")

	historyCmd.AddCommand(historyListCmd, historyStatsCmd, historyClearCmd)
	rootCmd.AddCommand(checkCmd, historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
