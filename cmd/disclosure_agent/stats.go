package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kaiwen/disclosure-ingest/internal/db"
	"github.com/kaiwen/disclosure-ingest/internal/observability"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stored-record statistics",
	Long:  "Show the classification distribution of subject records, content-table totals, and analysis progress.",
	RunE:  runStats,
}

var (
	statsDatabaseURL string
	statsConfigPath  string
	statsBatchLimit  int
)

func init() {
	statsCmd.Flags().StringVar(&statsDatabaseURL, "db-url", "", "Database URL (defaults to DATABASE_URL)")
	statsCmd.Flags().StringVar(&statsConfigPath, "config", "", "Path to JSON config file")
	statsCmd.Flags().IntVar(&statsBatchLimit, "batches", 20, "Number of recent ingest batches to show")

	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	cfg, err := loadOptionalConfig(statsConfigPath)
	if err != nil {
		return err
	}

	url := resolveDatabaseURL(statsDatabaseURL, cfg)
	if url == "" {
		return fmt.Errorf("database URL required: use --db-url, DATABASE_URL, or a config file")
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer store.Close()

	printer := observability.NewPrinter(os.Stdout)

	categories, err := store.CategoryStats(ctx)
	if err != nil {
		return err
	}
	printer.PrintCategoryStats(categories)

	contents, err := store.ContentStats(ctx)
	if err != nil {
		return err
	}
	printer.PrintContentStats(contents)

	progress, err := store.AnalysisProgress(ctx)
	if err != nil {
		return err
	}
	printer.PrintAnalysisProgress(progress)

	batches, err := store.ListBatches(ctx, statsBatchLimit)
	if err != nil {
		return err
	}
	printer.PrintBatches(batches)

	return nil
}
