package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kaiwen/disclosure-ingest/internal/db"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the feed tables",
	Long:  "Create the ingest_batches, subject_records, and content_records tables if they do not exist.",
	RunE:  runInitDB,
}

var (
	initDBDatabaseURL string
	initDBConfigPath  string
)

func init() {
	initDBCmd.Flags().StringVar(&initDBDatabaseURL, "db-url", "", "Database URL (defaults to DATABASE_URL)")
	initDBCmd.Flags().StringVar(&initDBConfigPath, "config", "", "Path to JSON config file")

	rootCmd.AddCommand(initDBCmd)
}

func runInitDB(_ *cobra.Command, _ []string) error {
	cfg, err := loadOptionalConfig(initDBConfigPath)
	if err != nil {
		return err
	}

	url := resolveDatabaseURL(initDBDatabaseURL, cfg)
	if url == "" {
		return fmt.Errorf("database URL required: use --db-url, DATABASE_URL, or a config file")
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.CreateTables(ctx); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Feed tables ready\n")
	return nil
}
