package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/kaiwen/disclosure-ingest/internal/db"
	"github.com/kaiwen/disclosure-ingest/internal/observability"
	"github.com/kaiwen/disclosure-ingest/internal/parser"
	"github.com/kaiwen/disclosure-ingest/internal/record"
)

// parseFlags holds the flag set shared by parse-subject and parse-content.
type parseFlags struct {
	inputFile   string
	outputFile  string
	maxRecords  int
	toDB        bool
	databaseURL string
	configPath  string
	batchSize   int
	verbose     bool
}

// runParse executes one parse pass with the given layout and forwards the
// result per flags. A pass that produces zero records is reported as a
// warning with a zero exit; failing to read the input is fatal.
func runParse(layout parser.Layout, layoutName string, flags parseFlags) error {
	cfg, err := loadOptionalConfig(flags.configPath)
	if err != nil {
		return err
	}

	in, err := os.Open(flags.inputFile)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer in.Close()

	table, err := parser.Parse(in, layout, parser.Options{MaxRecords: flags.maxRecords})
	if err != nil {
		if errors.Is(err, parser.ErrEmptyResult) {
			fmt.Fprintf(os.Stderr, "Warning: no records parsed from %s\n", flags.inputFile)
			return nil
		}
		return fmt.Errorf("failed to parse %s: %w", flags.inputFile, err)
	}

	if flags.verbose {
		observability.NewPrinter(os.Stdout).PrintParseSummary(layoutName, table)
	}

	if flags.outputFile != "" {
		if err := writeCSVFile(flags.outputFile, table); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote %d records to %s\n", table.Len(), flags.outputFile)
	}

	if flags.toDB {
		url := resolveDatabaseURL(flags.databaseURL, cfg)
		if url == "" {
			return fmt.Errorf("database URL required: use --db-url, DATABASE_URL, or a config file")
		}

		ctx := context.Background()
		store, err := db.Connect(ctx, url)
		if err != nil {
			return err
		}
		defer store.Close()

		batchSize := flags.batchSize
		if batchSize == 0 {
			batchSize = cfg.BatchSize
		}
		inserted, err := insertTable(ctx, store, layoutName, flags.inputFile, table, batchSize)
		if err != nil {
			return fmt.Errorf("failed to store records: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Inserted %d records into %s_records\n", inserted, layoutName)
	}

	if flags.outputFile == "" && !flags.toDB {
		fmt.Fprintf(os.Stderr, "Warning: no output destination; use -o for CSV or --to-db for the database\n")
	}

	return nil
}

// writeCSVFile serializes the table to a UTF-8 CSV file.
func writeCSVFile(path string, table *record.ResultTable) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := table.WriteCSV(out); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return out.Close()
}

// insertTable inserts the result table under a fresh ingest batch.
func insertTable(ctx context.Context, store *db.Store, layoutName, sourceFile string, table *record.ResultTable, batchSize int) (int, error) {
	batchID, err := store.CreateBatch(ctx, sourceFile, layoutName)
	if err != nil {
		return 0, err
	}

	var inserted int
	switch layoutName {
	case "subject":
		inserted, err = store.InsertSubjects(ctx, batchID, table, batchSize)
	case "content":
		inserted, err = store.InsertContents(ctx, batchID, table, batchSize)
	default:
		return 0, fmt.Errorf("unknown layout %q", layoutName)
	}
	if err != nil {
		_ = store.CompleteBatch(ctx, batchID, inserted, "failed")
		return inserted, err
	}

	if err := store.CompleteBatch(ctx, batchID, inserted, "completed"); err != nil {
		return inserted, err
	}
	return inserted, nil
}
