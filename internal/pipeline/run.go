// Package pipeline provides the high-level orchestration for a full feed
// ingest: parse the subject and content streams, store both, then run LLM
// analysis over the newly pending announcements.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/kaiwen/disclosure-ingest/internal/analysis"
	"github.com/kaiwen/disclosure-ingest/internal/db"
	"github.com/kaiwen/disclosure-ingest/internal/llm"
	"github.com/kaiwen/disclosure-ingest/internal/observability"
	"github.com/kaiwen/disclosure-ingest/internal/parser"
	"github.com/kaiwen/disclosure-ingest/internal/record"
)

// ProgressEvent represents a progress update during pipeline execution.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs.
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the full ingest.
type RunOptions struct {
	SubjectPath string // subject-stream feed file; empty skips the stream
	ContentPath string // content-stream feed file; empty skips the stream
	MaxRecords  int
	DatabaseURL string
	BatchSize   int
	APIKey      string // empty skips the analysis stage
	AnalyzeDir  string
	Verbose     bool
	OnProgress  ProgressCallback
}

// emitProgress calls the progress callback if configured.
func emitProgress(opts *RunOptions, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message})
	}
}

// Run executes the full ingest. The two streams parse concurrently; within
// each stream record order follows input order. Both streams producing zero
// records is a warning, not a failure.
func Run(ctx context.Context, opts RunOptions) error {
	if opts.SubjectPath == "" && opts.ContentPath == "" {
		return fmt.Errorf("no feed files given")
	}

	printer := observability.NewPrinter(os.Stdout)

	var subjects, contents *record.ResultTable
	g, gctx := errgroup.WithContext(ctx)
	if opts.SubjectPath != "" {
		g.Go(func() error {
			var err error
			subjects, err = parseFile(gctx, opts, opts.SubjectPath, parser.SubjectLayout(), "subject")
			return err
		})
	}
	if opts.ContentPath != "" {
		g.Go(func() error {
			var err error
			contents, err = parseFile(gctx, opts, opts.ContentPath, parser.ContentLayout(), "content")
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if subjects == nil && contents == nil {
		fmt.Fprintf(os.Stderr, "Warning: no records parsed from any stream\n")
		return nil
	}

	if opts.Verbose {
		if subjects != nil {
			printer.PrintParseSummary("subject", subjects)
		}
		if contents != nil {
			printer.PrintParseSummary("content", contents)
		}
	}

	store, err := db.Connect(ctx, opts.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	if subjects != nil {
		if err := storeStream(ctx, opts, store, "subject", opts.SubjectPath, subjects); err != nil {
			return err
		}
	}
	if contents != nil {
		if err := storeStream(ctx, opts, store, "content", opts.ContentPath, contents); err != nil {
			return err
		}
	}

	if opts.APIKey == "" {
		return nil
	}

	emitProgress(&opts, "analyze", "running announcement analysis")
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	analyzer := analysis.New(client, store, analysis.Options{OutDir: opts.AnalyzeDir})
	processed, err := analyzer.Run(ctx)
	if err != nil {
		return fmt.Errorf("analysis stopped after %d announcements: %w", processed, err)
	}
	emitProgress(&opts, "analyze", fmt.Sprintf("analyzed %d announcements", processed))

	return nil
}

// parseFile parses one stream. An empty stream is reported and skipped rather
// than failing the run.
func parseFile(ctx context.Context, opts RunOptions, path string, layout parser.Layout, name string) (*record.ResultTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	emitProgress(&opts, "parse", fmt.Sprintf("parsing %s stream from %s", name, path))

	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s stream: %w", name, err)
	}
	defer in.Close()

	table, err := parser.Parse(in, layout, parser.Options{MaxRecords: opts.MaxRecords})
	if err != nil {
		if errors.Is(err, parser.ErrEmptyResult) {
			fmt.Fprintf(os.Stderr, "Warning: no records parsed from %s\n", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse %s stream: %w", name, err)
	}
	return table, nil
}

func storeStream(ctx context.Context, opts RunOptions, store *db.Store, name, path string, table *record.ResultTable) error {
	emitProgress(&opts, "store", fmt.Sprintf("storing %d %s records", table.Len(), name))

	batchID, err := store.CreateBatch(ctx, path, name)
	if err != nil {
		return err
	}

	var inserted int
	if name == "subject" {
		inserted, err = store.InsertSubjects(ctx, batchID, table, opts.BatchSize)
	} else {
		inserted, err = store.InsertContents(ctx, batchID, table, opts.BatchSize)
	}
	if err != nil {
		_ = store.CompleteBatch(ctx, batchID, inserted, "failed")
		return fmt.Errorf("failed to store %s records: %w", name, err)
	}
	return store.CompleteBatch(ctx, batchID, inserted, "completed")
}
