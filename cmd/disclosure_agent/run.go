package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kaiwen/disclosure-ingest/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full ingest: parse, store, analyze",
	Long:  "Parse the subject and content streams, store both to the database, and run LLM analysis over the newly pending announcements in one pass.",
	RunE:  runRun,
}

var (
	runSubjectPath string
	runContentPath string
	runMaxRecords  int
	runDatabaseURL string
	runBatchSize   int
	runAPIKey      string
	runAnalyzeDir  string
	runConfigPath  string
	runVerbose     bool
	runSkipAnalyze bool
)

func init() {
	f := runCmd.Flags()
	f.StringVar(&runSubjectPath, "subject", "", "Path to the subject-stream feed file")
	f.StringVar(&runContentPath, "content", "", "Path to the content-stream feed file")
	f.IntVar(&runMaxRecords, "max-records", 0, "Parse at most N records per stream")
	f.StringVar(&runDatabaseURL, "db-url", "", "Database URL (defaults to DATABASE_URL)")
	f.IntVar(&runBatchSize, "batch-size", 0, "Rows per insert batch")
	f.StringVar(&runAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY)")
	f.StringVar(&runAnalyzeDir, "analyze-dir", "", "Directory for analysis result files")
	f.StringVar(&runConfigPath, "config", "", "Path to JSON config file")
	f.BoolVarP(&runVerbose, "verbose", "v", false, "Print parse summaries")
	f.BoolVar(&runSkipAnalyze, "skip-analyze", false, "Stop after storing records")

	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, _ []string) error {
	cfg, err := loadOptionalConfig(runConfigPath)
	if err != nil {
		return err
	}

	url := resolveDatabaseURL(runDatabaseURL, cfg)
	if url == "" {
		return fmt.Errorf("database URL required: use --db-url, DATABASE_URL, or a config file")
	}

	apiKey := ""
	if !runSkipAnalyze {
		apiKey = resolveAPIKey(runAPIKey, cfg)
	}

	analyzeDir := runAnalyzeDir
	if analyzeDir == "" {
		analyzeDir = cfg.OutputDir
	}
	batchSize := runBatchSize
	if batchSize == 0 {
		batchSize = cfg.BatchSize
	}

	return pipeline.Run(context.Background(), pipeline.RunOptions{
		SubjectPath: runSubjectPath,
		ContentPath: runContentPath,
		MaxRecords:  runMaxRecords,
		DatabaseURL: url,
		BatchSize:   batchSize,
		APIKey:      apiKey,
		AnalyzeDir:  analyzeDir,
		Verbose:     runVerbose,
		OnProgress: func(event pipeline.ProgressEvent) {
			if runVerbose {
				fmt.Fprintf(os.Stdout, "[%s] %s\n", event.Step, event.Message)
			}
		},
	})
}
