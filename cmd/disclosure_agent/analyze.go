package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kaiwen/disclosure-ingest/internal/analysis"
	"github.com/kaiwen/disclosure-ingest/internal/db"
	"github.com/kaiwen/disclosure-ingest/internal/llm"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run LLM analysis over pending announcements",
	Long:  "Run the four structured analyses (summary, when, how-much, who-what) over stored acquisition/disposal announcements that have not been processed yet.",
	RunE:  runAnalyze,
}

var (
	analyzeLimit       int
	analyzeOutDir      string
	analyzeConcurrency int
	analyzeAPIKey      string
	analyzeDatabaseURL string
	analyzeConfigPath  string
	analyzeResetStatus bool
	analyzeLogConvos   bool
	analyzeTest        bool
)

func init() {
	f := analyzeCmd.Flags()
	f.IntVar(&analyzeLimit, "limit", 0, "Analyze at most N announcements (default all pending)")
	f.StringVarP(&analyzeOutDir, "out", "o", "", "Directory for analysis result files")
	f.IntVar(&analyzeConcurrency, "concurrency", 0, "Announcements analyzed in parallel")
	f.StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY)")
	f.StringVar(&analyzeDatabaseURL, "db-url", "", "Database URL (defaults to DATABASE_URL)")
	f.StringVar(&analyzeConfigPath, "config", "", "Path to JSON config file")
	f.BoolVar(&analyzeResetStatus, "reset-status", false, "Reset the processed flag on all announcements and exit")
	f.BoolVar(&analyzeLogConvos, "log-conversations", false, "Write prompt/response transcripts next to the results")
	f.BoolVar(&analyzeTest, "test", false, "Trial run: analyze one announcement with transcripts")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := loadOptionalConfig(analyzeConfigPath)
	if err != nil {
		return err
	}

	url := resolveDatabaseURL(analyzeDatabaseURL, cfg)
	if url == "" {
		return fmt.Errorf("database URL required: use --db-url, DATABASE_URL, or a config file")
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer store.Close()

	if analyzeResetStatus {
		reset, err := store.ResetAnalysisStatus(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Reset analysis status on %d announcements\n", reset)
		return nil
	}

	apiKey := resolveAPIKey(analyzeAPIKey, cfg)
	if apiKey == "" {
		return fmt.Errorf("API key required: use --api-key, GEMINI_API_KEY, or a config file")
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	limit := analyzeLimit
	if limit == 0 {
		limit = cfg.AnalyzeLimit
	}
	logConvos := analyzeLogConvos
	if analyzeTest {
		limit = 1
		logConvos = true
	}
	outDir := analyzeOutDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	concurrency := analyzeConcurrency
	if concurrency == 0 {
		concurrency = cfg.AnalyzeConcurrency
	}

	analyzer := analysis.New(client, store, analysis.Options{
		OutDir:           outDir,
		Limit:            limit,
		Concurrency:      concurrency,
		LogConversations: logConvos,
	})

	processed, err := analyzer.Run(ctx)
	if err != nil {
		return fmt.Errorf("analysis stopped after %d announcements: %w", processed, err)
	}
	if processed == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no pending announcements to analyze\n")
		return nil
	}

	fmt.Fprintf(os.Stdout, "Analyzed %d announcements\n", processed)
	return nil
}
