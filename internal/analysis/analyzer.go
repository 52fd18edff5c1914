// Package analysis runs structured LLM extraction over stored disclosure
// announcements: a prose summary plus CSV-formatted time, amount, and party
// breakdowns per announcement.
package analysis

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/kaiwen/disclosure-ingest/internal/db"
	"github.com/kaiwen/disclosure-ingest/internal/llm"
	"github.com/kaiwen/disclosure-ingest/internal/prompts"
)

// RecordSource is the slice of the store the analyzer needs.
type RecordSource interface {
	PendingAnnouncements(ctx context.Context, limit int) ([]db.Announcement, error)
	MarkAnalysisProcessed(ctx context.Context, id int64) error
}

// Options configures an analysis run.
type Options struct {
	// OutDir receives one result file per analysis per announcement.
	OutDir string
	// Limit bounds how many pending announcements are analyzed; zero means
	// all pending.
	Limit int
	// Concurrency bounds in-flight announcements. Defaults to 1; results are
	// per-announcement files, so order does not matter.
	Concurrency int
	// LogConversations writes prompt/response transcripts alongside results.
	LogConversations bool
}

// Result holds the four analyses for one announcement.
type Result struct {
	Announcement db.Announcement
	Summary      string
	When         string
	HowMuch      string
	WhoWhat      string
}

// Analyzer drives structured analysis of pending announcements.
type Analyzer struct {
	client  llm.Client
	source  RecordSource
	limiter *rateLimiter
	opts    Options
}

// New returns an Analyzer over the given model client and record source.
func New(client llm.Client, source RecordSource, opts Options) *Analyzer {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	return &Analyzer{
		client:  client,
		source:  source,
		limiter: newRateLimiter(),
		opts:    opts,
	}
}

// Run analyzes pending announcements and returns how many were completed.
// Each completed announcement is marked processed in the store; a failure on
// one announcement aborts the run but already-marked work is kept.
func (a *Analyzer) Run(ctx context.Context) (int, error) {
	pending, err := a.source.PendingAnnouncements(ctx, a.opts.Limit)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending announcements: %w", err)
	}
	if len(pending) == 0 {
		return 0, nil
	}

	if a.opts.OutDir != "" {
		if err := os.MkdirAll(a.opts.OutDir, 0o755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var mu sync.Mutex
	processed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.Concurrency)
	for _, ann := range pending {
		g.Go(func() error {
			result, err := a.Analyze(gctx, ann)
			if err != nil {
				return fmt.Errorf("announcement %d: %w", ann.ID, err)
			}
			if err := a.writeResult(result); err != nil {
				return err
			}
			if err := a.source.MarkAnalysisProcessed(gctx, ann.ID); err != nil {
				return err
			}
			mu.Lock()
			processed++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return processed, err
	}
	return processed, nil
}

// Analyze runs all four extractions for one announcement.
func (a *Analyzer) Analyze(ctx context.Context, ann db.Announcement) (*Result, error) {
	tier := llm.TierForContent(ann.Subject)
	result := &Result{Announcement: ann}

	steps := []struct {
		key  string
		dest *string
	}{
		{"analyze-summary", &result.Summary},
		{"analyze-when", &result.When},
		{"analyze-how-much", &result.HowMuch},
		{"analyze-who-what", &result.WhoWhat},
	}
	for _, step := range steps {
		prompt := buildPrompt(step.key, ann)
		out, err := a.generate(ctx, prompt, tier)
		if err != nil {
			return nil, err
		}
		*step.dest = out
		if a.opts.LogConversations {
			a.logConversation(ann, step.key, tier, prompt, out)
		}
	}
	return result, nil
}

// generate calls the model, retrying with backoff on rate limits.
func (a *Analyzer) generate(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	for {
		out, err := a.client.GenerateContent(ctx, prompt, tier)
		if err == nil {
			a.limiter.recordSuccess()
			return llm.CleanCodeBlock(out), nil
		}
		if !isRateLimited(err) {
			return "", &APICallError{Message: "analysis generation failed", Cause: err}
		}
		if waitErr := a.limiter.waitAfterLimit(ctx); waitErr != nil {
			return "", waitErr
		}
	}
}

// buildPrompt fills an analysis template with announcement metadata.
func buildPrompt(key string, ann db.Announcement) string {
	template := prompts.MustGet(key)
	return prompts.Format(template, map[string]string{
		"ID":      strconv.FormatInt(ann.ID, 10),
		"BAN":     ann.BAN,
		"Code":    ann.Code,
		"Name":    ann.Name,
		"DReals":  formatNullable(ann.DReals),
		"HrReals": formatNullable(ann.HrReals),
		"OD":      formatNullable(ann.OD),
		"RULC":    formatNullable(ann.RULC),
		"Content": ann.Subject,
	})
}

func formatNullable(n *int64) string {
	if n == nil {
		return "N/A"
	}
	return strconv.FormatInt(*n, 10)
}

// writeResult stores the four analyses as files named by announcement ID.
func (a *Analyzer) writeResult(result *Result) error {
	if a.opts.OutDir == "" {
		return nil
	}
	files := map[string]string{
		"summary.txt":  result.Summary,
		"when.csv":     result.When,
		"how_much.csv": result.HowMuch,
		"who_what.csv": result.WhoWhat,
	}
	prefix := fmt.Sprintf("ann_%d", result.Announcement.ID)
	for name, content := range files {
		path := filepath.Join(a.opts.OutDir, prefix+"_"+name)
		if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}

// logConversation writes the prompt/response transcript for one analysis.
// Best effort: transcripts are a debugging aid, not part of the result.
func (a *Analyzer) logConversation(ann db.Announcement, key string, tier llm.ModelTier, prompt, response string) {
	if a.opts.OutDir == "" {
		return
	}
	transcript := fmt.Sprintf("analysis: %s\nmodel: %s\n\n--- prompt ---\n%s\n\n--- response ---\n%s\n",
		key, a.client.GetModel(tier), prompt, response)
	path := filepath.Join(a.opts.OutDir, fmt.Sprintf("ann_%d_%s.log", ann.ID, key))
	if err := os.WriteFile(path, []byte(transcript), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to write conversation log: %v\n", err)
	}
}
