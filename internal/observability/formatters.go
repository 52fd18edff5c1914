// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/kaiwen/disclosure-ingest/internal/db"
	"github.com/kaiwen/disclosure-ingest/internal/record"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxRowsToShow is the number of sample rows displayed per table
	maxRowsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines on a rune boundary
		if r := []rune(line); len(r) > boxWidth-4 {
			line = string(r[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParseSummary outputs a human-readable summary of one parse pass,
// including the category distribution when the table carries one.
func (p *Printer) PrintParseSummary(layout string, table *record.ResultTable) {
	if table == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Layout:   %s\n", layout))
	sb.WriteString(fmt.Sprintf("Records:  %d\n", table.Len()))
	sb.WriteString(fmt.Sprintf("Columns:  %d\n", len(table.Columns)))

	if counts := categoryCounts(table); len(counts) > 0 {
		sb.WriteString("\nCategories:\n")
		keys := make([]int, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		shown := 0
		for _, k := range keys {
			if shown >= maxRowsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keys)-shown))
				break
			}
			sb.WriteString(fmt.Sprintf("  %2d: %d records\n", k, counts[k]))
			shown++
		}
	}

	p.printBox("Parse Summary", strings.TrimRight(sb.String(), "\n"))
}

// categoryCounts tallies the CATEGORY column if present.
func categoryCounts(table *record.ResultTable) map[int]int {
	idx := table.ColumnIndex("CATEGORY")
	if idx < 0 {
		return nil
	}
	counts := make(map[int]int)
	for _, row := range table.Rows {
		if v := row[idx]; v.Integer && !v.Null {
			counts[int(v.Int)]++
		}
	}
	return counts
}

// PrintCategoryStats outputs the stored classification distribution.
func (p *Printer) PrintCategoryStats(stats []db.CategoryCount) {
	var sb strings.Builder
	for _, s := range stats {
		if s.Category == nil {
			sb.WriteString(fmt.Sprintf("  (null): %d records\n", s.Count))
			continue
		}
		sb.WriteString(fmt.Sprintf("  %2d: %d records\n", *s.Category, s.Count))
	}
	if sb.Len() == 0 {
		sb.WriteString("  no records\n")
	}
	p.printBox("Classification Stats", strings.TrimRight(sb.String(), "\n"))
}

// PrintContentStats outputs the content-table summary.
func (p *Printer) PrintContentStats(stats *db.FeedStats) {
	if stats == nil {
		return
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Records:    %d\n", stats.TotalRecords))
	sb.WriteString(fmt.Sprintf("Companies:  %d\n", stats.UniqueCompanies))
	sb.WriteString(fmt.Sprintf("Classes:    %d\n", stats.UniqueClasses))
	if stats.MinDate != nil && stats.MaxDate != nil {
		sb.WriteString(fmt.Sprintf("Date range: %d - %d\n", *stats.MinDate, *stats.MaxDate))
	}
	p.printBox("Content Stats", strings.TrimRight(sb.String(), "\n"))
}

// PrintBatches outputs recent ingest batches, newest first.
func (p *Printer) PrintBatches(batches []db.Batch) {
	var sb strings.Builder
	for _, b := range batches {
		count := "-"
		if b.RecordCount != nil {
			count = fmt.Sprintf("%d", *b.RecordCount)
		}
		sb.WriteString(fmt.Sprintf("  %s %-7s %-9s %s records\n",
			b.CreatedAt.Format("2006-01-02 15:04"), b.Layout, b.Status, count))
	}
	if sb.Len() == 0 {
		sb.WriteString("  no batches\n")
	}
	p.printBox("Recent Batches", strings.TrimRight(sb.String(), "\n"))
}

// PrintAnalysisProgress outputs processed/pending announcement counts.
func (p *Printer) PrintAnalysisProgress(stats *db.AnalysisStats) {
	if stats == nil {
		return
	}
	content := fmt.Sprintf("Processed: %d\nPending:   %d", stats.Processed, stats.Pending)
	p.printBox("Analysis Progress", content)
}
