package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/kaiwen/disclosure-ingest/internal/db"
	"github.com/kaiwen/disclosure-ingest/internal/record"
)

func TestPrintParseSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	table := record.NewResultTable([]string{"BAN", "TXTT", "CATEGORY"})
	table.Append([]record.Value{record.Text("11111111"), record.Text("公告取得股份"), record.Int64(1)})
	table.Append([]record.Value{record.Text("22222222"), record.Text("處分不動產"), record.Int64(11)})
	table.Append([]record.Value{record.Text("33333333"), record.Text("其他"), record.Int64(99)})

	p.PrintParseSummary("subject", table)
	output := buf.String()

	assert.Contains(t, output, "Parse Summary")
	assert.Contains(t, output, "subject")
	assert.Contains(t, output, "Records:  3")
	assert.Contains(t, output, "Categories:")
	assert.Contains(t, output, "1: 1 records")
	assert.Contains(t, output, "99: 1 records")
}

func TestPrintParseSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParseSummary("subject", nil)

	assert.Empty(t, buf.String())
}

func TestPrintParseSummary_NoCategoryColumn(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	table := record.NewResultTable([]string{"BAN", "TXT"})
	table.Append([]record.Value{record.Text("11111111"), record.Text("內容")})

	p.PrintParseSummary("content", table)
	output := buf.String()

	assert.Contains(t, output, "Records:  1")
	assert.NotContains(t, output, "Categories:")
}

func TestPrintBoxTruncatesOnRuneBoundary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("Title", strings.Repeat("股", 80))
	output := buf.String()

	assert.True(t, utf8.ValidString(output))
	assert.NotContains(t, output, "�")
	assert.Contains(t, output, "...")
}

func TestPrintCategoryStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	one := 1
	p.PrintCategoryStats([]db.CategoryCount{
		{Category: &one, Count: 42},
		{Category: nil, Count: 3},
	})
	output := buf.String()

	assert.Contains(t, output, "Classification Stats")
	assert.Contains(t, output, "1: 42 records")
	assert.Contains(t, output, "(null): 3 records")
}

func TestPrintCategoryStats_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCategoryStats(nil)

	assert.Contains(t, buf.String(), "no records")
}

func TestPrintContentStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	minDate := int64(20260101)
	maxDate := int64(20260131)
	p.PrintContentStats(&db.FeedStats{
		TotalRecords:    1200,
		UniqueCompanies: 87,
		UniqueClasses:   5,
		MinDate:         &minDate,
		MaxDate:         &maxDate,
	})
	output := buf.String()

	assert.Contains(t, output, "Content Stats")
	assert.Contains(t, output, "Records:    1200")
	assert.Contains(t, output, "20260101 - 20260131")
}

func TestPrintBatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	count := 120
	p.PrintBatches([]db.Batch{
		{
			Layout:      "subject",
			Status:      "completed",
			RecordCount: &count,
			CreatedAt:   time.Date(2026, 1, 15, 21, 34, 0, 0, time.UTC),
		},
		{
			Layout:    "content",
			Status:    "failed",
			CreatedAt: time.Date(2026, 1, 15, 21, 40, 0, 0, time.UTC),
		},
	})
	output := buf.String()

	assert.Contains(t, output, "Recent Batches")
	assert.Contains(t, output, "2026-01-15 21:34")
	assert.Contains(t, output, "completed")
	assert.Contains(t, output, "120 records")
	assert.Contains(t, output, "failed")
}

func TestPrintAnalysisProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysisProgress(&db.AnalysisStats{Processed: 8, Pending: 2})
	output := buf.String()

	assert.Contains(t, output, "Analysis Progress")
	assert.Contains(t, output, "Processed: 8")
	assert.Contains(t, output, "Pending:   2")
}
