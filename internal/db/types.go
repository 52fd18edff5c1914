package db

import (
	"time"

	"github.com/google/uuid"
)

// Batch is one recorded ingest pass.
type Batch struct {
	ID          uuid.UUID
	SourceFile  string
	Layout      string
	RecordCount *int
	Status      string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// Announcement is a stored subject record queued for analysis.
// Integer fields mirror the feed's nullability.
type Announcement struct {
	ID      int64
	BAN     string
	Code    string
	Name    string
	DReals  *int64
	HrReals *int64
	OD      *int64
	RULC    *int64
	Subject string
}

// CategoryCount is one row of the classification distribution.
type CategoryCount struct {
	Category *int
	Count    int64
}

// FeedStats summarizes the content-record table.
type FeedStats struct {
	TotalRecords    int64
	UniqueCompanies int64
	UniqueClasses   int64
	MinDate         *int64
	MaxDate         *int64
}

// AnalysisStats counts processed versus pending announcements.
type AnalysisStats struct {
	Processed int64
	Pending   int64
}
