package db

import (
	"context"
	"fmt"
)

// CategoryStats returns the classification distribution of stored subject
// records, ordered by category code.
func (s *Store) CategoryStats(ctx context.Context) ([]CategoryCount, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT category, COUNT(*) FROM subject_records GROUP BY category ORDER BY category`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query category stats: %w", err)
	}
	defer rows.Close()

	var stats []CategoryCount
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category stats: %w", err)
		}
		stats = append(stats, c)
	}
	return stats, rows.Err()
}

// ContentStats summarizes the content-record table.
func (s *Store) ContentStats(ctx context.Context) (*FeedStats, error) {
	var stats FeedStats
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(DISTINCT ban),
		        COUNT(DISTINCT cla),
		        MIN(gdate),
		        MAX(gdate)
		 FROM content_records`,
	).Scan(&stats.TotalRecords, &stats.UniqueCompanies, &stats.UniqueClasses, &stats.MinDate, &stats.MaxDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query content stats: %w", err)
	}
	return &stats, nil
}

// ListBatches returns recent ingest batches, newest first.
func (s *Store) ListBatches(ctx context.Context, limit int) ([]Batch, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, source_file, layout, record_count, status, created_at, completed_at
		 FROM ingest_batches ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	defer rows.Close()

	var batches []Batch
	for rows.Next() {
		var b Batch
		if err := rows.Scan(&b.ID, &b.SourceFile, &b.Layout, &b.RecordCount, &b.Status, &b.CreatedAt, &b.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan batch: %w", err)
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}
