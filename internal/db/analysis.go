package db

import (
	"context"
	"fmt"
)

// PendingAnnouncements returns subject records eligible for analysis:
// acquisition/disposal filings (RULC 1 or 11) not yet processed, oldest
// first. A limit of zero returns all pending rows.
func (s *Store) PendingAnnouncements(ctx context.Context, limit int) ([]Announcement, error) {
	query := `SELECT id, ban, code, name, d_reals, hr_reals, od, rulc, txtt
		FROM subject_records
		WHERE rulc IN (1, 11) AND NOT analysis_processed
		ORDER BY id`
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending announcements: %w", err)
	}
	defer rows.Close()

	var pending []Announcement
	for rows.Next() {
		var a Announcement
		if err := rows.Scan(&a.ID, &a.BAN, &a.Code, &a.Name, &a.DReals, &a.HrReals, &a.OD, &a.RULC, &a.Subject); err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		pending = append(pending, a)
	}
	return pending, rows.Err()
}

// MarkAnalysisProcessed flags one announcement as analyzed.
func (s *Store) MarkAnalysisProcessed(ctx context.Context, id int64) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE subject_records
		 SET analysis_processed = TRUE, analysis_processed_at = NOW()
		 WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark announcement %d processed: %w", id, err)
	}
	return nil
}

// ResetAnalysisStatus clears the processed flag on every analyzed
// announcement and returns how many rows were reset.
func (s *Store) ResetAnalysisStatus(ctx context.Context) (int64, error) {
	result, err := s.pool.Exec(ctx,
		`UPDATE subject_records
		 SET analysis_processed = FALSE, analysis_processed_at = NULL
		 WHERE analysis_processed`,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to reset analysis status: %w", err)
	}
	return result.RowsAffected(), nil
}

// AnalysisProgress counts processed versus pending eligible announcements.
func (s *Store) AnalysisProgress(ctx context.Context) (*AnalysisStats, error) {
	var stats AnalysisStats
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FILTER (WHERE analysis_processed),
		        COUNT(*) FILTER (WHERE NOT analysis_processed)
		 FROM subject_records WHERE rulc IN (1, 11)`,
	).Scan(&stats.Processed, &stats.Pending)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis progress: %w", err)
	}
	return &stats, nil
}
