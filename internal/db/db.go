// Package db provides PostgreSQL storage for parsed disclosure records.
package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// CreateTables creates the feed tables if they do not exist.
func (s *Store) CreateTables(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS ingest_batches (
			id UUID PRIMARY KEY,
			source_file TEXT NOT NULL,
			layout TEXT NOT NULL,
			record_count INTEGER,
			status TEXT NOT NULL DEFAULT 'running',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS subject_records (
			id BIGSERIAL PRIMARY KEY,
			batch_id UUID REFERENCES ingest_batches(id),
			ban VARCHAR(8),
			code VARCHAR(7),
			name VARCHAR(8),
			d_reals BIGINT,
			od BIGINT,
			hr_reals BIGINT,
			occur_d BIGINT,
			bandayhr VARCHAR(24),
			rulb BIGINT,
			erx VARCHAR(1),
			rulc BIGINT,
			txtt TEXT,
			mkt VARCHAR(3),
			suffix2 VARCHAR(2),
			suffix4 VARCHAR(4),
			category INTEGER,
			analysis_processed BOOLEAN NOT NULL DEFAULT FALSE,
			analysis_processed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS content_records (
			id BIGSERIAL PRIMARY KEY,
			batch_id UUID REFERENCES ingest_batches(id),
			ban VARCHAR(8),
			code VARCHAR(7),
			name VARCHAR(20),
			gdate BIGINT,
			hhmmss BIGINT,
			date BIGINT,
			od BIGINT,
			hr_reals BIGINT,
			file_nm VARCHAR(70),
			occur_d BIGINT,
			spoker VARCHAR(12),
			d_reals BIGINT,
			keyin1 BIGINT,
			key_hr BIGINT,
			rula BIGINT,
			rulb BIGINT,
			dbcl VARCHAR(9),
			mkt VARCHAR(3),
			no VARCHAR(5),
			txt VARCHAR(70),
			hm_ann BIGINT,
			cla VARCHAR(1),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range ddl {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}
	return nil
}

// CreateBatch records the start of one ingest pass and returns its ID.
func (s *Store) CreateBatch(ctx context.Context, sourceFile, layout string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO ingest_batches (id, source_file, layout, status)
		 VALUES ($1, $2, $3, 'running')`,
		id, sourceFile, layout,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create batch: %w", err)
	}
	return id, nil
}

// CompleteBatch marks an ingest pass as finished with its record count.
func (s *Store) CompleteBatch(ctx context.Context, batchID uuid.UUID, recordCount int, status string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE ingest_batches
		 SET record_count = $1, status = $2, completed_at = NOW()
		 WHERE id = $3`,
		recordCount, status, batchID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete batch: %w", err)
	}
	return nil
}
