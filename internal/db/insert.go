package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kaiwen/disclosure-ingest/internal/record"
)

// defaultBatchSize bounds one multi-row insert batch.
const defaultBatchSize = 1000

// subjectAllowList is the insert contract for subject_records: only these
// lower-cased columns are taken from a result table; anything else the table
// carries is ignored.
var subjectAllowList = []string{
	"ban", "code", "name", "d_reals", "od", "hr_reals",
	"occur_d", "bandayhr", "rulb", "erx", "rulc", "txtt", "mkt",
	"suffix2", "suffix4", "category",
}

// contentAllowList is the insert contract for content_records.
var contentAllowList = []string{
	"ban", "code", "name", "gdate", "hhmmss", "date", "od", "hr_reals",
	"file_nm", "occur_d", "spoker", "d_reals", "keyin1", "key_hr",
	"rula", "rulb", "dbcl", "mkt", "no", "txt", "hm_ann", "cla",
}

// InsertSubjects stores a subject-stream result table. Returns the number of
// rows inserted.
func (s *Store) InsertSubjects(ctx context.Context, batchID uuid.UUID, table *record.ResultTable, batchSize int) (int, error) {
	return s.insertTable(ctx, "subject_records", subjectAllowList, batchID, table, batchSize)
}

// InsertContents stores a content-stream result table.
func (s *Store) InsertContents(ctx context.Context, batchID uuid.UUID, table *record.ResultTable, batchSize int) (int, error) {
	return s.insertTable(ctx, "content_records", contentAllowList, batchID, table, batchSize)
}

func (s *Store) insertTable(ctx context.Context, tableName string, allowList []string, batchID uuid.UUID, table *record.ResultTable, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	cols, idx := matchColumns(table, allowList)
	if len(cols) == 0 {
		return 0, fmt.Errorf("result table has no columns matching %s", tableName)
	}

	stmt := buildInsert(tableName, cols)
	inserted := 0
	for start := 0; start < table.Len(); start += batchSize {
		end := min(start+batchSize, table.Len())

		batch := &pgx.Batch{}
		for _, row := range table.Rows[start:end] {
			args := make([]any, 0, len(cols)+1)
			args = append(args, batchID)
			for _, i := range idx {
				args = append(args, row[i].DBValue())
			}
			batch.Queue(stmt, args...)
		}

		br := s.pool.SendBatch(ctx, batch)
		for range end - start {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return inserted, fmt.Errorf("failed to insert into %s: %w", tableName, err)
			}
		}
		if err := br.Close(); err != nil {
			return inserted, fmt.Errorf("failed to close insert batch: %w", err)
		}
		inserted += end - start
	}
	return inserted, nil
}

// matchColumns resolves the allow-list against a result table. It returns the
// matched column names in allow-list order and the table index of each.
// Matching is by lower-cased name; table columns absent from the allow-list
// are dropped.
func matchColumns(table *record.ResultTable, allowList []string) (cols []string, idx []int) {
	lower := make(map[string]int, len(table.Columns))
	for i, c := range table.Columns {
		lower[strings.ToLower(c)] = i
	}
	for _, allowed := range allowList {
		if i, ok := lower[allowed]; ok {
			cols = append(cols, allowed)
			idx = append(idx, i)
		}
	}
	return cols, idx
}

// buildInsert renders the parameterized insert statement. $1 is always the
// batch ID; data columns follow in allow-list order.
func buildInsert(tableName string, cols []string) string {
	placeholders := make([]string, len(cols)+1)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf(
		"INSERT INTO %s (batch_id, %s) VALUES (%s)",
		tableName,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
	)
}
