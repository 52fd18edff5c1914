package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiwen/disclosure-ingest/internal/record"
)

func TestMatchColumns(t *testing.T) {
	table := record.NewResultTable([]string{"BAN", "TXTT", "SUFFIX2", "EXTRA", "CATEGORY"})

	cols, idx := matchColumns(table, subjectAllowList)

	// Allow-list order, not table order; EXTRA is dropped.
	assert.Equal(t, []string{"ban", "txtt", "suffix2", "category"}, cols)
	assert.Equal(t, []int{0, 1, 2, 4}, idx)
}

func TestMatchColumnsNoOverlap(t *testing.T) {
	table := record.NewResultTable([]string{"FOO", "BAR"})

	cols, idx := matchColumns(table, subjectAllowList)
	assert.Empty(t, cols)
	assert.Empty(t, idx)
}

func TestMatchColumnsIsCaseInsensitive(t *testing.T) {
	table := record.NewResultTable([]string{"Ban", "hm_ann", "CLA"})

	cols, _ := matchColumns(table, contentAllowList)
	assert.Equal(t, []string{"ban", "hm_ann", "cla"}, cols)
}

func TestBuildInsert(t *testing.T) {
	stmt := buildInsert("subject_records", []string{"ban", "txtt", "category"})
	assert.Equal(t,
		"INSERT INTO subject_records (batch_id, ban, txtt, category) VALUES ($1, $2, $3, $4)",
		stmt)
}

func TestAllowListsMatchLayouts(t *testing.T) {
	// Every allow-list entry except the derived columns maps back to a
	// schema field, so a full parse output inserts without gaps.
	subject := record.NewResultTable([]string{
		"BAN", "CODE", "NAME", "D_REALS", "OD", "HR_REALS", "OCCUR_D",
		"BANDAYHR", "RULB", "ERX", "RULC", "TXTT", "MKT",
		"SUFFIX2", "SUFFIX4", "CATEGORY",
	})
	cols, _ := matchColumns(subject, subjectAllowList)
	require.Len(t, cols, len(subjectAllowList))

	content := record.NewResultTable([]string{
		"BAN", "CODE", "NAME", "GDATE", "HHMMSS", "DATE", "OD", "HR_REALS",
		"FILE_NM", "OCCUR_D", "SPOKER", "D_REALS", "KEYIN1", "KEY_HR",
		"RULA", "RULB", "DBCL", "MKT", "NO", "TXT", "HM_ANN", "CLA",
	})
	cols, _ = matchColumns(content, contentAllowList)
	require.Len(t, cols, len(contentAllowList))
}
