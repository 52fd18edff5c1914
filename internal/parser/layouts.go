package parser

import (
	"github.com/kaiwen/disclosure-ingest/internal/classify"
	"github.com/kaiwen/disclosure-ingest/internal/derive"
	"github.com/kaiwen/disclosure-ingest/internal/record"
	"github.com/kaiwen/disclosure-ingest/internal/schema"
)

// Derived column names. SUFFIX2/SUFFIX4 are the trailing slices of the
// right-aligned subject, CATEGORY the keyword-cascade result; HM_ANN is the
// HHMM announcement hour, CLA the first letter of the DB classification code.
const (
	ColSuffix2  = "SUFFIX2"
	ColSuffix4  = "SUFFIX4"
	ColCategory = "CATEGORY"
	ColHourAnn  = "HM_ANN"
	ColClassLtr = "CLA"
)

// SubjectLayout returns the subject-stream layout: the 290-byte header schema
// plus suffix2, suffix4, and the classification category.
func SubjectLayout() Layout {
	return Layout{
		Schema:  schema.Subject(),
		derived: []string{ColSuffix2, ColSuffix4, ColCategory},
		enrich: func(fields map[string]record.Value) []record.Value {
			subject := fields["TXTT"].Str
			suffix2, suffix4 := derive.Suffixes(subject)
			category := classify.Classify(subject, fields["RULB"].IntPtr())
			return []record.Value{
				record.Text(suffix2),
				record.Text(suffix4),
				record.Int64(int64(category)),
			}
		},
	}
}

// ContentLayout returns the content-stream layout: the 268-byte body schema
// plus the hour component and the class letter.
func ContentLayout() Layout {
	return Layout{
		Schema:  schema.Content(),
		derived: []string{ColHourAnn, ColClassLtr},
		enrich: func(fields map[string]record.Value) []record.Value {
			hour := derive.HourComponent(fields["HR_REALS"].IntPtr())
			hourVal := record.NullInt()
			if hour != nil {
				hourVal = record.Int64(*hour)
			}
			return []record.Value{
				hourVal,
				record.Text(derive.ClassLetter(fields["DBCL"].Str)),
			}
		},
	}
}
