// Package schema defines the fixed-width field layouts for the disclosure
// feed's two record streams: the subject stream (disclosure headers) and the
// content stream (disclosure body segments).
package schema

import "fmt"

// Kind is the value type of a fixed-width field.
type Kind int

const (
	// KindText fields decode to a trimmed string.
	KindText Kind = iota
	// KindInteger fields decode to an integer, or null when the trimmed
	// text is not a valid base-10 number.
	KindInteger
)

// Field describes one fixed-width field: a half-open byte range
// [Offset, Offset+Length) within a record, and how to interpret it.
type Field struct {
	Name   string
	Offset int
	Length int
	Kind   Kind
}

// Schema is an ordered field-definition table for one record layout.
type Schema struct {
	Name   string
	Fields []Field
}

// New builds a Schema and validates the field table. Validation failures are
// configuration errors and must surface before any record is processed.
func New(name string, fields []Field) (Schema, error) {
	if len(fields) == 0 {
		return Schema{}, fmt.Errorf("schema %q has no fields", name)
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return Schema{}, fmt.Errorf("schema %q has a field with an empty name", name)
		}
		if f.Offset < 0 {
			return Schema{}, fmt.Errorf("schema %q field %s has negative offset %d", name, f.Name, f.Offset)
		}
		if f.Length <= 0 {
			return Schema{}, fmt.Errorf("schema %q field %s has non-positive length %d", name, f.Name, f.Length)
		}
		if seen[f.Name] {
			return Schema{}, fmt.Errorf("schema %q has duplicate field %s", name, f.Name)
		}
		seen[f.Name] = true
	}
	return Schema{Name: name, Fields: fields}, nil
}

// TotalLength is the fixed record length: max(offset+length) over all fields.
func (s Schema) TotalLength() int {
	total := 0
	for _, f := range s.Fields {
		if end := f.Offset + f.Length; end > total {
			total = end
		}
	}
	return total
}

// Columns returns field names in definition order.
func (s Schema) Columns() []string {
	cols := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		cols[i] = f.Name
	}
	return cols
}

// Subject returns the field table for the 290-byte subject stream.
func Subject() Schema {
	s, err := New("subject", []Field{
		{Name: "BAN", Offset: 0, Length: 8, Kind: KindText},
		{Name: "CODE", Offset: 8, Length: 7, Kind: KindText},
		{Name: "NAME", Offset: 15, Length: 8, Kind: KindText},
		{Name: "D_REALS", Offset: 23, Length: 8, Kind: KindInteger},
		{Name: "OD", Offset: 31, Length: 2, Kind: KindInteger},
		{Name: "HR_REALS", Offset: 33, Length: 6, Kind: KindInteger},
		{Name: "OCCUR_D", Offset: 39, Length: 8, Kind: KindInteger},
		{Name: "BANDAYHR", Offset: 47, Length: 24, Kind: KindText},
		{Name: "RULB", Offset: 71, Length: 3, Kind: KindInteger},
		{Name: "ERX", Offset: 74, Length: 1, Kind: KindText},
		{Name: "RULC", Offset: 75, Length: 2, Kind: KindInteger},
		{Name: "TXTT", Offset: 77, Length: 210, Kind: KindText},
		{Name: "MKT", Offset: 287, Length: 3, Kind: KindText},
	})
	if err != nil {
		panic(err)
	}
	return s
}

// Content returns the field table for the 268-byte content stream.
func Content() Schema {
	s, err := New("content", []Field{
		{Name: "BAN", Offset: 0, Length: 8, Kind: KindText},
		{Name: "CODE", Offset: 8, Length: 7, Kind: KindText},
		{Name: "NAME", Offset: 15, Length: 20, Kind: KindText},
		{Name: "GDATE", Offset: 35, Length: 8, Kind: KindInteger},
		{Name: "HHMMSS", Offset: 43, Length: 6, Kind: KindInteger},
		{Name: "DATE", Offset: 49, Length: 8, Kind: KindInteger},
		{Name: "OD", Offset: 57, Length: 2, Kind: KindInteger},
		{Name: "HR_REALS", Offset: 59, Length: 6, Kind: KindInteger},
		{Name: "FILE_NM", Offset: 65, Length: 70, Kind: KindText},
		{Name: "OCCUR_D", Offset: 135, Length: 8, Kind: KindInteger},
		{Name: "SPOKER", Offset: 143, Length: 12, Kind: KindText},
		{Name: "D_REALS", Offset: 155, Length: 8, Kind: KindInteger},
		{Name: "KEYIN1", Offset: 163, Length: 8, Kind: KindInteger},
		{Name: "KEY_HR", Offset: 171, Length: 4, Kind: KindInteger},
		{Name: "RULA", Offset: 175, Length: 3, Kind: KindInteger},
		{Name: "RULB", Offset: 178, Length: 3, Kind: KindInteger},
		{Name: "DBCL", Offset: 181, Length: 9, Kind: KindText},
		{Name: "MKT", Offset: 190, Length: 3, Kind: KindText},
		{Name: "NO", Offset: 193, Length: 5, Kind: KindText},
		{Name: "TXT", Offset: 198, Length: 70, Kind: KindText},
	})
	if err != nil {
		panic(err)
	}
	return s
}
