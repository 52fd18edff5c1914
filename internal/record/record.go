// Package record holds the typed value and result-table types shared by the
// decoder, the parser driver, and the output collaborators.
package record

// Value is one decoded cell: a trimmed string for text fields, or an
// integer-or-null for integer fields.
type Value struct {
	Str     string
	Int     int64
	Integer bool // integer-kind cell
	Null    bool // integer cell with no valid number
}

// Text returns a text-kind value.
func Text(s string) Value {
	return Value{Str: s}
}

// Int64 returns an integer-kind value.
func Int64(n int64) Value {
	return Value{Int: n, Integer: true}
}

// NullInt returns a null integer-kind value.
func NullInt() Value {
	return Value{Integer: true, Null: true}
}

// IntPtr returns the integer value, or nil when the cell is null or text-kind.
func (v Value) IntPtr() *int64 {
	if !v.Integer || v.Null {
		return nil
	}
	n := v.Int
	return &n
}

// DBValue maps the cell to a driver-level value: string for text, int64 for
// integers, nil for null.
func (v Value) DBValue() any {
	if !v.Integer {
		return v.Str
	}
	if v.Null {
		return nil
	}
	return v.Int
}

// ResultTable is the ordered output of one parse pass: column names in fixed
// order (schema fields, then derived fields) and one row per produced record.
type ResultTable struct {
	Columns []string
	Rows    [][]Value
}

// NewResultTable returns an empty table with the given column order.
func NewResultTable(columns []string) *ResultTable {
	return &ResultTable{Columns: columns}
}

// Append adds one row. The row must have one value per column.
func (t *ResultTable) Append(row []Value) {
	t.Rows = append(t.Rows, row)
}

// Len returns the number of rows.
func (t *ResultTable) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of a column, or -1 if absent.
func (t *ResultTable) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
