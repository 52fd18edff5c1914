package record

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// utf8BOM makes the CSV open correctly in spreadsheet tools that sniff the
// byte-order mark to pick an encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV serializes the table as UTF-8 CSV with a BOM and a header row.
// Null integer cells render as empty fields.
func (t *ResultTable) WriteCSV(w io.Writer) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	fields := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, v := range row {
			switch {
			case !v.Integer:
				fields[i] = v.Str
			case v.Null:
				fields[i] = ""
			default:
				fields[i] = strconv.FormatInt(v.Int, 10)
			}
		}
		if err := cw.Write(fields); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
