// Package decode turns raw fixed-width record bytes into typed values. The
// byte→text step sits behind the TextDecoder capability so the record decoder
// stays independent of the feed's legacy code page.
package decode

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/kaiwen/disclosure-ingest/internal/record"
	"github.com/kaiwen/disclosure-ingest/internal/schema"
)

// TextDecoder converts feed bytes to a UTF-8 string, substituting the Unicode
// replacement character for byte sequences that are not valid in the feed
// encoding. Implementations never fail.
type TextDecoder interface {
	DecodeString(b []byte) string
}

// Record decodes one raw record buffer against a schema. The buffer must
// already have trailing CR/LF stripped (the parser driver does this). Buffers
// shorter than the schema's total length are treated as right-padded with
// ASCII space; the input slice is never modified. The result has exactly one
// value per field, in definition order.
func Record(sch schema.Schema, raw []byte, td TextDecoder) []record.Value {
	total := sch.TotalLength()
	if len(raw) < total {
		padded := make([]byte, total)
		copy(padded, raw)
		for i := len(raw); i < total; i++ {
			padded[i] = ' '
		}
		raw = padded
	}

	values := make([]record.Value, len(sch.Fields))
	for i, f := range sch.Fields {
		chunk := raw[f.Offset : f.Offset+f.Length]
		text := strings.TrimSpace(td.DecodeString(chunk))
		if f.Kind == schema.KindInteger {
			n, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				values[i] = record.NullInt()
			} else {
				values[i] = record.Int64(n)
			}
			continue
		}
		values[i] = record.Text(text)
	}
	return values
}

// Raw passes single-byte data through unchanged. Useful for tests and for
// feeds that are already ASCII.
type Raw struct{}

// DecodeString implements TextDecoder.
func (Raw) DecodeString(b []byte) string {
	return string(bytes.ToValidUTF8(b, []byte("�")))
}
