package decode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaiwen/disclosure-ingest/internal/schema"
)

// testSchema is a small layout exercising both kinds.
func testSchema(t *testing.T) schema.Schema {
	t.Helper()
	s, err := schema.New("test", []schema.Field{
		{Name: "CODE", Offset: 0, Length: 4, Kind: schema.KindText},
		{Name: "NUM", Offset: 4, Length: 6, Kind: schema.KindInteger},
		{Name: "TAIL", Offset: 10, Length: 5, Kind: schema.KindText},
	})
	require.NoError(t, err)
	return s
}

func TestRecordSlicesAndTrims(t *testing.T) {
	s := testSchema(t)
	row := Record(s, []byte("AB    1234 tail "), Raw{})

	require.Len(t, row, 3)
	assert.Equal(t, "AB", row[0].Str)
	assert.True(t, row[1].Integer)
	assert.False(t, row[1].Null)
	assert.Equal(t, int64(1234), row[1].Int)
	assert.Equal(t, "tail", row[2].Str)
}

func TestRecordOneValuePerField(t *testing.T) {
	s := testSchema(t)

	// Any input, including garbage and empty, yields exactly one value per field
	for _, in := range [][]byte{
		nil,
		[]byte(""),
		[]byte("x"),
		[]byte(strings.Repeat("\xff", 40)),
	} {
		row := Record(s, in, Raw{})
		assert.Len(t, row, len(s.Fields))
	}
}

func TestRecordShortBufferPaddingInvariance(t *testing.T) {
	s := testSchema(t)
	short := []byte("AB  42")
	padded := []byte("AB  42" + strings.Repeat(" ", s.TotalLength()-6))

	assert.Equal(t, Record(s, padded, Raw{}), Record(s, short, Raw{}))
}

func TestRecordDoesNotModifyInput(t *testing.T) {
	s := testSchema(t)
	short := []byte("AB")
	Record(s, short, Raw{})
	assert.Equal(t, []byte("AB"), short)
}

func TestRecordIntegerNullCases(t *testing.T) {
	s := testSchema(t)

	tests := []struct {
		name string
		num  string
		null bool
		want int64
	}{
		{"blank", "      ", true, 0},
		{"non-numeric", "abc   ", true, 0},
		{"replacement char", "12\xff34", true, 0},
		{"decimal point", "12.5  ", true, 0},
		{"valid", "000042", false, 42},
		{"negative", "-12   ", false, -12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := Record(s, []byte("AAAA"+tt.num), Raw{})
			assert.Equal(t, tt.null, row[1].Null)
			if !tt.null {
				assert.Equal(t, tt.want, row[1].Int)
			}
		})
	}
}

func TestRecordDeterministic(t *testing.T) {
	s := testSchema(t)
	in := []byte("AB  1234  tail")
	assert.Equal(t, Record(s, in, Raw{}), Record(s, in, Raw{}))
}

func TestRawDecodeString(t *testing.T) {
	d := Raw{}

	// Valid UTF-8 passes through untouched, multi-byte included
	assert.Equal(t, "AB12", d.DecodeString([]byte("AB12")))
	assert.Equal(t, "一", d.DecodeString([]byte("一")))

	// Invalid bytes become the replacement character
	assert.Equal(t, "A�B", d.DecodeString([]byte{'A', 0xff, 'B'}))
	assert.Equal(t, "�", d.DecodeString([]byte{0xff, 0xfe}))
}

func TestBig5DecodeString(t *testing.T) {
	d := Big5{}

	// A4 40 is Big5 for 一
	assert.Equal(t, "一", d.DecodeString([]byte{0xA4, 0x40}))

	// ASCII passes through
	assert.Equal(t, "AB12", d.DecodeString([]byte("AB12")))

	// An orphan lead byte decodes to the replacement character, never panics
	out := d.DecodeString([]byte{0xA4})
	assert.Contains(t, out, "�")

	// Mixed single/double-byte content
	mixed := append([]byte("X"), 0xA4, 0x40)
	assert.Equal(t, "X一", d.DecodeString(mixed))
}

func TestBig5RecordRoundTrip(t *testing.T) {
	s, err := schema.New("b5", []schema.Field{
		{Name: "TXT", Offset: 0, Length: 6, Kind: schema.KindText},
	})
	require.NoError(t, err)

	// 一 (A4 40) followed by spaces inside the 6-byte window
	buf := []byte{0xA4, 0x40, ' ', ' ', ' ', ' '}
	row := Record(s, buf, Big5{})
	assert.Equal(t, "一", row[0].Str)
}
