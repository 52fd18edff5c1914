package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectLayout(t *testing.T) {
	s := Subject()

	assert.Equal(t, "subject", s.Name)
	assert.Len(t, s.Fields, 13)
	assert.Equal(t, 290, s.TotalLength())

	// Spot-check the fields whose placement the decoder depends on most
	assert.Equal(t, Field{Name: "TXTT", Offset: 77, Length: 210, Kind: KindText}, s.Fields[11])
	assert.Equal(t, Field{Name: "RULB", Offset: 71, Length: 3, Kind: KindInteger}, s.Fields[8])
	assert.Equal(t, Field{Name: "MKT", Offset: 287, Length: 3, Kind: KindText}, s.Fields[12])
}

func TestContentLayout(t *testing.T) {
	s := Content()

	assert.Equal(t, "content", s.Name)
	assert.Len(t, s.Fields, 20)
	assert.Equal(t, 268, s.TotalLength())

	assert.Equal(t, Field{Name: "HR_REALS", Offset: 59, Length: 6, Kind: KindInteger}, s.Fields[7])
	assert.Equal(t, Field{Name: "DBCL", Offset: 181, Length: 9, Kind: KindText}, s.Fields[16])
	assert.Equal(t, Field{Name: "TXT", Offset: 198, Length: 70, Kind: KindText}, s.Fields[19])
}

func TestColumnsOrder(t *testing.T) {
	cols := Subject().Columns()
	require.Len(t, cols, 13)
	assert.Equal(t, "BAN", cols[0])
	assert.Equal(t, "TXTT", cols[11])
	assert.Equal(t, "MKT", cols[12])
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
		errMsg string
	}{
		{
			name:   "no fields",
			fields: nil,
			errMsg: "no fields",
		},
		{
			name:   "empty field name",
			fields: []Field{{Name: "", Offset: 0, Length: 1}},
			errMsg: "empty name",
		},
		{
			name:   "negative offset",
			fields: []Field{{Name: "A", Offset: -1, Length: 1}},
			errMsg: "negative offset",
		},
		{
			name:   "zero length",
			fields: []Field{{Name: "A", Offset: 0, Length: 0}},
			errMsg: "non-positive length",
		},
		{
			name: "duplicate name",
			fields: []Field{
				{Name: "A", Offset: 0, Length: 1},
				{Name: "A", Offset: 1, Length: 1},
			},
			errMsg: "duplicate field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("bad", tt.fields)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNewTotalLengthIgnoresFieldOrder(t *testing.T) {
	s, err := New("mixed", []Field{
		{Name: "B", Offset: 10, Length: 5},
		{Name: "A", Offset: 0, Length: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 15, s.TotalLength())
}
