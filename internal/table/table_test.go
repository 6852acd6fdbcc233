package table

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNull(t *testing.T) {
	assert.True(t, IsNull(Null))
	assert.True(t, IsNull(nil))
	assert.False(t, IsNull(""))
	assert.False(t, IsNull(0.0))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(Null))
	assert.True(t, IsBlank("   "))
	assert.False(t, IsBlank("**"))
	assert.False(t, IsBlank(1.5))
}

func TestNullMarshalsAsJSONNull(t *testing.T) {
	data, err := json.Marshal(Row{"PCT_RPT": Null})
	require.NoError(t, err)
	assert.JSONEq(t, `{"PCT_RPT": null}`, string(data))
}

func TestClone_DoesNotShareRows(t *testing.T) {
	orig := &Table{
		Columns: []string{"A"},
		Rows:    []Row{{"A": "x"}},
	}

	cp := orig.Clone()
	cp.Rows[0]["A"] = "y"
	cp.Columns[0] = "B"

	assert.Equal(t, "x", orig.Rows[0]["A"])
	assert.Equal(t, "A", orig.Columns[0])
}

func TestConcat(t *testing.T) {
	a := &Table{Columns: []string{"A", "B"}, Rows: []Row{{"A": 1, "B": 2}}}
	b := &Table{Columns: []string{"A", "B"}, Rows: []Row{{"A": 3, "B": 4}, {"A": 5, "B": 6}}}

	out, err := Concat(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, out.Columns)
	require.Len(t, out.Rows, 3)
	assert.Equal(t, 5, out.Rows[2]["A"])
}

func TestConcat_ColumnMismatch(t *testing.T) {
	a := &Table{Columns: []string{"A", "B"}}
	b := &Table{Columns: []string{"B", "A"}}

	_, err := Concat(a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table 1")
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in       any
		expected string
	}{
		{Null, ""},
		{nil, ""},
		{"detailed", "detailed"},
		{1.2, "1.2"},
		{100.0, "100"},
		{true, "true"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatValue(tt.in))
	}
}
