package table

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Row maps a column name to its cell value.
type Row map[string]any

// Table is an ordered sequence of rows plus the ordered column header.
type Table struct {
	// Columns is the header in source (or canonical) order.
	Columns []string
	// Rows in source order.
	Rows []Row
}

// nullValue is the type of Null.
type nullValue struct{}

// Null marks a cell that has no value.
var Null = nullValue{}

// MarshalJSON renders the marker as JSON null.
func (nullValue) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// String renders the marker as an empty cell.
func (nullValue) String() string {
	return ""
}

// IsNull reports whether v is the Null marker or a nil interface.
func IsNull(v any) bool {
	if v == nil {
		return true
	}

	_, ok := v.(nullValue)

	return ok
}

// IsBlank reports whether v is Null or a whitespace-only string.
func IsBlank(v any) bool {
	if IsNull(v) {
		return true
	}

	s, ok := v.(string)

	return ok && strings.TrimSpace(s) == ""
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	return slices.Contains(t.Columns, name)
}

// Clone returns a deep copy of the header and rows. Cell values are copied
// by value.
func (t *Table) Clone() *Table {
	out := &Table{
		Columns: slices.Clone(t.Columns),
		Rows:    make([]Row, len(t.Rows)),
	}

	for i, r := range t.Rows {
		nr := make(Row, len(r))
		for k, v := range r {
			nr[k] = v
		}

		out.Rows[i] = nr
	}

	return out
}

// Slice returns a table sharing the header and the rows [from, to).
func (t *Table) Slice(from, to int) *Table {
	return &Table{Columns: t.Columns, Rows: t.Rows[from:to]}
}

// Concat appends the rows of all tables into a new table. Every table must
// carry the same column sequence.
func Concat(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return &Table{}, nil
	}

	first := tables[0]
	total := 0

	for i, t := range tables {
		if !slices.Equal(t.Columns, first.Columns) {
			return nil, fmt.Errorf("table %d columns %v differ from table 0 columns %v", i, t.Columns, first.Columns)
		}

		total += len(t.Rows)
	}

	out := &Table{
		Columns: slices.Clone(first.Columns),
		Rows:    make([]Row, 0, total),
	}

	for _, t := range tables {
		out.Rows = append(out.Rows, t.Rows...)
	}

	return out, nil
}

// FormatValue renders a cell for text output.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil, nullValue:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
