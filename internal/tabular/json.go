package tabular

import (
	"bufio"
	"io"
	"slices"

	"github.com/goccy/go-json"

	"oes-harmonize/internal/table"
)

// WriteJSON writes t as an array of objects whose keys follow the column
// order. Null cells are written as null.
func WriteJSON(w io.Writer, t *table.Table) error {
	bw := bufio.NewWriter(w)

	keys := make([][]byte, len(t.Columns))
	for i, col := range t.Columns {
		k, err := json.Marshal(col)
		if err != nil {
			return err
		}

		keys[i] = k
	}

	bw.WriteByte('[')

	for i, row := range t.Rows {
		if i > 0 {
			bw.WriteByte(',')
		}

		bw.WriteByte('{')

		for j, col := range t.Columns {
			if j > 0 {
				bw.WriteByte(',')
			}

			v, err := json.Marshal(row[col])
			if err != nil {
				return err
			}

			bw.Write(keys[j])
			bw.WriteByte(':')
			bw.Write(v)
		}

		bw.WriteByte('}')
	}

	bw.WriteString("]\n")

	return bw.Flush()
}

// ReadJSON reads an array of objects. Columns are the sorted union of
// object keys since JSON objects carry no order. Values keep their JSON
// types; null becomes table.Null.
func ReadJSON(r io.Reader) (*table.Table, error) {
	var records []map[string]any

	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	out := &table.Table{Rows: make([]table.Row, len(records))}

	for i, rec := range records {
		row := make(table.Row, len(rec))

		for k, v := range rec {
			if v == nil {
				v = table.Null
			}

			row[k] = v

			if !seen[k] {
				seen[k] = true
				out.Columns = append(out.Columns, k)
			}
		}

		out.Rows[i] = row
	}

	slices.Sort(out.Columns)

	return out, nil
}
