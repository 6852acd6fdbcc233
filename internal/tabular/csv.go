package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"oes-harmonize/internal/table"
)

// ReadCSV reads a delimited table whose first record is the header.
// Blank records are skipped.
func ReadCSV(r io.Reader, opts ReadOptions) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}

	var (
		h   *header
		out = &table.Table{}
	)

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}

		line, _ := cr.FieldPos(0)

		if h == nil {
			if h, err = newHeader(record, opts); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}

			out.Columns = h.names

			continue
		}

		if blankRecord(record) {
			continue
		}

		row, err := h.row(record, line, opts)
		if err != nil {
			return nil, err
		}

		out.Rows = append(out.Rows, row)
	}

	if h == nil {
		return nil, fmt.Errorf("reading csv: no header row")
	}

	return out, nil
}

// WriteCSV writes t with a header record. Null cells are written empty.
func WriteCSV(w io.Writer, t *table.Table, delimiter rune) error {
	cw := csv.NewWriter(w)
	if delimiter != 0 {
		cw.Comma = delimiter
	}

	if err := cw.Write(t.Columns); err != nil {
		return err
	}

	record := make([]string, len(t.Columns))

	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = table.FormatValue(row[col])
		}

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
