package tabular

import (
	"fmt"
	"strings"

	"oes-harmonize/internal/table"
)

const bom = "\ufeff"

// header maps positional cells to column names. Columns with a blank name
// are skipped together with their cells.
type header struct {
	names []string
	index []int
}

func newHeader(cells []string, opts ReadOptions) (*header, error) {
	h := &header{}
	seen := make(map[string]int, len(cells))

	for i, cell := range cells {
		name := strings.TrimSpace(strings.TrimPrefix(cell, bom))
		if name == "" {
			continue
		}

		if opts.UpperHeaders {
			name = strings.ToUpper(name)
		}

		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("column %s appears at positions %d and %d", name, prev+1, i+1)
		}

		seen[name] = i
		h.names = append(h.names, name)
		h.index = append(h.index, i)
	}

	if len(h.names) == 0 {
		return nil, fmt.Errorf("header row is empty")
	}

	return h, nil
}

// row builds a table row from positional cells. line is the 1-based source
// line used in errors.
func (h *header) row(cells []string, line int, opts ReadOptions) (table.Row, error) {
	row := make(table.Row, len(h.names))

	for i, name := range h.names {
		pos := h.index[i]

		var v any = table.Null
		if pos < len(cells) {
			v = cells[pos]
		}

		if opts.BlankAsNull && table.IsBlank(v) {
			v = table.Null
		} else if table.IsNull(v) {
			v = ""
		}

		row[name] = v
	}

	last := h.index[len(h.index)-1]
	for pos := last + 1; pos < len(cells); pos++ {
		if strings.TrimSpace(cells[pos]) != "" {
			return nil, fmt.Errorf("line %d: value %q in column %d has no header", line, cells[pos], pos+1)
		}
	}

	return row, nil
}

func blankRecord(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
