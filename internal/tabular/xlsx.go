package tabular

import (
	"fmt"
	"io"
	"regexp"

	"github.com/xuri/excelize/v2"

	"oes-harmonize/internal/table"
)

// dataSheetPatterns match the data worksheet names used across OES
// releases, e.g. "All May 2018 data", "national_M2014_dl",
// "natsector_M2016_dl" or "MSA_dl_1".
var dataSheetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^all\s+may\s+\d{4}\s+data$`),
	regexp.MustCompile(`(?i)^[a-z0-9]+(_[a-z0-9]+)*_m\d{4}_dl$`),
	regexp.MustCompile(`(?i)^(national|state|msa|bos|nonmetro|aggregate)(_dl)?(_\d+)?$`),
}

// OutputSheet is the worksheet name used by WriteXLSX.
const OutputSheet = "harmonized"

// IsDataSheet reports whether name looks like an OES data worksheet.
func IsDataSheet(name string) bool {
	for _, re := range dataSheetPatterns {
		if re.MatchString(name) {
			return true
		}
	}

	return false
}

// PickSheet returns the worksheet to read from sheets.
func PickSheet(sheets []string, requested string) (string, error) {
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no worksheets")
	}

	if requested != "" {
		for _, s := range sheets {
			if s == requested {
				return s, nil
			}
		}

		return "", fmt.Errorf("worksheet %q not found in %v", requested, sheets)
	}

	for _, s := range sheets {
		if IsDataSheet(s) {
			return s, nil
		}
	}

	return sheets[0], nil
}

// ReadXLSX reads one worksheet of a workbook. Cell values are read raw,
// without number formats applied.
func ReadXLSX(r io.Reader, opts ReadOptions) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet, err := PickSheet(f.GetSheetList(), opts.Sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading worksheet %q: %w", sheet, err)
	}
	defer rows.Close()

	var (
		h    *header
		out  = &table.Table{}
		line int
	)

	for rows.Next() {
		line++

		cells, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("worksheet %q row %d: %w", sheet, line, err)
		}

		if blankRecord(cells) {
			continue
		}

		if h == nil {
			if h, err = newHeader(cells, opts); err != nil {
				return nil, fmt.Errorf("worksheet %q row %d: %w", sheet, line, err)
			}

			out.Columns = h.names

			continue
		}

		row, err := h.row(cells, line, opts)
		if err != nil {
			return nil, fmt.Errorf("worksheet %q: %w", sheet, err)
		}

		out.Rows = append(out.Rows, row)
	}

	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("worksheet %q: %w", sheet, err)
	}

	if h == nil {
		return nil, fmt.Errorf("worksheet %q has no header row", sheet)
	}

	return out, nil
}

// WriteXLSX writes t to a single-sheet workbook.
func WriteXLSX(w io.Writer, t *table.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), OutputSheet); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(OutputSheet)
	if err != nil {
		return err
	}

	header := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}

	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		values := make([]any, len(t.Columns))
		for j, col := range t.Columns {
			if v := row[col]; !table.IsNull(v) {
				values[j] = v
			}
		}

		if err := sw.SetRow(cell, values); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}

	_, err = f.WriteTo(w)

	return err
}
