package inspect

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"oes-harmonize/internal/diagnostic"
)

// WriteText renders the report as an aligned text table.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "rows: %d\n", r.Rows)
	fmt.Fprintf(tw, "group columns: %s\n\n", orDash(r.Groups.Present))
	fmt.Fprintln(tw, "COLUMN\tNULL%\tDISTINCT\tSAMPLES\tSUGGESTIONS")

	for _, c := range r.Columns {
		distinct := fmt.Sprint(c.Distinct)
		if c.DistinctCapped {
			distinct += "+"
		}

		suggestions := orDash(c.Suggestions)
		if c.Canonical {
			suggestions = "(canonical)"
		}

		fmt.Fprintf(tw, "%s\t%.1f\t%s\t%s\t%s\n",
			c.Name, c.NullRatio*100, distinct, orDash(c.Samples), suggestions)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if r.Diagnostics == nil {
		return nil
	}

	fmt.Fprintf(w, "\ndialect %s: %d dropped column(s)\n", r.Dialect, len(r.Diagnostics.Warnings))

	for _, group := range [][]diagnostic.Diagnostic{r.Diagnostics.Warnings, r.Diagnostics.Infos} {
		for _, d := range group {
			if _, err := fmt.Fprintf(w, "  %s: %s\n", d.Severity, d); err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteJSON renders the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(append(data, '\n'))

	return err
}

func orDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}

	return strings.Join(values, ", ")
}
