package inspect

import (
	"fmt"
	"slices"

	"oes-harmonize/internal/diagnostic"
	"oes-harmonize/internal/match"
	"oes-harmonize/internal/registry"
	"oes-harmonize/internal/table"
)

// Options controls profiling.
type Options struct {
	// SampleSize is the number of distinct values kept per column.
	SampleSize int
	// MaxDistinct caps distinct value counting per column.
	MaxDistinct int
	// Suggestions is the number of canonical names proposed per column.
	Suggestions int
	// MinScore is the minimum header similarity for a suggestion.
	MinScore float64
	// Canonical is the schema suggestions are drawn from. Empty disables
	// suggestions.
	Canonical []string
	// Dialect, when set, is checked against the header: every column its
	// rename table would drop is reported.
	Dialect *registry.Dialect
}

// DefaultOptions returns the default options for schema.
func DefaultOptions(schema []string) Options {
	return Options{
		SampleSize:  5,
		MaxDistinct: 1000,
		Suggestions: 3,
		MinScore:    match.DefaultMinScore,
		Canonical:   schema,
	}
}

// Report describes one raw table.
type Report struct {
	Rows    int            `json:"rows"`
	Columns []ColumnReport `json:"columns"`
	Groups  GroupReport    `json:"groups"`
	// Dialect is the id checked against the header, if any.
	Dialect     string                  `json:"dialect,omitempty"`
	Diagnostics *diagnostic.Diagnostics `json:"diagnostics,omitempty"`
}

// ColumnReport describes one raw column.
type ColumnReport struct {
	Name      string  `json:"name"`
	Nulls     int     `json:"nulls"`
	NullRatio float64 `json:"null_ratio"`
	Distinct  int     `json:"distinct"`
	// DistinctCapped is set when Distinct stopped at Options.MaxDistinct.
	DistinctCapped bool     `json:"distinct_capped,omitempty"`
	Samples        []string `json:"samples"`
	// Canonical is set when the name is already a canonical column.
	Canonical   bool     `json:"canonical"`
	Suggestions []string `json:"suggestions,omitempty"`
	// Mapped is the canonical column the checked dialect renames this
	// column to.
	Mapped string `json:"mapped,omitempty"`
}

// Inspect profiles every column of raw.
func Inspect(raw *table.Table, opts Options) *Report {
	rep := &Report{
		Rows:    raw.Len(),
		Columns: make([]ColumnReport, 0, len(raw.Columns)),
		Groups:  GroupColumns(raw),
	}

	for _, col := range raw.Columns {
		rep.Columns = append(rep.Columns, inspectColumn(raw, col, opts))
	}

	if d := opts.Dialect; d != nil {
		rep.Dialect = d.ID
		rep.Diagnostics = &diagnostic.Diagnostics{}

		for i := range rep.Columns {
			cr := &rep.Columns[i]
			if target, ok := d.Rename[cr.Name]; ok {
				cr.Mapped = target

				continue
			}

			rep.Diagnostics.Merge(unmappedColumn(d.ID, cr.Name, opts))
		}
	}

	return rep
}

// unmappedColumn reports a header column the dialect drops, with the
// canonical columns it most resembles.
func unmappedColumn(dialect, col string, opts Options) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	ranked := match.Rank(col, opts.Canonical).AboveThreshold(opts.MinScore)

	msg := "column is dropped by the rename table"
	if best := ranked.Best(); best != nil {
		msg += fmt.Sprintf("; closest canonical column is %s (%.2f)", best.Canonical, best.Score)
	}

	res.AddWarning(diagnostic.CodeUnmappedRawColumn, msg, dialect, col, ranked.Top(opts.Suggestions).Names()...)

	if ranked.IsAmbiguous(match.DefaultAmbiguityThreshold) {
		res.AddInfo(diagnostic.CodeAmbiguousSuggestion,
			fmt.Sprintf("%s and %s are too close to call", ranked[0].Canonical, ranked[1].Canonical),
			dialect, col)
	}

	return res
}

func inspectColumn(raw *table.Table, col string, opts Options) ColumnReport {
	cr := ColumnReport{
		Name:      col,
		Samples:   []string{},
		Canonical: slices.Contains(opts.Canonical, col),
	}

	seen := make(map[string]struct{})

	for _, row := range raw.Rows {
		v := row[col]
		if table.IsBlank(v) {
			cr.Nulls++

			continue
		}

		s := table.FormatValue(v)
		if _, ok := seen[s]; ok {
			continue
		}

		if len(seen) >= opts.MaxDistinct {
			cr.DistinctCapped = true

			continue
		}

		seen[s] = struct{}{}

		if len(cr.Samples) < opts.SampleSize {
			cr.Samples = append(cr.Samples, s)
		}
	}

	cr.Distinct = len(seen)

	if raw.Len() > 0 {
		cr.NullRatio = float64(cr.Nulls) / float64(raw.Len())
	}

	if !cr.Canonical && len(opts.Canonical) > 0 {
		ranked := match.Rank(col, opts.Canonical).AboveThreshold(opts.MinScore)
		if len(ranked) > 0 {
			cr.Suggestions = ranked.Top(opts.Suggestions).Names()
		}
	}

	return cr
}
