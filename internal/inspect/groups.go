package inspect

import "oes-harmonize/internal/table"

// GroupHeaders are the aggregation-level columns whose naming drifted
// between releases.
var GroupHeaders = []string{"GROUP", "O_GROUP", "I_GROUP", "OCC_GROUP"}

// GroupReport lists which aggregation-level columns a table carries.
type GroupReport struct {
	Present []string `json:"present"`
	Missing []string `json:"missing"`
}

// GroupColumns reports which of GroupHeaders appear in the header of raw.
func GroupColumns(raw *table.Table) GroupReport {
	g := GroupReport{Present: []string{}, Missing: []string{}}

	for _, h := range GroupHeaders {
		if raw.HasColumn(h) {
			g.Present = append(g.Present, h)
		} else {
			g.Missing = append(g.Missing, h)
		}
	}

	return g
}
