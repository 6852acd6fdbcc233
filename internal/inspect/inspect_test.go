package inspect

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oes-harmonize/internal/diagnostic"
	"oes-harmonize/internal/oes"
	"oes-harmonize/internal/table"
)

func rawTable() *table.Table {
	return &table.Table{
		Columns: []string{"AREA", "LOC_Q", "GROUP", "ST"},
		Rows: []table.Row{
			{"AREA": "01", "LOC_Q": "1.2", "GROUP": "total", "ST": "AL"},
			{"AREA": "01", "LOC_Q": table.Null, "GROUP": "major", "ST": "AL"},
			{"AREA": "02", "LOC_Q": "  ", "GROUP": "detailed", "ST": "AK"},
			{"AREA": "04", "GROUP": "detailed", "ST": "AZ"},
		},
	}
}

func TestInspect(t *testing.T) {
	rep := Inspect(rawTable(), DefaultOptions(oes.Schema()))

	assert.Equal(t, 4, rep.Rows)
	require.Len(t, rep.Columns, 4)

	area := column(rep, "AREA")
	require.NotNil(t, area)
	assert.True(t, area.Canonical)
	assert.Empty(t, area.Suggestions)
	assert.Equal(t, 3, area.Distinct)
	assert.Equal(t, []string{"01", "02", "04"}, area.Samples)
	assert.Zero(t, area.Nulls)

	locq := column(rep, "LOC_Q")
	require.NotNil(t, locq)
	assert.False(t, locq.Canonical)
	assert.Equal(t, 3, locq.Nulls)
	assert.InDelta(t, 0.75, locq.NullRatio, 1e-9)
	assert.Equal(t, []string{"1.2"}, locq.Samples)
	require.NotEmpty(t, locq.Suggestions)
	assert.Equal(t, oes.LocQuotient, locq.Suggestions[0])

	assert.Nil(t, column(rep, "missing"))
}

func TestInspect_Caps(t *testing.T) {
	opts := DefaultOptions(nil)
	opts.SampleSize = 1
	opts.MaxDistinct = 2

	rep := Inspect(rawTable(), opts)

	st := column(rep, "ST")
	require.NotNil(t, st)
	assert.Equal(t, 2, st.Distinct)
	assert.True(t, st.DistinctCapped)
	assert.Equal(t, []string{"AL"}, st.Samples)
	assert.Nil(t, st.Suggestions)
	assert.False(t, st.Canonical)
}

func TestInspect_Empty(t *testing.T) {
	rep := Inspect(&table.Table{Columns: []string{"A"}}, DefaultOptions(nil))

	require.Len(t, rep.Columns, 1)
	assert.Zero(t, rep.Columns[0].NullRatio)
	assert.Empty(t, rep.Columns[0].Samples)
}

func TestGroupColumns(t *testing.T) {
	g := GroupColumns(rawTable())

	assert.Equal(t, []string{"GROUP"}, g.Present)
	assert.Equal(t, []string{"O_GROUP", "I_GROUP", "OCC_GROUP"}, g.Missing)
}

func TestReport_Render(t *testing.T) {
	rep := Inspect(rawTable(), DefaultOptions(oes.Schema()))

	var text bytes.Buffer

	require.NoError(t, rep.WriteText(&text))
	assert.Contains(t, text.String(), "rows: 4")
	assert.Contains(t, text.String(), "group columns: GROUP")
	assert.Contains(t, text.String(), "(canonical)")
	assert.Contains(t, text.String(), "LOC_QUOTIENT")

	var buf bytes.Buffer

	require.NoError(t, rep.WriteJSON(&buf))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rep, &decoded)
}

func TestInspect_Dialect(t *testing.T) {
	reg, err := oes.NewRegistry()
	require.NoError(t, err)

	d2018, err := reg.Lookup(oes.Dialect2018)
	require.NoError(t, err)

	opts := DefaultOptions(oes.Schema())
	opts.Dialect = d2018

	rep := Inspect(rawTable(), opts)

	assert.Equal(t, oes.Dialect2018, rep.Dialect)
	require.NotNil(t, rep.Diagnostics)
	assert.True(t, rep.Diagnostics.IsValid())
	assert.Equal(t, oes.Area, column(rep, "AREA").Mapped)
	assert.Empty(t, column(rep, "LOC_Q").Mapped)

	warnings := rep.Diagnostics.Warnings
	require.Len(t, warnings, 3)

	for i, col := range []string{"LOC_Q", "GROUP", "ST"} {
		assert.Equal(t, diagnostic.CodeUnmappedRawColumn, warnings[i].Code)
		assert.Equal(t, oes.Dialect2018, warnings[i].Dialect)
		assert.Equal(t, col, warnings[i].Column)
	}

	assert.Equal(t, oes.LocQuotient, warnings[0].Suggestions[0])
	assert.Contains(t, warnings[0].Message, "closest canonical column is LOC_QUOTIENT")
	assert.Equal(t, []string{oes.IGroup, oes.OGroup}, warnings[1].Suggestions[:2])
	assert.Empty(t, warnings[2].Suggestions)

	require.Len(t, rep.Diagnostics.Infos, 1)
	info := rep.Diagnostics.Infos[0]
	assert.Equal(t, diagnostic.CodeAmbiguousSuggestion, info.Code)
	assert.Equal(t, "GROUP", info.Column)
	assert.Contains(t, info.Message, "I_GROUP and O_GROUP")

	var text bytes.Buffer

	require.NoError(t, rep.WriteText(&text))
	assert.Contains(t, text.String(), "dialect 2018: 3 dropped column(s)")
	assert.Contains(t, text.String(), "warning: [2018] ST: [unmapped_raw_column]")
	assert.Contains(t, text.String(), "info: [2018] GROUP: [ambiguous_suggestion]")

	var buf bytes.Buffer

	require.NoError(t, rep.WriteJSON(&buf))
	assert.Contains(t, buf.String(), `"severity": "warning"`)

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.NotNil(t, decoded.Diagnostics)
	assert.Len(t, decoded.Diagnostics.Warnings, 3)
	assert.Equal(t, diagnostic.SeverityWarning, decoded.Diagnostics.Warnings[0].Severity)
	assert.Equal(t, warnings[0].Suggestions, decoded.Diagnostics.Warnings[0].Suggestions)
}

func TestInspect_DialectCoversHeader(t *testing.T) {
	reg, err := oes.NewRegistry()
	require.NoError(t, err)

	d2011, err := reg.Lookup(oes.Dialect2011)
	require.NoError(t, err)

	raw := &table.Table{Columns: []string{"AREA", "GROUP", "LOC_Q"}}

	opts := DefaultOptions(oes.Schema())
	opts.Dialect = d2011

	rep := Inspect(raw, opts)
	require.NotNil(t, rep.Diagnostics)
	assert.Empty(t, rep.Diagnostics.Warnings)
	assert.Empty(t, rep.Diagnostics.Infos)
	assert.Equal(t, oes.OGroup, column(rep, "GROUP").Mapped)
}

func column(r *Report, name string) *ColumnReport {
	for i := range r.Columns {
		if r.Columns[i].Name == name {
			return &r.Columns[i]
		}
	}

	return nil
}
