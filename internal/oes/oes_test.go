package oes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oes-harmonize/internal/registry"
	"oes-harmonize/internal/table"
)

func TestNewRegistry_BuiltIns(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	assert.Equal(t, []string{Dialect2011, Dialect2014, Dialect2018}, reg.Dialects())
	assert.Equal(t, Schema(), reg.CanonicalSchema())
	assert.Len(t, reg.CanonicalSchema(), 32)
}

func TestNewRegistry_Extra(t *testing.T) {
	extra := &registry.Dialect{
		ID:     "2018-i-o-group",
		Rename: registry.Identity(Schema()...),
	}

	reg, err := NewRegistry(extra)
	require.NoError(t, err)
	assert.True(t, reg.Has("2018-i-o-group"))

	_, err = NewRegistry(&registry.Dialect{ID: Dialect2011, Rename: registry.Identity(Schema()...)})
	require.ErrorIs(t, err, registry.ErrDuplicateDialect)
}

func TestDetect_BuiltIns(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	d2011, err := reg.Lookup(Dialect2011)
	require.NoError(t, err)

	header := append(d2011.RawColumns(), "ST", "STATE")
	best := reg.Detect(header).Best(registry.DefaultMinDetectScore)
	require.NotNil(t, best)
	assert.Equal(t, Dialect2011, best.Dialect)

	best = reg.Detect(Schema()).Best(registry.DefaultMinDetectScore)
	require.NotNil(t, best)
	assert.Equal(t, Dialect2018, best.Dialect)
}

func TestAreaType(t *testing.T) {
	tests := []struct {
		area     any
		expected any
	}{
		{"99", AreaTypeNational},
		{"01", AreaTypeState},
		{"72", AreaTypeTerritory},
		{"10180", AreaTypeMSA},
		{"0100001", AreaTypeNonMetro},
		{table.Null, table.Null},
		{"  ", table.Null},
	}

	for _, tt := range tests {
		got, err := areaType([]any{tt.area})
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "area %v", tt.area)
	}
}

func TestIndustryGroup(t *testing.T) {
	tests := []struct {
		naics    string
		expected string
	}{
		{"000000", CrossIndustry},
		{"110000", "sector"},
		{"31-330", "sector"},
		{"113000", "3-digit"},
		{"113300", "4-digit"},
		{"113310", "5-digit"},
		{"113311", "6-digit"},
		{"3250A1", "4-digit"},
	}

	for _, tt := range tests {
		t.Run(tt.naics, func(t *testing.T) {
			got, err := industryGroup([]any{tt.naics})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := industryGroup([]any{"abc"})
	require.Error(t, err)

	got, err := industryGroup([]any{table.Null})
	require.NoError(t, err)
	assert.Equal(t, table.Null, got)
}

func TestPrimaryState(t *testing.T) {
	tests := []struct {
		title    any
		expected any
	}{
		{"U.S.", "US"},
		{"Alabama", "AL"},
		{"Birmingham-Hoover, AL", "AL"},
		{"Allentown-Bethlehem-Easton, PA-NJ", "PA"},
		{"Northwest Alabama nonmetropolitan area", table.Null},
		{table.Null, table.Null},
	}

	for _, tt := range tests {
		got, err := primaryState([]any{tt.title})
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got, "title %v", tt.title)
	}
}
