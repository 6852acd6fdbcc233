package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	reg := newTestRegistry(t)
	require.NoError(t, reg.Register(dialect2011()))
	require.NoError(t, reg.Register(&Dialect{ID: "2018", Rename: Identity(testSchema...)}))

	t.Run("2011 header", func(t *testing.T) {
		list := reg.Detect([]string{"AREA", "GROUP", "LOC_Q", "PCT_TOT", "ST"})
		require.Len(t, list, 2)

		best := list.Best(0.5)
		require.NotNil(t, best)
		assert.Equal(t, "2011", best.Dialect)
		assert.Equal(t, []string{"ST"}, best.Unknown)
		assert.Empty(t, best.Missing)
	})

	t.Run("case and separators are ignored", func(t *testing.T) {
		list := reg.Detect([]string{"area", "group", "loc_q", "pct-tot"})

		best := list.Best(DefaultMinDetectScore)
		require.NotNil(t, best)
		assert.Equal(t, "2011", best.Dialect)
		assert.InDelta(t, 1.0, best.Score, 0.0001)
	})

	t.Run("2018 header", func(t *testing.T) {
		list := reg.Detect(testSchema)

		best := list.Best(DefaultMinDetectScore)
		require.NotNil(t, best)
		assert.Equal(t, "2018", best.Dialect)
	})

	t.Run("unrelated header", func(t *testing.T) {
		list := reg.Detect([]string{"name", "email"})
		assert.Nil(t, list.Best(DefaultMinDetectScore))
	})
}

func TestDetectionList_BestRejectsTies(t *testing.T) {
	list := DetectionList{{Dialect: "a", Score: 1}, {Dialect: "b", Score: 1}}
	assert.Nil(t, list.Best(0.5))
	assert.Nil(t, DetectionList{}.Best(0))
}
