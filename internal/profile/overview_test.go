package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overviewFixture() Profile {
	return Profile{
		Shape:         Shape{Rows: 20, Columns: 3},
		Columns:       []string{"x", "y", "label"},
		MissingValues: map[string]int{"x": 0, "y": 2, "label": 1},
		Duplicates:    4,
		NumericStats:  map[string]NumericStats{"x": {Count: 20}, "y": {Count: 18}},
		Outliers: map[string]OutlierInfo{
			"x": {Count: 1, Percentage: 5},
			"y": {Count: 3, Percentage: 16.67},
		},
		Correlations: CorrelationMatrix{
			"x": {"x": 1, "y": -0.8},
			"y": {"x": -0.8, "y": 1},
		},
	}
}

func TestOverview(t *testing.T) {
	o := overviewFixture().Overview()
	assert.Equal(t, Overview{
		Rows:               20,
		Columns:            3,
		NumericColumns:     2,
		CategoricalColumns: 1,
		MissingCells:       3,
		MissingPercentage:  5,
		DuplicateRows:      4,
		OutlierCount:       4,
		HighMissingColumns: []string{"y"},
		HighOutlierColumns: []string{"y"},
	}, o)
}

func TestOverviewEmptyProfile(t *testing.T) {
	o := Analyze(nil).Overview()
	assert.Equal(t, 0, o.Rows)
	assert.Equal(t, 0.0, o.MissingPercentage)
	assert.Empty(t, o.HighMissingColumns)
}

func TestMissingPercentage(t *testing.T) {
	p := overviewFixture()
	assert.Equal(t, 10.0, p.MissingPercentage("y"))
	assert.Equal(t, 5.0, p.MissingPercentage("label"))
	assert.Equal(t, 0.0, p.MissingPercentage("absent"))
}

func TestCorrelationPairs(t *testing.T) {
	p := Profile{
		Columns: []string{"a", "b", "txt", "c"},
		Correlations: CorrelationMatrix{
			"a": {"a": 1, "b": 0.2, "c": -0.9},
			"b": {"a": 0.2, "b": 1, "c": 0.9},
			"c": {"a": -0.9, "b": 0.9, "c": 1},
		},
	}
	pairs := p.CorrelationPairs(0.5)
	require.Len(t, pairs, 2)
	assert.Equal(t, CorrelationPair{A: "a", B: "c", R: -0.9}, pairs[0])
	assert.Equal(t, CorrelationPair{A: "b", B: "c", R: 0.9}, pairs[1])

	assert.Len(t, p.CorrelationPairs(0), 3)
	assert.Empty(t, Profile{}.CorrelationPairs(0))
}
