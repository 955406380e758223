package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCorrelations(t *testing.T) {
	tbl := NewTable([]Record{
		rec("x", "2", "y", "4", "z", "9", "k", "5"),
		rec("x", "3", "y", "6", "z", "8", "k", "5"),
		rec("x", "4", "y", "8", "z", "7", "k", "5"),
		rec("x", "5", "y", "10", "z", "6", "k", "5"),
	})
	m := ComputeCorrelations(tbl, []string{"x", "y", "z", "k", "nope"})
	require.Len(t, m, 4)

	r, ok := m.Get("x", "y")
	require.True(t, ok)
	assert.Equal(t, 1.0, r)
	assert.Equal(t, -1.0, m["x"]["z"])
	// a constant column has no defined correlation
	assert.Equal(t, 0.0, m["x"]["k"])
	assert.Equal(t, 1.0, m["k"]["k"])

	_, ok = m.Get("nope", "x")
	assert.False(t, ok)
}

func TestCorrelationsUsePairwiseCompleteRows(t *testing.T) {
	tbl := NewTable([]Record{
		rec("a", 1.5, "b", 2.0, "c", nil),
		rec("a", 2.5, "b", nil, "c", 7.0),
		rec("a", 3.5, "b", 6.0, "c", 8.0),
		rec("a", 4.5, "b", 8.5, "c", "oops"),
		rec("a", 5.5, "b", 9.0, "c", 9.5),
	})
	m := ComputeCorrelations(tbl, []string{"a", "b", "c"})

	assert.Equal(t, 0.984, m["a"]["b"])
	// a and c share three rows
	assert.Equal(t, 0.9972, m["a"]["c"])
	// b and c share only two rows
	assert.Equal(t, 0.0, m["b"]["c"])
	assert.Equal(t, 0.0, m["c"]["b"])
}

func TestCorrelationMatrixIsSymmetric(t *testing.T) {
	tbl := NewTable([]Record{
		rec("p", 1.2, "q", 7.1, "r", 3.3),
		rec("p", 2.7, "q", 3.4, "r", 3.9),
		rec("p", 3.1, "q", 8.8, "r", 1.2),
		rec("p", 4.9, "q", 1.0, "r", 6.6),
		rec("p", 5.3, "q", 2.2, "r", 0.4),
	})
	m := ComputeCorrelations(tbl, []string{"p", "q", "r"})
	for a := range m {
		assert.Equal(t, 1.0, m[a][a])
		for b := range m[a] {
			assert.Equal(t, m[a][b], m[b][a], "%s/%s", a, b)
			assert.GreaterOrEqual(t, m[a][b], -1.0)
			assert.LessOrEqual(t, m[a][b], 1.0)
		}
	}
}

func TestComputeCorrelationsNoColumns(t *testing.T) {
	m := ComputeCorrelations(NewTable(nil), nil)
	assert.NotNil(t, m)
	assert.Empty(t, m)
}
