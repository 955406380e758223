package profile

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// MinPairedObservations is the fewest row-aligned pairs a correlation needs;
// below it the coefficient is reported as 0.
const MinPairedObservations = 3

// CorrelationMatrix maps column -> column -> Pearson coefficient. It is stored
// in full so either lookup order works.
type CorrelationMatrix map[string]map[string]float64

// Get returns the coefficient for a pair of columns.
func (m CorrelationMatrix) Get(a, b string) (float64, bool) {
	row, ok := m[a]
	if !ok {
		return 0, false
	}
	r, ok := row[b]
	return r, ok
}

// numericColumn is a column's row-aligned numeric readings.
type numericColumn struct {
	name  string
	vals  []float64
	valid []bool
}

func newNumericColumn(name string, values []Value) numericColumn {
	c := numericColumn{name: name, vals: make([]float64, len(values)), valid: make([]bool, len(values))}
	for i, v := range values {
		if v.IsMissing() {
			continue
		}
		if f, ok := v.Float(); ok {
			c.vals[i] = f
			c.valid[i] = true
		}
	}
	return c
}

// ComputeCorrelations builds the Pearson matrix over the named numeric
// columns of t using pairwise-complete rows. Unknown names are skipped.
func ComputeCorrelations(t *Table, columns []string) CorrelationMatrix {
	cols := make([]numericColumn, 0, len(columns))
	for _, name := range columns {
		i, ok := t.Schema().Index(name)
		if !ok {
			continue
		}
		cols = append(cols, newNumericColumn(name, t.Column(i)))
	}
	return correlate(cols)
}

func correlate(cols []numericColumn) CorrelationMatrix {
	m := make(CorrelationMatrix, len(cols))
	for _, c := range cols {
		m[c.name] = make(map[string]float64, len(cols))
	}
	for a := range cols {
		m[cols[a].name][cols[a].name] = 1
		for b := a + 1; b < len(cols); b++ {
			r := pairwisePearson(cols[a], cols[b])
			m[cols[a].name][cols[b].name] = r
			m[cols[b].name][cols[a].name] = r
		}
	}
	return m
}

// pairwisePearson correlates the rows where both columns hold a valid reading.
func pairwisePearson(x, y numericColumn) float64 {
	var xs, ys []float64
	for i := range x.vals {
		if x.valid[i] && y.valid[i] {
			xs = append(xs, x.vals[i])
			ys = append(ys, y.vals[i])
		}
	}
	if len(xs) < MinPairedObservations {
		return 0
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		// a constant side has no defined correlation
		return 0
	}
	return round(math.Max(-1, math.Min(1, r)), 4)
}
