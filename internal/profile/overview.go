package profile

import (
	"math"
	"sort"
)

// Thresholds above which a column is flagged in the overview, in percent.
const (
	HighMissingPercent = 5.0
	HighOutlierPercent = 5.0
)

// Overview is a dataset-level digest of a profile.
type Overview struct {
	Rows               int      `json:"rows" yaml:"rows"`
	Columns            int      `json:"columns" yaml:"columns"`
	NumericColumns     int      `json:"numericColumns" yaml:"numericColumns"`
	CategoricalColumns int      `json:"categoricalColumns" yaml:"categoricalColumns"`
	MissingCells       int      `json:"missingCells" yaml:"missingCells"`
	MissingPercentage  float64  `json:"missingPercentage" yaml:"missingPercentage"`
	DuplicateRows      int      `json:"duplicateRows" yaml:"duplicateRows"`
	OutlierCount       int      `json:"outlierCount" yaml:"outlierCount"`
	HighMissingColumns []string `json:"highMissingColumns" yaml:"highMissingColumns"`
	HighOutlierColumns []string `json:"highOutlierColumns" yaml:"highOutlierColumns"`
}

// Overview totals missing cells and outliers and flags columns whose missing
// or outlier share exceeds 5%. Flagged columns are listed in column order.
func (p Profile) Overview() Overview {
	o := Overview{
		Rows:               p.Shape.Rows,
		Columns:            p.Shape.Columns,
		NumericColumns:     len(p.NumericStats),
		CategoricalColumns: p.Shape.Columns - len(p.NumericStats),
		DuplicateRows:      p.Duplicates,
		HighMissingColumns: []string{},
		HighOutlierColumns: []string{},
	}
	for _, col := range p.Columns {
		o.MissingCells += p.MissingValues[col]
		if p.MissingPercentage(col) > HighMissingPercent {
			o.HighMissingColumns = append(o.HighMissingColumns, col)
		}
		if info, ok := p.Outliers[col]; ok {
			o.OutlierCount += info.Count
			if info.Percentage > HighOutlierPercent {
				o.HighOutlierColumns = append(o.HighOutlierColumns, col)
			}
		}
	}
	if cells := p.Shape.Rows * p.Shape.Columns; cells > 0 {
		o.MissingPercentage = round(float64(o.MissingCells)/float64(cells)*100, 1)
	}
	return o
}

// MissingPercentage returns the share of rows missing in col, to 1 decimal.
func (p Profile) MissingPercentage(col string) float64 {
	if p.Shape.Rows == 0 {
		return 0
	}
	return round(float64(p.MissingValues[col])/float64(p.Shape.Rows)*100, 1)
}

// CorrelationPair is one unordered pair of numeric columns.
type CorrelationPair struct {
	A string  `json:"a" yaml:"a"`
	B string  `json:"b" yaml:"b"`
	R float64 `json:"r" yaml:"r"`
}

// CorrelationPairs lists each pair of distinct numeric columns once, A before
// B in column order, keeping |r| >= minAbs, strongest first.
func (p Profile) CorrelationPairs(minAbs float64) []CorrelationPair {
	var numeric []string
	for _, col := range p.Columns {
		if _, ok := p.Correlations[col]; ok {
			numeric = append(numeric, col)
		}
	}
	pairs := []CorrelationPair{}
	for i := 0; i < len(numeric); i++ {
		for j := i + 1; j < len(numeric); j++ {
			r, _ := p.Correlations.Get(numeric[i], numeric[j])
			if math.Abs(r) < minAbs {
				continue
			}
			pairs = append(pairs, CorrelationPair{A: numeric[i], B: numeric[j], R: r})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return math.Abs(pairs[i].R) > math.Abs(pairs[j].R)
	})
	return pairs
}
