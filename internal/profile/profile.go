// Package profile turns a table of raw records into a statistical profile:
// inferred column types, numeric summaries, categorical value counts, IQR
// outliers, histograms, pairwise correlations and duplicate rows.
//
// Every stage is a pure function of its input. Analyze never fails: empty
// tables, empty columns and columns without numeric readings produce zeroed
// or empty results.
package profile

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Shape is the row and column count of the profiled table.
type Shape struct {
	Rows    int `json:"rows" yaml:"rows"`
	Columns int `json:"columns" yaml:"columns"`
}

// Profile is the result of one analysis run. It holds no references into the
// source table and is treated as read-only once returned.
type Profile struct {
	Shape            Shape                        `json:"shape" yaml:"shape"`
	Columns          []string                     `json:"columns" yaml:"columns"`
	DataTypes        map[string]ColumnType        `json:"dataTypes" yaml:"dataTypes"`
	MissingValues    map[string]int               `json:"missingValues" yaml:"missingValues"`
	Duplicates       int                          `json:"duplicates" yaml:"duplicates"`
	NumericStats     map[string]NumericStats      `json:"numericStats" yaml:"numericStats"`
	CategoricalStats map[string][]CategoryCount   `json:"categoricalStats" yaml:"categoricalStats"`
	Outliers         map[string]OutlierInfo       `json:"outliers" yaml:"outliers"`
	Correlations     CorrelationMatrix            `json:"correlations" yaml:"correlations"`
	Distributions    map[string][]DistributionBin `json:"distributions" yaml:"distributions"`
}

func emptyProfile() Profile {
	return Profile{
		Columns:          []string{},
		DataTypes:        map[string]ColumnType{},
		MissingValues:    map[string]int{},
		NumericStats:     map[string]NumericStats{},
		CategoricalStats: map[string][]CategoryCount{},
		Outliers:         map[string]OutlierInfo{},
		Correlations:     CorrelationMatrix{},
		Distributions:    map[string][]DistributionBin{},
	}
}

// columnResult is everything the per-column pass derives for one column.
type columnResult struct {
	typ        ColumnType
	missing    int
	numeric    NumericStats
	outliers   OutlierInfo
	dist       []DistributionBin
	categories []CategoryCount
	readings   numericColumn
}

// Analyze profiles t with DefaultOptions.
func Analyze(t *Table) Profile {
	return AnalyzeWithOptions(t, DefaultOptions())
}

// AnalyzeWithOptions profiles t. Columns are independent during the per-column
// pass, which runs on up to opt.Workers goroutines; correlations and
// duplicates follow once every column is typed.
func AnalyzeWithOptions(t *Table, opt Options) Profile {
	p := emptyProfile()
	if t == nil || t.Len() == 0 {
		return p
	}
	opt = opt.normalized()
	schema := t.Schema()

	results := make([]columnResult, schema.Len())
	var g errgroup.Group
	workers := opt.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(workers)
	for i := 0; i < schema.Len(); i++ {
		i := i
		g.Go(func() error {
			results[i] = profileColumn(schema.Name(i), t.Column(i), opt)
			return nil
		})
	}
	_ = g.Wait() // column workers never fail

	var numeric []numericColumn
	for i, r := range results {
		name := schema.Name(i)
		p.DataTypes[name] = r.typ
		p.MissingValues[name] = r.missing
		if r.typ == TypeNumeric {
			p.NumericStats[name] = r.numeric
			p.Outliers[name] = r.outliers
			p.Distributions[name] = r.dist
			numeric = append(numeric, r.readings)
			continue
		}
		p.CategoricalStats[name] = r.categories
	}

	p.Shape = Shape{Rows: t.Len(), Columns: schema.Len()}
	p.Columns = schema.Columns()
	p.Correlations = correlate(numeric)
	p.Duplicates = CountDuplicates(t)
	return p
}

func profileColumn(name string, values []Value, opt Options) columnResult {
	r := columnResult{
		typ:     inferType(values, opt),
		missing: CountMissing(values),
	}
	if r.typ != TypeNumeric {
		r.categories = ComputeCategoryCounts(values, opt.TopCategories)
		return r
	}
	r.readings = newNumericColumn(name, values)
	valid := NumericValues(values)
	r.numeric = ComputeNumericStats(valid)
	r.outliers = DetectOutliers(valid)
	r.dist = ComputeDistribution(valid, opt.Bins)
	return r
}
