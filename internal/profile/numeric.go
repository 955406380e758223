package profile

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// NumericStats summarizes the valid numeric readings of one column.
type NumericStats struct {
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Std    float64 `json:"std" yaml:"std"`
	Min    float64 `json:"min" yaml:"min"`
	Q25    float64 `json:"q25" yaml:"q25"`
	Median float64 `json:"median" yaml:"median"`
	Q75    float64 `json:"q75" yaml:"q75"`
	Max    float64 `json:"max" yaml:"max"`
}

// NumericValues returns the coercible, non-missing readings of a column in row order.
func NumericValues(values []Value) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v.IsMissing() {
			continue
		}
		if f, ok := v.Float(); ok {
			out = append(out, f)
		}
	}
	return out
}

// ComputeNumericStats returns count, mean, population standard deviation and
// the five-number summary of valid, rounded to 4 decimals. An empty input
// yields the zero value.
func ComputeNumericStats(valid []float64) NumericStats {
	if len(valid) == 0 {
		return NumericStats{}
	}
	sorted := sortedCopy(valid)
	mean, std := popMeanStdDev(sorted)
	return NumericStats{
		Count:  len(sorted),
		Mean:   round(mean, 4),
		Std:    round(std, 4),
		Min:    round(sorted[0], 4),
		Q25:    round(quantile(sorted, 0.25), 4),
		Median: round(quantile(sorted, 0.5), 4),
		Q75:    round(quantile(sorted, 0.75), 4),
		Max:    round(sorted[len(sorted)-1], 4),
	}
}

// popMeanStdDev is stat.PopMeanStdDev with a rescaled retry when squaring
// readings near the float64 limit overflows.
func popMeanStdDev(x []float64) (mean, std float64) {
	mean, std = stat.PopMeanStdDev(x, nil)
	if finite(mean) && finite(std) {
		return mean, std
	}
	var scale float64
	for _, v := range x {
		scale = math.Max(scale, math.Abs(v))
	}
	scaled := make([]float64, len(x))
	for i, v := range x {
		scaled[i] = v / scale
	}
	mean, std = stat.PopMeanStdDev(scaled, nil)
	return mean * scale, std * scale
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func sortedCopy(x []float64) []float64 {
	cp := make([]float64, len(x))
	copy(cp, x)
	sort.Float64s(cp)
	return cp
}
