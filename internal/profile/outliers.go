package profile

import "math"

// OutlierInfo reports values outside the Tukey fences of a column.
type OutlierInfo struct {
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
	LowerBound float64 `json:"lowerBound" yaml:"lowerBound"`
	UpperBound float64 `json:"upperBound" yaml:"upperBound"`
}

// TukeyK is the IQR multiplier for the outlier fences.
const TukeyK = 1.5

// DetectOutliers counts values strictly outside [Q1-1.5*IQR, Q3+1.5*IQR].
// Bounds are rounded to 4 decimals; the percentage is relative to len(valid)
// and rounded to 2. An empty input yields the zero value.
func DetectOutliers(valid []float64) OutlierInfo {
	if len(valid) == 0 {
		return OutlierInfo{}
	}
	sorted := sortedCopy(valid)
	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)
	iqr := q3 - q1
	// flag against the reported bounds so a re-scan agrees with Count
	lower := round(clampFinite(q1-TukeyK*iqr), 4)
	upper := round(clampFinite(q3+TukeyK*iqr), 4)

	var count int
	for _, v := range valid {
		if v < lower || v > upper {
			count++
		}
	}
	return OutlierInfo{
		Count:      count,
		Percentage: round(float64(count)/float64(len(valid))*100, 2),
		LowerBound: lower,
		UpperBound: upper,
	}
}

// clampFinite pins fences that overflowed past the float64 range to its edge.
func clampFinite(x float64) float64 {
	switch {
	case math.IsInf(x, 1):
		return math.MaxFloat64
	case math.IsInf(x, -1):
		return -math.MaxFloat64
	}
	return x
}
