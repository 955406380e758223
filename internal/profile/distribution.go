package profile

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// DistributionBin is one equal-width histogram bucket.
type DistributionBin struct {
	Bin   string `json:"bin" yaml:"bin"`
	Count int    `json:"count" yaml:"count"`
}

// ComputeDistribution splits [min, max] of valid into bins equal-width buckets.
// Bucket i holds start_i <= v < end_i; the last bucket is closed on the right
// and ends exactly at max. A constant column has zero-width buckets, so every
// value lands in the last one. An empty input yields an empty slice.
func ComputeDistribution(valid []float64, bins int) []DistributionBin {
	if len(valid) == 0 {
		return []DistributionBin{}
	}
	if bins <= 0 {
		bins = DefaultBins
	}
	// Min and Max only fail on empty input, ruled out above
	lo, _ := stats.Min(valid)
	hi, _ := stats.Max(valid)
	width := (hi - lo) / float64(bins)
	if math.IsInf(width, 0) {
		width = hi/float64(bins) - lo/float64(bins)
	}
	last := bins - 1

	start := func(i int) float64 { return lo + float64(i)*width }
	end := func(i int) float64 {
		if i == last {
			return hi
		}
		return lo + float64(i+1)*width
	}

	counts := make([]int, bins)
	for _, v := range valid {
		i := last
		if width > 0 {
			pos := (v - lo) / width
			if math.IsInf(pos, 0) {
				pos = v/width - lo/width
			}
			i = int(math.Floor(pos))
			if i < 0 {
				i = 0
			}
			if i > last {
				i = last
			}
			// settle float drift against the stated bucket edges
			for i > 0 && v < start(i) {
				i--
			}
			for i < last && v >= end(i) {
				i++
			}
		}
		counts[i]++
	}

	out := make([]DistributionBin, bins)
	for i := range out {
		out[i] = DistributionBin{
			Bin:   fmt.Sprintf("%.1f-%.1f", start(i), end(i)),
			Count: counts[i],
		}
	}
	return out
}
