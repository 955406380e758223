package profile

import (
	"math"

	"github.com/montanaflynn/stats"
)

// quantile returns the q-th quantile of sorted data by linear interpolation
// between the two nearest ranks (position q*(n-1)).
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// roundLimit is the magnitude past which a float64 has no fractional digits
// left to round and scaling by 10^places could overflow.
const roundLimit = 1e15

// round rounds half away from zero to the given number of decimals.
func round(x float64, places int) float64 {
	if math.Abs(x) >= roundLimit {
		return x
	}
	r, err := stats.Round(x, places)
	if err != nil || r == 0 {
		return 0 // also folds -0
	}
	return r
}
