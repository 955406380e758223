package profile

// Heuristic thresholds. Tests pin behavior against these values.
const (
	// DefaultSampleSize caps how many non-missing values type inference inspects.
	DefaultSampleSize = 100
	// DefaultTypeThreshold is the supermajority a type needs; the comparison is strict,
	// so a fraction of exactly 0.8 does not qualify.
	DefaultTypeThreshold = 0.8
	// DefaultTopCategories bounds the categorical value counts kept per column.
	DefaultTopCategories = 10
	// DefaultBins is the histogram bin count for numeric columns.
	DefaultBins = 10
	// EmptyLabel is the category missing cells are counted under.
	EmptyLabel = "(empty)"
)

// Options controls profiling behavior. Zero or negative fields fall back to defaults.
type Options struct {
	SampleSize    int
	TypeThreshold float64
	TopCategories int
	Bins          int
	// Workers bounds the per-column pass; 0 means GOMAXPROCS, 1 runs sequentially.
	Workers int
}

// DefaultOptions returns the standard profiling thresholds.
func DefaultOptions() Options {
	return Options{
		SampleSize:    DefaultSampleSize,
		TypeThreshold: DefaultTypeThreshold,
		TopCategories: DefaultTopCategories,
		Bins:          DefaultBins,
	}
}

func (o Options) normalized() Options {
	if o.SampleSize <= 0 {
		o.SampleSize = DefaultSampleSize
	}
	if o.TypeThreshold <= 0 || o.TypeThreshold > 1 {
		o.TypeThreshold = DefaultTypeThreshold
	}
	if o.TopCategories <= 0 {
		o.TopCategories = DefaultTopCategories
	}
	if o.Bins <= 0 {
		o.Bins = DefaultBins
	}
	if o.Workers < 0 {
		o.Workers = 0
	}
	return o
}
