package profile

import "sort"

// CategoryCount is one distinct value of a column with its share of all rows.
type CategoryCount struct {
	Value      string  `json:"value" yaml:"value"`
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// ComputeCategoryCounts counts distinct stringified values, missing cells under
// EmptyLabel, and returns the top n by count. Percentages are relative to
// len(values) and rounded to 2 decimals. Equal counts keep first-seen order.
func ComputeCategoryCounts(values []Value, n int) []CategoryCount {
	if len(values) == 0 {
		return []CategoryCount{}
	}
	if n <= 0 {
		n = DefaultTopCategories
	}
	index := make(map[string]int)
	var counts []CategoryCount
	for _, v := range values {
		key := EmptyLabel
		if !v.IsMissing() {
			key = v.String()
		}
		i, ok := index[key]
		if !ok {
			i = len(counts)
			index[key] = i
			counts = append(counts, CategoryCount{Value: key})
		}
		counts[i].Count++
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	if len(counts) > n {
		counts = counts[:n]
	}
	total := float64(len(values))
	for i := range counts {
		counts[i].Percentage = round(float64(counts[i].Count)/total*100, 2)
	}
	return counts
}

// CountMissing returns how many values are null or empty.
func CountMissing(values []Value) int {
	var n int
	for _, v := range values {
		if v.IsMissing() {
			n++
		}
	}
	return n
}
