package profile

// CountDuplicates returns how many records repeat an earlier record exactly:
// same fields in the same order with equal, same-typed values. The first
// occurrence is not counted, so N identical rows yield N-1.
func CountDuplicates(t *Table) int {
	seen := make(map[string]struct{}, t.Len())
	var dups int
	for i := 0; i < t.Len(); i++ {
		key := recordKey(t.Record(i))
		if _, ok := seen[key]; ok {
			dups++
			continue
		}
		seen[key] = struct{}{}
	}
	return dups
}
