package profile

import (
	"regexp"
	"strings"
	"time"
)

// ColumnType is the inferred type of a column.
type ColumnType string

const (
	TypeNumeric     ColumnType = "numeric"
	TypeCategorical ColumnType = "categorical"
	TypeDatetime    ColumnType = "datetime"
	TypeBoolean     ColumnType = "boolean"
	TypeUnknown     ColumnType = "unknown"
)

// booleanTokens are claimed before the numeric check, so a column of 0/1
// indicators infers as boolean.
var booleanTokens = map[string]struct{}{
	"true": {}, "false": {}, "0": {}, "1": {}, "yes": {}, "no": {},
}

var datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}|^\d{2}/\d{2}/\d{4}|^\d{2}-\d{2}-\d{4}`)

var dateLayouts = []string{
	time.RFC3339, time.RFC3339Nano, time.RFC1123, time.RFC1123Z, time.RFC850,
	time.ANSIC, time.UnixDate, time.RFC822, time.RFC822Z,
	"2006-01-02", "2006/01/02", "2006-01", "2006-01-02 15:04", "2006-01-02 15:04:05",
	"2006-01-02T15:04", "2006-01-02T15:04:05", "01/02/2006", "1/2/2006",
	"1/2/2006 15:04", "1/2/2006 15:04:05", "Jan 2, 2006", "January 2, 2006",
	"2 Jan 2006", "2 January 2006", "Jan 2 2006", "Mon Jan 2 2006",
}

// InferType classifies a column from its raw values using DefaultOptions.
func InferType(values []Value) ColumnType {
	return inferType(values, DefaultOptions())
}

func inferType(values []Value, opt Options) ColumnType {
	sample := make([]string, 0, opt.SampleSize)
	for _, v := range values {
		if v.IsMissing() {
			continue
		}
		sample = append(sample, strings.TrimSpace(v.String()))
		if len(sample) == opt.SampleSize {
			break
		}
	}
	if len(sample) == 0 {
		return TypeUnknown
	}

	var numericCount, dateCount, boolCount int
	for _, s := range sample {
		if _, ok := booleanTokens[strings.ToLower(s)]; ok {
			boolCount++
			continue
		}
		if _, ok := parseNumber(s); ok {
			numericCount++
			continue
		}
		if isDate(s) {
			dateCount++
		}
	}

	total := float64(len(sample))
	switch {
	case float64(numericCount)/total > opt.TypeThreshold:
		return TypeNumeric
	case float64(dateCount)/total > opt.TypeThreshold:
		return TypeDatetime
	case float64(boolCount)/total > opt.TypeThreshold:
		return TypeBoolean
	default:
		return TypeCategorical
	}
}

func isDate(s string) bool {
	if s == "" {
		return false
	}
	if datePrefix.MatchString(s) {
		return true
	}
	for _, l := range dateLayouts {
		if _, err := time.Parse(l, s); err == nil {
			return true
		}
	}
	return false
}
