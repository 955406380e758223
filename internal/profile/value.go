package profile

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindMissing Kind = iota
	KindText
	KindNumber
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	default:
		return "missing"
	}
}

// Value is one raw cell, resolved once at ingestion into a tagged variant.
// The zero Value is Missing.
type Value struct {
	kind Kind
	text string
	num  float64
	b    bool
}

// Missing returns the missing (null) cell.
func Missing() Value { return Value{} }

// Text returns a string cell. The empty string is treated as missing by IsMissing.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Number returns a numeric cell.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool returns a boolean cell.
func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

// Raw converts a dynamically typed Go scalar into a Value.
func Raw(v any) Value {
	switch x := v.(type) {
	case nil:
		return Missing()
	case Value:
		return x
	case string:
		return Text(x)
	case bool:
		return Bool(x)
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return Number(float64(x))
	case int8:
		return Number(float64(x))
	case int16:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint:
		return Number(float64(x))
	case uint8:
		return Number(float64(x))
	case uint16:
		return Number(float64(x))
	case uint32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return Number(f)
		}
		return Text(x.String())
	default:
		return Text(fmt.Sprint(x))
	}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the cell counts as missing: null or the empty string.
// Whitespace-only text is not missing.
func (v Value) IsMissing() bool {
	return v.kind == KindMissing || (v.kind == KindText && v.text == "")
}

// String returns the canonical stringification used for typing and category labels.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return formatNumber(v.num)
	case KindBoolean:
		if v.b {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// Float coerces v to a finite number. Booleans coerce to 1 and 0; text is
// trimmed and parsed. Missing and non-numeric cells report false.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return 0, false
		}
		return v.num, true
	case KindBoolean:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindText:
		return parseNumber(v.text)
	default:
		return 0, false
	}
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func formatNumber(f float64) string {
	if math.Abs(f) >= 1e21 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// canonical appends a type-tagged, unambiguous encoding of v to b.
func (v Value) canonical(b *strings.Builder) {
	switch v.kind {
	case KindText:
		b.WriteByte('s')
		b.WriteString(strconv.Quote(v.text))
	case KindNumber:
		b.WriteByte('n')
		if v.num == 0 {
			b.WriteByte('0') // -0 and 0 serialize alike
			return
		}
		b.WriteString(strconv.FormatFloat(v.num, 'g', -1, 64))
	case KindBoolean:
		if v.b {
			b.WriteString("bT")
		} else {
			b.WriteString("bF")
		}
	default:
		b.WriteByte('z')
	}
}
