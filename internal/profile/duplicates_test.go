package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountDuplicates(t *testing.T) {
	cases := []struct {
		name string
		recs []Record
		want int
	}{
		{"empty", nil, 0},
		{"unique", []Record{rec("a", 1), rec("a", 2), rec("a", 3)}, 0},
		{"identical", []Record{rec("a", 1, "b", "x"), rec("a", 1, "b", "x"), rec("a", 1, "b", "x"), rec("a", 1, "b", "x")}, 3},
		{"extras not groups", []Record{rec("a", 1), rec("a", 1), rec("a", 2), rec("a", 2), rec("a", 2)}, 3},
		{"type matters", []Record{rec("a", "1"), rec("a", 1), rec("a", true), rec("a", "true")}, 0},
		{"missing differs from empty", []Record{rec("a", nil), rec("a", "")}, 0},
		{"absent differs from missing", []Record{rec("a", 1, "b", nil), rec("a", 1)}, 0},
		{"field order matters", []Record{rec("a", 1, "b", 2), rec("b", 2, "a", 1)}, 0},
		{"extra fields count", []Record{rec("a", 1), rec("a", 1, "z", 9), rec("a", 1, "z", 9)}, 1},
		{"separator lookalikes", []Record{rec("a", `x","b":"y`), rec("a", "x", "b", "y")}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CountDuplicates(NewTable(c.recs)))
		})
	}
}
