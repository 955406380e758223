package profile

import (
	"strconv"
	"strings"
)

// Field is one named cell of a record.
type Field struct {
	Name  string
	Value Value
}

// Record is one row with its fields in their original order.
type Record []Field

// Get returns the value stored under name, or Missing when the field is absent.
func (r Record) Get(name string) (Value, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Missing(), false
}

// Schema is the ordered column set of a table, derived once from its first record.
type Schema struct {
	columns []string
	index   map[string]int
}

// NewSchema builds a schema from column names. Repeated names keep their first position.
func NewSchema(columns []string) Schema {
	s := Schema{index: make(map[string]int, len(columns))}
	for _, c := range columns {
		if _, ok := s.index[c]; ok {
			continue
		}
		s.index[c] = len(s.columns)
		s.columns = append(s.columns, c)
	}
	return s
}

// Columns returns a copy of the column names in order.
func (s Schema) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Len returns the number of columns.
func (s Schema) Len() int { return len(s.columns) }

// Name returns the column name at position i.
func (s Schema) Name(i int) string { return s.columns[i] }

// Index returns the position of a column name.
func (s Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Table is an ordered sequence of records sharing one schema. A Table is
// read-only once built.
type Table struct {
	schema  Schema
	records []Record
	cells   [][]Value // cells[row][col], aligned to schema
}

// NewTable builds a table from records. The schema comes from the first
// record; fields absent from a later record read as Missing and fields the
// schema does not name are ignored by per-column stages.
func NewTable(records []Record) *Table {
	var names []string
	if len(records) > 0 {
		names = make([]string, 0, len(records[0]))
		for _, f := range records[0] {
			names = append(names, f.Name)
		}
	}
	return NewTableWithSchema(NewSchema(names), records)
}

// NewTableWithSchema builds a table whose column set is fixed up front, as
// decoders with a header row know it before the first record.
func NewTableWithSchema(schema Schema, records []Record) *Table {
	t := &Table{schema: schema}
	if len(records) == 0 {
		return t
	}
	t.records = make([]Record, len(records))
	t.cells = make([][]Value, len(records))
	for i, rec := range records {
		t.records[i] = append(Record(nil), rec...)
		row := make([]Value, schema.Len())
		for _, f := range rec {
			if j, ok := schema.Index(f.Name); ok {
				row[j] = f.Value
			}
		}
		t.cells[i] = row
	}
	return t
}

// FromRows builds a table from a header and positional rows, the shape most
// tabular decoders produce. Cells beyond the header are dropped and short rows
// leave trailing fields absent.
func FromRows(header []string, rows [][]Value) *Table {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := make(Record, 0, len(header))
		for j, name := range header {
			if j >= len(row) {
				break
			}
			rec = append(rec, Field{Name: name, Value: row[j]})
		}
		records = append(records, rec)
	}
	return NewTableWithSchema(NewSchema(header), records)
}

// Schema returns the table's column schema.
func (t *Table) Schema() Schema { return t.schema }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.cells) }

// Column returns the values of column i in row order.
func (t *Table) Column(i int) []Value {
	out := make([]Value, len(t.cells))
	for r, row := range t.cells {
		out[r] = row[i]
	}
	return out
}

// Cell returns the value at row r and column c.
func (t *Table) Cell(r, c int) Value { return t.cells[r][c] }

// Record returns row r as originally supplied.
func (t *Table) Record(r int) Record { return t.records[r] }

// recordKey serializes a record in its own field order with type tags, so
// two keys are equal exactly when the records are.
func recordKey(rec Record) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range rec {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(f.Name))
		b.WriteByte(':')
		f.Value.canonical(&b)
	}
	b.WriteByte('}')
	return b.String()
}
