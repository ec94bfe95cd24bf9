// Package dataset holds the in-memory survey table model and the CSV
// loader that produces it. Tables are immutable after load; every cache
// in this package keys off that immutability.
package dataset

import (
	"sort"
	"strconv"
	"sync"
)

// Kind discriminates the cell variants a survey column can hold.
type Kind int

const (
	KindMissing Kind = iota
	KindString
	KindNumber
)

// Value is one cell of a survey table: a string, a number, or missing.
// The raw text is kept verbatim even for numeric cells because the
// multi-value tokenizer operates on source text, not parsed values.
type Value struct {
	raw  string
	num  float64
	kind Kind
}

// StringValue returns a string-kinded cell.
func StringValue(s string) Value {
	return Value{raw: s, kind: KindString}
}

// NumberValue returns a number-kinded cell carrying its source text.
func NumberValue(raw string, n float64) Value {
	return Value{raw: raw, num: n, kind: KindNumber}
}

// Missing is the absent-cell marker.
var Missing = Value{kind: KindMissing}

// parseValue converts a raw CSV field to a typed cell. An empty field is
// missing, matching how the survey export encodes unanswered questions.
func parseValue(field string) Value {
	if field == "" {
		return Missing
	}
	if n, err := strconv.ParseFloat(field, 64); err == nil {
		return NumberValue(field, n)
	}
	return StringValue(field)
}

// IsMissing reports whether the cell is absent.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Kind returns the cell variant.
func (v Value) Kind() Kind { return v.kind }

// String returns the verbatim source text, or "" for a missing cell.
func (v Value) String() string { return v.raw }

// Number returns the parsed numeric value and whether the cell is numeric.
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Row is one survey response, cells in header order.
type Row []Value

// CountryColumn is the column the country filter and country set read.
const CountryColumn = "Country"

// Table is an immutable, ordered collection of survey responses with a
// fixed column set. Lookups by column name go through an explicit index;
// an unknown name is an explicit miss, never a panic.
type Table struct {
	header   []string
	colIndex map[string]int
	rows     []Row

	mu        sync.Mutex
	countries []string          // lazily computed country set
	filtered  map[string]*Table // country -> sub-table, pointer-stable
}

// NewTable builds a table from a header and rows. Rows shorter than the
// header are padded with missing cells so column lookup stays total.
func NewTable(header []string, rows []Row) *Table {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	for i, row := range rows {
		for len(row) < len(header) {
			row = append(row, Missing)
		}
		rows[i] = row
	}
	return &Table{
		header:   header,
		colIndex: idx,
		rows:     rows,
		filtered: make(map[string]*Table),
	}
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns the header in file order.
func (t *Table) Columns() []string { return t.header }

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.colIndex[name]
	return ok
}

// Column returns the cells of the named column in row order, or false
// when the column does not exist.
func (t *Table) Column(name string) ([]Value, bool) {
	i, ok := t.colIndex[name]
	if !ok {
		return nil, false
	}
	col := make([]Value, len(t.rows))
	for r, row := range t.rows {
		col[r] = row[i]
	}
	return col, true
}

// Cell returns the cell at (row, column name). Unknown columns and
// out-of-range rows read as missing.
func (t *Table) Cell(row int, name string) Value {
	i, ok := t.colIndex[name]
	if !ok || row < 0 || row >= len(t.rows) {
		return Missing
	}
	return t.rows[row][i]
}

// Head returns the first n rows (all of them when fewer exist).
func (t *Table) Head(n int) []Row {
	if n > len(t.rows) {
		n = len(t.rows)
	}
	return t.rows[:n]
}

// Countries returns the distinct non-missing values of the Country
// column, sorted ascending. Empty when the column is absent. Computed
// once and reused; the table never changes after load.
func (t *Table) Countries() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.countries != nil {
		return t.countries
	}

	i, ok := t.colIndex[CountryColumn]
	if !ok {
		t.countries = []string{}
		return t.countries
	}

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, row := range t.rows {
		v := row[i]
		if v.IsMissing() {
			continue
		}
		if _, dup := seen[v.String()]; dup {
			continue
		}
		seen[v.String()] = struct{}{}
		out = append(out, v.String())
	}
	sort.Strings(out)

	t.countries = out
	return t.countries
}

// FilterCountry returns the sub-table of rows whose Country cell equals
// country. The returned pointer is stable: asking for the same country
// twice yields the same *Table, which keeps downstream identity-keyed
// memoization effective. A table without a Country column filters to an
// empty sub-table.
func (t *Table) FilterCountry(country string) *Table {
	t.mu.Lock()
	defer t.mu.Unlock()

	if sub, ok := t.filtered[country]; ok {
		return sub
	}

	rows := make([]Row, 0)
	if i, ok := t.colIndex[CountryColumn]; ok {
		for _, row := range t.rows {
			if !row[i].IsMissing() && row[i].String() == country {
				rows = append(rows, row)
			}
		}
	}

	sub := NewTable(t.header, rows)
	t.filtered[country] = sub
	return sub
}
