// Package table implements a small immutable, column-oriented table with
// the operations the shipping report needs: concatenation, value counts,
// inner joins, derived columns, group-by sums and sorting. Columns are
// addressed by their literal header names.
package table

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrColumnNotFound  = errors.New("column not found")
	ErrDuplicateColumn = errors.New("duplicate column")
	ErrLengthMismatch  = errors.New("column length mismatch")
	ErrNotNumeric      = errors.New("column is not numeric")
	ErrRowOutOfRange   = errors.New("row out of range")
)

// Table is an ordered set of equally long columns. Every operation returns
// a new Table and leaves its receiver untouched.
type Table struct {
	columns []*Column
	index   map[string]int
	rows    int
}

// New assembles a table from columns of equal length with unique names.
func New(columns ...*Column) (*Table, error) {
	t := &Table{
		columns: make([]*Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if c == nil {
			return nil, fmt.Errorf("column %d is nil", i)
		}
		if _, dup := t.index[c.name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.name)
		}
		if i == 0 {
			t.rows = c.Len()
		} else if c.Len() != t.rows {
			return nil, fmt.Errorf("%w: %q has %d rows, expected %d", ErrLengthMismatch, c.name, c.Len(), t.rows)
		}
		t.index[c.name] = len(t.columns)
		t.columns = append(t.columns, c)
	}
	return t, nil
}

// FromRecords builds a table from a header row and data rows, inferring the
// kind of every column. Header names are kept exactly as given.
func FromRecords(header []string, records [][]string) (*Table, error) {
	if len(header) == 0 {
		return nil, errors.New("header row is empty")
	}
	for i, rec := range records {
		if len(rec) != len(header) {
			// +2: one for the header, one for 1-based numbering
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d", ErrLengthMismatch, i+2, len(rec), len(header))
		}
	}

	columns := make([]*Column, len(header))
	cells := make([]string, len(records))
	for j, name := range header {
		for i, rec := range records {
			cells[i] = rec[j]
		}
		kind := inferKind(cells)
		values := make([]Value, len(records))
		for i, raw := range cells {
			values[i] = parseCell(raw, kind)
		}
		columns[j] = &Column{name: name, kind: kind, values: values}
	}
	return New(columns...)
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.rows }

// Width returns the number of columns.
// Columns returns the column names in order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.name
	}
	return names
}

// Has reports whether a column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column looks a column up by its literal name.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrColumnNotFound, name, quoteAll(t.Columns()))
	}
	return t.columns[i], nil
}

// Value returns one cell.
func (t *Table) Value(row int, column string) (Value, error) {
	c, err := t.Column(column)
	if err != nil {
		return Value{}, err
	}
	if row < 0 || row >= t.rows {
		return Value{}, fmt.Errorf("%w: %d of %d", ErrRowOutOfRange, row, t.rows)
	}
	return c.values[row], nil
}

// Row returns the cells of row i.
func (t *Table) Row(i int) (Row, error) {
	if i < 0 || i >= t.rows {
		return Row{}, fmt.Errorf("%w: %d of %d", ErrRowOutOfRange, i, t.rows)
	}
	r := Row{Columns: t.Columns(), Values: make([]Value, len(t.columns))}
	for j, c := range t.columns {
		r.Values[j] = c.values[i]
	}
	return r, nil
}

// Records renders the table as text, header first.
func (t *Table) Records() [][]string {
	out := make([][]string, 0, t.rows+1)
	out = append(out, t.Columns())
	for i := 0; i < t.rows; i++ {
		rec := make([]string, len(t.columns))
		for j, c := range t.columns {
			rec[j] = c.values[i].String()
		}
		out = append(out, rec)
	}
	return out
}

// take builds a table from the given row indices; -1 yields a null row.
func (t *Table) take(rows []int) *Table {
	out := &Table{
		columns: make([]*Column, len(t.columns)),
		index:   make(map[string]int, len(t.columns)),
		rows:    len(rows),
	}
	for j, c := range t.columns {
		out.columns[j] = c.take(rows)
		out.index[c.name] = j
	}
	return out
}

// Row is a detached copy of one table row.
type Row struct {
	Columns []string
	Values  []Value
}

// Get returns the cell under a column name.
func (r Row) Get(name string) (Value, bool) {
	for i, c := range r.Columns {
		if c == name {
			return r.Values[i], true
		}
	}
	return Value{}, false
}

// String prints the row one "column  value" pair per line.
func (r Row) String() string {
	width := 0
	for _, c := range r.Columns {
		if len(c) > width {
			width = len(c)
		}
	}
	var b strings.Builder
	for i, c := range r.Columns {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-*s  %s", width, c, r.Values[i])
	}
	return b.String()
}

func quoteAll(names []string) string {
	q := make([]string, len(names))
	for i, n := range names {
		q[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(q, ", ")
}
