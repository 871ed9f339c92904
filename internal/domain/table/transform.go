package table

import (
	"fmt"
	"sort"
)

// Concat stacks tables row-wise. Columns are matched by name and ordered by
// first appearance; a column missing from one table is null in its rows.
// Kinds are widened when tables disagree (int with float gives float,
// anything with string gives string).
func Concat(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return New()
	}

	var names []string
	kinds := make(map[string]Kind)
	fixed := make(map[string]bool)
	total := 0
	for ti, t := range tables {
		if t == nil {
			return nil, fmt.Errorf("table %d is nil", ti)
		}
		total += t.rows
		for _, c := range t.columns {
			k, seen := kinds[c.name]
			if !seen {
				names = append(names, c.name)
				kinds[c.name] = c.kind
				fixed[c.name] = !c.allNull()
				continue
			}
			// all-null columns carry no kind information
			if c.allNull() {
				continue
			}
			if !fixed[c.name] {
				kinds[c.name] = c.kind
				fixed[c.name] = true
				continue
			}
			kinds[c.name] = widen(k, c.kind)
		}
	}

	columns := make([]*Column, len(names))
	for j, name := range names {
		kind := kinds[name]
		values := make([]Value, 0, total)
		for _, t := range tables {
			i, ok := t.index[name]
			if !ok {
				for r := 0; r < t.rows; r++ {
					values = append(values, Null(kind))
				}
				continue
			}
			for _, v := range t.columns[i].values {
				values = append(values, v.convert(kind))
			}
		}
		columns[j] = &Column{name: name, kind: kind, values: values}
	}
	return New(columns...)
}

// Rename returns a table with columns renamed by mapping. Names absent from
// the table are ignored.
func (t *Table) Rename(mapping map[string]string) (*Table, error) {
	columns := make([]*Column, len(t.columns))
	for i, c := range t.columns {
		if to, ok := mapping[c.name]; ok {
			columns[i] = c.renamed(to)
			continue
		}
		columns[i] = c
	}
	return New(columns...)
}

// Select keeps the named columns in the given order.
func (t *Table) Select(names ...string) (*Table, error) {
	columns := make([]*Column, len(names))
	for i, name := range names {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		columns[i] = c
	}
	return New(columns...)
}

// Multiply derives column out as left × right. An existing column named out
// is replaced in place. Both operands must be numeric; a null operand gives
// a null product.
func (t *Table) Multiply(left, right, out string) (*Table, error) {
	a, err := t.Column(left)
	if err != nil {
		return nil, err
	}
	b, err := t.Column(right)
	if err != nil {
		return nil, err
	}
	for _, c := range []*Column{a, b} {
		if !c.kind.Numeric() {
			return nil, fmt.Errorf("%w: %q is %s", ErrNotNumeric, c.name, c.kind)
		}
	}

	kind := KindFloat
	if a.kind == KindInt && b.kind == KindInt {
		kind = KindInt
	}
	values := make([]Value, t.rows)
	for i := range values {
		av, bv := a.values[i], b.values[i]
		switch {
		case av.IsNull() || bv.IsNull():
			values[i] = Null(kind)
		case kind == KindInt:
			x, _ := av.Int()
			y, _ := bv.Int()
			values[i] = IntValue(x * y)
		default:
			x, _ := av.Float()
			y, _ := bv.Float()
			values[i] = FloatValue(x * y)
		}
	}
	product := &Column{name: out, kind: kind, values: values}

	columns := make([]*Column, 0, len(t.columns)+1)
	replaced := false
	for _, c := range t.columns {
		if c.name == out {
			columns = append(columns, product)
			replaced = true
			continue
		}
		columns = append(columns, c)
	}
	if !replaced {
		columns = append(columns, product)
	}
	return New(columns...)
}

// SortBy orders rows by one column. The sort is stable and nulls always go
// last.
func (t *Table) SortBy(column string, descending bool) (*Table, error) {
	c, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	rows := make([]int, t.rows)
	for i := range rows {
		rows[i] = i
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := c.values[rows[i]], c.values[rows[j]]
		if a.IsNull() || b.IsNull() {
			return !a.IsNull() && b.IsNull()
		}
		if descending {
			return compare(a, b) > 0
		}
		return compare(a, b) < 0
	})
	return t.take(rows), nil
}
