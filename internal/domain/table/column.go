package table

// Column is a named, typed sequence of cells. Columns are never modified
// after construction.
type Column struct {
	name   string
	kind   Kind
	values []Value
}

// Ints builds an int column.
func Ints(name string, values ...int64) *Column {
	c := &Column{name: name, kind: KindInt, values: make([]Value, len(values))}
	for i, n := range values {
		c.values[i] = IntValue(n)
	}
	return c
}

func (c *Column) Kind() Kind { return c.kind }

func (c *Column) Len() int { return len(c.values) }

// Value returns the cell at row i.
func (c *Column) Value(i int) Value { return c.values[i] }

func (c *Column) renamed(name string) *Column {
	return &Column{name: name, kind: c.kind, values: c.values}
}

func (c *Column) take(rows []int) *Column {
	out := &Column{name: c.name, kind: c.kind, values: make([]Value, len(rows))}
	for i, r := range rows {
		if r < 0 {
			out.values[i] = Null(c.kind)
			continue
		}
		out.values[i] = c.values[r]
	}
	return out
}

func (c *Column) allNull() bool {
	for _, v := range c.values {
		if !v.IsNull() {
			return false
		}
	}
	return true
}

func sumValues(kind Kind, values []Value) Value {
	if kind == KindInt {
		var total int64
		for _, v := range values {
			if n, ok := v.Int(); ok {
				total += n
			}
		}
		return IntValue(total)
	}
	var total float64
	for _, v := range values {
		if f, ok := v.Float(); ok {
			total += f
		}
	}
	return FloatValue(total)
}
