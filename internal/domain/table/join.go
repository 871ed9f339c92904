package table

import "fmt"

// Suffixes appended to non-key columns present on both sides of a join.
const (
	LeftSuffix  = "_x"
	RightSuffix = "_y"
)

// InnerJoin keeps every pairing of a left row with a right row sharing the
// same value in column on. Output rows follow left order, then right order
// for multiple matches. Rows with a null key never match.
func (t *Table) InnerJoin(right *Table, on string) (*Table, error) {
	lk, rk, matches, err := t.matchRows(right, on)
	if err != nil {
		return nil, err
	}

	var leftRows, rightRows []int
	for i, m := range matches {
		for _, r := range m {
			leftRows = append(leftRows, i)
			rightRows = append(rightRows, r)
		}
	}

	key := widen(lk.kind, rk.kind)
	if lk.allNull() {
		key = rk.kind
	}
	columns := make([]*Column, 0, len(t.columns)+len(right.columns)-1)
	for _, c := range t.columns {
		if c.name == on {
			joined := c.take(leftRows)
			for i, v := range joined.values {
				joined.values[i] = v.convert(key)
			}
			joined.kind = key
			columns = append(columns, joined)
			continue
		}
		taken := c.take(leftRows)
		if right.Has(c.name) {
			taken = taken.renamed(c.name + LeftSuffix)
		}
		columns = append(columns, taken)
	}
	for _, c := range right.columns {
		if c.name == on {
			continue
		}
		taken := c.take(rightRows)
		if t.Has(c.name) {
			taken = taken.renamed(c.name + RightSuffix)
		}
		columns = append(columns, taken)
	}
	return New(columns...)
}

// AntiJoin returns the left rows that InnerJoin would drop.
func (t *Table) AntiJoin(right *Table, on string) (*Table, error) {
	_, _, matches, err := t.matchRows(right, on)
	if err != nil {
		return nil, err
	}
	var rows []int
	for i, m := range matches {
		if len(m) == 0 {
			rows = append(rows, i)
		}
	}
	return t.take(rows), nil
}

// matchRows returns, for every left row, the right rows with the same key.
func (t *Table) matchRows(right *Table, on string) (*Column, *Column, [][]int, error) {
	if right == nil {
		return nil, nil, nil, fmt.Errorf("join on %q: right table is nil", on)
	}
	lk, err := t.Column(on)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("join left side: %w", err)
	}
	rk, err := right.Column(on)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("join right side: %w", err)
	}

	lookup := make(map[string][]int, rk.Len())
	for i, v := range rk.values {
		if v.IsNull() {
			continue
		}
		lookup[v.key()] = append(lookup[v.key()], i)
	}

	matches := make([][]int, lk.Len())
	for i, v := range lk.values {
		if v.IsNull() {
			continue
		}
		matches[i] = lookup[v.key()]
	}
	return lk, rk, matches, nil
}
