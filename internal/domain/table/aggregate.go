package table

import (
	"fmt"
	"sort"
)

// ValueCounts counts the non-null values of column. The result has two
// columns, column and countName, sorted by count descending; equal counts
// keep the order in which values first appeared.
func (t *Table) ValueCounts(column, countName string) (*Table, error) {
	c, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	if countName == column {
		return nil, fmt.Errorf("%w: count column %q", ErrDuplicateColumn, countName)
	}

	var firsts []int
	counts := make(map[string]int64)
	for i, v := range c.values {
		if v.IsNull() {
			continue
		}
		k := v.key()
		if _, seen := counts[k]; !seen {
			firsts = append(firsts, i)
		}
		counts[k]++
	}
	sort.SliceStable(firsts, func(i, j int) bool {
		return counts[c.values[firsts[i]].key()] > counts[c.values[firsts[j]].key()]
	})

	n := make([]int64, len(firsts))
	for i, r := range firsts {
		n[i] = counts[c.values[r].key()]
	}
	return New(c.take(firsts), Ints(countName, n...))
}

// GroupBySum partitions rows by key and adds up value within each group.
// Groups are ordered by key ascending; null keys are dropped and null
// values are skipped.
func (t *Table) GroupBySum(key, value string) (*Table, error) {
	k, err := t.Column(key)
	if err != nil {
		return nil, err
	}
	v, err := t.Column(value)
	if err != nil {
		return nil, err
	}
	if !v.kind.Numeric() {
		return nil, fmt.Errorf("%w: %q is %s", ErrNotNumeric, value, v.kind)
	}
	if key == value {
		return nil, fmt.Errorf("%w: cannot group %q by itself", ErrDuplicateColumn, key)
	}

	var firsts []int
	members := make(map[string][]Value)
	for i, kv := range k.values {
		if kv.IsNull() {
			continue
		}
		id := kv.key()
		if _, seen := members[id]; !seen {
			firsts = append(firsts, i)
		}
		members[id] = append(members[id], v.values[i])
	}
	sort.SliceStable(firsts, func(i, j int) bool {
		return compare(k.values[firsts[i]], k.values[firsts[j]]) < 0
	})

	sums := make([]Value, len(firsts))
	for i, r := range firsts {
		sums[i] = sumValues(v.kind, members[k.values[r].key()])
	}
	return New(k.take(firsts), &Column{name: value, kind: v.kind, values: sums})
}
