package usecase

import (
	"fmt"
	"strings"

	"github.com/diillson/shipping-report/internal/domain/table"
	"github.com/diillson/shipping-report/internal/shared/types"
)

// countColumn names the raw frequency column before display labels apply.
const countColumn = "count"

// Aggregates holds every intermediate and final table of one report run.
type Aggregates struct {
	Departures    *table.Table // union of all departure tables
	Counts        *table.Table // count per department, display labels applied
	Joined        *table.Table // departures joined with countries, plus the sum column
	Unmatched     *table.Table // departures without a matching country
	ByDepartment  *table.Table // sum per department
	ByDestination *table.Table // sum per destination name, descending
}

// Aggregate runs the report computations over already loaded tables. It
// never modifies its inputs.
func Aggregate(departures []*table.Table, countries *table.Table, cols types.Columns, strictJoin bool) (*Aggregates, error) {
	if len(departures) == 0 {
		return nil, types.ErrNoDepartureSources
	}

	union, err := table.Concat(departures...)
	if err != nil {
		return nil, fmt.Errorf("error merging departures: %w", err)
	}

	counts, err := union.ValueCounts(cols.Department, countColumn)
	if err != nil {
		return nil, fmt.Errorf("error counting departments: %w", err)
	}
	counts, err = counts.Rename(map[string]string{countColumn: cols.Count})
	if err != nil {
		return nil, fmt.Errorf("error labelling department counts: %w", err)
	}

	unmatched, err := union.AntiJoin(countries, cols.CountryCode)
	if err != nil {
		return nil, fmt.Errorf("error matching destination codes: %w", err)
	}
	if strictJoin && unmatched.Len() > 0 {
		codes, _ := distinctValues(unmatched, cols.CountryCode)
		return nil, fmt.Errorf("%w: %d rows, codes %s", types.ErrUnmatchedCountryCodes, unmatched.Len(), strings.Join(codes, ", "))
	}

	joined, err := union.InnerJoin(countries, cols.CountryCode)
	if err != nil {
		return nil, fmt.Errorf("error joining departures with countries: %w", err)
	}
	joined, err = joined.Multiply(cols.Weight, cols.Price, cols.Sum)
	if err != nil {
		return nil, fmt.Errorf("error computing %q: %w", cols.Sum, err)
	}

	deptSums, err := joined.Select(cols.Department, cols.Sum)
	if err != nil {
		return nil, err
	}
	byDepartment, err := deptSums.GroupBySum(cols.Department, cols.Sum)
	if err != nil {
		return nil, fmt.Errorf("error summing by department: %w", err)
	}

	nameSums, err := joined.Select(cols.Sum, cols.Name)
	if err != nil {
		return nil, err
	}
	byName, err := nameSums.GroupBySum(cols.Name, cols.Sum)
	if err != nil {
		return nil, fmt.Errorf("error summing by destination: %w", err)
	}
	byDestination, err := byName.SortBy(cols.Sum, true)
	if err != nil {
		return nil, err
	}

	return &Aggregates{
		Departures:    union,
		Counts:        counts,
		Joined:        joined,
		Unmatched:     unmatched,
		ByDepartment:  byDepartment,
		ByDestination: byDestination,
	}, nil
}

// distinctValues lists the distinct cells of a column in first-seen order.
// Null cells are reported as "<empty>".
func distinctValues(t *table.Table, column string) ([]string, error) {
	c, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for i := 0; i < c.Len(); i++ {
		v := c.Value(i)
		s := v.String()
		if v.IsNull() {
			s = "<empty>"
		}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out, nil
}
