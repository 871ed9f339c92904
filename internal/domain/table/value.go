package table

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the type shared by every cell of a column.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// Numeric reports whether arithmetic is defined for the kind.
func (k Kind) Numeric() bool {
	return k == KindInt || k == KindFloat
}

// Value is a single typed cell. The zero Value is a null string.
type Value struct {
	kind  Kind
	valid bool
	s     string
	i     int64
	f     float64
}

// StringValue returns a text cell.
func StringValue(s string) Value {
	return Value{kind: KindString, valid: true, s: s}
}

// IntValue returns an integer cell.
func IntValue(i int64) Value {
	return Value{kind: KindInt, valid: true, i: i}
}

// FloatValue returns a decimal cell.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, valid: true, f: f}
}

// Null returns an empty cell of the given kind.
func Null(kind Kind) Value {
	return Value{kind: kind}
}

func (v Value) IsNull() bool { return !v.valid }

// Float returns the numeric value of an int or float cell.
func (v Value) Float() (float64, bool) {
	if !v.valid {
		return 0, false
	}
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

// Int returns the value of an int cell.
func (v Value) Int() (int64, bool) {
	if !v.valid || v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

func (v Value) String() string {
	if !v.valid {
		return "NaN"
	}
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	}
	return v.s
}

// key identifies a value for grouping and joining. Numeric kinds share one
// key space, so int 1 and float 1.0 fall into the same group.
func (v Value) key() string {
	if !v.valid {
		return ""
	}
	switch v.kind {
	case KindInt:
		return "n:" + strconv.FormatInt(v.i, 10)
	case KindFloat:
		// integral floats use the int spelling; this also folds -0 into 0
		if v.f == math.Trunc(v.f) && math.Abs(v.f) < 1<<63 {
			return "n:" + strconv.FormatInt(int64(v.f), 10)
		}
		return "n:" + strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	return "s:" + v.s
}

// convert promotes v to kind. Only widening conversions are used.
func (v Value) convert(kind Kind) Value {
	if v.kind == kind {
		return v
	}
	if !v.valid {
		return Null(kind)
	}
	switch kind {
	case KindFloat:
		if f, ok := v.Float(); ok {
			return FloatValue(f)
		}
	case KindString:
		return StringValue(v.String())
	}
	return Null(kind)
}

// compare orders two values of the same column; nulls sort after everything.
func compare(a, b Value) int {
	switch {
	case !a.valid && !b.valid:
		return 0
	case !a.valid:
		return 1
	case !b.valid:
		return -1
	}

	af, aNum := a.Float()
	bf, bNum := b.Float()
	if aNum && bNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
	return strings.Compare(a.String(), b.String())
}

// widen returns the narrowest kind able to hold values of both a and b.
func widen(a, b Kind) Kind {
	if a == b {
		return a
	}
	if a.Numeric() && b.Numeric() {
		return KindFloat
	}
	return KindString
}

// parseCell turns raw text into a value of the given kind.
func parseCell(raw string, kind Kind) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Null(kind)
	}
	switch kind {
	case KindInt:
		if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return IntValue(i)
		}
		return Null(kind)
	case KindFloat:
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(f) {
			return FloatValue(f)
		}
		return Null(kind)
	}
	return StringValue(raw)
}

// inferKind picks int, then float, then string for a column of raw cells.
// A column without any non-empty cell is float, like a column of NaN.
func inferKind(cells []string) Kind {
	allInt, allFloat, seen := true, true, false
	for _, raw := range cells {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		seen = true
		if allInt {
			if _, err := strconv.ParseInt(trimmed, 10, 64); err != nil {
				allInt = false
			}
		}
		if !allInt && allFloat {
			if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
				allFloat = false
			}
		}
		if !allInt && !allFloat {
			return KindString
		}
	}
	switch {
	case !seen:
		return KindFloat
	case allInt:
		return KindInt
	case allFloat:
		return KindFloat
	}
	return KindString
}
