package resource

import (
	"strconv"
	"strings"
)

// Value comparison for filtering and sorting. JSON is duck-typed and query
// parameters arrive as strings, so cross-kind comparisons follow an explicit
// coercion table instead of any language's ambient equality rules:
//
//   - string / string: case-insensitive equality
//   - number / number: numeric equality (integers and floats unified)
//   - number / numeric string: the string is parsed and compared numerically
//   - bool / bool, bool / "true"|"false": boolean equality
//   - nil and a missing field are equivalent; "" and "null" match them
//   - objects, arrays and any other kind pair: never equal

// looseEqual reports whether a raw query-parameter value matches a record
// field value. present is false when the record has no such field.
func looseEqual(queryVal string, fieldVal any, present bool) bool {
	if !present || fieldVal == nil {
		return queryVal == "" || strings.EqualFold(queryVal, "null")
	}

	switch v := fieldVal.(type) {
	case string:
		return strings.EqualFold(queryVal, v)
	case bool:
		return strings.EqualFold(queryVal, strconv.FormatBool(v))
	default:
		if f, ok := toFloat(fieldVal); ok {
			q, err := strconv.ParseFloat(queryVal, 64)
			return err == nil && q == f
		}
		// Nested objects and arrays never match a scalar parameter.
		return false
	}
}

// orderLess compares two field values by their natural ordering. The second
// return value is false when the kinds are incomparable; callers treat such
// pairs as equal, which keeps stable sorts from reordering them.
func orderLess(a, b any) (less, ok bool) {
	if fa, aok := toFloat(a); aok {
		if fb, bok := toFloat(b); bok {
			return fa < fb, true
		}
	}
	if sa, aok := a.(string); aok {
		if sb, bok := b.(string); bok {
			return sa < sb, true
		}
	}
	if ba, aok := a.(bool); aok {
		if bb, bok := b.(bool); bok {
			return !ba && bb, true
		}
	}
	return false, false
}

// rangeCompare compares a field value against a raw query value for _gte/_lte
// filters. Numeric strings are coerced so "year_gte=1960" works against JSON
// numbers; everything else falls back to lexicographic comparison.
func rangeCompare(fieldVal any, queryVal string) (cmp int, ok bool) {
	if f, fok := toFloat(fieldVal); fok {
		q, err := strconv.ParseFloat(queryVal, 64)
		if err != nil {
			return 0, false
		}
		switch {
		case f < q:
			return -1, true
		case f > q:
			return 1, true
		default:
			return 0, true
		}
	}
	if s, sok := fieldVal.(string); sok {
		return strings.Compare(s, queryVal), true
	}
	return 0, false
}

// toFloat unifies the numeric kinds a JSON parser can produce.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
