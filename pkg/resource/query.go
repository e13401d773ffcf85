package resource

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
)

// Operator suffixes recognized on filter keys. "year_gte=1960" filters the
// "year" field; a key without a known suffix is a plain equality filter.
const (
	opNotEqual = "_ne"
	opGTE      = "_gte"
	opLTE      = "_lte"
	opLike     = "_like"
)

// Filter returns the records matching every filter entry (logical AND).
// String values compare case-insensitively; other kinds follow the loose
// equality table in compare.go. A record missing a filtered field does not
// match unless the filter value itself denotes null.
func Filter(records []Record, filters map[string]string) []Record {
	if len(filters) == 0 {
		return records
	}

	result := make([]Record, 0, len(records))
	for _, rec := range records {
		if matchesAll(rec, filters) {
			result = append(result, rec)
		}
	}
	return result
}

func matchesAll(rec Record, filters map[string]string) bool {
	for key, want := range filters {
		if !matchesOne(rec, key, want) {
			return false
		}
	}
	return true
}

func matchesOne(rec Record, key, want string) bool {
	if field, ok := strings.CutSuffix(key, opNotEqual); ok && field != "" {
		val, present := rec[field]
		return !looseEqual(want, val, present)
	}
	if field, ok := strings.CutSuffix(key, opGTE); ok && field != "" {
		val, present := rec[field]
		if !present {
			return false
		}
		cmp, comparable := rangeCompare(val, want)
		return comparable && cmp >= 0
	}
	if field, ok := strings.CutSuffix(key, opLTE); ok && field != "" {
		val, present := rec[field]
		if !present {
			return false
		}
		cmp, comparable := rangeCompare(val, want)
		return comparable && cmp <= 0
	}
	if field, ok := strings.CutSuffix(key, opLike); ok && field != "" {
		val, present := rec[field]
		if !present {
			return false
		}
		return matchesLike(Stringify(val), want)
	}

	val, present := rec[key]
	return looseEqual(want, val, present)
}

// matchesLike matches a field value against a _like pattern, treated as a
// case-insensitive regular expression. An invalid pattern degrades to a
// substring match rather than failing the request.
func matchesLike(value, pattern string) bool {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
	}
	return re.MatchString(value)
}

var searchOptions = ojg.Options{Sort: true}

// Search keeps only records whose canonical JSON serialization contains the
// lowercased needle as a substring. Object keys are sorted so the same record
// always serializes the same way. An empty needle keeps everything.
func Search(records []Record, needle string) []Record {
	if needle == "" {
		return records
	}

	needle = strings.ToLower(needle)
	result := make([]Record, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(oj.JSON(rec, &searchOptions)), needle) {
			result = append(result, rec)
		}
	}
	return result
}

// Sort stable-sorts records in place by the named field. Ascending by
// default; descending when order equals "desc" (case-insensitive), any other
// value behaves as ascending. Records whose values are incomparable keep
// their relative order. An empty field name preserves insertion order.
func Sort(records []Record, field, order string) {
	if field == "" {
		return
	}

	desc := strings.EqualFold(order, "desc")
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i][field], records[j][field]
		if desc {
			a, b = b, a
		}
		less, ok := orderLess(a, b)
		return ok && less
	})
}

// Paginate returns the window [(page-1)*limit, +limit) over records and the
// total count before pagination. limit 0 means no limit. Out-of-range windows
// yield an empty slice, never an error.
func Paginate(records []Record, page, limit int) ([]Record, int) {
	total := len(records)

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		if page == 1 {
			return records, total
		}
		return []Record{}, total
	}

	start := (page - 1) * limit
	// A huge page number can overflow the multiplication; a negative start is
	// as out of range as one past the end.
	if start < 0 || start >= total {
		return []Record{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return records[start:end], total
}
