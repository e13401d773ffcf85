package resource

import (
	"fmt"
	"net/url"
	"strconv"
)

// Record is a single schema-less document within a collection. Field values
// are whatever the JSON snapshot (or a request body) contained: strings,
// numbers, booleans, nil, nested maps and slices.
type Record = map[string]any

// IDField is the record field that identifies a record within its collection.
// Uniqueness is the data author's responsibility; lookups return the first
// record whose stringified id matches.
const IDField = "id"

// MaxLimit caps the _limit query parameter.
const MaxLimit = 1000

// Reserved query parameter names. Everything else becomes an equality filter.
const (
	ParamPage  = "_page"
	ParamLimit = "_limit"
	ParamSort  = "_sort"
	ParamOrder = "_order"
	ParamQ     = "q"
)

// Query contains the filter, search, sort and pagination parameters derived
// from one request. The zero value means "everything, in insertion order".
type Query struct {
	// Filters contains exact match filters by field name. Keys ending in
	// _ne, _gte, _lte or _like are treated as operator filters on the
	// prefixed field.
	Filters map[string]string
	// Search is the full-text needle (q parameter). Empty means no search.
	Search string
	// Sort is the field name to sort by. Empty preserves insertion order.
	Sort string
	// Order is the sort direction: "desc" (case-insensitive) for descending,
	// anything else for ascending.
	Order string
	// Page is the 1-based page number. Values below 1 are clamped to 1.
	Page int
	// Limit is the maximum records per page, clamped to [1, MaxLimit].
	// Zero means no limit (the full remaining sequence).
	Limit int
}

// Page is the result of a list operation: one window of records plus the
// total count after filtering and search but before pagination. Callers
// expose Total so clients can compute page counts.
type Page struct {
	Records []Record `json:"records"`
	Total   int      `json:"total"`
}

// ErrorResponse is the JSON body returned for failed operations.
type ErrorResponse struct {
	// Error is the error message
	Error string `json:"error"`
	// Resource is the collection name (if applicable)
	Resource string `json:"resource,omitempty"`
	// ID is the record ID (if applicable)
	ID string `json:"id,omitempty"`
	// StatusCode is the HTTP status code
	StatusCode int `json:"statusCode,omitempty"`
}

// ParseQuery builds a Query from raw URL query parameters. Reserved keys are
// consumed for paging/sorting/search; every remaining key becomes a filter.
// Malformed _page and _limit values fall back to page 1 and no limit rather
// than failing the request.
func ParseQuery(values url.Values) *Query {
	q := &Query{
		Page:    1,
		Filters: make(map[string]string),
	}

	if v := values.Get(ParamPage); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			q.Page = page
		}
	}
	if q.Page < 1 {
		q.Page = 1
	}

	if v := values.Get(ParamLimit); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			switch {
			case limit < 1:
				q.Limit = 1
			case limit > MaxLimit:
				q.Limit = MaxLimit
			default:
				q.Limit = limit
			}
		}
	}

	q.Search = values.Get(ParamQ)
	q.Sort = values.Get(ParamSort)
	q.Order = values.Get(ParamOrder)

	reserved := map[string]bool{ParamPage: true, ParamLimit: true, ParamSort: true, ParamOrder: true, ParamQ: true}
	for key, vals := range values {
		if !reserved[key] && len(vals) > 0 {
			q.Filters[key] = vals[0]
		}
	}

	return q
}

// RecordID returns the record's id stringified, or "" if the record has no
// id field. Numeric ids print without an exponent so JSON numbers like 1965
// compare equal to the path segment "1965".
func RecordID(rec Record) string {
	v, ok := rec[IDField]
	if !ok || v == nil {
		return ""
	}
	return Stringify(v)
}

// Stringify renders a field value the way it would appear in a URL segment
// or query parameter.
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
