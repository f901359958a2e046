package report

import (
	"strconv"
	"strings"
)

// Row is one raw report row as returned by the endpoint. There is no fixed
// schema: field presence varies per row and values arrive as strings,
// numbers, or null. Rows stay read-only once fetched.
type Row map[string]any

// Str returns the named field rendered as a trimmed string. Absent and null
// fields both come back as "".
func (r Row) Str(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// Value returns the raw field value, nil when absent.
func (r Row) Value(key string) any {
	return r[key]
}

// Clone returns a shallow copy so enrichment never mutates the fetched row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
