package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kwren/shipview/internal/report"
)

// maxItemSlots is the number of numbered item slots a report row can carry.
const maxItemSlots = 5

// Accessor rules per logical field, in priority order. Report exports have
// renamed these columns over time, so each slot is probed under every
// historical name.
var (
	itemNameFields = []string{"ReleasesItemNo%d", "ReleasesItem%dName"}
	itemQtyFields  = []string{"ReleasesItem%dQty", "ReleasesItemNo%dQty"}
)

// LineItem is one named item on a release, with its quantity.
type LineItem struct {
	Name string
	Qty  Quantity
}

// Quantity is either a parsed number, the original free text, or empty.
// The three cases stay distinguishable all the way to the renderer: empty
// shows as a placeholder, text shows verbatim.
type Quantity struct {
	Number  float64
	Text    string
	Numeric bool
}

// IsEmpty reports the "no quantity" sentinel.
func (q Quantity) IsEmpty() bool { return !q.Numeric && q.Text == "" }

// Display renders the quantity for output; empty renders as "".
func (q Quantity) Display() string {
	if q.Numeric {
		return strconv.FormatFloat(q.Number, 'f', -1, 64)
	}
	return q.Text
}

// coerceQuantity applies the quantity policy: null/blank becomes the empty
// sentinel, a clean finite numeric parse becomes a number, anything else
// keeps the trimmed original text.
func coerceQuantity(v any) Quantity {
	switch t := v.(type) {
	case nil:
		return Quantity{}
	case float64:
		if math.IsInf(t, 0) || math.IsNaN(t) {
			return Quantity{}
		}
		return Quantity{Number: t, Numeric: true}
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return Quantity{}
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
			return Quantity{Number: n, Numeric: true}
		}
		return Quantity{Text: s}
	default:
		return Quantity{}
	}
}

// ExtractItems probes the numbered item slots of a row and returns the
// populated ones in slot order. Slots with a blank name are skipped.
func ExtractItems(row report.Row) []LineItem {
	var items []LineItem
	for i := 1; i <= maxItemSlots; i++ {
		name := firstField(row, itemNameFields, i)
		if name == "" {
			continue
		}
		items = append(items, LineItem{
			Name: name,
			Qty:  coerceQuantity(firstValue(row, itemQtyFields, i)),
		})
	}
	return items
}

// firstField returns the first non-blank string among the slot's field name
// candidates.
func firstField(row report.Row, patterns []string, slot int) string {
	for _, p := range patterns {
		if s := row.Str(fmt.Sprintf(p, slot)); s != "" {
			return s
		}
	}
	return ""
}

// firstValue returns the first present non-null raw value among the slot's
// field name candidates.
func firstValue(row report.Row, patterns []string, slot int) any {
	for _, p := range patterns {
		if v := row.Value(fmt.Sprintf(p, slot)); v != nil {
			return v
		}
	}
	return nil
}
