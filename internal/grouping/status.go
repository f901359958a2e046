package grouping

import (
	"strings"

	"github.com/kwren/shipview/internal/normalize"
)

// StyleClass drives how a rolled-up status is styled.
type StyleClass int

const (
	StylePlain StyleClass = iota
	StyleNormal
	StyleMixed
)

// Summary is a group's display status, derived on demand and never stored.
type Summary struct {
	Label string
	Class StyleClass
}

// emptyLabel is shown when a bucket has no records with a status.
const emptyLabel = "—"

// Summarize reduces a bucket's per-record statuses to one display status.
// Blank statuses are ignored; comparison is case-insensitive. A bucket where
// every status is "done" rolls up to the Shipped label.
func Summarize(records []normalize.Record) Summary {
	distinct := make(map[string]struct{})
	first := ""
	for _, r := range records {
		s := r.Status()
		if s == "" {
			continue
		}
		if first == "" {
			first = s
		}
		distinct[strings.ToLower(s)] = struct{}{}
	}

	switch len(distinct) {
	case 0:
		return Summary{Label: emptyLabel, Class: StylePlain}
	case 1:
		if _, done := distinct["done"]; done {
			return Summary{Label: "Shipped", Class: StyleNormal}
		}
		return Summary{Label: first, Class: StylePlain}
	default:
		return Summary{Label: "Mixed", Class: StyleMixed}
	}
}
