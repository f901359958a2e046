package filtering

import (
	"strings"

	"github.com/kwren/shipview/internal/grouping"
	"github.com/kwren/shipview/internal/normalize"
	"github.com/kwren/shipview/internal/scope"
)

// Query is the free-text filter state. It is passed in explicitly; the
// filter never reads interactive controls.
type Query struct {
	Customer  string
	Milestone string
}

// Section is one visible customer/milestone bucket, in display order.
type Section struct {
	Customer  string
	Address   string
	Milestone string
	Records   []normalize.Record
}

// Apply flattens the grouped structure into the visible sections. Matching
// is case-insensitive substring containment on customer and milestone names,
// both required. An enabled scope replaces the customer query entirely: free
// text can neither widen nor narrow a locked view. Buckets left without
// records are omitted, and a gate or unresolved scope yields nothing.
func Apply(g *grouping.Groups, sc scope.Scope, res scope.Resolution, q Query) []Section {
	if !sc.Allowed() {
		return nil
	}
	customerQ := strings.ToLower(strings.TrimSpace(q.Customer))
	milestoneQ := strings.ToLower(strings.TrimSpace(q.Milestone))

	var out []Section
	for _, customer := range g.Customers() {
		if sc.Enabled {
			if !res.Match(customer) {
				continue
			}
		} else if customerQ != "" && !strings.Contains(strings.ToLower(customer), customerQ) {
			continue
		}

		cg := g.Customer(customer)
		for _, milestone := range cg.Milestones() {
			if milestoneQ != "" && !strings.Contains(strings.ToLower(milestone), milestoneQ) {
				continue
			}
			records := cg.Records(milestone)
			if len(records) == 0 {
				continue
			}
			out = append(out, Section{
				Customer:  customer,
				Address:   cg.Address,
				Milestone: milestone,
				Records:   records,
			})
		}
	}
	return out
}
